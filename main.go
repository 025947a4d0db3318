// ABOUTME: Entry point for the cementing hydraulics backend service
// ABOUTME: Provides HTTP API for slurry presets, job evaluation, and scenario comparison

package main

import (
	"log/slog"
	"net/http"
	"os"
	"time"

	"github.com/joho/godotenv"

	"github.com/alexandroood/cementing-hydraulics/cache"
	"github.com/alexandroood/cementing-hydraulics/config"
	"github.com/alexandroood/cementing-hydraulics/handlers"
	"github.com/alexandroood/cementing-hydraulics/logger"
	"github.com/alexandroood/cementing-hydraulics/middleware"
)

func main() {
	// Initialize structured logging
	logger.Init()

	// .env is optional; real deployments set the environment directly
	if err := godotenv.Load(); err == nil {
		slog.Info("Loaded environment from .env")
	}

	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		slog.Error("Failed to load configuration", "error", err)
		os.Exit(1)
	}

	slog.Info("Starting cementing hydraulics backend")
	slog.Info("Preset catalog configured", "file", cfg.PresetFile, "cache_ttl_s", cfg.PresetCacheTTL)
	slog.Info("Series resolution", "profile_samples", cfg.ProfileSamples, "rheology_samples", cfg.RheologySamples)

	// Initialize cache for the parsed preset catalog
	cacheTTL := time.Duration(cfg.PresetCacheTTL) * time.Second
	c := cache.New(cacheTTL)

	// Initialize handlers
	h := handlers.NewHandler(cfg, c)

	// Per-minute rate limiters, keyed by client IP. POST endpoints compute
	// full profiles per request and get the tighter budget.
	var writeLimiter, defaultLimiter *middleware.RateLimiter
	if cfg.RateLimitEnabled {
		writeLimiter = middleware.NewRateLimiter(cfg.RateLimitWrite, time.Minute)
		defaultLimiter = middleware.NewRateLimiter(cfg.RateLimitDefault, time.Minute)
		slog.Info("Rate limiting enabled", "write_per_min", cfg.RateLimitWrite, "default_per_min", cfg.RateLimitDefault)
	} else {
		slog.Warn("Rate limiting disabled")
	}

	// Open CORS unless a whitelist is configured
	corsMiddleware := middleware.CORS
	if len(cfg.CORSAllowedOrigins) > 0 {
		corsMiddleware = middleware.CORSWithConfig(cfg.CORSAllowedOrigins)
		slog.Info("CORS origin whitelist enabled", "origins", cfg.CORSAllowedOrigins)
	}

	// Register routes with the middleware chain
	mux := http.NewServeMux()
	for _, route := range h.Routes() {
		chain := []func(http.HandlerFunc) http.HandlerFunc{
			corsMiddleware,
			middleware.LogRequest,
		}
		if cfg.RateLimitEnabled {
			limiter := defaultLimiter
			if route.Method == http.MethodPost {
				limiter = writeLimiter
			}
			chain = append(chain, middleware.RateLimit(limiter, middleware.ClientIP))
		}
		mux.HandleFunc(route.Method+" "+route.Path, middleware.Chain(route.Handler, chain...))
	}

	// Start server
	addr := ":" + cfg.Port
	slog.Info("Server listening", "addr", addr)
	if err := http.ListenAndServe(addr, mux); err != nil {
		slog.Error("Server failed", "error", err)
		os.Exit(1)
	}
}
