// ABOUTME: Test helpers for e2e tests
// ABOUTME: Builds a fully wired server mux the way main does

package e2e

import (
	"net/http"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/alexandroood/cementing-hydraulics/cache"
	"github.com/alexandroood/cementing-hydraulics/config"
	"github.com/alexandroood/cementing-hydraulics/handlers"
	"github.com/alexandroood/cementing-hydraulics/middleware"
)

const catalogCSV = `name,density_ppg,plastic_viscosity_cP,yield_point_lb100ft2,BHCT_F
Class G Neat,15.8,8,12,150
Lightweight Pozzolan,12.5,14,18,135
High Density Tail,18.2,22,9,180
`

// serverOptions tunes the wired test server.
type serverOptions struct {
	rateLimitWrite     int
	rateLimitDefault   int
	corsAllowedOrigins []string
}

// newTestServer builds the full middleware and routing stack against a
// temporary preset catalog, mirroring the wiring in main.
func newTestServer(t *testing.T, opts serverOptions) *http.ServeMux {
	t.Helper()

	path := filepath.Join(t.TempDir(), "slurries.csv")
	if err := os.WriteFile(path, []byte(catalogCSV), 0o644); err != nil {
		t.Fatalf("failed to write catalog: %v", err)
	}

	cfg := &config.Config{
		Port:               "8080",
		CORSAllowedOrigins: opts.corsAllowedOrigins,
		PresetFile:         path,
		PresetCacheTTL:     300,
		ProfileSamples:     200,
		RheologySamples:    60,
		RateLimitEnabled:   opts.rateLimitWrite > 0 || opts.rateLimitDefault > 0,
		RateLimitWrite:     opts.rateLimitWrite,
		RateLimitDefault:   opts.rateLimitDefault,
	}

	h := handlers.NewHandler(cfg, cache.New(time.Minute))

	var writeLimiter, defaultLimiter *middleware.RateLimiter
	if cfg.RateLimitEnabled {
		writeLimiter = middleware.NewRateLimiter(cfg.RateLimitWrite, time.Minute)
		defaultLimiter = middleware.NewRateLimiter(cfg.RateLimitDefault, time.Minute)
	}

	corsMiddleware := middleware.CORS
	if len(cfg.CORSAllowedOrigins) > 0 {
		corsMiddleware = middleware.CORSWithConfig(cfg.CORSAllowedOrigins)
	}

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

	return mux
}
