// ABOUTME: Configuration loader for the hydraulics backend service
// ABOUTME: Loads settings from environment variables with defaults

package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
)

type Config struct {
	// Server
	Port               string
	CORSAllowedOrigins []string // allowed CORS origins (empty = allow any origin)

	// Preset catalog
	PresetFile     string // path to the slurry CSV table
	PresetCacheTTL int    // seconds the parsed catalog stays cached

	// Display resolution for computed series
	ProfileSamples  int // depth samples over [1, TD]
	RheologySamples int // shear-rate samples over [1, 1000] 1/s

	// Rate Limiting
	RateLimitEnabled bool // Enable rate limiting (default: true)
	RateLimitWrite   int  // Requests per minute for POST endpoints (default: 60)
	RateLimitDefault int  // Requests per minute for all other endpoints (default: 120)
}

func Load() (*Config, error) {
	cfg := &Config{
		Port:               getEnv("PORT", "8080"),
		CORSAllowedOrigins: getEnvStringList("CORS_ALLOWED_ORIGINS"),

		PresetFile:     getEnv("PRESET_FILE", "sample_slurries.csv"),
		PresetCacheTTL: getEnvInt("PRESET_CACHE_TTL", 300),

		ProfileSamples:  getEnvInt("PROFILE_SAMPLES", 400),
		RheologySamples: getEnvInt("RHEOLOGY_SAMPLES", 120),

		RateLimitEnabled: getEnvBool("RATE_LIMIT_ENABLED", true),
		RateLimitWrite:   getEnvInt("RATE_LIMIT_WRITE", 60),
		RateLimitDefault: getEnvInt("RATE_LIMIT_DEFAULT", 120),
	}

	if cfg.PresetFile == "" {
		return nil, fmt.Errorf("PRESET_FILE cannot be empty")
	}

	// Validate sample resolutions
	for _, res := range []struct {
		name  string
		value int
	}{
		{"PROFILE_SAMPLES", cfg.ProfileSamples},
		{"RHEOLOGY_SAMPLES", cfg.RheologySamples},
	} {
		if res.value < 2 || res.value > 10000 {
			return nil, fmt.Errorf("%s must be between 2 and 10000, got %d", res.name, res.value)
		}
	}

	// Validate rate limit values
	for _, rl := range []struct {
		name  string
		value int
	}{
		{"RATE_LIMIT_WRITE", cfg.RateLimitWrite},
		{"RATE_LIMIT_DEFAULT", cfg.RateLimitDefault},
	} {
		if rl.value < 1 || rl.value > 10000 {
			return nil, fmt.Errorf("%s must be between 1 and 10000, got %d", rl.name, rl.value)
		}
	}

	return cfg, nil
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intVal, err := strconv.Atoi(value); err == nil {
			return intVal
		}
	}
	return defaultValue
}

func getEnvBool(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if boolVal, err := strconv.ParseBool(value); err == nil {
			return boolVal
		}
	}
	return defaultValue
}

func getEnvStringList(key string) []string {
	value := os.Getenv(key)
	if value == "" {
		return nil
	}
	parts := strings.Split(value, ",")
	result := make([]string, 0, len(parts))
	for _, part := range parts {
		trimmed := strings.TrimSpace(part)
		if trimmed != "" {
			result = append(result, trimmed)
		}
	}
	return result
}
