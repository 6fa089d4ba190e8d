// Package config provides environment-driven configuration for the briefing service.
package config

import (
	"fmt"
	"os"
	"strconv"
	"time"
)

// Defaults for optional settings.
const (
	DefaultPort      = 3001
	DefaultCacheSize = 128
	DefaultCacheTTL  = 15 * time.Minute
)

// Config holds the runtime configuration for the API server.
// All values come from the environment; a .env file is loaded by main.
type Config struct {
	// APIKey is the Gemini credential. Empty is allowed at startup: the
	// report endpoint answers 500 until it is configured.
	APIKey string

	// Model optionally overrides the default generation model.
	Model string

	Port int

	// RequireAuth gates POST /api/report behind Bearer token auth.
	RequireAuth bool

	// DevMode surfaces raw upstream error detail and logs raw model
	// output on parse failures. Never enable in production.
	DevMode bool

	CacheSize int
	CacheTTL  time.Duration

	// RateLimitRPM / RateLimitBurst tune the per-client token bucket on
	// the generation endpoint. Zero RPM disables limiting.
	RateLimitRPM   int
	RateLimitBurst int
}

// FromEnv builds a Config from environment variables.
func FromEnv() (*Config, error) {
	cfg := &Config{
		APIKey:         firstEnv("GEMINI_API_KEY", "API_KEY"),
		Model:          os.Getenv("GEMINI_MODEL"),
		Port:           DefaultPort,
		RequireAuth:    boolEnv("REQUIRE_AUTH"),
		DevMode:        boolEnv("DEV_MODE"),
		CacheSize:      DefaultCacheSize,
		CacheTTL:       DefaultCacheTTL,
		RateLimitRPM:   intEnv("RATE_LIMIT_RPM", 10),
		RateLimitBurst: intEnv("RATE_LIMIT_BURST", 3),
	}

	if v := os.Getenv("PORT"); v != "" {
		port, err := strconv.Atoi(v)
		if err != nil || port < 1 || port > 65535 {
			return nil, fmt.Errorf("invalid PORT: %q", v)
		}
		cfg.Port = port
	}

	if v := os.Getenv("REPORT_CACHE_SIZE"); v != "" {
		size, err := strconv.Atoi(v)
		if err != nil || size < 0 {
			return nil, fmt.Errorf("invalid REPORT_CACHE_SIZE: %q", v)
		}
		cfg.CacheSize = size
	}

	if v := os.Getenv("REPORT_CACHE_TTL"); v != "" {
		ttl, err := time.ParseDuration(v)
		if err != nil || ttl < 0 {
			return nil, fmt.Errorf("invalid REPORT_CACHE_TTL: %q", v)
		}
		cfg.CacheTTL = ttl
	}

	return cfg, nil
}

// firstEnv returns the first non-empty value among the named variables.
func firstEnv(names ...string) string {
	for _, name := range names {
		if v := os.Getenv(name); v != "" {
			return v
		}
	}
	return ""
}

func boolEnv(name string) bool {
	switch os.Getenv(name) {
	case "1", "true", "TRUE", "yes":
		return true
	}
	return false
}

func intEnv(name string, fallback int) int {
	v := os.Getenv(name)
	if v == "" {
		return fallback
	}
	n, err := strconv.Atoi(v)
	if err != nil || n < 0 {
		return fallback
	}
	return n
}
