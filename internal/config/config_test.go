package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func clearEnv(t *testing.T) {
	t.Helper()
	for _, name := range []string{
		"GEMINI_API_KEY", "API_KEY", "GEMINI_MODEL", "PORT",
		"REQUIRE_AUTH", "DEV_MODE", "REPORT_CACHE_SIZE", "REPORT_CACHE_TTL",
		"RATE_LIMIT_RPM", "RATE_LIMIT_BURST",
	} {
		t.Setenv(name, "")
	}
}

func TestFromEnvDefaults(t *testing.T) {
	clearEnv(t)

	cfg, err := FromEnv()
	require.NoError(t, err)

	assert.Equal(t, "", cfg.APIKey)
	assert.Equal(t, DefaultPort, cfg.Port)
	assert.False(t, cfg.RequireAuth)
	assert.False(t, cfg.DevMode)
	assert.Equal(t, DefaultCacheSize, cfg.CacheSize)
	assert.Equal(t, DefaultCacheTTL, cfg.CacheTTL)
	assert.Equal(t, 10, cfg.RateLimitRPM)
	assert.Equal(t, 3, cfg.RateLimitBurst)
}

func TestFromEnvAPIKeyFallback(t *testing.T) {
	clearEnv(t)
	t.Setenv("API_KEY", "legacy-key")

	cfg, err := FromEnv()
	require.NoError(t, err)
	assert.Equal(t, "legacy-key", cfg.APIKey)

	// GEMINI_API_KEY wins when both are set.
	t.Setenv("GEMINI_API_KEY", "primary-key")
	cfg, err = FromEnv()
	require.NoError(t, err)
	assert.Equal(t, "primary-key", cfg.APIKey)
}

func TestFromEnvOverrides(t *testing.T) {
	clearEnv(t)
	t.Setenv("PORT", "8080")
	t.Setenv("REQUIRE_AUTH", "true")
	t.Setenv("DEV_MODE", "1")
	t.Setenv("REPORT_CACHE_SIZE", "32")
	t.Setenv("REPORT_CACHE_TTL", "5m")
	t.Setenv("RATE_LIMIT_RPM", "30")

	cfg, err := FromEnv()
	require.NoError(t, err)

	assert.Equal(t, 8080, cfg.Port)
	assert.True(t, cfg.RequireAuth)
	assert.True(t, cfg.DevMode)
	assert.Equal(t, 32, cfg.CacheSize)
	assert.Equal(t, 5*time.Minute, cfg.CacheTTL)
	assert.Equal(t, 30, cfg.RateLimitRPM)
}

func TestFromEnvInvalidValues(t *testing.T) {
	tests := []struct {
		name, env, value string
	}{
		{"bad port", "PORT", "not-a-port"},
		{"port out of range", "PORT", "70000"},
		{"negative cache size", "REPORT_CACHE_SIZE", "-1"},
		{"bad cache ttl", "REPORT_CACHE_TTL", "soon"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			clearEnv(t)
			t.Setenv(tt.env, tt.value)
			_, err := FromEnv()
			assert.Error(t, err)
		})
	}
}
