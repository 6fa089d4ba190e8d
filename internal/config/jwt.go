// Package config provides JWT configuration functionality.
package config

import (
	"fmt"
	"os"
	"strconv"
)

// devSessionSecret is the fallback signing secret for local development.
// Production deployments must set GEMINI_SESSION_SECRET.
const devSessionSecret = "dev-session-secret"

// JWTConfig holds configuration for session token generation and validation.
type JWTConfig struct {
	Secret          string
	ExpirationHours int
}

// NewJWTConfig creates a new JWT configuration from environment variables.
// It reads GEMINI_SESSION_SECRET (falls back to a development value) and
// JWT_EXPIRATION_HOURS (default: 2).
func NewJWTConfig() (*JWTConfig, error) {
	secret := os.Getenv("GEMINI_SESSION_SECRET")
	if secret == "" {
		secret = devSessionSecret
	}

	expirationStr := os.Getenv("JWT_EXPIRATION_HOURS")
	if expirationStr == "" {
		expirationStr = "2" // sessions stay short-lived
	}

	expirationHours, err := strconv.Atoi(expirationStr)
	if err != nil {
		return nil, fmt.Errorf("invalid JWT_EXPIRATION_HOURS: %v", err)
	}

	config := &JWTConfig{
		Secret:          secret,
		ExpirationHours: expirationHours,
	}

	if err := config.normalize(); err != nil {
		return nil, err
	}

	return config, nil
}

// normalize validates the configuration.
func (c *JWTConfig) normalize() error {
	if c.Secret == "" {
		return fmt.Errorf("session secret cannot be empty")
	}
	if c.ExpirationHours < 1 {
		return fmt.Errorf("JWT_EXPIRATION_HOURS must be at least 1 hour, got: %d", c.ExpirationHours)
	}
	return nil
}

// IsDevSecret reports whether the config is running on the development
// fallback secret, so the server can warn at startup.
func (c *JWTConfig) IsDevSecret() bool {
	return c.Secret == devSessionSecret
}
