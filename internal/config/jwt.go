package config

import (
	"fmt"
	"os"
	"strconv"
	"time"
)

// JWTConfig holds the settings for issuing and validating session tokens.
type JWTConfig struct {
	Secret string
	TTL    time.Duration
}

// NewJWTConfig reads JWT settings from the environment: JWT_SECRET is
// required, JWT_TTL_HOURS defaults to 24.
func NewJWTConfig() (*JWTConfig, error) {
	secret := os.Getenv("JWT_SECRET")
	if secret == "" {
		return nil, fmt.Errorf("JWT_SECRET is required but not set")
	}

	ttlHours := 24
	if ttlStr := os.Getenv("JWT_TTL_HOURS"); ttlStr != "" {
		parsed, err := strconv.Atoi(ttlStr)
		if err != nil {
			return nil, fmt.Errorf("invalid JWT_TTL_HOURS %q: %w", ttlStr, err)
		}
		if parsed < 1 {
			return nil, fmt.Errorf("JWT_TTL_HOURS must be at least 1, got %d", parsed)
		}
		ttlHours = parsed
	}

	return &JWTConfig{
		Secret: secret,
		TTL:    time.Duration(ttlHours) * time.Hour,
	}, nil
}
