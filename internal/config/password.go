package config

import (
	"fmt"
	"os"
	"strconv"

	"golang.org/x/crypto/bcrypt"
)

// PasswordConfig holds the bcrypt settings for recruiter passwords.
type PasswordConfig struct {
	Cost int
}

// NewPasswordConfig reads BCRYPT_COST from the environment (default 12).
// Costs outside 10-14 are rejected: below that is too weak, above it stalls
// login.
func NewPasswordConfig() (*PasswordConfig, error) {
	cost := 12
	if costStr := os.Getenv("BCRYPT_COST"); costStr != "" {
		parsed, err := strconv.Atoi(costStr)
		if err != nil {
			return nil, fmt.Errorf("invalid BCRYPT_COST %q: %w", costStr, err)
		}
		cost = parsed
	}
	if cost < 10 || cost > 14 {
		return nil, fmt.Errorf("bcrypt cost out of range: %d (must be 10-14)", cost)
	}
	return &PasswordConfig{Cost: cost}, nil
}

// HashPassword hashes a password with bcrypt at the configured cost.
func (c *PasswordConfig) HashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), c.Cost)
	if err != nil {
		return "", fmt.Errorf("failed to hash password: %w", err)
	}
	return string(hash), nil
}

// VerifyPassword reports whether a password matches a stored hash.
func (c *PasswordConfig) VerifyPassword(password, storedHash string) bool {
	return bcrypt.CompareHashAndPassword([]byte(storedHash), []byte(password)) == nil
}
