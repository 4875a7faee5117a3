// Package config provides configuration loading and validation for the
// hiring console service.
package config

import (
	"fmt"
	"os"
	"strconv"
	"time"
)

// ServerConfig holds the service-level settings read from the environment.
type ServerConfig struct {
	Port        int
	DatabaseURL string
	Timezone    string
}

// LoadServerConfig reads the server configuration from environment
// variables. DATABASE_URL is required; PORT defaults to 8080.
func LoadServerConfig() (*ServerConfig, error) {
	databaseURL := os.Getenv("DATABASE_URL")
	if databaseURL == "" {
		return nil, fmt.Errorf("DATABASE_URL environment variable is required")
	}

	port := 8080
	if portStr := os.Getenv("PORT"); portStr != "" {
		parsed, err := strconv.Atoi(portStr)
		if err != nil {
			return nil, fmt.Errorf("invalid PORT %q: %w", portStr, err)
		}
		port = parsed
	}

	return &ServerConfig{
		Port:        port,
		DatabaseURL: databaseURL,
		Timezone:    ResolveTimezone(os.Getenv("DEFAULT_TIMEZONE")),
	}, nil
}

// ResolveTimezone picks the timezone schedules are reported in, following
// the fallback chain: explicit setting, then the TZ environment variable,
// then UTC. Values that do not name a real IANA zone fall through to the
// next link.
func ResolveTimezone(explicit string) string {
	for _, candidate := range []string{explicit, os.Getenv("TZ")} {
		if candidate == "" {
			continue
		}
		if _, err := time.LoadLocation(candidate); err == nil {
			return candidate
		}
	}
	return "UTC"
}
