package ratelimit

import (
	"os"
	"strconv"
	"strings"
	"time"
)

// Config holds the limiter settings.
type Config struct {
	Enabled         bool
	DefaultLimit    int
	DefaultWindow   time.Duration
	CleanupInterval time.Duration
	Whitelist       []string
	Blacklist       []string
	EndpointConfigs []EndpointConfig
}

// EndpointConfig represents rate limiting configuration for a specific
// endpoint. Paths ending in "/" are matched by prefix.
type EndpointConfig struct {
	Path   string
	Method string
	Limit  int           // Maximum requests per window
	Window time.Duration // Time window
	Burst  int           // Burst capacity (defaults to Limit if 0)
}

// LoadConfig loads rate limiting configuration from environment variables.
func LoadConfig() *Config {
	enabled := getEnvBool("RATE_LIMIT_ENABLED", true)
	if !enabled {
		return &Config{Enabled: false}
	}

	return &Config{
		Enabled:         true,
		DefaultLimit:    getEnvInt("RATE_LIMIT_DEFAULT_LIMIT", 1000),
		DefaultWindow:   getEnvDuration("RATE_LIMIT_DEFAULT_WINDOW", time.Minute),
		CleanupInterval: getEnvDuration("RATE_LIMIT_CLEANUP_INTERVAL", 5*time.Minute),
		Whitelist:       parseIPList(os.Getenv("RATE_LIMIT_WHITELIST")),
		Blacklist:       parseIPList(os.Getenv("RATE_LIMIT_BLACKLIST")),
		EndpointConfigs: DefaultEndpointConfigs(),
	}
}

// DefaultEndpointConfigs returns the default endpoint-specific
// configurations.
func DefaultEndpointConfigs() []EndpointConfig {
	return []EndpointConfig{
		// Account creation and login draw brute-force attempts; keep them
		// tight.
		{Path: "/auth/register", Method: "POST", Limit: 20, Window: time.Hour, Burst: 5},
		{Path: "/auth/login", Method: "POST", Limit: 60, Window: time.Hour, Burst: 10},

		// Write operations.
		{Path: "/jobs", Method: "POST", Limit: 100, Window: time.Minute, Burst: 10},
		{Path: "/jobs/", Method: "PUT", Limit: 100, Window: time.Minute, Burst: 10},
		{Path: "/jobs/", Method: "DELETE", Limit: 100, Window: time.Minute, Burst: 10},
		{Path: "/jobs/", Method: "POST", Limit: 100, Window: time.Minute, Burst: 10},

		// Reads are handled by the default limit; /health is unlimited via
		// a special case in the matcher.
	}
}

func getEnvBool(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if parsed, err := strconv.ParseBool(value); err == nil {
			return parsed
		}
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if parsed, err := strconv.Atoi(value); err == nil {
			return parsed
		}
	}
	return defaultValue
}

func getEnvDuration(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if parsed, err := time.ParseDuration(value); err == nil {
			return parsed
		}
	}
	return defaultValue
}

func parseIPList(value string) []string {
	if value == "" {
		return nil
	}
	var ips []string
	for _, ip := range strings.Split(value, ",") {
		if trimmed := strings.TrimSpace(ip); trimmed != "" {
			ips = append(ips, trimmed)
		}
	}
	return ips
}
