package ratelimit

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testConfig() *Config {
	return &Config{
		Enabled:         true,
		DefaultLimit:    5,
		DefaultWindow:   time.Minute,
		CleanupInterval: time.Minute,
		EndpointConfigs: DefaultEndpointConfigs(),
	}
}

func TestLimiter_Disabled(t *testing.T) {
	limiter := NewLimiter(&Config{Enabled: false})
	defer limiter.Stop()

	for i := 0; i < 100; i++ {
		allowed, _ := limiter.Allow("1.2.3.4", "/jobs", "GET")
		require.True(t, allowed)
	}
}

func TestLimiter_DefaultLimit(t *testing.T) {
	limiter := NewLimiter(testConfig())
	defer limiter.Stop()

	for i := 0; i < 5; i++ {
		allowed, info := limiter.Allow("1.2.3.4", "/jobs", "GET")
		require.True(t, allowed, "request %d should be allowed", i)
		assert.Equal(t, 5, info.Limit)
	}

	allowed, info := limiter.Allow("1.2.3.4", "/jobs", "GET")
	assert.False(t, allowed)
	assert.Equal(t, 0, info.Remaining)
	assert.Greater(t, info.RetryAfter, time.Duration(0))
}

func TestLimiter_ClientsIsolated(t *testing.T) {
	limiter := NewLimiter(testConfig())
	defer limiter.Stop()

	for i := 0; i < 5; i++ {
		allowed, _ := limiter.Allow("1.2.3.4", "/jobs", "GET")
		require.True(t, allowed)
	}

	// Exhausting one client must not affect another.
	allowed, _ := limiter.Allow("1.2.3.4", "/jobs", "GET")
	assert.False(t, allowed)
	allowed, _ = limiter.Allow("5.6.7.8", "/jobs", "GET")
	assert.True(t, allowed)
}

func TestLimiter_EndpointBurst(t *testing.T) {
	limiter := NewLimiter(testConfig())
	defer limiter.Stop()

	// /auth/register has a burst capacity of 5.
	for i := 0; i < 5; i++ {
		allowed, _ := limiter.Allow("1.2.3.4", "/auth/register", "POST")
		require.True(t, allowed, "request %d should be allowed", i)
	}

	allowed, info := limiter.Allow("1.2.3.4", "/auth/register", "POST")
	assert.False(t, allowed)
	assert.Equal(t, 20, info.Limit)
}

func TestLimiter_HealthUnlimited(t *testing.T) {
	limiter := NewLimiter(testConfig())
	defer limiter.Stop()

	for i := 0; i < 1000; i++ {
		allowed, _ := limiter.Allow("1.2.3.4", "/health", "GET")
		require.True(t, allowed)
	}
}

func TestLimiter_Whitelist(t *testing.T) {
	config := testConfig()
	config.Whitelist = []string{"10.0.0.1"}
	limiter := NewLimiter(config)
	defer limiter.Stop()

	for i := 0; i < 100; i++ {
		allowed, _ := limiter.Allow("10.0.0.1", "/jobs", "GET")
		require.True(t, allowed)
	}
}

func TestLimiter_Blacklist(t *testing.T) {
	config := testConfig()
	config.Blacklist = []string{"10.0.0.2"}
	limiter := NewLimiter(config)
	defer limiter.Stop()

	allowed, info := limiter.Allow("10.0.0.2", "/health", "GET")
	assert.False(t, allowed)
	assert.Greater(t, info.RetryAfter, time.Duration(0))
}

func TestLimiter_TokensRefill(t *testing.T) {
	config := testConfig()
	config.DefaultLimit = 10
	config.DefaultWindow = 100 * time.Millisecond
	limiter := NewLimiter(config)
	defer limiter.Stop()

	for i := 0; i < 10; i++ {
		allowed, _ := limiter.Allow("1.2.3.4", "/jobs", "GET")
		require.True(t, allowed)
	}
	allowed, _ := limiter.Allow("1.2.3.4", "/jobs", "GET")
	require.False(t, allowed)

	time.Sleep(150 * time.Millisecond)

	allowed, _ = limiter.Allow("1.2.3.4", "/jobs", "GET")
	assert.True(t, allowed)
}

func TestLimiter_Concurrent(t *testing.T) {
	config := testConfig()
	config.DefaultLimit = 1000
	limiter := NewLimiter(config)
	defer limiter.Stop()

	done := make(chan struct{})
	for i := 0; i < 10; i++ {
		go func(n int) {
			defer func() { done <- struct{}{} }()
			clientID := fmt.Sprintf("10.0.0.%d", n)
			for j := 0; j < 50; j++ {
				limiter.Allow(clientID, "/jobs", "GET")
			}
		}(i)
	}
	for i := 0; i < 10; i++ {
		<-done
	}
}

func TestMatchEndpoint(t *testing.T) {
	configs := DefaultEndpointConfigs()

	tests := []struct {
		name     string
		path     string
		method   string
		wantPath string
		wantNil  bool
	}{
		{"exact match", "/auth/login", "POST", "/auth/login", false},
		{"prefix match", "/jobs/abc123/availability", "PUT", "/jobs/", false},
		{"prefix match nested", "/jobs/abc123/questions", "POST", "/jobs/", false},
		{"create job", "/jobs", "POST", "/jobs", false},
		{"method mismatch", "/auth/login", "GET", "", true},
		{"no config for reads", "/jobs", "GET", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := MatchEndpoint(tt.path, tt.method, configs)
			if tt.wantNil {
				assert.Nil(t, got)
				return
			}
			require.NotNil(t, got)
			assert.Equal(t, tt.wantPath, got.Path)
		})
	}
}

func TestMatchEndpoint_HealthNeverLimited(t *testing.T) {
	got := MatchEndpoint("/health", "GET", DefaultEndpointConfigs())
	require.NotNil(t, got)
	assert.Equal(t, 0, got.Limit)
}
