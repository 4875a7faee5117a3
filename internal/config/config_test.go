package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadServerConfig(t *testing.T) {
	t.Setenv("DATABASE_URL", "postgres://localhost/hiring")
	t.Setenv("PORT", "9090")
	t.Setenv("DEFAULT_TIMEZONE", "America/New_York")

	cfg, err := LoadServerConfig()
	require.NoError(t, err)
	assert.Equal(t, 9090, cfg.Port)
	assert.Equal(t, "postgres://localhost/hiring", cfg.DatabaseURL)
	assert.Equal(t, "America/New_York", cfg.Timezone)
}

func TestLoadServerConfig_Defaults(t *testing.T) {
	t.Setenv("DATABASE_URL", "postgres://localhost/hiring")
	t.Setenv("PORT", "")
	t.Setenv("DEFAULT_TIMEZONE", "")
	t.Setenv("TZ", "")

	cfg, err := LoadServerConfig()
	require.NoError(t, err)
	assert.Equal(t, 8080, cfg.Port)
	assert.Equal(t, "UTC", cfg.Timezone)
}

func TestLoadServerConfig_MissingDatabaseURL(t *testing.T) {
	t.Setenv("DATABASE_URL", "")

	_, err := LoadServerConfig()
	assert.Error(t, err)
}

func TestLoadServerConfig_BadPort(t *testing.T) {
	t.Setenv("DATABASE_URL", "postgres://localhost/hiring")
	t.Setenv("PORT", "not-a-port")

	_, err := LoadServerConfig()
	assert.Error(t, err)
}

func TestResolveTimezone(t *testing.T) {
	t.Setenv("TZ", "")

	assert.Equal(t, "Europe/Berlin", ResolveTimezone("Europe/Berlin"))
	assert.Equal(t, "UTC", ResolveTimezone(""))
	assert.Equal(t, "UTC", ResolveTimezone("Not/AZone"))

	t.Setenv("TZ", "Asia/Tokyo")
	assert.Equal(t, "Asia/Tokyo", ResolveTimezone(""), "TZ is the second link in the chain")
	assert.Equal(t, "Europe/Berlin", ResolveTimezone("Europe/Berlin"), "explicit setting wins over TZ")
}
