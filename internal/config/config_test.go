package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("PORT", "")
	t.Setenv("ACCOUNT_MODE", "")
	t.Setenv("CORS_ALLOWED_ORIGINS", "")
	t.Setenv("CACHE_TTL_MINUTES", "")

	c := Load()

	require.NotNil(t, c)
	assert.Equal(t, "8080", c.Port)
	assert.Equal(t, ModeUpsert, c.AccountMode)
	assert.Equal(t, "*", c.CORSOrigins)
	assert.Equal(t, 60, c.CacheTTLMinutes)
}

func TestLoadReadsEnvironment(t *testing.T) {
	t.Setenv("PORT", "9090")
	t.Setenv("ACCOUNT_MODE", "action")
	t.Setenv("CORS_ALLOWED_ORIGINS", "https://app.example.com")
	t.Setenv("CACHE_TTL_MINUTES", "5")

	c := Load()

	assert.Equal(t, "9090", c.Port)
	assert.Equal(t, ModeAction, c.AccountMode)
	assert.Equal(t, "https://app.example.com", c.CORSOrigins)
	assert.Equal(t, 5, c.CacheTTLMinutes)
}

func TestUnknownModeFallsBackToUpsert(t *testing.T) {
	t.Setenv("ACCOUNT_MODE", "bogus")

	c := Load()

	assert.Equal(t, ModeUpsert, c.AccountMode)
}

func TestInvalidIntFallsBackToDefault(t *testing.T) {
	t.Setenv("CACHE_TTL_MINUTES", "not-a-number")

	c := Load()

	assert.Equal(t, 60, c.CacheTTLMinutes)
}
