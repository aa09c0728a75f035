package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfigDefaults(t *testing.T) {
	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, "portal.db", cfg.Store.Path)
	assert.Equal(t, "info", cfg.Log.Level)
	assert.True(t, cfg.Seed.Enabled)
	assert.Equal(t, 1000, cfg.Chat.TypingDelayMinMS)
	assert.Equal(t, 2000, cfg.Chat.TypingDelayMaxMS)
}

func TestEnvironmentOverrides(t *testing.T) {
	t.Setenv("PORTAL_STORE_PATH", "/tmp/other.db")
	t.Setenv("PORTAL_LOG_LEVEL", "debug")
	t.Setenv("PORTAL_SEED_ENABLED", "false")

	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, "/tmp/other.db", cfg.Store.Path)
	assert.Equal(t, "debug", cfg.Log.Level)
	assert.False(t, cfg.Seed.Enabled)
}
