package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("HOOKS_SHARED_SECRET", "test-secret")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "0.0.0.0", cfg.Server.Address)
	assert.Equal(t, "8080", cfg.Server.HTTPPort)
	assert.Equal(t, "info", cfg.Logging.Level)
	assert.Equal(t, "", cfg.Database.Driver, "in-memory by default")
	assert.False(t, cfg.Hooks.AutoInstall)
}

func TestLoadRejectsPlaceholderSecret(t *testing.T) {
	t.Setenv("HOOKS_SHARED_SECRET", "CHANGE_ME")

	_, err := Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "hooks.shared_secret")
}

func TestLoadRejectsUnknownDriver(t *testing.T) {
	t.Setenv("HOOKS_SHARED_SECRET", "test-secret")
	t.Setenv("DATABASE_DRIVER", "sqlite")

	_, err := Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "database.driver")
}
