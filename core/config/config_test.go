package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig_Defaults(t *testing.T) {
	cfg, err := LoadConfig(t.TempDir())
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.Server.Port)
	assert.Equal(t, "dns", cfg.Probe.Kind)
	assert.Equal(t, 10, cfg.Probe.TimeoutSeconds)
	assert.Equal(t, 1, cfg.Reconcile.Workers)
	assert.Equal(t, 8, cfg.Reconcile.MaxWorkers)
	assert.Equal(t, 30, cfg.Reconcile.MinDelayMillis)
	assert.Equal(t, 500, cfg.Reconcile.MaxDelayMillis)
	assert.Equal(t, 3, cfg.Reconcile.SaveAttempts)
	assert.Equal(t, "sqlite", cfg.Database.Driver)
	assert.True(t, cfg.History.Enabled)
	assert.Equal(t, 100, cfg.History.BatchSize)
}

func TestLoadConfig_Env(t *testing.T) {
	t.Setenv("PROBE_KIND", "rdap")
	t.Setenv("RECONCILE_WORKERS", "4")
	t.Setenv("HISTORY_ENABLED", "false")

	cfg, err := LoadConfig(t.TempDir())
	require.NoError(t, err)

	assert.Equal(t, "rdap", cfg.Probe.Kind)
	assert.Equal(t, 4, cfg.Reconcile.Workers)
	assert.False(t, cfg.History.Enabled)
}

func TestLoadConfig_DotEnv(t *testing.T) {
	dir := t.TempDir()
	content := "RECONCILE_MAX_DELAY_MS=0\nSERVER_API_KEY=secret\n"
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".env"), []byte(content), 0o644))

	t.Cleanup(func() {
		os.Unsetenv("RECONCILE_MAX_DELAY_MS")
		os.Unsetenv("SERVER_API_KEY")
	})

	cfg, err := LoadConfig(dir)
	require.NoError(t, err)

	assert.Equal(t, 0, cfg.Reconcile.MaxDelayMillis)
	assert.Equal(t, "secret", cfg.Server.ApiKey)
}
