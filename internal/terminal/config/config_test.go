package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "kassasync.toml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, "http://localhost:8080", cfg.ServerURL)
	assert.Equal(t, 30*time.Second, cfg.SyncInterval())
	assert.Equal(t, 64*time.Second, cfg.BackoffCap())
	assert.Equal(t, 5, cfg.MaxAttempts)
	assert.False(t, cfg.RemoteWins())
}

func TestLoad_MissingFileUsesDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "nope.toml"))
	require.NoError(t, err)
	assert.Equal(t, "http://localhost:8080", cfg.ServerURL)
}

func TestLoad_FileOverridesDefaults(t *testing.T) {
	path := writeConfig(t, `
server_url = "https://sync.example.com"
sync_interval_sec = 10
default_policy = "remote_wins"
log_level = "debug"
`)

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "https://sync.example.com", cfg.ServerURL)
	assert.Equal(t, 10*time.Second, cfg.SyncInterval())
	assert.True(t, cfg.RemoteWins())
	assert.Equal(t, "debug", cfg.LogLevel)

	// Незатронутые поля остаются со значениями по умолчанию
	assert.Equal(t, 100, cfg.PageLimit)
}

func TestLoad_InvalidPolicy(t *testing.T) {
	path := writeConfig(t, `default_policy = "local_wins"`)

	_, err := Load(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "default_policy")
}

func TestLoad_MalformedFile(t *testing.T) {
	path := writeConfig(t, `server_url = [broken`)

	_, err := Load(path)
	require.Error(t, err)
}

func TestValidate(t *testing.T) {
	cfg := Default()
	require.NoError(t, cfg.Validate())

	cfg.SyncIntervalSec = 0
	assert.Error(t, cfg.Validate())
}
