package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	assert.Equal(t, "~/.config/beacon", cfg.Storage.Path)
	assert.Equal(t, "analytics.db", cfg.Storage.SQLiteFile)
	assert.Equal(t, 10, cfg.RateLimit.MaxPerWindow)
	assert.Equal(t, 1, cfg.RateLimit.WindowMinutes)
	assert.Equal(t, "127.0.0.1", cfg.Server.Host)
	assert.Equal(t, 3030, cfg.Server.Port)
	assert.Empty(t, cfg.Server.AuthToken)
	assert.Equal(t, 1048576, cfg.Server.MaxRequestSize)
	assert.Equal(t, "info", cfg.Logging.Level)
}

func TestLoadValidYAMLOverridesDefaults(t *testing.T) {
	dir := t.TempDir()
	cfgPath := filepath.Join(dir, "config.yaml")

	yamlContent := `
rate_limit:
  max_per_window: 50
server:
  port: 9999
logging:
  level: "debug"
`
	err := os.WriteFile(cfgPath, []byte(yamlContent), 0644)
	require.NoError(t, err)

	cfg, err := Load(cfgPath)
	require.NoError(t, err)

	// Overridden values
	assert.Equal(t, 50, cfg.RateLimit.MaxPerWindow)
	assert.Equal(t, 9999, cfg.Server.Port)
	assert.Equal(t, "debug", cfg.Logging.Level)

	// Non-overridden values remain defaults
	assert.Equal(t, 1, cfg.RateLimit.WindowMinutes)
	assert.Equal(t, "127.0.0.1", cfg.Server.Host)
	assert.Equal(t, "~/.config/beacon", cfg.Storage.Path)
}

func TestLoadInvalidYAMLReturnsError(t *testing.T) {
	dir := t.TempDir()
	cfgPath := filepath.Join(dir, "config.yaml")

	err := os.WriteFile(cfgPath, []byte(":::not valid yaml{{{"), 0644)
	require.NoError(t, err)

	_, err = Load(cfgPath)
	assert.Error(t, err)
}

func TestLoadNonExistentFileReturnsError(t *testing.T) {
	_, err := Load("/tmp/nonexistent_path_12345/config.yaml")
	assert.Error(t, err)
}

func TestLoadOrCreateCreatesDefaultsWhenMissing(t *testing.T) {
	dir := t.TempDir()
	cfgPath := filepath.Join(dir, "sub", "deep", "config.yaml")

	cfg, err := LoadOrCreateAt(cfgPath)
	require.NoError(t, err)

	// Should return defaults
	assert.Equal(t, "analytics.db", cfg.Storage.SQLiteFile)
	assert.Equal(t, 3030, cfg.Server.Port)

	// File should now exist on disk
	_, statErr := os.Stat(cfgPath)
	assert.NoError(t, statErr)

	// File should be valid YAML loadable again
	cfg2, err := Load(cfgPath)
	require.NoError(t, err)
	assert.Equal(t, cfg.Server.Port, cfg2.Server.Port)
}

func TestLoadOrCreateLoadsExistingFile(t *testing.T) {
	dir := t.TempDir()
	cfgPath := filepath.Join(dir, "config.yaml")

	yamlContent := `
server:
  port: 4040
`
	err := os.WriteFile(cfgPath, []byte(yamlContent), 0644)
	require.NoError(t, err)

	cfg, err := LoadOrCreateAt(cfgPath)
	require.NoError(t, err)
	assert.Equal(t, 4040, cfg.Server.Port)
	// Other fields remain defaults
	assert.Equal(t, "analytics.db", cfg.Storage.SQLiteFile)
}

func TestDatabasePathFromConfig(t *testing.T) {
	t.Setenv(EnvDBPath, "")

	cfg := DefaultConfig()
	cfg.Storage.Path = "/var/lib/beacon"

	path, err := cfg.DatabasePath()
	require.NoError(t, err)
	assert.Equal(t, filepath.Join("/var/lib/beacon", "analytics.db"), path)
}

func TestDatabasePathEnvOverride(t *testing.T) {
	t.Setenv(EnvDBPath, "/tmp/override/analytics.db")

	cfg := DefaultConfig()
	path, err := cfg.DatabasePath()
	require.NoError(t, err)
	assert.Equal(t, "/tmp/override/analytics.db", path)
}

func TestDatabasePathExpandsHome(t *testing.T) {
	t.Setenv(EnvDBPath, "")

	cfg := DefaultConfig()
	path, err := cfg.DatabasePath()
	require.NoError(t, err)

	home, err := os.UserHomeDir()
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(home, ".config", "beacon", "analytics.db"), path)
}
