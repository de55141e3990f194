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
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestDefault(t *testing.T) {
	cfg := Default()
	require.NoError(t, cfg.Validate())
	assert.Empty(t, cfg.Listen)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, Duration(30*time.Second), cfg.AssetTimeout)
}

func TestLoad(t *testing.T) {
	path := writeConfig(t, `
listen: "127.0.0.1:7410"
dataDir: /var/cache/stencil
assetTimeout: 10s
prefetchWorkers: 2
logLevel: debug
`)

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "127.0.0.1:7410", cfg.Listen)
	assert.Equal(t, "/var/cache/stencil", cfg.DataDir)
	assert.Equal(t, Duration(10*time.Second), cfg.AssetTimeout)
	assert.Equal(t, 2, cfg.PrefetchWorkers)
	assert.Equal(t, "debug", cfg.LogLevel)
}

func TestLoadPartialKeepsDefaults(t *testing.T) {
	path := writeConfig(t, "logLevel: warn\n")

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "warn", cfg.LogLevel)
	assert.Equal(t, 4, cfg.PrefetchWorkers)
	assert.Equal(t, Duration(30*time.Second), cfg.AssetTimeout)
}

func TestLoadMalformed(t *testing.T) {
	t.Run("bad yaml", func(t *testing.T) {
		path := writeConfig(t, "listen: [unclosed\n")
		_, err := Load(path)
		assert.ErrorIs(t, err, ErrMalformedConfig)
	})

	t.Run("bad duration", func(t *testing.T) {
		path := writeConfig(t, "assetTimeout: soonish\n")
		_, err := Load(path)
		assert.ErrorIs(t, err, ErrMalformedConfig)
	})

	t.Run("missing file", func(t *testing.T) {
		_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
		assert.ErrorIs(t, err, os.ErrNotExist)
	})
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"unknown log level", func(c *Config) { c.LogLevel = "verbose" }},
		{"zero timeout", func(c *Config) { c.AssetTimeout = 0 }},
		{"no workers", func(c *Config) { c.PrefetchWorkers = 0 }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(cfg)
			assert.ErrorIs(t, cfg.Validate(), ErrInvalidConfig)
		})
	}
}

func TestDiscover(t *testing.T) {
	t.Run("env override", func(t *testing.T) {
		t.Setenv(EnvConfigPath, "/etc/stencil/config.yaml")
		assert.Equal(t, "/etc/stencil/config.yaml", Discover())
	})

	t.Run("user config dir", func(t *testing.T) {
		home := t.TempDir()
		t.Setenv(EnvConfigPath, "")
		t.Setenv("XDG_CONFIG_HOME", home)

		assert.Empty(t, Discover())

		dir := filepath.Join(home, "stencil")
		require.NoError(t, os.MkdirAll(dir, 0o755))
		path := filepath.Join(dir, "config.yaml")
		require.NoError(t, os.WriteFile(path, []byte("logLevel: info\n"), 0o644))

		assert.Equal(t, path, Discover())
	})
}

func TestLoadDiscoveredDefaults(t *testing.T) {
	t.Setenv(EnvConfigPath, "")
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	cfg, err := LoadDiscovered()
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}
