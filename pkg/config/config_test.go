package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func clearEnv(t *testing.T) {
	t.Helper()
	for _, key := range []string{EnvPort, EnvConfigPath, EnvConnectURL, EnvLogLevel} {
		t.Setenv(key, "")
		require.NoError(t, os.Unsetenv(key))
	}
}

func TestLoadDefaults(t *testing.T) {
	clearEnv(t)

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, 3000, cfg.Port)
	assert.Equal(t, "wss://connect.browserbase.com", cfg.ConnectURL)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, ":3000", cfg.Addr())
}

func TestLoadEnvOverrides(t *testing.T) {
	clearEnv(t)
	t.Setenv(EnvPort, "8080")
	t.Setenv(EnvConnectURL, "wss://browsers.internal")
	t.Setenv(EnvLogLevel, "debug")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, 8080, cfg.Port)
	assert.Equal(t, "wss://browsers.internal", cfg.ConnectURL)
	assert.Equal(t, "debug", cfg.LogLevel)
}

func TestLoadConfigFile(t *testing.T) {
	clearEnv(t)

	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("port: 9090\nlog_level: warn\n"), 0o600))
	t.Setenv(EnvConfigPath, path)

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, 9090, cfg.Port)
	assert.Equal(t, "warn", cfg.LogLevel)
	// Unset file keys keep their defaults
	assert.Equal(t, "wss://connect.browserbase.com", cfg.ConnectURL)
}

func TestEnvWinsOverConfigFile(t *testing.T) {
	clearEnv(t)

	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("port: 9090\n"), 0o600))
	t.Setenv(EnvConfigPath, path)
	t.Setenv(EnvPort, "7070")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, 7070, cfg.Port)
}

func TestLoadInvalidPort(t *testing.T) {
	tests := []struct {
		name string
		port string
	}{
		{name: "not a number", port: "abc"},
		{name: "negative", port: "-1"},
		{name: "too large", port: "70000"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			clearEnv(t)
			t.Setenv(EnvPort, tt.port)

			_, err := Load()
			assert.Error(t, err)
		})
	}
}

func TestLoadMissingConfigFile(t *testing.T) {
	clearEnv(t)
	t.Setenv(EnvConfigPath, filepath.Join(t.TempDir(), "nope.yaml"))

	_, err := Load()
	assert.Error(t, err)
}
