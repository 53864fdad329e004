package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var envKeys = []string{
	"CALCULATOR_HOST",
	"CALCULATOR_PORT",
	"CALCULATOR_READ_TIMEOUT_MS",
	"CALCULATOR_WRITE_TIMEOUT_MS",
	"CALCULATOR_SHUTDOWN_TIMEOUT_MS",
	"CALCULATOR_MAX_BODY_BYTES",
	"CALCULATOR_METRICS_ENABLED",
	"CALCULATOR_URL",
	"LOG_LEVEL",
	"LOG_DEVELOPMENT",
}

func clearEnv(t *testing.T) {
	t.Helper()
	for _, key := range envKeys {
		t.Setenv(key, "")
	}
}

func TestLoadDefaults(t *testing.T) {
	clearEnv(t)

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "0.0.0.0", cfg.Host)
	assert.Equal(t, 5001, cfg.Port)
	assert.Equal(t, "0.0.0.0:5001", cfg.Addr())
	assert.Equal(t, 5*time.Second, cfg.ReadTimeout)
	assert.Equal(t, 10*time.Second, cfg.WriteTimeout)
	assert.Equal(t, 5*time.Second, cfg.ShutdownTimeout)
	assert.Equal(t, int64(1<<20), cfg.MaxBodyBytes)
	assert.True(t, cfg.MetricsEnabled)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.False(t, cfg.LogDevelopment)
}

func TestLoadFromEnv(t *testing.T) {
	clearEnv(t)
	t.Setenv("CALCULATOR_HOST", "127.0.0.1")
	t.Setenv("CALCULATOR_PORT", "8080")
	t.Setenv("CALCULATOR_READ_TIMEOUT_MS", "250")
	t.Setenv("CALCULATOR_MAX_BODY_BYTES", "64")
	t.Setenv("CALCULATOR_METRICS_ENABLED", "false")
	t.Setenv("LOG_LEVEL", "debug")
	t.Setenv("LOG_DEVELOPMENT", "true")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "127.0.0.1:8080", cfg.Addr())
	assert.Equal(t, 250*time.Millisecond, cfg.ReadTimeout)
	assert.Equal(t, int64(64), cfg.MaxBodyBytes)
	assert.False(t, cfg.MetricsEnabled)
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.True(t, cfg.LogDevelopment)
}

func TestLoadInvalid(t *testing.T) {
	tests := []struct {
		name string
		key  string
		val  string
	}{
		{name: "port not a number", key: "CALCULATOR_PORT", val: "http"},
		{name: "port out of range", key: "CALCULATOR_PORT", val: "70000"},
		{name: "negative timeout", key: "CALCULATOR_WRITE_TIMEOUT_MS", val: "-1"},
		{name: "zero body limit", key: "CALCULATOR_MAX_BODY_BYTES", val: "0"},
		{name: "metrics flag", key: "CALCULATOR_METRICS_ENABLED", val: "maybe"},
		{name: "log development flag", key: "LOG_DEVELOPMENT", val: "yes please"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			clearEnv(t)
			t.Setenv(tt.key, tt.val)

			_, err := Load()
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.key)
		})
	}
}

func TestLoadDotEnv(t *testing.T) {
	assert.NoError(t, LoadDotEnv(filepath.Join(t.TempDir(), "missing.env")))

	path := filepath.Join(t.TempDir(), "test.env")
	require.NoError(t, os.WriteFile(path, []byte("CALCULATOR_DOTENV_PROBE=7001\n"), 0o600))
	t.Cleanup(func() { os.Unsetenv("CALCULATOR_DOTENV_PROBE") })

	require.NoError(t, LoadDotEnv(path))
	assert.Equal(t, "7001", os.Getenv("CALCULATOR_DOTENV_PROBE"))
}

func TestClientURL(t *testing.T) {
	clearEnv(t)
	assert.Equal(t, "http://localhost:5001", ClientURL())

	t.Setenv("CALCULATOR_URL", "http://calc.internal:8080")
	assert.Equal(t, "http://calc.internal:8080", ClientURL())
}
