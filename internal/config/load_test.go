package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// setupEnv sets environment variables for the duration of the test.
// An empty value behaves like an unset variable for the loader.
func setupEnv(t *testing.T, envVars map[string]string) {
	t.Helper()
	for name, value := range envVars {
		t.Setenv(name, value)
	}
}

// TestLoadDefaults verifies that Load applies the documented defaults when no
// environment variables or config file are present.
func TestLoadDefaults(t *testing.T) {
	setupEnv(t, map[string]string{
		"POKEGATE_SERVER_PORT":       "",
		"POKEGATE_SERVER_LOG_LEVEL":  "",
		"POKEGATE_UPSTREAM_BASE_URL": "",
		"POKEGATE_UPSTREAM_TIMEOUT":  "",
	})

	cfg, err := Load()

	require.NoError(t, err, "Load() should not return an error with default values")
	require.NotNil(t, cfg, "Load() should return a non-nil config")
	assert.Equal(t, 8080, cfg.Server.Port, "Default server port should be 8080")
	assert.Equal(t, "info", cfg.Server.LogLevel, "Default log level should be 'info'")
	assert.Equal(t, 10*time.Second, cfg.Server.ShutdownTimeout)
	assert.Equal(t, "https://pokeapi.co/api/v2", cfg.Upstream.BaseURL)
	assert.Equal(t, 5*time.Second, cfg.Upstream.Timeout, "Default upstream timeout should be 5s")
	assert.Equal(t, int64(10<<20), cfg.Upstream.MaxBodyBytes)
	assert.Equal(t, "pokeapi-gateway/1.0", cfg.Upstream.UserAgent)
	assert.True(t, cfg.Metrics.Enabled)
	assert.Equal(t, "/metrics", cfg.Metrics.Path)
}

// TestLoadFromEnv verifies that Load reads values from environment variables.
func TestLoadFromEnv(t *testing.T) {
	setupEnv(t, map[string]string{
		"POKEGATE_SERVER_PORT":             "9090",
		"POKEGATE_SERVER_LOG_LEVEL":        "debug",
		"POKEGATE_UPSTREAM_BASE_URL":       "http://localhost:9999/api/v2/",
		"POKEGATE_UPSTREAM_TIMEOUT":        "250ms",
		"POKEGATE_UPSTREAM_MAX_BODY_BYTES": "2048",
		"POKEGATE_METRICS_ENABLED":         "false",
	})

	cfg, err := Load()

	require.NoError(t, err, "Load() should not return an error with valid environment variables")
	require.NotNil(t, cfg)
	assert.Equal(t, 9090, cfg.Server.Port, "Server port should be loaded from environment variables")
	assert.Equal(t, "debug", cfg.Server.LogLevel, "Log level should be loaded from environment variables")
	assert.Equal(t, "http://localhost:9999/api/v2", cfg.Upstream.BaseURL, "Trailing slash should be trimmed")
	assert.Equal(t, 250*time.Millisecond, cfg.Upstream.Timeout)
	assert.Equal(t, int64(2048), cfg.Upstream.MaxBodyBytes)
	assert.False(t, cfg.Metrics.Enabled)
}

// TestLoadFile verifies that values come from an explicit YAML file and that
// environment variables still win over it.
func TestLoadFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "gateway.yaml")
	content := []byte(`
server:
  port: 7070
  log_level: warn
upstream:
  base_url: http://pokeapi.internal/api/v2
  timeout: 10s
`)
	require.NoError(t, os.WriteFile(path, content, 0o600))

	setupEnv(t, map[string]string{
		"POKEGATE_SERVER_PORT":      "",
		"POKEGATE_SERVER_LOG_LEVEL": "error",
		"POKEGATE_UPSTREAM_TIMEOUT": "",
	})

	cfg, err := LoadFile(path)

	require.NoError(t, err)
	assert.Equal(t, 7070, cfg.Server.Port)
	assert.Equal(t, "error", cfg.Server.LogLevel, "Environment should override the file")
	assert.Equal(t, "http://pokeapi.internal/api/v2", cfg.Upstream.BaseURL)
	assert.Equal(t, 10*time.Second, cfg.Upstream.Timeout)
}

func TestLoadFileMissing(t *testing.T) {
	cfg, err := LoadFile(filepath.Join(t.TempDir(), "nope.yaml"))

	assert.Error(t, err)
	assert.Nil(t, cfg)
}

// TestLoadValidationErrors verifies that Load rejects invalid configuration.
func TestLoadValidationErrors(t *testing.T) {
	testCases := []struct {
		name           string
		envVars        map[string]string
		errorSubstring string
	}{
		{
			name:           "Invalid port number",
			envVars:        map[string]string{"POKEGATE_SERVER_PORT": "999999"},
			errorSubstring: "validation failed",
		},
		{
			name:           "Invalid log level",
			envVars:        map[string]string{"POKEGATE_SERVER_LOG_LEVEL": "invalid-level"},
			errorSubstring: "validation failed",
		},
		{
			name:           "Base URL is not a URL",
			envVars:        map[string]string{"POKEGATE_UPSTREAM_BASE_URL": "not a url"},
			errorSubstring: "validation failed",
		},
		{
			name:           "Negative upstream timeout",
			envVars:        map[string]string{"POKEGATE_UPSTREAM_TIMEOUT": "-1s"},
			errorSubstring: "validation failed",
		},
		{
			name:           "Metrics path without leading slash",
			envVars:        map[string]string{"POKEGATE_METRICS_PATH": "metrics"},
			errorSubstring: "validation failed",
		},
		{
			name:           "Unparseable timeout",
			envVars:        map[string]string{"POKEGATE_UPSTREAM_TIMEOUT": "soon"},
			errorSubstring: "unmarshal",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			setupEnv(t, tc.envVars)

			cfg, err := Load()

			require.Error(t, err, "Load() should return an error with invalid configuration")
			assert.Contains(t, err.Error(), tc.errorSubstring, "Error message should contain expected substring")
			assert.Nil(t, cfg, "Config should be nil when an error occurs")
		})
	}
}
