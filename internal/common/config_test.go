package common

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultConfig(t *testing.T) {
	config := DefaultConfig()

	assert.Equal(t, 8085, config.Server.Port)
	assert.Equal(t, "localhost", config.Server.Host)
	assert.Equal(t, "info", config.Logging.Level)
	assert.Equal(t, 30*time.Second, config.Ingest.RequestTimeout)
	assert.True(t, config.Ingest.NormalizeMarkdown)
	require.NoError(t, config.Validate())
}

func TestLoadFromFiles(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "digero.toml")
	content := `
environment = "production"

[server]
port = 9090

[logging]
level = "debug"

[ingest]
requests_per_second = 4.0
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	config, err := LoadFromFiles(path)
	require.NoError(t, err)

	assert.Equal(t, "production", config.Environment)
	assert.Equal(t, 9090, config.Server.Port)
	assert.Equal(t, "debug", config.Logging.Level)
	assert.Equal(t, 4.0, config.Ingest.RequestsPerSecond)
	// Untouched values keep their defaults.
	assert.Equal(t, "localhost", config.Server.Host)
}

func TestLoadFromFilesMissingFile(t *testing.T) {
	_, err := LoadFromFiles(filepath.Join(t.TempDir(), "missing.toml"))
	assert.Error(t, err)
}

func TestLoadFromFilesEnvOverrides(t *testing.T) {
	t.Setenv("DIGERO_SERVER_PORT", "7070")
	t.Setenv("DIGERO_LOG_LEVEL", "warn")
	t.Setenv("DIGERO_INGEST_REQUEST_TIMEOUT", "10s")

	config, err := LoadFromFiles()
	require.NoError(t, err)

	assert.Equal(t, 7070, config.Server.Port)
	assert.Equal(t, "warn", config.Logging.Level)
	assert.Equal(t, 10*time.Second, config.Ingest.RequestTimeout)
}

func TestApplyFlagOverrides(t *testing.T) {
	config := DefaultConfig()

	ApplyFlagOverrides(config, 9999, "0.0.0.0")
	assert.Equal(t, 9999, config.Server.Port)
	assert.Equal(t, "0.0.0.0", config.Server.Host)

	// Zero values leave the config untouched.
	ApplyFlagOverrides(config, 0, "")
	assert.Equal(t, 9999, config.Server.Port)
	assert.Equal(t, "0.0.0.0", config.Server.Host)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"bad port", func(c *Config) { c.Server.Port = 0 }},
		{"bad timeout", func(c *Config) { c.Ingest.RequestTimeout = 0 }},
		{"bad body size", func(c *Config) { c.Ingest.MaxBodySize = -1 }},
		{"bad rate", func(c *Config) { c.Ingest.RequestsPerSecond = 0 }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			config := DefaultConfig()
			tt.mutate(config)
			assert.Error(t, config.Validate())
		})
	}
}
