package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadConfig_Full(t *testing.T) {
	path := writeConfig(t, `
server:
  addr: ":9090"
  refreshIntervalSeconds: 60
  allowedOrigins:
    - https://dashboard.example
provider:
  baseURL: https://api.example
  requestTimeoutMillis: 2500
  rateLimitPerSecond: 10
  rateLimitBurst: 3
  maxRetries: 4
  cacheTTLMinutes: 2
transformer:
  type: stablecoin
  formatterType: compact
logging:
  level: debug
`)

	cfg, err := LoadConfig(path)
	require.NoError(t, err)

	assert.Equal(t, ":9090", cfg.Server.Addr)
	assert.Equal(t, 60, cfg.Server.RefreshIntervalSeconds)
	assert.Equal(t, []string{"https://dashboard.example"}, cfg.Server.AllowedOrigins)
	assert.Equal(t, "https://api.example", cfg.Provider.BaseURL)
	assert.Equal(t, int64(2500), cfg.Provider.RequestTimeoutMillis)
	assert.Equal(t, 10.0, cfg.Provider.RateLimitPerSecond)
	assert.Equal(t, 3, cfg.Provider.RateLimitBurst)
	assert.Equal(t, 4, cfg.Provider.MaxRetries)
	assert.Equal(t, 2, cfg.Provider.CacheTTLMinutes)
	assert.Equal(t, "stablecoin", cfg.Transformer.Type)
	assert.Equal(t, "compact", cfg.Transformer.FormatterType)
	assert.Equal(t, "debug", cfg.Logging.Level)
}

func TestLoadConfig_Defaults(t *testing.T) {
	path := writeConfig(t, `
provider:
  baseURL: https://api.example
`)

	cfg, err := LoadConfig(path)
	require.NoError(t, err)

	assert.Equal(t, ":8080", cfg.Server.Addr)
	assert.Equal(t, 300, cfg.Server.RefreshIntervalSeconds)
	assert.Equal(t, int64(10000), cfg.Provider.RequestTimeoutMillis)
	assert.Equal(t, 5.0, cfg.Provider.RateLimitPerSecond)
	assert.Equal(t, 1, cfg.Provider.RateLimitBurst)
	assert.Equal(t, 2, cfg.Provider.MaxRetries)
	assert.Equal(t, 5, cfg.Provider.CacheTTLMinutes)
	assert.Equal(t, "info", cfg.Logging.Level)
	assert.Empty(t, cfg.Transformer.Type)
}

func TestLoadConfig_MissingFile(t *testing.T) {
	_, err := LoadConfig(filepath.Join(t.TempDir(), "absent.yaml"))
	assert.Error(t, err)
}

func TestLoadConfig_InvalidYAML(t *testing.T) {
	path := writeConfig(t, "server: [not a mapping")
	_, err := LoadConfig(path)
	assert.Error(t, err)
}
