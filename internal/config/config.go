// Package config loads the YAML application configuration.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config holds the overall configuration for the application.
type Config struct {
	Server      ServerConfig      `yaml:"server"`
	Provider    ProviderConfig    `yaml:"provider"`
	Transformer TransformerConfig `yaml:"transformer"`
	Logging     LoggingConfig     `yaml:"logging"`
}

// ServerConfig holds the HTTP server configuration.
type ServerConfig struct {
	Addr                   string   `yaml:"addr"`
	RefreshIntervalSeconds int      `yaml:"refreshIntervalSeconds"`
	AllowedOrigins         []string `yaml:"allowedOrigins"`
}

// ProviderConfig holds the upstream provider client configuration.
type ProviderConfig struct {
	BaseURL              string  `yaml:"baseURL"`
	RequestTimeoutMillis int64   `yaml:"requestTimeoutMillis"`
	RateLimitPerSecond   float64 `yaml:"rateLimitPerSecond"`
	RateLimitBurst       int     `yaml:"rateLimitBurst"`
	MaxRetries           int     `yaml:"maxRetries"`
	CacheTTLMinutes      int     `yaml:"cacheTTLMinutes"`
}

// TransformerConfig selects the pipeline variants. The values are validated
// by the factories at construction time, not here.
type TransformerConfig struct {
	Type          string `yaml:"type"`
	FormatterType string `yaml:"formatterType"`
}

// LoggingConfig holds the logging configuration.
type LoggingConfig struct {
	Level string `yaml:"level"` // debug, info, warn, error
}

// LoadConfig loads configuration from a YAML file and applies defaults for
// unset values.
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config file %s: %w", path, err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("unmarshal config %s: %w", path, err)
	}

	cfg.applyDefaults()
	return &cfg, nil
}

func (c *Config) applyDefaults() {
	if c.Server.Addr == "" {
		c.Server.Addr = ":8080"
	}
	if c.Server.RefreshIntervalSeconds <= 0 {
		c.Server.RefreshIntervalSeconds = 300
	}
	if c.Provider.RequestTimeoutMillis <= 0 {
		c.Provider.RequestTimeoutMillis = 10000
	}
	if c.Provider.RateLimitPerSecond <= 0 {
		c.Provider.RateLimitPerSecond = 5
	}
	if c.Provider.RateLimitBurst <= 0 {
		c.Provider.RateLimitBurst = 1
	}
	if c.Provider.MaxRetries <= 0 {
		c.Provider.MaxRetries = 2
	}
	if c.Provider.CacheTTLMinutes <= 0 {
		c.Provider.CacheTTLMinutes = 5
	}
	if c.Logging.Level == "" {
		c.Logging.Level = "info"
	}
}
