package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validConfig() *Config {
	return &Config{
		ConfigURL:       DefaultConfigURL,
		Port:            8080,
		LogLevel:        "info",
		LogFormat:       "text",
		Environment:     "dev",
		ServiceName:     DefaultServiceName,
		FetchTimeout:    time.Second,
		SourceCacheSize: 1,
		SourceCacheTTL:  time.Minute,
	}
}

func TestValidate(t *testing.T) {
	t.Run("valid", func(t *testing.T) {
		assert.NoError(t, Validate(validConfig()))
	})

	t.Run("path without url", func(t *testing.T) {
		cfg := validConfig()
		cfg.ConfigURL = ""
		cfg.ConfigPath = "config.yml"
		assert.NoError(t, Validate(cfg))
	})

	tests := []struct {
		name   string
		mutate func(*Config)
		env    string
	}{
		{"no source", func(c *Config) { c.ConfigURL = "" }, EnvConfigPath},
		{"port out of range", func(c *Config) { c.Port = 70000 }, EnvPort},
		{"unknown level", func(c *Config) { c.LogLevel = "loud" }, EnvLogLevel},
		{"cache size", func(c *Config) { c.SourceCacheSize = 0 }, EnvSourceCacheSize},
		{"negative refresh", func(c *Config) { c.RefreshInterval = -time.Second }, EnvRefreshInterval},
		{"zero ttl", func(c *Config) { c.SourceCacheTTL = 0 }, EnvSourceCacheTTL},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := validConfig()
			tt.mutate(cfg)

			err := Validate(cfg)

			require.Error(t, err)
			assert.ErrorIs(t, err, ErrInvalidConfig)
			assert.Contains(t, err.Error(), tt.env)
		})
	}
}

func TestWarnings(t *testing.T) {
	cfg := validConfig()
	assert.Empty(t, Warnings(cfg), "dev without key is fine")

	cfg.Environment = "prod"
	warnings := Warnings(cfg)
	require.Len(t, warnings, 1)
	assert.Contains(t, warnings[0], EnvAdminAPIKey)

	cfg.AdminAPIKey = "secret"
	cfg.ConfigPath = "config.yml"
	cfg.RefreshInterval = time.Minute
	warnings = Warnings(cfg)
	require.Len(t, warnings, 1)
	assert.Contains(t, warnings[0], EnvRefreshInterval)
}
