package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Config holds the application configuration
type Config struct {
	// ConfigURL is fetched when ConfigPath is empty
	ConfigURL  string `validate:"omitempty,url"`
	ConfigPath string `validate:"required_without=ConfigURL"`

	Port        int    `validate:"min=1,max=65535"`
	LogLevel    string `validate:"oneof=debug info warn warning error"`
	LogFormat   string `validate:"oneof=json text"`
	Environment string `validate:"required"`
	ServiceName string `validate:"required"`
	Version     string

	FetchTimeout    time.Duration `validate:"gt=0"`
	SourceCacheSize int           `validate:"min=1"`
	SourceCacheTTL  time.Duration `validate:"gt=0"`
	RefreshInterval time.Duration `validate:"gte=0"`

	// AdminAPIKey guards the reload endpoint when set
	AdminAPIKey string
	// TrustedProxies may set X-Forwarded-For
	TrustedProxies []string `validate:"dive,ip"`
}

// Load loads the configuration from environment variables
func Load() (*Config, error) {
	// Load .env file if it exists, but don't fail if it doesn't (could be real env vars)
	_ = godotenv.Load()

	cfg := &Config{
		ConfigURL:       getEnv(EnvConfigURL, DefaultConfigURL),
		ConfigPath:      getEnv(EnvConfigPath, ""),
		LogLevel:        strings.ToLower(getEnv(EnvLogLevel, DefaultLogLevel)),
		LogFormat:       strings.ToLower(getEnv(EnvLogFormat, DefaultLogFormat)),
		Environment:     getEnv(EnvEnvironment, DefaultEnvironment),
		ServiceName:     getEnv(EnvServiceName, DefaultServiceName),
		Version:         getEnv(EnvVersion, DefaultVersion),
		SourceCacheSize: getEnvAsInt(EnvSourceCacheSize, DefaultSourceCacheSize),
		AdminAPIKey:     getEnv(EnvAdminAPIKey, ""),
		TrustedProxies:  getEnvAsList(EnvTrustedProxies),
	}

	port, err := strconv.Atoi(getEnv(EnvPort, strconv.Itoa(DefaultPort)))
	if err != nil {
		return nil, fmt.Errorf("invalid %s value: %w", EnvPort, err)
	}
	cfg.Port = port

	if cfg.FetchTimeout, err = parseEnvDuration(EnvFetchTimeout, DefaultFetchTimeout); err != nil {
		return nil, err
	}
	if cfg.SourceCacheTTL, err = parseEnvDuration(EnvSourceCacheTTL, DefaultSourceCacheTTL); err != nil {
		return nil, err
	}
	if cfg.RefreshInterval, err = parseEnvDuration(EnvRefreshInterval, DefaultRefreshInterval); err != nil {
		return nil, err
	}

	if err := Validate(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

// SourceLocation returns the file path when set, else the URL.
func (c *Config) SourceLocation() string {
	if c.ConfigPath != "" {
		return c.ConfigPath
	}
	return c.ConfigURL
}

// IsDevelopment reports whether the service runs in a development environment
func (c *Config) IsDevelopment() bool {
	return c.Environment == "dev" || c.Environment == "development"
}

// getEnv retrieves an environment variable or returns a default value
func getEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

// getEnvAsInt retrieves an integer environment variable, falling back to the
// default when unset or unparsable
func getEnvAsInt(key string, defaultValue int) int {
	value, err := strconv.Atoi(getEnv(key, ""))
	if err != nil {
		return defaultValue
	}
	return value
}

// getEnvAsList splits a comma separated environment variable, dropping blanks
func getEnvAsList(key string) []string {
	var values []string
	for _, v := range strings.Split(getEnv(key, ""), ",") {
		if v = strings.TrimSpace(v); v != "" {
			values = append(values, v)
		}
	}
	return values
}

// parseEnvDuration retrieves a duration environment variable. Unlike
// getEnvAsInt it rejects unparsable values
func parseEnvDuration(key string, defaultValue time.Duration) (time.Duration, error) {
	raw, exists := os.LookupEnv(key)
	if !exists || raw == "" {
		return defaultValue, nil
	}
	value, err := time.ParseDuration(raw)
	if err != nil {
		return 0, fmt.Errorf("invalid %s value: %w", key, err)
	}
	return value, nil
}
