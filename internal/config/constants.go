package config

import "time"

// DefaultConfigURL is the FactoryMod config published by CivClassic
const DefaultConfigURL = "https://raw.githubusercontent.com/CivClassic/AnsibleSetup/master/templates/public/plugins/FactoryMod/config.yml.j2"

// Environment variable names
const (
	EnvConfigURL       = "FM_CONFIG_URL"
	EnvConfigPath      = "FM_CONFIG_PATH"
	EnvPort            = "PORT"
	EnvLogLevel        = "LOG_LEVEL"
	EnvLogFormat       = "LOG_FORMAT"
	EnvEnvironment     = "ENVIRONMENT"
	EnvServiceName     = "SERVICE_NAME"
	EnvVersion         = "VERSION"
	EnvFetchTimeout    = "FETCH_TIMEOUT"
	EnvSourceCacheSize = "SOURCE_CACHE_SIZE"
	EnvSourceCacheTTL  = "SOURCE_CACHE_TTL"
	EnvRefreshInterval = "REFRESH_INTERVAL"
	EnvAdminAPIKey     = "ADMIN_API_KEY"
	EnvTrustedProxies  = "TRUSTED_PROXIES"
)

// Defaults
const (
	DefaultPort            = 8080
	DefaultLogLevel        = "info"
	DefaultLogFormat       = "text"
	DefaultEnvironment     = "dev"
	DefaultServiceName     = "factorymod-explorer"
	DefaultVersion         = "dev"
	DefaultFetchTimeout    = 15 * time.Second
	DefaultSourceCacheSize = 8
	DefaultSourceCacheTTL  = 5 * time.Minute
	// DefaultRefreshInterval of zero disables background refresh
	DefaultRefreshInterval = 0
)
