package bootstrap

import (
	"io"
	"log/slog"

	"github.com/osse101/FactoryModExplorer_Go/internal/config"
	"github.com/osse101/FactoryModExplorer_Go/internal/logger"
)

// SetupLogger installs the default logger described by cfg and logs the
// startup banner along with any configuration warnings.
func SetupLogger(cfg *config.Config, w io.Writer) {
	logger.InitLoggerWithWriter(logger.NewConfig(
		cfg.LogLevel,
		cfg.LogFormat,
		cfg.ServiceName,
		cfg.Version,
		cfg.Environment,
		cfg.IsDevelopment(),
	), w)

	slog.Info(LogMsgStarting,
		"environment", cfg.Environment,
		"log_level", cfg.LogLevel,
		"log_format", cfg.LogFormat,
		"version", cfg.Version)

	slog.Debug(LogMsgConfigurationLoaded,
		"source", cfg.SourceLocation(),
		"port", cfg.Port,
		"fetch_timeout", cfg.FetchTimeout,
		"cache_size", cfg.SourceCacheSize,
		"cache_ttl", cfg.SourceCacheTTL,
		"refresh_interval", cfg.RefreshInterval,
		"admin_key_set", cfg.AdminAPIKey != "")

	for _, warning := range config.Warnings(cfg) {
		slog.Warn(LogMsgConfigWarning, "warning", warning)
	}
}
