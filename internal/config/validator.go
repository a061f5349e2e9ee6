package config

import (
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"
)

// ErrInvalidConfig wraps every configuration validation failure
var ErrInvalidConfig = errors.New("invalid configuration")

var (
	validate     *validator.Validate
	validateOnce sync.Once
)

// envNames maps struct fields to the environment variables that set them
var envNames = map[string]string{
	"ConfigURL":       EnvConfigURL,
	"ConfigPath":      EnvConfigPath,
	"Port":            EnvPort,
	"LogLevel":        EnvLogLevel,
	"LogFormat":       EnvLogFormat,
	"Environment":     EnvEnvironment,
	"ServiceName":     EnvServiceName,
	"FetchTimeout":    EnvFetchTimeout,
	"SourceCacheSize": EnvSourceCacheSize,
	"SourceCacheTTL":  EnvSourceCacheTTL,
	"RefreshInterval": EnvRefreshInterval,
	"TrustedProxies":  EnvTrustedProxies,
}

func getValidator() *validator.Validate {
	validateOnce.Do(func() {
		validate = validator.New(validator.WithRequiredStructEnabled())
	})
	return validate
}

// Validate checks a loaded configuration and names the offending
// environment variables
func Validate(cfg *Config) error {
	err := getValidator().Struct(cfg)
	if err == nil {
		return nil
	}

	var validationErrs validator.ValidationErrors
	if !errors.As(err, &validationErrs) {
		return fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}

	problems := make([]string, 0, len(validationErrs))
	for _, fe := range validationErrs {
		// Slice elements are reported as Field[i]
		field, _, _ := strings.Cut(fe.Field(), "[")
		name := envNames[field]
		if name == "" {
			name = fe.Field()
		}
		problem := fmt.Sprintf("%s failed %q", name, fe.Tag())
		if fe.Param() != "" {
			problem = fmt.Sprintf("%s failed %q (%s)", name, fe.Tag(), fe.Param())
		}
		problems = append(problems, problem)
	}
	return fmt.Errorf("%w: %s", ErrInvalidConfig, strings.Join(problems, ", "))
}

// Warnings returns non-fatal remarks about a valid configuration
func Warnings(cfg *Config) []string {
	var warnings []string
	if cfg.AdminAPIKey == "" && !cfg.IsDevelopment() {
		warnings = append(warnings, EnvAdminAPIKey+" is not set - the reload endpoint is open to everyone")
	}
	if cfg.ConfigPath != "" && cfg.RefreshInterval > 0 {
		warnings = append(warnings, EnvRefreshInterval+" is set for a local "+EnvConfigPath+" - the file is re-read on every refresh")
	}
	return warnings
}
