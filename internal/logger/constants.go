package logger

// ContextKeyRequestID is the context key, and log attribute, for request ids
const ContextKeyRequestID = "request_id"

// Levels
const (
	LogLevelDebug   = "debug"
	LogLevelInfo    = "info"
	LogLevelWarn    = "warn"
	LogLevelWarning = "warning"
	LogLevelError   = "error"
)

// Formats
const (
	LogFormatJSON = "json"
	LogFormatText = "text"
)

const (
	DefaultServiceName = "factorymod-explorer"
	DefaultVersion     = "dev"
	EnvironmentDev     = "dev"
)

// Base attribute keys
const (
	AttrKeyService     = "service"
	AttrKeyVersion     = "version"
	AttrKeyEnvironment = "environment"
)
