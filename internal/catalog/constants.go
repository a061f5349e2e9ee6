package catalog

// Error messages
const (
	ErrFmtFetch = "failed to fetch config: %w"
	ErrFmtBuild = "failed to build model from %s: %w"
)

// Log messages
const (
	LogMsgReloadStarted   = "Reloading FactoryMod config"
	LogMsgReloadUnchanged = "Config unchanged, keeping current model"
	LogMsgReloaded        = "FactoryMod model published"
	LogMsgReloadFailed    = "FactoryMod reload failed, keeping current model"
	LogMsgParseErrorKinds = "Config has skipped declarations"
	LogMsgRefreshFailed   = "Scheduled config refresh failed"
)
