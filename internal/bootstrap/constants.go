package bootstrap

import "time"

// Worker pool sizing for background refreshes. One worker keeps reloads
// sequential; the one-slot queue lets the scheduler skip ticks while a reload runs.
const (
	RefreshWorkers   = 1
	RefreshQueueSize = 1
	RefreshJobName   = "config-refresh"
)

// InitialLoadTimeout bounds the first fetch and build at startup
const InitialLoadTimeout = 30 * time.Second

// ShutdownTimeout bounds graceful shutdown
const ShutdownTimeout = 10 * time.Second

// Log messages for startup
const (
	LogMsgStarting            = "Starting FactoryMod explorer"
	LogMsgConfigurationLoaded = "Configuration loaded"
	LogMsgConfigWarning       = "Configuration warning"
	LogMsgInitialLoadFailed   = "Initial config load failed, serving without a model until the next reload"
	LogMsgRefreshEnabled      = "Background config refresh enabled"
)

// Log messages for shutdown
const (
	LogMsgShuttingDownServer   = "Shutting down server..."
	LogMsgServerForcedShutdown = "Server forced to shutdown"
	LogMsgSchedulerStopped     = "Scheduler stopped"
	LogMsgWorkerPoolFailed     = "Worker pool shutdown failed"
	LogMsgServerStopped        = "Server stopped"
)
