package bootstrap

import (
	"context"
	"log/slog"

	"github.com/osse101/FactoryModExplorer_Go/internal/scheduler"
	"github.com/osse101/FactoryModExplorer_Go/internal/worker"
)

// Stopper is implemented by the HTTP server
type Stopper interface {
	Stop(ctx context.Context) error
}

// ShutdownComponents holds all components that need graceful shutdown.
// Scheduler and Pool are nil when background refresh is disabled.
type ShutdownComponents struct {
	Server    Stopper
	Scheduler *scheduler.Scheduler
	Pool      *worker.Pool
}

// GracefulShutdown stops the components in order:
// 1. HTTP server (stop accepting new requests)
// 2. Scheduler (no new refresh jobs)
// 3. Worker pool (cancel and wait for a running refresh)
//
// Errors during shutdown are logged but do not stop the shutdown sequence.
func GracefulShutdown(ctx context.Context, components ShutdownComponents) {
	slog.Info(LogMsgShuttingDownServer)

	if components.Server != nil {
		if err := components.Server.Stop(ctx); err != nil {
			slog.Error(LogMsgServerForcedShutdown, "error", err)
		}
	}

	if components.Scheduler != nil {
		components.Scheduler.Stop()
		slog.Info(LogMsgSchedulerStopped)
	}

	if components.Pool != nil {
		if err := components.Pool.Shutdown(ctx); err != nil {
			slog.Error(LogMsgWorkerPoolFailed, "error", err)
		}
	}

	slog.Info(LogMsgServerStopped)
}
