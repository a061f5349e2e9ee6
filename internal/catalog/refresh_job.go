package catalog

import (
	"context"

	"github.com/osse101/FactoryModExplorer_Go/internal/logger"
)

// RefreshJob reloads the catalog when run by the worker pool. Failures are
// logged and the published model stays in place.
type RefreshJob struct {
	Service Service
}

// Process implements worker.Job
func (j *RefreshJob) Process(ctx context.Context) error {
	ctx = logger.WithRequestID(ctx, logger.GenerateRequestID())
	if _, err := j.Service.Reload(ctx, false); err != nil {
		logger.FromContext(ctx).Warn(LogMsgRefreshFailed, "error", err)
		return err
	}
	return nil
}
