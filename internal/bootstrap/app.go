package bootstrap

import (
	"context"

	"github.com/osse101/FactoryModExplorer_Go/internal/catalog"
	"github.com/osse101/FactoryModExplorer_Go/internal/config"
	"github.com/osse101/FactoryModExplorer_Go/internal/factorymod"
	"github.com/osse101/FactoryModExplorer_Go/internal/logger"
	"github.com/osse101/FactoryModExplorer_Go/internal/scheduler"
	"github.com/osse101/FactoryModExplorer_Go/internal/server"
	"github.com/osse101/FactoryModExplorer_Go/internal/source"
	"github.com/osse101/FactoryModExplorer_Go/internal/validation"
	"github.com/osse101/FactoryModExplorer_Go/internal/worker"
)

// App holds the wired components of the HTTP service
type App struct {
	Catalog   catalog.Service
	Server    *server.Server
	Pool      *worker.Pool
	Scheduler *scheduler.Scheduler
}

// NewCatalog wires the fetch and build pipeline for one config location
func NewCatalog(cfg *config.Config) catalog.Service {
	fetcher := source.NewFetcher(source.Options{
		Timeout:   cfg.FetchTimeout,
		CacheSize: cfg.SourceCacheSize,
		CacheTTL:  cfg.SourceCacheTTL,
	})
	loader := factorymod.NewLoader(validation.NewSchemaValidator())
	return catalog.NewService(fetcher, loader, cfg.SourceLocation())
}

// NewApp wires the catalog, HTTP server and, when a refresh interval is set,
// the background refresh schedule
func NewApp(cfg *config.Config) *App {
	svc := NewCatalog(cfg)

	app := &App{
		Catalog: svc,
		Server: server.NewServer(server.Options{
			Port:           cfg.Port,
			AdminAPIKey:    cfg.AdminAPIKey,
			TrustedProxies: cfg.TrustedProxies,
			Version:        cfg.Version,
		}, svc),
	}

	if cfg.RefreshInterval > 0 {
		// A refresh may take as long as a fetch plus a build
		app.Pool = worker.NewPool(RefreshWorkers, RefreshQueueSize, cfg.FetchTimeout+InitialLoadTimeout)
		app.Scheduler = scheduler.New(app.Pool)
	}
	return app
}

// InitialLoad publishes the first model. A failure is logged rather than
// returned so the service can come up and report unready until a reload works.
func (a *App) InitialLoad(ctx context.Context) {
	ctx, cancel := context.WithTimeout(ctx, InitialLoadTimeout)
	defer cancel()

	if _, err := a.Catalog.Reload(ctx, false); err != nil {
		logger.FromContext(ctx).Error(LogMsgInitialLoadFailed, "error", err)
	}
}

// StartBackground starts the refresh schedule, if any
func (a *App) StartBackground(cfg *config.Config) {
	if a.Pool == nil {
		return
	}
	a.Pool.Start()
	a.Scheduler.Schedule(RefreshJobName, cfg.RefreshInterval, &catalog.RefreshJob{Service: a.Catalog})
	logger.Info(LogMsgRefreshEnabled, "interval", cfg.RefreshInterval)
}

// ShutdownComponents returns what GracefulShutdown has to stop
func (a *App) ShutdownComponents() ShutdownComponents {
	return ShutdownComponents{
		Server:    a.Server,
		Scheduler: a.Scheduler,
		Pool:      a.Pool,
	}
}
