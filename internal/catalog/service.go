package catalog

import (
	"context"
	"fmt"
	"sync"
	"sync/atomic"
	"time"

	"github.com/osse101/FactoryModExplorer_Go/internal/domain"
	"github.com/osse101/FactoryModExplorer_Go/internal/factorymod"
	"github.com/osse101/FactoryModExplorer_Go/internal/logger"
	"github.com/osse101/FactoryModExplorer_Go/internal/metrics"
	"github.com/osse101/FactoryModExplorer_Go/internal/source"
)

// Snapshot is a published model together with the document it was built from.
type Snapshot struct {
	Model         *factorymod.Model
	Location      string
	Digest        string
	FetchedAt     time.Time
	BuiltAt       time.Time
	BuildDuration time.Duration
}

// ReloadResult describes what a Reload did.
type ReloadResult struct {
	// Changed is false when the document digest matched the published model
	Changed  bool
	Snapshot *Snapshot
}

// Status summarises the service for health and summary endpoints.
type Status struct {
	Ready       bool
	Location    string
	Digest      string
	BuiltAt     time.Time
	LastAttempt time.Time
	LastError   string
	Reloads     int64
	Stats       factorymod.Stats
}

// Service owns the currently published FactoryMod model.
type Service interface {
	// Model returns the published model or domain.ErrModelNotLoaded
	Model() (*factorymod.Model, error)
	Snapshot() *Snapshot
	// Reload fetches and rebuilds the model. Unless force is set, an unchanged
	// document keeps the current model.
	Reload(ctx context.Context, force bool) (*ReloadResult, error)
	Status() Status
}

type service struct {
	fetcher  source.Fetcher
	loader   factorymod.Loader
	location string

	current atomic.Pointer[Snapshot]
	reloads atomic.Int64

	// reloadMu serialises reloads; readers never take it
	reloadMu sync.Mutex

	statusMu    sync.RWMutex
	lastAttempt time.Time
	lastErr     error

	now func() time.Time
}

// NewService creates a catalog service for one config location.
func NewService(fetcher source.Fetcher, loader factorymod.Loader, location string) Service {
	return &service{
		fetcher:  fetcher,
		loader:   loader,
		location: location,
		now:      time.Now,
	}
}

func (s *service) Model() (*factorymod.Model, error) {
	snap := s.current.Load()
	if snap == nil {
		return nil, domain.ErrModelNotLoaded
	}
	return snap.Model, nil
}

func (s *service) Snapshot() *Snapshot {
	return s.current.Load()
}

func (s *service) Reload(ctx context.Context, force bool) (*ReloadResult, error) {
	s.reloadMu.Lock()
	defer s.reloadMu.Unlock()

	log := logger.FromContext(ctx)
	log.Info(LogMsgReloadStarted, "location", s.location, "force", force)

	if force {
		s.fetcher.Invalidate(s.location)
	}
	doc, err := s.fetcher.Fetch(ctx, s.location)
	if err != nil {
		err = fmt.Errorf(ErrFmtFetch, err)
		s.recordAttempt(err)
		metrics.RecordBuild(metrics.ResultFailure, 0)
		log.Error(LogMsgReloadFailed, "location", s.location, "error", err)
		return nil, err
	}

	cur := s.current.Load()
	if !force && cur != nil && cur.Digest == doc.Digest {
		s.recordAttempt(nil)
		metrics.RecordBuild(metrics.ResultUnchanged, 0)
		log.Info(LogMsgReloadUnchanged, "digest", doc.Digest)
		return &ReloadResult{Changed: false, Snapshot: cur}, nil
	}

	start := s.now()
	model, err := s.loader.Load(ctx, doc.Body)
	elapsed := s.now().Sub(start)
	if err != nil {
		err = fmt.Errorf(ErrFmtBuild, doc.Location, err)
		s.recordAttempt(err)
		metrics.RecordBuild(metrics.ResultFailure, elapsed)
		log.Error(LogMsgReloadFailed, "location", s.location, "error", err)
		return nil, err
	}

	snap := &Snapshot{
		Model:         model,
		Location:      doc.Location,
		Digest:        doc.Digest,
		FetchedAt:     doc.FetchedAt,
		BuiltAt:       s.now(),
		BuildDuration: elapsed,
	}
	s.current.Store(snap)
	s.reloads.Add(1)
	s.recordAttempt(nil)

	stats := model.Stats()
	byKind := model.ParseErrorsByKind()
	metrics.RecordBuild(metrics.ResultSuccess, elapsed)
	metrics.RecordModel(stats.Recipes, stats.Factories, stats.Items, byKind)

	log.Info(LogMsgReloaded,
		"digest", snap.Digest,
		"recipes", stats.Recipes,
		"factories", stats.Factories,
		"items", stats.Items,
		"parse_errors", stats.ParseErrors,
		"duration", elapsed)
	if stats.ParseErrors > 0 {
		log.Warn(LogMsgParseErrorKinds, "kinds", byKind)
	}
	return &ReloadResult{Changed: true, Snapshot: snap}, nil
}

func (s *service) recordAttempt(err error) {
	s.statusMu.Lock()
	defer s.statusMu.Unlock()
	s.lastAttempt = s.now()
	s.lastErr = err
}

func (s *service) Status() Status {
	s.statusMu.RLock()
	status := Status{
		Location:    s.location,
		LastAttempt: s.lastAttempt,
		Reloads:     s.reloads.Load(),
	}
	if s.lastErr != nil {
		status.LastError = s.lastErr.Error()
	}
	s.statusMu.RUnlock()

	if snap := s.current.Load(); snap != nil {
		status.Ready = true
		status.Digest = snap.Digest
		status.BuiltAt = snap.BuiltAt
		status.Stats = snap.Model.Stats()
	}
	return status
}
