package scheduler

import (
	"sync"
	"time"

	"github.com/osse101/FactoryModExplorer_Go/internal/logger"
	"github.com/osse101/FactoryModExplorer_Go/internal/worker"
)

// Enqueuer is the part of worker.Pool the scheduler needs
type Enqueuer interface {
	TryEnqueue(job worker.Job) bool
}

// Scheduler manages scheduled jobs
type Scheduler struct {
	pool Enqueuer
	quit chan struct{}
	once sync.Once
	wg   sync.WaitGroup
}

// New creates a new scheduler
func New(pool Enqueuer) *Scheduler {
	return &Scheduler{
		pool: pool,
		quit: make(chan struct{}),
	}
}

// Schedule runs job at a fixed interval, starting one interval from now.
// A tick is skipped while the pool queue is full, so slow jobs never pile up.
func (s *Scheduler) Schedule(name string, interval time.Duration, job worker.Job) {
	s.wg.Add(1)
	go func() {
		defer s.wg.Done()
		ticker := time.NewTicker(interval)
		defer ticker.Stop()

		logger.Info("Job scheduled", "job", name, "interval", interval)
		for {
			select {
			case <-ticker.C:
				if !s.pool.TryEnqueue(job) {
					logger.Warn("Scheduled job skipped", "job", name)
				}
			case <-s.quit:
				return
			}
		}
	}()
}

// Stop stops all scheduled jobs. It is safe to call more than once.
func (s *Scheduler) Stop() {
	s.once.Do(func() { close(s.quit) })
	s.wg.Wait()
}
