package scheduler

import (
	"context"
	"sync"
	"time"

	"github.com/lanternworks/nightmarket/internal/logger"
	"github.com/lanternworks/nightmarket/internal/worker"
)

// LogMsgTickSkipped is logged when a tick lands on a full worker queue
const LogMsgTickSkipped = "Job tick skipped, worker queue full"

// Scheduler fires registered jobs into the worker pool on fixed intervals
type Scheduler struct {
	workerPool *worker.Pool
	quit       chan struct{}
	wg         sync.WaitGroup
}

// New creates a new scheduler
func New(pool *worker.Pool) *Scheduler {
	return &Scheduler{
		workerPool: pool,
		quit:       make(chan struct{}),
	}
}

// Schedule registers a job to run at a fixed interval. The first run
// happens one full interval after registration.
func (s *Scheduler) Schedule(interval time.Duration, job worker.Job) {
	s.wg.Add(1)
	go func() {
		defer s.wg.Done()
		ticker := time.NewTicker(interval)
		defer ticker.Stop()

		for {
			select {
			case <-ticker.C:
				// A full queue means the workers are behind. Skipping
				// the tick keeps the scheduler responsive to Stop; the
				// next tick retries.
				if !s.workerPool.TryEnqueue(job) {
					logger.FromContext(context.Background()).Warn(LogMsgTickSkipped)
				}
			case <-s.quit:
				return
			}
		}
	}()
}

// Stop stops all scheduled jobs and waits for the ticker goroutines
func (s *Scheduler) Stop() {
	close(s.quit)
	s.wg.Wait()
}
