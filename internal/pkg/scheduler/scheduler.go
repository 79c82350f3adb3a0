// Package scheduler runs named jobs on a fixed interval. The process
// owns the runner explicitly instead of relying on global timer state,
// and the clock is injectable so tests can simulate elapsed time.
package scheduler

import (
	"context"
	"sync"
	"time"

	"github.com/gorent/gorent/internal/pkg/logger"
)

// Clock provides the current time. Production code uses RealClock;
// tests substitute a fixed or advancing clock.
type Clock interface {
	Now() time.Time
}

// RealClock is the wall clock
type RealClock struct{}

// Now returns the current wall-clock time
func (RealClock) Now() time.Time { return time.Now() }

// Job is one unit of periodic work
type Job struct {
	Name string
	Run  func(ctx context.Context) error
}

// Runner executes registered jobs every interval until its context is
// cancelled. A job failure is logged and never stops the runner or the
// other jobs in the same tick.
type Runner struct {
	interval time.Duration
	jobs     []Job
	wg       sync.WaitGroup
}

// NewRunner creates a runner with the given tick interval
func NewRunner(interval time.Duration) *Runner {
	return &Runner{interval: interval}
}

// Register adds a job to the runner. Not safe to call after Start.
func (r *Runner) Register(job Job) {
	r.jobs = append(r.jobs, job)
}

// Start launches the tick loop in a goroutine
func (r *Runner) Start(ctx context.Context) {
	r.wg.Add(1)
	go func() {
		defer r.wg.Done()

		ticker := time.NewTicker(r.interval)
		defer ticker.Stop()

		logger.Info("scheduler started",
			logger.Duration("interval", r.interval),
			logger.Int("jobs", len(r.jobs)))

		for {
			select {
			case <-ctx.Done():
				logger.Info("scheduler stopped")
				return
			case <-ticker.C:
				r.runAll(ctx)
			}
		}
	}()
}

// Wait blocks until the tick loop has exited
func (r *Runner) Wait() {
	r.wg.Wait()
}

func (r *Runner) runAll(ctx context.Context) {
	for _, job := range r.jobs {
		start := time.Now()
		if err := job.Run(ctx); err != nil {
			logger.Error("scheduled job failed",
				logger.String("job", job.Name),
				logger.Err(err))
			continue
		}
		logger.Debug("scheduled job completed",
			logger.String("job", job.Name),
			logger.Duration("took", time.Since(start)))
	}
}
