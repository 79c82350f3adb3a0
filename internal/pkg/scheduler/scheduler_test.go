package scheduler

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRunnerRunsRegisteredJobs(t *testing.T) {
	var runs int32
	done := make(chan struct{})

	runner := NewRunner(5 * time.Millisecond)
	runner.Register(Job{
		Name: "counter",
		Run: func(context.Context) error {
			if atomic.AddInt32(&runs, 1) == 3 {
				close(done)
			}
			return nil
		},
	})

	ctx, cancel := context.WithCancel(context.Background())
	runner.Start(ctx)

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("job did not run three times in time")
	}

	cancel()
	runner.Wait()
	assert.GreaterOrEqual(t, atomic.LoadInt32(&runs), int32(3))
}

func TestRunnerFailingJobDoesNotStopOthers(t *testing.T) {
	var healthyRuns int32
	done := make(chan struct{})

	runner := NewRunner(5 * time.Millisecond)
	runner.Register(Job{
		Name: "failing",
		Run:  func(context.Context) error { return errors.New("boom") },
	})
	runner.Register(Job{
		Name: "healthy",
		Run: func(context.Context) error {
			if atomic.AddInt32(&healthyRuns, 1) == 2 {
				close(done)
			}
			return nil
		},
	})

	ctx, cancel := context.WithCancel(context.Background())
	runner.Start(ctx)

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("healthy job starved by failing sibling")
	}

	cancel()
	runner.Wait()
}

func TestRunnerStopsOnContextCancel(t *testing.T) {
	runner := NewRunner(time.Millisecond)
	runner.Register(Job{Name: "noop", Run: func(context.Context) error { return nil }})

	ctx, cancel := context.WithCancel(context.Background())
	runner.Start(ctx)
	cancel()

	finished := make(chan struct{})
	go func() {
		runner.Wait()
		close(finished)
	}()

	select {
	case <-finished:
	case <-time.After(2 * time.Second):
		t.Fatal("runner did not stop after cancel")
	}
}

func TestRealClockTracksWallTime(t *testing.T) {
	before := time.Now()
	now := RealClock{}.Now()
	after := time.Now()

	require.False(t, now.Before(before))
	require.False(t, now.After(after))
}
