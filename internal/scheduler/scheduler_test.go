package scheduler

import (
	"context"
	"sync/atomic"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osse101/PetFeed_Go/internal/metrics"
	"github.com/osse101/PetFeed_Go/internal/testing/leaktest"
	"github.com/osse101/PetFeed_Go/internal/worker"
)

type countingJob struct {
	runs atomic.Int32
	done chan struct{}
}

func (j *countingJob) Process(ctx context.Context) error {
	j.runs.Add(1)
	select {
	case j.done <- struct{}{}:
	default:
	}
	return nil
}

func TestScheduler(t *testing.T) {
	checker := leaktest.NewGoroutineChecker(t)

	pool := worker.NewPool(1, 10)
	pool.Start(context.Background())
	sched := New(pool)

	job := &countingJob{done: make(chan struct{}, 10)}
	sched.Schedule(10*time.Millisecond, job)

	timeout := time.After(time.Second)
	for seen := 0; seen < 2; {
		select {
		case <-job.done:
			seen++
		case <-timeout:
			t.Fatal("Timeout waiting for job execution")
		}
	}

	sched.Stop()
	sched.Stop()
	pool.Stop()

	runs := job.runs.Load()
	assert.GreaterOrEqual(t, runs, int32(2))

	time.Sleep(30 * time.Millisecond)
	require.Equal(t, runs, job.runs.Load(), "no runs after Stop")
	checker.Check(0)
}

type fixedLen int

func (f fixedLen) Len() int { return int(f) }

func TestCacheGaugeJob(t *testing.T) {
	job := &CacheGaugeJob{Cache: fixedLen(42)}
	require.NoError(t, job.Process(context.Background()))
	assert.Equal(t, float64(42), testutil.ToFloat64(metrics.SnapshotCacheSize))

	job.Cache = fixedLen(0)
	require.NoError(t, job.Process(context.Background()))
	assert.Equal(t, float64(0), testutil.ToFloat64(metrics.SnapshotCacheSize))
}
