package worker

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/osse101/PetFeed_Go/internal/testing/leaktest"
)

type testJob struct {
	executed *int32
	err      error
}

func (j *testJob) Process(ctx context.Context) error {
	atomic.AddInt32(j.executed, 1)
	return j.err
}

func TestPool(t *testing.T) {
	var executed int32
	pool := NewPool(TestWorkerCount, TestQueueSize)
	pool.Start(context.Background())

	job := &testJob{executed: &executed}
	pool.Enqueue(job)
	pool.Enqueue(job)

	pool.Stop()

	assert.Equal(t, int32(TestExpectedJobCount), atomic.LoadInt32(&executed))
}

func TestPool_StopDrainsQueue(t *testing.T) {
	checker := leaktest.NewGoroutineChecker(t)

	var executed int32
	pool := NewPool(1, 100)
	pool.Start(context.Background())
	for i := 0; i < 100; i++ {
		pool.Enqueue(&testJob{executed: &executed})
	}
	pool.Stop()

	assert.Equal(t, int32(100), atomic.LoadInt32(&executed))
	checker.Check(0)
}

func TestPool_FailingJobDoesNotStopWorker(t *testing.T) {
	var executed int32
	pool := NewPool(1, 3)
	pool.Start(context.Background())

	pool.Enqueue(&testJob{executed: &executed, err: errors.New("boom")})
	pool.Enqueue(&testJob{executed: &executed})
	pool.Enqueue(&testJob{executed: &executed})
	pool.Stop()

	assert.Equal(t, int32(3), atomic.LoadInt32(&executed))
}

func TestPool_StopIsIdempotent(t *testing.T) {
	pool := NewPool(0, -1)
	pool.Start(context.Background())
	pool.Stop()
	assert.NotPanics(t, pool.Stop)
}
