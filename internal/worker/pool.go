package worker

import (
	"context"
	"sync"

	"github.com/osse101/PetFeed_Go/internal/logger"
)

// Job represents a task to be executed by a worker
type Job interface {
	Process(ctx context.Context) error
}

// Pool is a fixed-size worker pool. Jobs queued before Stop are always processed.
type Pool struct {
	workers  int
	jobQueue chan Job
	wg       sync.WaitGroup
	stopOnce sync.Once
}

// NewPool creates a new worker pool
func NewPool(workers int, queueSize int) *Pool {
	if workers < 1 {
		workers = 1
	}
	if queueSize < 0 {
		queueSize = 0
	}
	return &Pool{
		workers:  workers,
		jobQueue: make(chan Job, queueSize),
	}
}

// Start starts the workers. ctx is handed to every job.
func (p *Pool) Start(ctx context.Context) {
	for i := 0; i < p.workers; i++ {
		p.wg.Add(1)
		go p.worker(ctx)
	}
}

// worker is the worker loop
func (p *Pool) worker(ctx context.Context) {
	defer p.wg.Done()
	for job := range p.jobQueue {
		if err := job.Process(ctx); err != nil {
			// Log error but don't crash worker
			logger.FromContext(ctx).Error(LogMsgWorkerJobFailed, "error", err)
		}
	}
}

// Enqueue adds a job to the queue, blocking while the queue is full.
// It must not be called after Stop.
func (p *Pool) Enqueue(job Job) {
	p.jobQueue <- job
}

// Stop closes the queue and waits for the workers to finish every queued job
func (p *Pool) Stop() {
	p.stopOnce.Do(func() {
		close(p.jobQueue)
	})
	p.wg.Wait()
}
