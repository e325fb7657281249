package accrual

import (
	"context"

	"github.com/osse101/PetFeed_Go/internal/domain"
	"github.com/osse101/PetFeed_Go/internal/worker"
)

// AggregatorConfig controls how a batch is fanned out
type AggregatorConfig struct {
	// Workers is the number of goroutines used per batch; 1 or less runs sequentially
	Workers int
}

// Aggregator computes quotes for a batch of pets and sums them
type Aggregator struct {
	engine  *Engine
	workers int
}

// NewAggregator creates an aggregator over engine
func NewAggregator(engine *Engine, cfg AggregatorConfig) *Aggregator {
	if engine == nil {
		engine = NewEngine()
	}
	workers := cfg.Workers
	if workers < DefaultWorkers {
		workers = DefaultWorkers
	}
	return &Aggregator{engine: engine, workers: workers}
}

// Aggregate quotes every snapshot at now and sums the totals.
// A failing snapshot only affects its own quote; PerToken keeps input order.
func (a *Aggregator) Aggregate(snapshots []domain.FeedingStateSnapshot, now int64) domain.RewardBatchReport {
	return Summarize(a.QuoteAll(snapshots, now))
}

// QuoteAll quotes every snapshot at now without summing, in input order
func (a *Aggregator) QuoteAll(snapshots []domain.FeedingStateSnapshot, now int64) []domain.RewardQuote {
	if a.workers > 1 && len(snapshots) >= minParallelBatch {
		return a.quoteParallel(snapshots, now)
	}
	return a.quoteSequential(snapshots, now)
}

func (a *Aggregator) quoteSequential(snapshots []domain.FeedingStateSnapshot, now int64) []domain.RewardQuote {
	quotes := make([]domain.RewardQuote, len(snapshots))
	for i := range snapshots {
		quotes[i] = a.engine.Accrue(snapshots[i], now)
	}
	return quotes
}

func (a *Aggregator) quoteParallel(snapshots []domain.FeedingStateSnapshot, now int64) []domain.RewardQuote {
	quotes := make([]domain.RewardQuote, len(snapshots))

	workers := a.workers
	if workers > len(snapshots) {
		workers = len(snapshots)
	}

	pool := worker.NewPool(workers, len(snapshots))
	pool.Start(context.Background())
	for i := range snapshots {
		pool.Enqueue(&accrueJob{
			engine:   a.engine,
			snapshot: snapshots[i],
			now:      now,
			out:      &quotes[i],
		})
	}
	pool.Stop()

	return quotes
}

// accrueJob writes one quote into its own slot of the result slice
type accrueJob struct {
	engine   *Engine
	snapshot domain.FeedingStateSnapshot
	now      int64
	out      *domain.RewardQuote
}

func (j *accrueJob) Process(_ context.Context) error {
	*j.out = j.engine.Accrue(j.snapshot, j.now)
	return nil
}

// Summarize builds a batch report from already computed quotes.
// Failed quotes contribute nothing; totals saturate instead of wrapping.
func Summarize(quotes []domain.RewardQuote) domain.RewardBatchReport {
	report := domain.RewardBatchReport{PerToken: quotes}
	if report.PerToken == nil {
		report.PerToken = []domain.RewardQuote{}
	}

	var pwpotClipped, pwbotClipped bool
	for _, q := range quotes {
		if q.Failed() {
			report.Failed++
			continue
		}

		var clipped bool
		report.TotalPwpot, clipped = saturatingAdd(report.TotalPwpot, q.Pwpot)
		pwpotClipped = pwpotClipped || clipped
		report.TotalPwbot, clipped = saturatingAdd(report.TotalPwbot, q.Pwbot)
		pwbotClipped = pwbotClipped || clipped
	}

	if pwpotClipped {
		report.Warnings = append(report.Warnings, WarnPwpotSaturated)
	}
	if pwbotClipped {
		report.Warnings = append(report.Warnings, WarnPwbotSaturated)
	}
	report.Saturated = pwpotClipped || pwbotClipped

	return report
}
