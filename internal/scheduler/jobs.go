package scheduler

import (
	"context"

	"github.com/osse101/PetFeed_Go/internal/metrics"
)

// Lener is anything that reports how many entries it holds
type Lener interface {
	Len() int
}

// CacheGaugeJob publishes the snapshot cache size. Expired entries leave the
// cache without a write, so the gauge is refreshed on a timer as well.
type CacheGaugeJob struct {
	Cache Lener
}

func (j *CacheGaugeJob) Process(_ context.Context) error {
	metrics.SnapshotCacheSize.Set(float64(j.Cache.Len()))
	return nil
}
