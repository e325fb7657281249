package accrual_bench

import (
	"context"
	"fmt"
	"testing"

	"github.com/osse101/PetFeed_Go/internal/accrual"
	"github.com/osse101/PetFeed_Go/internal/clock"
	"github.com/osse101/PetFeed_Go/internal/domain"
	"github.com/osse101/PetFeed_Go/internal/feeding"
	"github.com/osse101/PetFeed_Go/internal/quote"
	"github.com/osse101/PetFeed_Go/internal/snapshot"
)

const baseTime = int64(1_700_000_000)

// herd builds n pets with a mix of qualities, starved and re-fed states
func herd(n int) []domain.FeedingStateSnapshot {
	pets := make([]domain.FeedingStateSnapshot, n)
	for i := range pets {
		pets[i] = domain.FeedingStateSnapshot{
			TokenID:           uint64(i),
			FeedingHours:      uint64(i % 48),
			LastClaimTime:     uint64(baseTime),
			LastFeedTime:      uint64(baseTime + int64(i%72)*domain.SecondsPerCycle),
			Quality:           domain.QualityTier(i % 5),
			IsActive:          i%11 != 0,
			AccumulatedCycles: uint64(i % 3),
		}
	}
	return pets
}

func BenchmarkAccrue(b *testing.B) {
	engine := accrual.NewEngine()
	pet := herd(8)[7]
	now := baseTime + 60*domain.SecondsPerCycle

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = engine.Accrue(pet, now)
	}
}

func BenchmarkAggregate(b *testing.B) {
	pets := herd(1000)
	now := baseTime + 60*domain.SecondsPerCycle

	for _, workers := range []int{1, 4, 8} {
		b.Run(fmt.Sprintf("workers=%d", workers), func(b *testing.B) {
			agg := accrual.NewAggregator(nil, accrual.AggregatorConfig{Workers: workers})

			b.ReportAllocs()
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				_ = agg.Aggregate(pets, now)
			}
		})
	}
}

func BenchmarkPlanBatchFeed(b *testing.B) {
	pets := herd(1000)
	now := baseTime + 12*domain.SecondsPerCycle

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = feeding.PlanBatchFeed(pets, now, 24, domain.DefaultHardCapHours)
	}
}

func BenchmarkQuoteBatch_Cached(b *testing.B) {
	pets := herd(1000)
	store := snapshot.NewStore(len(pets), 0)
	ids := make([]uint64, len(pets))
	for i, p := range pets {
		store.Put(p)
		ids[i] = p.TokenID
	}

	svc := quote.NewService(store, clock.NewSimulatedClockAt(baseTime+60*domain.SecondsPerCycle), quote.Config{Workers: 4})
	ctx := context.Background()

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := svc.QuoteBatch(ctx, ids, nil); err != nil {
			b.Fatal(err)
		}
	}
}
