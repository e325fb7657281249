package bootstrap

import (
	"context"

	"github.com/osse101/PetFeed_Go/internal/clock"
	"github.com/osse101/PetFeed_Go/internal/config"
	"github.com/osse101/PetFeed_Go/internal/quote"
	"github.com/osse101/PetFeed_Go/internal/scheduler"
	"github.com/osse101/PetFeed_Go/internal/server"
	"github.com/osse101/PetFeed_Go/internal/snapshot"
	"github.com/osse101/PetFeed_Go/internal/validation"
	"github.com/osse101/PetFeed_Go/internal/worker"
)

// App holds the wired application components
type App struct {
	Server   *server.Server
	Store    *snapshot.Store
	QuoteSvc quote.Service

	pool      *worker.Pool
	scheduler *scheduler.Scheduler
}

// Build wires the snapshot cache, quote service and HTTP server from cfg and
// starts the background jobs. A nil clk uses the wall clock.
func Build(cfg *config.Config, clk clock.Clock) *App {
	if clk == nil {
		clk = clock.NewRealClock()
	}

	store := snapshot.NewStore(cfg.SnapshotCacheSize, cfg.SnapshotTTL)
	quoteSvc := quote.NewService(store, clk, quote.Config{
		HardCapHours: cfg.FeedHardCapHours,
		Workers:      cfg.AggregateWorkers,
	})

	srv := server.NewServer(server.Options{
		Port:           cfg.Port,
		APIKey:         cfg.APIKey,
		TrustedProxies: cfg.TrustedProxies,
	}, quoteSvc, store, validation.NewSchemaValidator())

	pool := worker.NewPool(BackgroundWorkers, BackgroundQueueSize)
	pool.Start(context.Background())
	sched := scheduler.New(pool)
	if cfg.CacheStatsEvery > 0 {
		sched.Schedule(cfg.CacheStatsEvery, &scheduler.CacheGaugeJob{Cache: store})
	}

	return &App{
		Server:    srv,
		Store:     store,
		QuoteSvc:  quoteSvc,
		pool:      pool,
		scheduler: sched,
	}
}
