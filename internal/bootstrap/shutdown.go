package bootstrap

import (
	"context"
	"log/slog"
)

// GracefulShutdown stops accepting requests, waits for in-flight ones up to the
// ctx deadline, stops the background jobs, then drops the snapshot cache.
func GracefulShutdown(ctx context.Context, app *App) {
	slog.Info(LogMsgShuttingDownServer)

	if err := app.Server.Stop(ctx); err != nil {
		slog.Error(LogMsgServerForcedStop, "error", err)
	}

	app.scheduler.Stop()
	app.pool.Stop()

	cached := app.Store.Len()
	app.Store.Purge()
	slog.Info(LogMsgSnapshotCachePurged, "snapshots", cached)

	slog.Info(LogMsgServerStopped)
}
