package bootstrap

import (
	"context"
	"log/slog"
)

// GracefulShutdown stops the application in dependency order:
// 1. HTTP server and realtime clients (stop accepting new work)
// 2. Change listener, scheduler and worker pool (no more reloads)
// 3. Event publisher (flush pending events)
// 4. Database pool
//
// Errors during shutdown are logged but do not stop the shutdown sequence.
func GracefulShutdown(ctx context.Context, app *App) {
	slog.Info(LogMsgShuttingDownServer)

	if err := app.Server.Stop(ctx); err != nil {
		slog.Error(LogMsgServerForcedShutdown, "error", err)
	}

	if app.stopListener != nil {
		app.stopListener()
		select {
		case <-app.listenerDone:
		case <-ctx.Done():
		}
	}
	app.Scheduler.Stop()
	app.Workers.Stop()

	slog.Info(LogMsgShuttingDownEventPublisher)
	if err := app.Publisher.Shutdown(ctx); err != nil {
		slog.Error(LogMsgResilientPublisherFailed, "error", err)
	}

	closeStore(app.Store)
	slog.Info(LogMsgServerStopped)
}
