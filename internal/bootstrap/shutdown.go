package bootstrap

import (
	"context"
	"log/slog"

	"github.com/lanternworks/nightmarket/internal/cache"
	"github.com/lanternworks/nightmarket/internal/event"
	"github.com/lanternworks/nightmarket/internal/scheduler"
	"github.com/lanternworks/nightmarket/internal/server"
	"github.com/lanternworks/nightmarket/internal/sse"
	"github.com/lanternworks/nightmarket/internal/worker"
)

// ShutdownComponents holds everything that needs a graceful stop.
type ShutdownComponents struct {
	Scheduler          *scheduler.Scheduler
	LocationBuffer     cache.LocationBuffer
	WorkerPool         *worker.Pool
	Hub                *sse.Hub
	Server             *server.Server
	ResilientPublisher *event.ResilientPublisher
}

// GracefulShutdown stops the application in dependency order:
//  1. Scheduler, so no new background jobs are queued
//  2. Location buffer, draining buffered position pings to Postgres
//  3. Worker pool, letting in-flight jobs finish
//  4. SSE hub, which unblocks the long-lived stream handlers
//  5. HTTP server, now free of streaming connections
//  6. Event publisher last, flushing pending retries
//
// Errors during shutdown are logged but never abort the sequence.
func GracefulShutdown(ctx context.Context, components ShutdownComponents) {
	slog.Info(LogMsgShuttingDown)

	if components.Scheduler != nil {
		components.Scheduler.Stop()
	}

	if components.LocationBuffer != nil {
		if err := components.LocationBuffer.Flush(ctx); err != nil {
			slog.Error(LogMsgLocationBufferDrainFailed, "error", err)
		}
		if err := components.LocationBuffer.Close(); err != nil {
			slog.Error(LogMsgLocationBufferCloseFailed, "error", err)
		}
	}

	if components.WorkerPool != nil {
		components.WorkerPool.Stop()
	}

	if components.Hub != nil {
		components.Hub.Stop()
	}

	if components.Server != nil {
		if err := components.Server.Stop(ctx); err != nil {
			slog.Error(LogMsgServerForcedShutdown, "error", err)
		}
	}

	slog.Info(LogMsgShuttingDownEventPublisher)
	if components.ResilientPublisher != nil {
		if err := components.ResilientPublisher.Shutdown(ctx); err != nil {
			slog.Error(LogMsgResilientPublisherFailed, "error", err)
		}
	}

	slog.Info(LogMsgServerStopped)
}
