// Package cache provides write-behind buffering for high-frequency player
// position updates. Pings land in the buffer instantly and are flushed to
// Postgres in batches, so a busy city never turns movement into a database
// write per step. A Redis-backed variant survives restarts; the in-memory
// variant covers deployments without Redis.
package cache

import (
	"context"
	"sync"
	"time"

	"github.com/lanternworks/nightmarket/internal/domain"
	"github.com/lanternworks/nightmarket/internal/logger"
)

// LocationFlushFunc persists a batch of positions, keyed by player ID.
// Wired to repository.Player.UpdatePlayerPositions.
type LocationFlushFunc func(ctx context.Context, positions map[string]domain.Position) error

// LocationBuffer absorbs position pings and flushes them in batches.
// Record must be cheap and non-blocking; it is called on the request path.
type LocationBuffer interface {
	Record(playerID string, pos domain.Position)
	Flush(ctx context.Context) error
	Close() error
}

// MemoryLocationBuffer keeps pending positions in a map. Last write per
// player wins, which is exactly what position data wants.
type MemoryLocationBuffer struct {
	mu        sync.RWMutex
	pending   map[string]domain.Position
	flushFunc LocationFlushFunc

	flushTicker *time.Ticker
	stopFlush   chan struct{}
	done        chan struct{}
	stopOnce    sync.Once
}

// NewMemoryLocationBuffer creates the in-memory buffer and starts its
// background flush loop.
func NewMemoryLocationBuffer(flushInterval time.Duration, flushFunc LocationFlushFunc) *MemoryLocationBuffer {
	if flushInterval <= 0 {
		flushInterval = DefaultLocationFlushInterval
	}

	b := &MemoryLocationBuffer{
		pending:     make(map[string]domain.Position),
		flushFunc:   flushFunc,
		flushTicker: time.NewTicker(flushInterval),
		stopFlush:   make(chan struct{}),
		done:        make(chan struct{}),
	}

	go b.backgroundFlush()

	return b
}

// Record stores the latest position for a player
func (b *MemoryLocationBuffer) Record(playerID string, pos domain.Position) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.pending[playerID] = pos
}

// Count returns the number of players with unflushed positions
func (b *MemoryLocationBuffer) Count() int {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return len(b.pending)
}

// Flush writes all pending positions through the flush func. On failure
// the batch is re-queued, except for players who pinged again meanwhile.
func (b *MemoryLocationBuffer) Flush(ctx context.Context) error {
	b.mu.Lock()
	if len(b.pending) == 0 {
		b.mu.Unlock()
		return nil
	}
	batch := b.pending
	b.pending = make(map[string]domain.Position)
	b.mu.Unlock()

	log := logger.FromContext(ctx)
	log.Debug(LogMsgLocationFlush, "count", len(batch))

	if err := b.flushFunc(ctx, batch); err != nil {
		log.Warn(LogMsgLocationFlushFailed, "error", err, "count", len(batch))
		b.mu.Lock()
		for playerID, pos := range batch {
			if _, exists := b.pending[playerID]; !exists {
				b.pending[playerID] = pos
			}
		}
		b.mu.Unlock()
		return err
	}

	log.Debug(LogMsgLocationFlushed, "count", len(batch))
	return nil
}

func (b *MemoryLocationBuffer) backgroundFlush() {
	defer close(b.done)
	for {
		select {
		case <-b.flushTicker.C:
			ctx, cancel := context.WithTimeout(context.Background(), backgroundFlushTimeout)
			_ = b.Flush(ctx)
			cancel()
		case <-b.stopFlush:
			ctx, cancel := context.WithTimeout(context.Background(), shutdownFlushTimeout)
			_ = b.Flush(ctx)
			cancel()
			return
		}
	}
}

// Close drains the buffer and stops the flush loop. Safe to call twice.
func (b *MemoryLocationBuffer) Close() error {
	b.stopOnce.Do(func() {
		b.flushTicker.Stop()
		close(b.stopFlush)
	})
	<-b.done
	return nil
}
