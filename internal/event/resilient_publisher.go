package event

import (
	"context"
	"sync"
	"time"

	"github.com/lanternworks/nightmarket/internal/logger"
)

// retryEntry tracks one failed event waiting for another attempt
type retryEntry struct {
	event    Event
	attempts int
	lastErr  error
}

// ResilientPublisher wraps an Event Bus with a bounded retry queue and a
// dead-letter file. PublishWithRetry never blocks the caller: a failed
// publish is handed to a background worker that retries with exponential
// backoff and dead-letters what it cannot deliver.
type ResilientPublisher struct {
	bus        Bus
	retryQueue chan retryEntry
	maxRetries int
	retryDelay time.Duration
	deadLetter *DeadLetterWriter
	shutdown   chan struct{}
	closeOnce  sync.Once
	wg         sync.WaitGroup
}

// NewResilientPublisher creates a ResilientPublisher and starts its retry worker
func NewResilientPublisher(bus Bus, maxRetries int, retryDelay time.Duration, deadLetterPath string) (*ResilientPublisher, error) {
	deadLetter, err := NewDeadLetterWriter(deadLetterPath)
	if err != nil {
		return nil, err
	}

	p := &ResilientPublisher{
		bus:        bus,
		retryQueue: make(chan retryEntry, RetryQueueBufferSize),
		maxRetries: maxRetries,
		retryDelay: retryDelay,
		deadLetter: deadLetter,
		shutdown:   make(chan struct{}),
	}

	p.wg.Add(1)
	go p.retryWorker()

	return p, nil
}

// PublishWithRetry publishes an event, queueing it for background retry on
// failure. The first attempt runs synchronously on the caller's context.
func (p *ResilientPublisher) PublishWithRetry(ctx context.Context, event Event) {
	select {
	case <-p.shutdown:
		logger.Warn(LogMsgEventDroppedShutdown, "event_type", event.Type)
		return
	default:
	}

	err := p.bus.Publish(ctx, event)
	if err == nil {
		return
	}

	logger.Warn(LogMsgEventPublishFailed,
		"event_type", event.Type,
		"error", err,
		"max_retries", p.maxRetries)

	p.enqueue(retryEntry{event: event, attempts: 1, lastErr: err})
}

// enqueue adds an entry to the retry queue, dead-lettering it when full
func (p *ResilientPublisher) enqueue(entry retryEntry) {
	select {
	case p.retryQueue <- entry:
	default:
		logger.Warn(LogMsgRetryQueueFull, "event_type", entry.event.Type)
		if err := p.deadLetter.Write(entry.event, entry.attempts, entry.lastErr); err != nil {
			logger.Error(LogMsgDeadLetterWriteFailed, "error", err)
		}
	}
}

// retryWorker processes the retry queue until shutdown, then drains it
func (p *ResilientPublisher) retryWorker() {
	defer p.wg.Done()

	for {
		select {
		case entry := <-p.retryQueue:
			p.processRetry(entry)
		case <-p.shutdown:
			p.drainQueue()
			return
		}
	}
}

// processRetry waits out the backoff for an entry and attempts to publish it
// again. The wait aborts early on shutdown so draining stays fast.
func (p *ResilientPublisher) processRetry(entry retryEntry) {
	delay := CalculateRetryDelay(p.retryDelay, entry.attempts)
	timer := time.NewTimer(delay)
	defer timer.Stop()

	select {
	case <-timer.C:
	case <-p.shutdown:
	}

	ctx := context.Background()
	err := p.bus.Publish(ctx, entry.event)
	if err == nil {
		logger.Info(LogMsgEventRetrySucceeded,
			"event_type", entry.event.Type,
			"attempt", entry.attempts)
		return
	}

	entry.attempts++
	entry.lastErr = err

	if entry.attempts > p.maxRetries {
		logger.Warn(LogMsgEventRetryExhausted,
			"event_type", entry.event.Type,
			"attempts", entry.attempts-1,
			"error", err)
		if werr := p.deadLetter.Write(entry.event, entry.attempts-1, err); werr != nil {
			logger.Error(LogMsgDeadLetterWriteFailed, "error", werr)
		}
		return
	}

	logger.Warn(LogMsgEventRetryFailed,
		"event_type", entry.event.Type,
		"attempt", entry.attempts-1,
		"error", err)
	p.enqueue(entry)
}

// drainQueue gives every queued entry one last immediate attempt, then
// dead-letters the failures.
func (p *ResilientPublisher) drainQueue() {
	ctx := context.Background()
	drained := 0

	for {
		select {
		case entry := <-p.retryQueue:
			drained++
			if err := p.bus.Publish(ctx, entry.event); err != nil {
				if werr := p.deadLetter.Write(entry.event, entry.attempts, err); werr != nil {
					logger.Error(LogMsgDeadLetterWriteFailedS, "error", werr)
				}
			}
		default:
			if drained > 0 {
				logger.Info(LogMsgQueueDrainedShutdown, "count", drained)
			}
			return
		}
	}
}

// Subscribe delegates to the inner bus
func (p *ResilientPublisher) Subscribe(eventType Type, handler Handler) {
	p.bus.Subscribe(eventType, handler)
}

// Shutdown stops the retry worker, drains pending retries and closes the
// dead-letter file.
func (p *ResilientPublisher) Shutdown(ctx context.Context) error {
	p.closeOnce.Do(func() {
		close(p.shutdown)
	})

	done := make(chan struct{})
	go func() {
		p.wg.Wait()
		close(done)
	}()

	select {
	case <-done:
		return p.deadLetter.Close()
	case <-ctx.Done():
		logger.Warn(LogMsgShutdownTimeout)
		return ctx.Err()
	}
}
