package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/lanternworks/nightmarket/internal/domain"
	"github.com/lanternworks/nightmarket/internal/logger"
)

// deleteIfUnchanged removes a buffered position only when it still matches
// what the flusher read, so a ping that lands mid-flush is never lost.
var deleteIfUnchangedScript = redis.NewScript(`
	if redis.call("HGET", KEYS[1], ARGV[1]) == ARGV[2] then
		redis.call("HDEL", KEYS[1], ARGV[1])
		redis.call("SREM", KEYS[2], ARGV[1])
		return 1
	else
		return 0
	end
`)

// bufferedPosition is the Redis hash value for one player
type bufferedPosition struct {
	Position   domain.Position `json:"position"`
	RecordedAt time.Time       `json:"recorded_at"`
}

// RedisLocationBufferConfig holds connection and flush settings
type RedisLocationBufferConfig struct {
	Addr          string
	Password      string
	DB            int
	FlushInterval time.Duration
	KeyPrefix     string
}

// RedisLocationBuffer buffers positions in a Redis hash with a pending
// set, flushed to Postgres on an interval. Buffered pings survive an API
// restart, unlike the in-memory variant.
type RedisLocationBuffer struct {
	client    *redis.Client
	flushFunc LocationFlushFunc
	keyPrefix string

	flushTicker *time.Ticker
	stopFlush   chan struct{}
	done        chan struct{}
	stopOnce    sync.Once
}

// NewRedisLocationBuffer connects to Redis, verifies the connection and
// starts the background flush loop.
func NewRedisLocationBuffer(cfg RedisLocationBufferConfig, flushFunc LocationFlushFunc) (*RedisLocationBuffer, error) {
	client := redis.NewClient(&redis.Options{
		Addr:         cfg.Addr,
		Password:     cfg.Password,
		DB:           cfg.DB,
		PoolSize:     10,
		MinIdleConns: 2,
	})

	ctx, cancel := context.WithTimeout(context.Background(), recordTimeout)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("failed to connect to redis: %w", err)
	}

	if cfg.FlushInterval <= 0 {
		cfg.FlushInterval = DefaultLocationFlushInterval
	}
	keyPrefix := cfg.KeyPrefix
	if keyPrefix == "" {
		keyPrefix = DefaultLocationKeyPrefix
	}

	b := &RedisLocationBuffer{
		client:      client,
		flushFunc:   flushFunc,
		keyPrefix:   keyPrefix,
		flushTicker: time.NewTicker(cfg.FlushInterval),
		stopFlush:   make(chan struct{}),
		done:        make(chan struct{}),
	}

	go b.backgroundFlush()

	return b, nil
}

func (b *RedisLocationBuffer) bufferKey() string {
	return b.keyPrefix + ":buffer"
}

func (b *RedisLocationBuffer) pendingKey() string {
	return b.keyPrefix + ":pending"
}

// Record buffers a position in Redis. Failures are logged and swallowed;
// a dropped ping is overwritten by the next one anyway.
func (b *RedisLocationBuffer) Record(playerID string, pos domain.Position) {
	ctx, cancel := context.WithTimeout(context.Background(), recordTimeout)
	defer cancel()

	data, err := json.Marshal(bufferedPosition{Position: pos, RecordedAt: time.Now().UTC()})
	if err != nil {
		logger.FromContext(ctx).Warn(LogMsgLocationRecordFailed, "player_id", playerID, "error", err)
		return
	}

	pipe := b.client.Pipeline()
	pipe.HSet(ctx, b.bufferKey(), playerID, data)
	pipe.SAdd(ctx, b.pendingKey(), playerID)
	if _, err := pipe.Exec(ctx); err != nil {
		logger.FromContext(ctx).Warn(LogMsgLocationRecordFailed, "player_id", playerID, "error", err)
	}
}

// Count returns the number of players with unflushed positions
func (b *RedisLocationBuffer) Count(ctx context.Context) (int64, error) {
	return b.client.SCard(ctx, b.pendingKey()).Result()
}

// Flush drains the pending set into Postgres, then clears only the
// entries that did not change while the batch was in flight.
func (b *RedisLocationBuffer) Flush(ctx context.Context) error {
	log := logger.FromContext(ctx)

	playerIDs, err := b.client.SMembers(ctx, b.pendingKey()).Result()
	if err != nil {
		return fmt.Errorf("failed to read pending set: %w", err)
	}
	if len(playerIDs) == 0 {
		return nil
	}

	log.Debug(LogMsgLocationFlush, "count", len(playerIDs))

	batch := make(map[string]domain.Position, len(playerIDs))
	raw := make(map[string]string, len(playerIDs))
	for _, playerID := range playerIDs {
		data, err := b.client.HGet(ctx, b.bufferKey(), playerID).Bytes()
		if err == redis.Nil {
			continue
		}
		if err != nil {
			log.Warn(LogMsgLocationFlushFailed, "player_id", playerID, "error", err)
			continue
		}

		var buffered bufferedPosition
		if err := json.Unmarshal(data, &buffered); err != nil {
			log.Warn(LogMsgLocationFlushFailed, "player_id", playerID, "error", err)
			continue
		}

		raw[playerID] = string(data)
		batch[playerID] = buffered.Position
	}

	if len(batch) == 0 {
		return nil
	}

	if err := b.flushFunc(ctx, batch); err != nil {
		log.Warn(LogMsgLocationFlushFailed, "error", err, "count", len(batch))
		return err
	}

	pipe := b.client.Pipeline()
	for playerID, data := range raw {
		deleteIfUnchangedScript.Run(ctx, pipe, []string{b.bufferKey(), b.pendingKey()}, playerID, data)
	}
	if _, err := pipe.Exec(ctx); err != nil {
		log.Warn(LogMsgLocationFlushFailed, "error", err)
	}

	log.Debug(LogMsgLocationFlushed, "count", len(batch))
	return nil
}

func (b *RedisLocationBuffer) backgroundFlush() {
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

// Close drains the buffer, stops the flush loop and releases the client
func (b *RedisLocationBuffer) Close() error {
	b.stopOnce.Do(func() {
		b.flushTicker.Stop()
		close(b.stopFlush)
	})
	<-b.done
	logger.FromContext(context.Background()).Info(LogMsgLocationBufferClosed)
	return b.client.Close()
}
