package bootstrap

import (
	"fmt"
	"log/slog"

	"github.com/lanternworks/nightmarket/internal/cache"
	"github.com/lanternworks/nightmarket/internal/config"
)

// InitializeLocationBuffer picks the write-behind position buffer:
// Redis-backed when configured, in-memory otherwise. Both flush through
// the supplied persistence func and start their own flush loop.
func InitializeLocationBuffer(cfg *config.Config, flush cache.LocationFlushFunc) (cache.LocationBuffer, error) {
	if cfg.Redis.Enabled {
		buffer, err := cache.NewRedisLocationBuffer(cache.RedisLocationBufferConfig{
			Addr:          cfg.Redis.Addr(),
			Password:      cfg.Redis.Password,
			DB:            cfg.Redis.DB,
			FlushInterval: cfg.Game.LocationFlushEvery,
			KeyPrefix:     RedisLocationKeyPrefix,
		}, flush)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", ErrMsgFailedCreateRedisBuffer, err)
		}
		slog.Info(LogMsgLocationBufferRedis, "addr", cfg.Redis.Addr())
		return buffer, nil
	}

	buffer := cache.NewMemoryLocationBuffer(cfg.Game.LocationFlushEvery, flush)
	slog.Info(LogMsgLocationBufferMemory)
	return buffer, nil
}
