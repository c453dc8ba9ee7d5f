package cache

import "time"

const (
	// DefaultLocationFlushInterval is how often buffered positions reach Postgres
	DefaultLocationFlushInterval = 30 * time.Second
	// DefaultLocationKeyPrefix namespaces the Redis keys
	DefaultLocationKeyPrefix = "nightmarket:locations"

	recordTimeout          = 5 * time.Second
	backgroundFlushTimeout = 15 * time.Second
	shutdownFlushTimeout   = 30 * time.Second
)

// ==================== Log Messages ====================

const (
	LogMsgLocationFlush        = "Flushing buffered positions"
	LogMsgLocationFlushed      = "Buffered positions flushed"
	LogMsgLocationFlushFailed  = "Position flush failed"
	LogMsgLocationRecordFailed = "Failed to buffer position in Redis"
	LogMsgLocationBufferClosed = "Location buffer closed"
)
