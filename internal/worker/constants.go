package worker

import "time"

// jobTimeout bounds a single background pass. The pool hands jobs a
// fresh context, so each job applies its own deadline.
const jobTimeout = 2 * time.Minute

// ==================== Log Messages ====================

// LogMsgWorkerJobFailed is logged when a worker fails to process a job
const LogMsgWorkerJobFailed = "Worker job failed"

// Log messages for the price recompute job
const (
	LogMsgRecomputeJobStarting  = "Price recompute pass starting"
	LogMsgRecomputeJobCompleted = "Price recompute pass completed"
)

// Log messages for the merchant restock job
const (
	LogMsgRestockJobStarting  = "Merchant restock pass starting"
	LogMsgRestockJobCompleted = "Merchant restock pass completed"
)

// ==================== Error Messages ====================

// Job failures carry pass context; the pool logs them once
const (
	ErrMsgRecomputePassFailed = "recompute pass failed: %w"
	ErrMsgRestockPassFailed   = "restock pass failed: %w"
)

// ==================== Test Configuration ====================

// Pool configuration values used in pool_test.go
const (
	TestWorkerCount           = 2
	TestQueueSize             = 10
	TestExpectedJobCount      = 2
	TestWorkerProcessWaitTime = 100 // milliseconds
)
