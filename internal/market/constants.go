package market

import "time"

// ==================== Price Walk Tuning ====================

// Each recompute step draws a variation in [-PriceVariationBound, +PriceVariationBound)
const PriceVariationBound = 0.20

// The walk is clamped into [PriceBandLower, PriceBandUpper] x base price
const (
	PriceBandLower = 0.5
	PriceBandUpper = 1.5
)

// MinPrice is the absolute floor after integer truncation
const MinPrice = 1

// DefaultRecomputeInterval is how often the scheduled recompute pass runs
const DefaultRecomputeInterval = 3 * time.Hour

// ==================== Error Messages ====================

// Database operation error messages
const (
	ErrMsgGetPriceFailed          = "failed to get price: %w"
	ErrMsgListPricesFailed        = "failed to list prices: %w"
	ErrMsgBeginTransactionFailed  = "failed to begin transaction: %w"
	ErrMsgUpdatePriceFailed       = "failed to update price: %w"
	ErrMsgCommitTransactionFailed = "failed to commit transaction: %w"
	ErrMsgUpdateDemandFailed      = "failed to update demand multiplier: %w"
)

// ==================== Log Messages ====================

const (
	LogMsgRecomputePriceCalled = "RecomputePrice called"
	LogMsgRecomputeAllCalled   = "RecomputeAll called"
	LogMsgPriceRecomputed      = "Price recomputed"
	LogMsgRecomputePassDone    = "Recompute pass finished"
)
