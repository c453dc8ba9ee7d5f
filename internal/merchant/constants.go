package merchant

import "time"

const (
	// DefaultNearbyRadiusM is used when a nearby query passes no radius
	DefaultNearbyRadiusM = 5000.0
	// MaxNearbyRadiusM caps the nearby query radius
	MaxNearbyRadiusM = 50000.0

	// DefaultCacheSize is the merchant cache capacity
	DefaultCacheSize = 256
	// DefaultCacheTTL is how long a cached merchant stays fresh
	DefaultCacheTTL = 5 * time.Minute

	// DefaultRestockInterval is how often the restock job runs
	DefaultRestockInterval = 6 * time.Hour

	// DemandDriftFactor shrinks the gap between a demand multiplier and 1.0
	// on every restock pass
	DemandDriftFactor = 0.5
	// DemandDriftEpsilon is the band inside which a multiplier snaps to 1.0
	DemandDriftEpsilon = 0.01
)

// ==================== Error Messages ====================

const (
	ErrMsgGetMerchantFailed   = "failed to get merchant: %w"
	ErrMsgListMerchantsFailed = "failed to list merchants: %w"
	ErrMsgTouchRestockFailed  = "failed to touch restock timestamps: %w"
	ErrMsgListPricesFailed    = "failed to list prices: %w"
	ErrMsgUpdateDemandFailed  = "failed to update demand multiplier: %w"
)

// ==================== Log Messages ====================

const (
	LogMsgGetMerchantCalled   = "GetMerchant called"
	LogMsgListMerchantsCalled = "ListMerchants called"
	LogMsgNearbyCalled        = "NearbyMerchants called"
	LogMsgRestockCalled       = "Restock called"
	LogMsgRestockDone         = "Restock pass complete"
	LogMsgCacheHit            = "Merchant cache hit"
)
