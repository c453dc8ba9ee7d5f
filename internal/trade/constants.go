package trade

// SellPriceMultiplier is the spread applied when a player sells back to a
// merchant. Proceeds are floor(acquisition price x multiplier) per unit, so
// a buy-then-sell round trip at an unchanged quote never nets a gain.
// An earlier balance pass shipped 0.8; retune here only.
const SellPriceMultiplier = 0.9

// DefaultTradeHistoryLimit applies when a history query names no limit
const DefaultTradeHistoryLimit = 50

// CategoryFallback labels inventory rows for items missing from the catalog
const CategoryFallback = "general"

// ==================== Error Messages ====================

// Formatted error messages for validation
const (
	ErrMsgInvalidQuantityFmt    = "invalid quantity: %d: %w"
	ErrMsgQuantityExceedsMaxFmt = "quantity %d exceeds maximum allowed (%d): %w"
)

// Database operation error messages
const (
	ErrMsgGetPlayerFailed          = "failed to get player: %w"
	ErrMsgGetMerchantFailed        = "failed to get merchant: %w"
	ErrMsgGetPriceFailed           = "failed to get price: %w"
	ErrMsgGetCatalogFailed         = "failed to get catalog entry: %w"
	ErrMsgGetOccupancyFailed       = "failed to get inventory occupancy: %w"
	ErrMsgGetInventoryItemFailed   = "failed to get inventory item: %w"
	ErrMsgBeginTransactionFailed   = "failed to begin transaction: %w"
	ErrMsgUpdatePlayerFailed       = "failed to update player: %w"
	ErrMsgUpsertInventoryFailed    = "failed to upsert inventory item: %w"
	ErrMsgDecrementInventoryFailed = "failed to decrement inventory item: %w"
	ErrMsgInsertTradeRecordFailed  = "failed to insert trade record: %w"
	ErrMsgCommitTransactionFailed  = "failed to commit transaction: %w"
	ErrMsgListTradesFailed         = "failed to list trades: %w"
)

// ==================== Log Messages ====================

const (
	LogMsgBuyCalled          = "Buy called"
	LogMsgItemBought         = "Item bought"
	LogMsgSellCalled         = "Sell called"
	LogMsgItemSold           = "Item sold"
	LogMsgTradeHistoryCalled = "GetTradeHistory called"
)
