package handler

// Generic HTTP error messages for client responses.
// These intentionally do not expose internal error details.
// Both handlers and tests reference these constants to stay consistent.
const (
	// HTTP status messages
	ErrMsgMethodNotAllowed      = "Method not allowed"
	ErrMsgInvalidRequest        = "Invalid request body"
	ErrMsgInvalidRequestSummary = "Invalid request"

	// Query parameter error messages
	ErrMsgMissingQueryParam = "Missing %s query parameter"
	ErrMsgInvalidQueryParam = "Invalid %s query parameter"
	ErrMsgInvalidLimit      = "Invalid limit parameter"
	ErrMsgUnknownDistrict   = "Unknown district"

	// Player operation log messages
	ErrMsgRegisterFailed       = "Failed to register player"
	ErrMsgLoginFailed          = "Login failed"
	ErrMsgGetProfileFailed     = "Failed to get profile"
	ErrMsgGetInventoryFailed   = "Failed to get inventory"
	ErrMsgUpdateLocationFailed = "Failed to update location"
	ErrMsgClaimBonusFailed     = "Failed to claim daily bonus"
	ErrMsgUpgradeLicenseFailed = "Failed to upgrade license"

	// Trade operation log messages
	ErrMsgBuyFailed       = "Failed to buy item"
	ErrMsgSellFailed      = "Failed to sell item"
	ErrMsgGetTradesFailed = "Failed to get trades"

	// Market operation log messages
	ErrMsgGetPricesFailed  = "Failed to get prices"
	ErrMsgGetCatalogFailed = "Failed to get item catalog"

	// Merchant operation log messages
	ErrMsgGetMerchantsFailed = "Failed to get merchants"

	// Admin operation log messages
	ErrMsgRecomputeFailed = "Failed to recompute prices"
	ErrMsgRestockFailed   = "Failed to restock merchants"
)

// Success messages for API responses
const (
	MsgLocationUpdated    = "Location updated"
	MsgRecomputeCompleted = "Price recompute completed"
	MsgRestockCompleted   = "Merchant restock completed"
)
