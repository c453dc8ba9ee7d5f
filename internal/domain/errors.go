package domain

import "errors"

// Error message string constants - single source of truth for error messages
// Use these in assert.Contains() checks when testing error messages
const (
	// Player errors
	ErrMsgPlayerNotFound = "player not found"
	ErrMsgPlayerExists   = "player already exists"

	// Merchant errors
	ErrMsgMerchantNotFound = "merchant not found"
	ErrMsgItemNotOffered   = "item not offered by merchant"

	// Market errors
	ErrMsgPriceNotFound = "price not found"

	// Inventory errors
	ErrMsgItemNotOwned         = "item not in inventory"
	ErrMsgInsufficientQuantity = "insufficient quantity"
	ErrMsgInventoryFull        = "inventory is full"

	// Trade errors
	ErrMsgInsufficientFunds = "insufficient funds"

	// License errors
	ErrMsgLicenseInsufficient = "license tier too low"
	ErrMsgMaxLicenseTier      = "license already at max tier"
	ErrMsgInsufficientTrust   = "insufficient trust points"

	// Bonus errors
	ErrMsgBonusNotReady = "daily bonus not yet available"

	// Auth errors
	ErrMsgUnauthorized   = "unauthorized"
	ErrMsgSessionExpired = "session expired"

	// Validation errors (used for partial matches)
	ErrMsgInvalidQuantity = "quantity" // Used in contains checks for various quantity errors
	ErrMsgInvalidInput    = "invalid input"

	// Database/System errors
	ErrMsgTxClosed          = "tx is closed"
	ErrMsgConnectionTimeout = "connection timeout"
	ErrMsgDatabaseError     = "database error"
)

// Common domain errors
// These errors should be used consistently across all layers of the application.
// Wrap these errors with fmt.Errorf("%w: %s", domain.ErrXxx, details) for additional context.
var (
	// Player errors
	ErrPlayerNotFound = errors.New(ErrMsgPlayerNotFound)
	ErrPlayerExists   = errors.New(ErrMsgPlayerExists)

	// Merchant errors
	ErrMerchantNotFound = errors.New(ErrMsgMerchantNotFound)
	ErrItemNotOffered   = errors.New(ErrMsgItemNotOffered)

	// Market errors
	ErrPriceNotFound = errors.New(ErrMsgPriceNotFound)

	// Inventory errors
	ErrItemNotOwned         = errors.New(ErrMsgItemNotOwned)
	ErrInsufficientQuantity = errors.New(ErrMsgInsufficientQuantity)
	ErrInventoryFull        = errors.New(ErrMsgInventoryFull)

	// Trade errors
	ErrInsufficientFunds = errors.New(ErrMsgInsufficientFunds)

	// License errors
	ErrLicenseInsufficient = errors.New(ErrMsgLicenseInsufficient)
	ErrMaxLicenseTier      = errors.New(ErrMsgMaxLicenseTier)
	ErrInsufficientTrust   = errors.New(ErrMsgInsufficientTrust)

	// Bonus errors
	ErrBonusNotReady = errors.New(ErrMsgBonusNotReady)

	// Auth errors
	ErrUnauthorized   = errors.New(ErrMsgUnauthorized)
	ErrSessionExpired = errors.New(ErrMsgSessionExpired)

	// Validation errors
	ErrInvalidInput = errors.New(ErrMsgInvalidInput)
)
