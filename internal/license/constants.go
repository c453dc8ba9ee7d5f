package license

// ==================== Error Messages ====================

// Database operation error messages
const (
	ErrMsgGetPlayerFailed         = "failed to get player: %w"
	ErrMsgBeginTransactionFailed  = "failed to begin transaction: %w"
	ErrMsgUpdatePlayerFailed      = "failed to update player: %w"
	ErrMsgCommitTransactionFailed = "failed to commit transaction: %w"
)

// ==================== Log Messages ====================

const (
	LogMsgUpgradeLicenseCalled = "UpgradeLicense called"
	LogMsgLicenseUpgraded      = "License upgraded"
)
