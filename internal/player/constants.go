package player

import "time"

// ==================== Progression Tuning ====================

// DailyBonusPerTier is the payout multiplier: a claim pays tier x this
const DailyBonusPerTier = 5000

// BonusTrustIncrement is the trust awarded alongside each daily claim
const BonusTrustIncrement = 5

// BonusWindow is the rolling period between claims
const BonusWindow = 24 * time.Hour

// Username constraints
const (
	UsernameMinLength = 3
	UsernameMaxLength = 32
)

// Spawn box for new players, covering the seeded districts
const (
	SpawnLatMin = 52.22
	SpawnLatMax = 52.26
	SpawnLngMin = 20.99
	SpawnLngMax = 21.02
)

// ==================== Error Messages ====================

// Formatted error messages for validation
const (
	ErrMsgUsernameLengthFmt = "username must be %d-%d characters: %w"
	ErrMsgUsernameCharsFmt  = "username may only contain lowercase letters, digits and underscores: %w"
	ErrMsgPositionBoundsFmt = "position out of bounds (lat %f, lng %f): %w"
	ErrMsgWrongPlayerKeyFmt = "player key does not match: %w"
)

// Database operation error messages
const (
	ErrMsgGetPlayerFailed         = "failed to get player: %w"
	ErrMsgCreatePlayerFailed      = "failed to create player: %w"
	ErrMsgGetInventoryFailed      = "failed to get inventory: %w"
	ErrMsgGetOccupancyFailed      = "failed to get inventory occupancy: %w"
	ErrMsgBeginTransactionFailed  = "failed to begin transaction: %w"
	ErrMsgUpdatePlayerFailed      = "failed to update player: %w"
	ErrMsgCommitTransactionFailed = "failed to commit transaction: %w"
)

// ==================== Log Messages ====================

const (
	LogMsgRegisterCalled       = "Register called"
	LogMsgPlayerRegistered     = "Player registered"
	LogMsgLoginCalled          = "Login called"
	LogMsgGetProfileCalled     = "GetProfile called"
	LogMsgUpdateLocationCalled = "UpdateLocation called"
	LogMsgClaimBonusCalled     = "ClaimDailyBonus called"
	LogMsgBonusClaimed         = "Daily bonus claimed"
)
