package domain

// Event type constants used across the application for event bus subscriptions
// and metrics tracking. These represent domain events that can be published
// and consumed by multiple modules.
//
// Event types follow the pattern: <entity>.<action> (e.g., "trade.executed")
const (
	// EventTypeTradeExecuted is published after a buy or sell commits
	EventTypeTradeExecuted = "trade.executed"

	// EventTypePriceUpdated is published for each price changed by a recompute pass
	EventTypePriceUpdated = "price.updated"

	// EventTypeLicenseUpgraded is published when a player reaches a new license tier
	EventTypeLicenseUpgraded = "license.upgraded"

	// EventTypeBonusClaimed is published when a daily bonus is paid out
	EventTypeBonusClaimed = "bonus.claimed"

	// EventTypePlayerMoved is published when a player's position changes
	EventTypePlayerMoved = "player.moved"

	// EventTypeMerchantRestocked is published when the restock pass completes
	EventTypeMerchantRestocked = "merchant.restocked"
)
