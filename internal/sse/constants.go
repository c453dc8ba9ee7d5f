package sse

import (
	"time"

	"github.com/lanternworks/nightmarket/internal/domain"
)

// Buffer sizes
const (
	// BroadcastBufferSize is the buffer size for the broadcast channel
	BroadcastBufferSize = 100

	// ClientMessageBuffer is the buffer size for each client's channel
	ClientMessageBuffer = 50

	// ClientChannelBuffer is the buffer size for register/unregister channels
	ClientChannelBuffer = 10
)

// Connection settings
const (
	// KeepaliveInterval is how often to send keepalive pings
	KeepaliveInterval = 30 * time.Second
)

// Stream message types. The public feed reuses the bus type names so a
// client can filter with the same strings it sees in the frames.
const (
	// MessageTypePriceTick is sent for each changed quote in a recompute pass
	MessageTypePriceTick = domain.EventTypePriceUpdated

	// MessageTypeTradeFeed is sent for each committed buy or sell
	MessageTypeTradeFeed = domain.EventTypeTradeExecuted

	// MessageTypeLicenseUpgrade is sent when a player reaches a new tier
	MessageTypeLicenseUpgrade = domain.EventTypeLicenseUpgraded

	// MessageTypeBonusClaim is sent when a daily bonus pays out
	MessageTypeBonusClaim = domain.EventTypeBonusClaimed

	// MessageTypeRestock is sent when the restock pass completes
	MessageTypeRestock = domain.EventTypeMerchantRestocked

	// MessageTypeConnected is the first frame on a new stream
	MessageTypeConnected = "connected"

	// MessageTypeKeepalive is the keepalive ping frame
	MessageTypeKeepalive = "keepalive"
)

// Log messages
const (
	LogMsgClientConnected    = "SSE client connected"
	LogMsgClientDisconnected = "SSE client disconnected"
	LogMsgEventBroadcast     = "Broadcasting SSE message"
	LogMsgWriteError         = "Failed to write SSE message"
	LogMsgInvalidPayload     = "Unexpected payload type on bus event"
)
