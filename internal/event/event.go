package event

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/lanternworks/nightmarket/internal/domain"
)

// Type represents the type of an event
type Type string

// Metadata defines the type for event metadata
type Metadata interface{}

// Event represents a generic event in the system
type Event struct {
	Version  string      `json:"version"` // Event schema version (e.g., "1.0")
	Type     Type        `json:"type"`
	Payload  interface{} `json:"payload"`
	Metadata Metadata    `json:"metadata"`
}

// GetMetadataValue extracts a value from the event metadata safely
func (e Event) GetMetadataValue(key string) interface{} {
	if e.Metadata == nil {
		return nil
	}
	if m, ok := e.Metadata.(map[string]interface{}); ok {
		return m[key]
	}
	return nil
}

// Common event types
const (
	TradeExecuted     Type = Type(domain.EventTypeTradeExecuted)
	PriceUpdated      Type = Type(domain.EventTypePriceUpdated)
	LicenseUpgraded   Type = Type(domain.EventTypeLicenseUpgraded)
	BonusClaimed      Type = Type(domain.EventTypeBonusClaimed)
	PlayerMoved       Type = Type(domain.EventTypePlayerMoved)
	MerchantRestocked Type = Type(domain.EventTypeMerchantRestocked)
)

// Typed event payloads for type safety

// TradeExecutedPayloadV1 is the typed payload for committed trades
type TradeExecutedPayloadV1 struct {
	TradeID    string  `json:"trade_id"`
	PlayerID   string  `json:"player_id"`
	Username   string  `json:"username"`
	MerchantID string  `json:"merchant_id"`
	ItemName   string  `json:"item_name"`
	Quantity   int     `json:"quantity"`
	TotalPrice int     `json:"total_price"`
	TradeType  string  `json:"trade_type"`
	Lat        float64 `json:"lat"`
	Lng        float64 `json:"lng"`
	Timestamp  int64   `json:"timestamp"`
}

// PriceUpdatedPayloadV1 is the typed payload for one recomputed quote
type PriceUpdatedPayloadV1 struct {
	ItemName  string `json:"item_name"`
	District  string `json:"district"`
	OldPrice  int    `json:"old_price"`
	NewPrice  int    `json:"new_price"`
	BasePrice int    `json:"base_price"`
	Timestamp int64  `json:"timestamp"`
}

// LicenseUpgradedPayloadV1 is the typed payload for license tier upgrades
type LicenseUpgradedPayloadV1 struct {
	PlayerID   string `json:"player_id"`
	Username   string `json:"username"`
	OldTier    int    `json:"old_tier"`
	NewTier    int    `json:"new_tier"`
	Capacity   int    `json:"capacity"`
	MoneySpent int    `json:"money_spent"`
	Timestamp  int64  `json:"timestamp"`
}

// BonusClaimedPayloadV1 is the typed payload for daily bonus claims
type BonusClaimedPayloadV1 struct {
	PlayerID    string `json:"player_id"`
	Username    string `json:"username"`
	Amount      int    `json:"amount"`
	LicenseTier int    `json:"license_tier"`
	TrustPoints int    `json:"trust_points"`
	Timestamp   int64  `json:"timestamp"`
}

// PlayerMovedPayloadV1 is the typed payload for player position changes
type PlayerMovedPayloadV1 struct {
	PlayerID  string  `json:"player_id"`
	Lat       float64 `json:"lat"`
	Lng       float64 `json:"lng"`
	Timestamp int64   `json:"timestamp"`
}

// MerchantRestockedPayloadV1 is the typed payload for completed restock passes
type MerchantRestockedPayloadV1 struct {
	MerchantCount int   `json:"merchant_count"`
	Timestamp     int64 `json:"timestamp"`
}

// Type-safe event constructors

// NewTradeExecutedEvent creates a new trade executed event
func NewTradeExecutedEvent(record domain.TradeRecord, username string) Event {
	playerID := ""
	if record.BuyerID != nil {
		playerID = *record.BuyerID
	} else if record.SellerID != nil {
		playerID = *record.SellerID
	}
	return Event{
		Version: EventSchemaVersion,
		Type:    TradeExecuted,
		Payload: TradeExecutedPayloadV1{
			TradeID:    record.ID,
			PlayerID:   playerID,
			Username:   username,
			MerchantID: record.MerchantID,
			ItemName:   record.ItemName,
			Quantity:   record.Quantity,
			TotalPrice: record.TotalPrice,
			TradeType:  record.Type,
			Lat:        record.Location.Lat,
			Lng:        record.Location.Lng,
			Timestamp:  time.Now().Unix(),
		},
		Metadata: nil,
	}
}

// NewPriceUpdatedEvent creates a new price updated event
func NewPriceUpdatedEvent(itemName, district string, oldPrice, newPrice, basePrice int) Event {
	return Event{
		Version: EventSchemaVersion,
		Type:    PriceUpdated,
		Payload: PriceUpdatedPayloadV1{
			ItemName:  itemName,
			District:  district,
			OldPrice:  oldPrice,
			NewPrice:  newPrice,
			BasePrice: basePrice,
			Timestamp: time.Now().Unix(),
		},
		Metadata: nil,
	}
}

// NewLicenseUpgradedEvent creates a new license upgraded event
func NewLicenseUpgradedEvent(playerID, username string, oldTier, newTier, capacity, moneySpent int) Event {
	return Event{
		Version: EventSchemaVersion,
		Type:    LicenseUpgraded,
		Payload: LicenseUpgradedPayloadV1{
			PlayerID:   playerID,
			Username:   username,
			OldTier:    oldTier,
			NewTier:    newTier,
			Capacity:   capacity,
			MoneySpent: moneySpent,
			Timestamp:  time.Now().Unix(),
		},
		Metadata: nil,
	}
}

// NewBonusClaimedEvent creates a new bonus claimed event
func NewBonusClaimedEvent(playerID, username string, amount, licenseTier, trustPoints int) Event {
	return Event{
		Version: EventSchemaVersion,
		Type:    BonusClaimed,
		Payload: BonusClaimedPayloadV1{
			PlayerID:    playerID,
			Username:    username,
			Amount:      amount,
			LicenseTier: licenseTier,
			TrustPoints: trustPoints,
			Timestamp:   time.Now().Unix(),
		},
		Metadata: nil,
	}
}

// NewPlayerMovedEvent creates a new player moved event
func NewPlayerMovedEvent(playerID string, pos domain.Position) Event {
	return Event{
		Version: EventSchemaVersion,
		Type:    PlayerMoved,
		Payload: PlayerMovedPayloadV1{
			PlayerID:  playerID,
			Lat:       pos.Lat,
			Lng:       pos.Lng,
			Timestamp: time.Now().Unix(),
		},
		Metadata: nil,
	}
}

// NewMerchantRestockedEvent creates a new merchant restocked event
func NewMerchantRestockedEvent(merchantCount int) Event {
	return Event{
		Version: EventSchemaVersion,
		Type:    MerchantRestocked,
		Payload: MerchantRestockedPayloadV1{
			MerchantCount: merchantCount,
			Timestamp:     time.Now().Unix(),
		},
		Metadata: nil,
	}
}

// Handler is a function that handles an event
type Handler func(ctx context.Context, event Event) error

// Bus defines the interface for an event bus
type Bus interface {
	Publish(ctx context.Context, event Event) error
	Subscribe(eventType Type, handler Handler)
}

// Publisher is the publishing surface services depend on. The resilient
// publisher implements it; callers never block on retries.
type Publisher interface {
	PublishWithRetry(ctx context.Context, event Event)
}

// MemoryBus is an in-memory implementation of the Event Bus
type MemoryBus struct {
	handlers map[Type][]Handler
	mu       sync.RWMutex
}

// NewMemoryBus creates a new MemoryBus
func NewMemoryBus() *MemoryBus {
	return &MemoryBus{
		handlers: make(map[Type][]Handler),
	}
}

// Publish publishes an event to all subscribers
func (b *MemoryBus) Publish(ctx context.Context, event Event) error {
	b.mu.RLock()
	handlers, ok := b.handlers[event.Type]
	b.mu.RUnlock()

	if !ok {
		return nil
	}

	// Handlers run synchronously; slow consumers belong behind the
	// resilient publisher or a worker, not here.
	var errs []error
	for _, handler := range handlers {
		if err := handler(ctx, event); err != nil {
			errs = append(errs, err)
		}
	}

	if len(errs) > 0 {
		return fmt.Errorf(LogMsgHandlerErrorFormat, len(errs), event.Type, errs)
	}

	return nil
}

// Subscribe subscribes a handler to an event type
func (b *MemoryBus) Subscribe(eventType Type, handler Handler) {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.handlers[eventType] = append(b.handlers[eventType], handler)
}
