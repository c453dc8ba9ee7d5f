package sse

import (
	"context"
	"log/slog"

	"github.com/lanternworks/nightmarket/internal/event"
)

// Subscriber bridges the internal event bus to the SSE hub. Position
// pings stay off the stream; they are too frequent for a public feed.
type Subscriber struct {
	hub *Hub
	bus event.Bus
}

// NewSubscriber creates a new SSE subscriber
func NewSubscriber(hub *Hub, bus event.Bus) *Subscriber {
	return &Subscriber{
		hub: hub,
		bus: bus,
	}
}

// Subscribe registers handlers for all streamed event types
func (s *Subscriber) Subscribe() {
	s.bus.Subscribe(event.TradeExecuted, s.handleTradeExecuted)
	s.bus.Subscribe(event.PriceUpdated, s.handlePriceUpdated)
	s.bus.Subscribe(event.LicenseUpgraded, s.handleLicenseUpgraded)
	s.bus.Subscribe(event.BonusClaimed, s.handleBonusClaimed)
	s.bus.Subscribe(event.MerchantRestocked, s.handleMerchantRestocked)

	slog.Info("SSE subscriber registered for event types",
		"types", []string{
			MessageTypeTradeFeed,
			MessageTypePriceTick,
			MessageTypeLicenseUpgrade,
			MessageTypeBonusClaim,
			MessageTypeRestock,
		})
}

func (s *Subscriber) handleTradeExecuted(_ context.Context, evt event.Event) error {
	payload, ok := evt.Payload.(event.TradeExecutedPayloadV1)
	if !ok {
		slog.Warn(LogMsgInvalidPayload, "event_type", evt.Type)
		return nil
	}

	s.hub.Broadcast(MessageTypeTradeFeed, TradeFeedPayload{
		Username:   payload.Username,
		ItemName:   payload.ItemName,
		Quantity:   payload.Quantity,
		TotalPrice: payload.TotalPrice,
		TradeType:  payload.TradeType,
	})

	slog.Debug(LogMsgEventBroadcast,
		"message_type", MessageTypeTradeFeed,
		"item", payload.ItemName,
		"trade_type", payload.TradeType)

	return nil
}

func (s *Subscriber) handlePriceUpdated(_ context.Context, evt event.Event) error {
	payload, ok := evt.Payload.(event.PriceUpdatedPayloadV1)
	if !ok {
		slog.Warn(LogMsgInvalidPayload, "event_type", evt.Type)
		return nil
	}

	s.hub.Broadcast(MessageTypePriceTick, PriceTickPayload{
		ItemName: payload.ItemName,
		District: payload.District,
		OldPrice: payload.OldPrice,
		NewPrice: payload.NewPrice,
	})

	slog.Debug(LogMsgEventBroadcast,
		"message_type", MessageTypePriceTick,
		"item", payload.ItemName,
		"new_price", payload.NewPrice)

	return nil
}

func (s *Subscriber) handleLicenseUpgraded(_ context.Context, evt event.Event) error {
	payload, ok := evt.Payload.(event.LicenseUpgradedPayloadV1)
	if !ok {
		slog.Warn(LogMsgInvalidPayload, "event_type", evt.Type)
		return nil
	}

	s.hub.Broadcast(MessageTypeLicenseUpgrade, LicenseUpgradePayload{
		Username: payload.Username,
		NewTier:  payload.NewTier,
		Capacity: payload.Capacity,
	})

	return nil
}

func (s *Subscriber) handleBonusClaimed(_ context.Context, evt event.Event) error {
	payload, ok := evt.Payload.(event.BonusClaimedPayloadV1)
	if !ok {
		slog.Warn(LogMsgInvalidPayload, "event_type", evt.Type)
		return nil
	}

	s.hub.Broadcast(MessageTypeBonusClaim, BonusFeedPayload{
		Username: payload.Username,
		Amount:   payload.Amount,
	})

	return nil
}

func (s *Subscriber) handleMerchantRestocked(_ context.Context, evt event.Event) error {
	payload, ok := evt.Payload.(event.MerchantRestockedPayloadV1)
	if !ok {
		slog.Warn(LogMsgInvalidPayload, "event_type", evt.Type)
		return nil
	}

	s.hub.Broadcast(MessageTypeRestock, RestockFeedPayload{
		MerchantCount: payload.MerchantCount,
	})

	return nil
}
