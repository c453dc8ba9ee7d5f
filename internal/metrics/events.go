package metrics

import (
	"context"
	"strconv"

	"github.com/lanternworks/nightmarket/internal/domain"
	"github.com/lanternworks/nightmarket/internal/event"
	"github.com/lanternworks/nightmarket/internal/logger"
)

// EventMetricsCollector subscribes to bus events and records the business
// counters. Handler errors are logged, never propagated to the publisher.
type EventMetricsCollector struct{}

// NewEventMetricsCollector creates a new event metrics collector
func NewEventMetricsCollector() *EventMetricsCollector {
	return &EventMetricsCollector{}
}

// Register subscribes to all counted event types
func (e *EventMetricsCollector) Register(bus event.Bus) error {
	eventTypes := []event.Type{
		event.TradeExecuted,
		event.PriceUpdated,
		event.LicenseUpgraded,
		event.BonusClaimed,
		event.PlayerMoved,
		event.MerchantRestocked,
	}

	for _, eventType := range eventTypes {
		bus.Subscribe(eventType, e.HandleEvent)
	}

	return nil
}

// HandleEvent counts the event and updates the business metrics its typed
// payload carries.
func (e *EventMetricsCollector) HandleEvent(ctx context.Context, evt event.Event) error {
	log := logger.FromContext(ctx)

	EventsPublished.WithLabelValues(string(evt.Type)).Inc()

	switch payload := evt.Payload.(type) {
	case event.TradeExecutedPayloadV1:
		TradesExecuted.WithLabelValues(payload.TradeType).Inc()
		ItemsTraded.WithLabelValues(payload.TradeType).Add(float64(payload.Quantity))
		if payload.TradeType == domain.TradeTypeBuy {
			MoneySpent.Add(float64(payload.TotalPrice))
		} else {
			MoneyEarned.Add(float64(payload.TotalPrice))
		}

	case event.PriceUpdatedPayloadV1:
		PriceUpdates.Inc()

	case event.LicenseUpgradedPayloadV1:
		LicenseUpgrades.WithLabelValues(strconv.Itoa(payload.NewTier)).Inc()

	case event.BonusClaimedPayloadV1:
		BonusesClaimed.Inc()
		BonusMoneyPaid.Add(float64(payload.Amount))

	case event.PlayerMovedPayloadV1:
		PlayerMoves.Inc()

	case event.MerchantRestockedPayloadV1:
		RestockPasses.Inc()

	default:
		log.Debug(LogMsgEventPayloadUnknown, "type", evt.Type)
		return nil
	}

	log.Debug(LogMsgMetricsRecorded, "type", evt.Type)
	return nil
}
