package bootstrap

import (
	"fmt"
	"log/slog"

	"github.com/lanternworks/nightmarket/internal/event"
	"github.com/lanternworks/nightmarket/internal/metrics"
	"github.com/lanternworks/nightmarket/internal/sse"
)

// RegisterEventHandlers wires the bus subscribers: the metrics collector
// counting business events and the SSE bridge relaying them to connected
// stream clients.
func RegisterEventHandlers(bus event.Bus, hub *sse.Hub) error {
	metricsCollector := metrics.NewEventMetricsCollector()
	if err := metricsCollector.Register(bus); err != nil {
		return fmt.Errorf("%s: %w", ErrMsgFailedRegisterMetrics, err)
	}
	slog.Info(LogMsgMetricsCollectorRegistered)

	sseBridge := sse.NewSubscriber(hub, bus)
	sseBridge.Subscribe()
	slog.Info(LogMsgSSEBridgeSubscribed)

	return nil
}
