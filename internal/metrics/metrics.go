package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// HTTP Metrics
var (
	HTTPRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameHTTPRequestsTotal,
			Help: HelpTextHTTPRequestsTotal,
		},
		[]string{LabelMethod, LabelPath, LabelStatus},
	)

	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    MetricNameHTTPRequestDuration,
			Help:    HelpTextHTTPRequestDuration,
			Buckets: HTTPLatencyBuckets,
		},
		[]string{LabelMethod, LabelPath},
	)

	HTTPRequestsInFlight = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: MetricNameHTTPRequestsInFlight,
			Help: HelpTextHTTPRequestsInFlight,
		},
	)
)

// Event Metrics
var (
	EventsPublished = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameEventsPublished,
			Help: HelpTextEventsPublished,
		},
		[]string{LabelType},
	)

	EventHandlerErrors = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameEventHandlerErrors,
			Help: HelpTextEventHandlerErrors,
		},
		[]string{LabelType},
	)
)

// Business Metrics
var (
	TradesExecuted = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameTradesExecuted,
			Help: HelpTextTradesExecuted,
		},
		[]string{LabelType},
	)

	ItemsTraded = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameItemsTraded,
			Help: HelpTextItemsTraded,
		},
		[]string{LabelType},
	)

	MoneySpent = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNameMoneySpent,
			Help: HelpTextMoneySpent,
		},
	)

	MoneyEarned = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNameMoneyEarned,
			Help: HelpTextMoneyEarned,
		},
	)

	PriceUpdates = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNamePriceUpdates,
			Help: HelpTextPriceUpdates,
		},
	)

	RecomputePasses = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNameRecomputePasses,
			Help: HelpTextRecomputePasses,
		},
	)

	LicenseUpgrades = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameLicenseUpgrades,
			Help: HelpTextLicenseUpgrades,
		},
		[]string{LabelTier},
	)

	BonusesClaimed = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNameBonusesClaimed,
			Help: HelpTextBonusesClaimed,
		},
	)

	BonusMoneyPaid = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNameBonusMoneyPaid,
			Help: HelpTextBonusMoneyPaid,
		},
	)

	PlayerMoves = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNamePlayerMoves,
			Help: HelpTextPlayerMoves,
		},
	)

	RestockPasses = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNameRestockPasses,
			Help: HelpTextRestockPasses,
		},
	)
)

// Realtime Metrics
var (
	SSEClients = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: MetricNameSSEClients,
			Help: HelpTextSSEClients,
		},
	)

	SSEFramesDropped = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNameSSEFramesDropped,
			Help: HelpTextSSEFramesDropped,
		},
	)
)
