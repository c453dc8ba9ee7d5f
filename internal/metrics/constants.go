package metrics

// ============================================================================
// Metric Names
// ============================================================================

// HTTP metric names
const (
	MetricNameHTTPRequestsTotal    = "http_requests_total"
	MetricNameHTTPRequestDuration  = "http_request_duration_seconds"
	MetricNameHTTPRequestsInFlight = "http_requests_in_flight"
)

// Event metric names
const (
	MetricNameEventsPublished    = "events_published_total"
	MetricNameEventHandlerErrors = "event_handler_errors_total"
)

// Business metric names
const (
	MetricNameTradesExecuted   = "trades_executed_total"
	MetricNameItemsTraded      = "items_traded_total"
	MetricNameMoneySpent       = "money_spent_total"
	MetricNameMoneyEarned      = "money_earned_total"
	MetricNamePriceUpdates     = "price_updates_total"
	MetricNameRecomputePasses  = "price_recompute_passes_total"
	MetricNameLicenseUpgrades  = "license_upgrades_total"
	MetricNameBonusesClaimed   = "bonuses_claimed_total"
	MetricNameBonusMoneyPaid   = "bonus_money_paid_total"
	MetricNamePlayerMoves      = "player_moves_total"
	MetricNameRestockPasses    = "merchant_restock_passes_total"
	MetricNameSSEClients       = "sse_clients"
	MetricNameSSEFramesDropped = "sse_frames_dropped_total"
)

// ============================================================================
// Metric Help Text
// ============================================================================

// HTTP metric help text
const (
	HelpTextHTTPRequestsTotal    = "Total number of HTTP requests"
	HelpTextHTTPRequestDuration  = "HTTP request latency in seconds"
	HelpTextHTTPRequestsInFlight = "Current number of HTTP requests being served"
)

// Event metric help text
const (
	HelpTextEventsPublished    = "Total number of events published"
	HelpTextEventHandlerErrors = "Total number of event handler errors"
)

// Business metric help text
const (
	HelpTextTradesExecuted   = "Total number of committed trades by type"
	HelpTextItemsTraded      = "Total item quantity moved by trades"
	HelpTextMoneySpent       = "Total money players spent buying items"
	HelpTextMoneyEarned      = "Total money players earned selling items"
	HelpTextPriceUpdates     = "Total number of individual price changes"
	HelpTextRecomputePasses  = "Total number of completed recompute passes"
	HelpTextLicenseUpgrades  = "Total number of license upgrades by new tier"
	HelpTextBonusesClaimed   = "Total number of daily bonuses claimed"
	HelpTextBonusMoneyPaid   = "Total money paid out as daily bonuses"
	HelpTextPlayerMoves      = "Total number of player position updates"
	HelpTextRestockPasses    = "Total number of completed restock passes"
	HelpTextSSEClients       = "Current number of connected SSE clients"
	HelpTextSSEFramesDropped = "Total SSE frames dropped for slow consumers"
)

// ============================================================================
// Metric Label Names
// ============================================================================

const (
	LabelMethod = "method"
	LabelPath   = "path"
	LabelStatus = "status"
	LabelType   = "type"
	LabelTier   = "tier"
)

// ============================================================================
// Histogram Buckets
// ============================================================================

// HTTPLatencyBuckets defines the histogram buckets for HTTP request duration
// in seconds. These buckets range from 1ms to 10s to capture various latency
// patterns: fast (1-10ms), normal (10-100ms), slow (100ms-1s), very slow (1-10s)
var HTTPLatencyBuckets = []float64{.001, .005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5, 10}

// ============================================================================
// Log Messages
// ============================================================================

const (
	LogMsgEventPayloadUnknown = "Event payload has unexpected type"
	LogMsgMetricsRecorded     = "Metrics recorded for event"
)
