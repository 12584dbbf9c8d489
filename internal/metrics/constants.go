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

// Business metric names
const (
	MetricNamePacksOpened        = "packs_opened_total"
	MetricNameNotablePulls       = "notable_pulls_total"
	MetricNameRubiesSpent        = "rubies_spent_total"
	MetricNameRubiesTraded       = "rubies_traded_total"
	MetricNameListingsCreated    = "listings_created_total"
	MetricNamePurchasesCompleted = "purchases_completed_total"
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

// Business metric help text
const (
	HelpTextPacksOpened        = "Total number of packs opened"
	HelpTextNotablePulls       = "Total number of packs containing an SSR or better pull"
	HelpTextRubiesSpent        = "Total rubies spent opening packs"
	HelpTextRubiesTraded       = "Total rubies moved between accounts by marketplace purchases"
	HelpTextListingsCreated    = "Total number of marketplace listings created"
	HelpTextPurchasesCompleted = "Total number of marketplace purchases completed"
)

// ============================================================================
// Metric Label Names
// ============================================================================

// Common label names used across metrics
const (
	LabelMethod   = "method"
	LabelPath     = "path"
	LabelStatus   = "status"
	LabelPackType = "pack_type"
)

// ============================================================================
// Histogram Buckets
// ============================================================================

// HTTPLatencyBuckets defines the histogram buckets for HTTP request duration
// in seconds. These buckets range from 1ms to 10s to capture various latency
// patterns: fast (1-10ms), normal (10-100ms), slow (100ms-1s), very slow (1-10s)
var HTTPLatencyBuckets = []float64{.001, .005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5, 10}
