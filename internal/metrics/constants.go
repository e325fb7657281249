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

// Accrual metric names
const (
	MetricNameQuotesTotal         = "petfeed_quotes_total"
	MetricNameCyclesCredited      = "petfeed_cycles_credited_total"
	MetricNameBatchSaturations    = "petfeed_batch_saturations_total"
	MetricNameBatchSize           = "petfeed_batch_size"
	MetricNameGaugeFallbacks      = "petfeed_gauge_fallbacks_total"
	MetricNameAdmissionExclusions = "petfeed_admission_exclusions_total"
	MetricNameSnapshotsIngested   = "petfeed_snapshots_ingested_total"
	MetricNameSnapshotCacheSize   = "petfeed_snapshot_cache_entries"
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

// Accrual metric help text
const (
	HelpTextQuotesTotal         = "Total number of reward quotes computed, by outcome"
	HelpTextCyclesCredited      = "Total reward cycles reported in successful quotes"
	HelpTextBatchSaturations    = "Total number of batch reports whose totals saturated"
	HelpTextBatchSize           = "Number of pets per aggregated batch"
	HelpTextGaugeFallbacks      = "Total number of remaining-hours gauges that fell back to banked hours"
	HelpTextAdmissionExclusions = "Total number of pets excluded from a batch feed plan"
	HelpTextSnapshotsIngested   = "Total number of snapshots offered to the cache, by result"
	HelpTextSnapshotCacheSize   = "Current number of cached feeding snapshots"
)

// ============================================================================
// Metric Label Names
// ============================================================================

// Common label names used across metrics
const (
	LabelMethod  = "method"
	LabelPath    = "path"
	LabelStatus  = "status"
	LabelOutcome = "outcome"
	LabelResult  = "result"
)

// ============================================================================
// Label Values
// ============================================================================

// Quote outcomes
const (
	OutcomeOK              = "ok"
	OutcomeInactive        = "inactive"
	OutcomeInvalidSnapshot = "invalid_snapshot"
	OutcomeOverflow        = "overflow"
)

// Ingest results
const (
	ResultStored   = "stored"
	ResultStale    = "stale"
	ResultEvicted  = "evicted"
	ResultRejected = "rejected"
)

// PathUnmatched labels requests that matched no route
const PathUnmatched = "unmatched"

// ============================================================================
// Histogram Buckets
// ============================================================================

// HTTPLatencyBuckets defines the histogram buckets for HTTP request duration
// in seconds, from 1ms to 10s
var HTTPLatencyBuckets = []float64{.001, .005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5, 10}

// BatchSizeBuckets covers single pets up to large wallets
var BatchSizeBuckets = []float64{1, 2, 5, 10, 25, 50, 100, 250, 500, 1000}
