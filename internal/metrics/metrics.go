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

// Accrual Metrics
var (
	QuotesTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameQuotesTotal,
			Help: HelpTextQuotesTotal,
		},
		[]string{LabelOutcome},
	)

	CyclesCredited = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNameCyclesCredited,
			Help: HelpTextCyclesCredited,
		},
	)

	BatchSaturations = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNameBatchSaturations,
			Help: HelpTextBatchSaturations,
		},
	)

	BatchSize = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    MetricNameBatchSize,
			Help:    HelpTextBatchSize,
			Buckets: BatchSizeBuckets,
		},
	)

	GaugeFallbacks = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNameGaugeFallbacks,
			Help: HelpTextGaugeFallbacks,
		},
	)

	AdmissionExclusions = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNameAdmissionExclusions,
			Help: HelpTextAdmissionExclusions,
		},
	)
)

// Snapshot cache metrics
var (
	SnapshotsIngested = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameSnapshotsIngested,
			Help: HelpTextSnapshotsIngested,
		},
		[]string{LabelResult},
	)

	SnapshotCacheSize = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: MetricNameSnapshotCacheSize,
			Help: HelpTextSnapshotCacheSize,
		},
	)
)
