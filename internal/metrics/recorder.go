package metrics

import (
	"github.com/osse101/PetFeed_Go/internal/domain"
)

// QuoteOutcome maps a quote to its outcome label
func QuoteOutcome(q domain.RewardQuote) string {
	switch {
	case q.Error == domain.ErrorKindOverflow:
		return OutcomeOverflow
	case q.Failed():
		return OutcomeInvalidSnapshot
	case q.Inactive:
		return OutcomeInactive
	default:
		return OutcomeOK
	}
}

// RecordQuote counts one quote by outcome
func RecordQuote(q domain.RewardQuote) {
	outcome := QuoteOutcome(q)
	QuotesTotal.WithLabelValues(outcome).Inc()
	if outcome == OutcomeOK {
		CyclesCredited.Add(float64(q.Cycles))
	}
}

// RecordBatch counts every quote in a report plus the batch itself
func RecordBatch(report domain.RewardBatchReport) {
	for _, q := range report.PerToken {
		RecordQuote(q)
	}
	BatchSize.Observe(float64(len(report.PerToken)))
	if report.Saturated {
		BatchSaturations.Inc()
	}
}

// RecordRemaining counts gauge fallbacks
func RecordRemaining(r domain.RemainingHours) {
	if r.Defaulted {
		GaugeFallbacks.Inc()
	}
}

// RecordPlan counts pets left out of a batch feed
func RecordPlan(plan domain.BatchFeedPlan) {
	for _, est := range plan.Included {
		RecordRemaining(est.Remaining)
	}
	for _, est := range plan.Excluded {
		RecordRemaining(est.Remaining)
	}
	AdmissionExclusions.Add(float64(len(plan.Excluded)))
}

// RecordIngest counts one snapshot offered to the cache
func RecordIngest(result string) {
	SnapshotsIngested.WithLabelValues(result).Inc()
}
