package metrics

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"

	"github.com/osse101/PetFeed_Go/internal/domain"
)

func TestQuoteOutcome(t *testing.T) {
	tests := []struct {
		name  string
		quote domain.RewardQuote
		want  string
	}{
		{"ok", domain.RewardQuote{Cycles: 3, Pwpot: 3}, OutcomeOK},
		{"inactive", domain.RewardQuote{Inactive: true}, OutcomeInactive},
		{"invalid", domain.RewardQuote{Error: domain.ErrorKindInvalidSnapshot}, OutcomeInvalidSnapshot},
		{"overflow", domain.RewardQuote{Error: domain.ErrorKindOverflow}, OutcomeOverflow},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, QuoteOutcome(tt.quote))
		})
	}
}

func TestRecordBatch(t *testing.T) {
	okBefore := testutil.ToFloat64(QuotesTotal.WithLabelValues(OutcomeOK))
	badBefore := testutil.ToFloat64(QuotesTotal.WithLabelValues(OutcomeInvalidSnapshot))
	cyclesBefore := testutil.ToFloat64(CyclesCredited)
	satBefore := testutil.ToFloat64(BatchSaturations)

	RecordBatch(domain.RewardBatchReport{
		PerToken: []domain.RewardQuote{
			{TokenID: 1, Cycles: 4},
			{TokenID: 2, Error: domain.ErrorKindInvalidSnapshot},
		},
		Saturated: true,
	})

	assert.Equal(t, okBefore+1, testutil.ToFloat64(QuotesTotal.WithLabelValues(OutcomeOK)))
	assert.Equal(t, badBefore+1, testutil.ToFloat64(QuotesTotal.WithLabelValues(OutcomeInvalidSnapshot)))
	assert.Equal(t, cyclesBefore+4, testutil.ToFloat64(CyclesCredited))
	assert.Equal(t, satBefore+1, testutil.ToFloat64(BatchSaturations))
}

func TestRecordPlan(t *testing.T) {
	exclBefore := testutil.ToFloat64(AdmissionExclusions)
	fbBefore := testutil.ToFloat64(GaugeFallbacks)

	RecordPlan(domain.BatchFeedPlan{
		Included: []domain.AdmissionEstimate{{TokenID: 1, Remaining: domain.RemainingHours{Defaulted: true}}},
		Excluded: []domain.AdmissionEstimate{{TokenID: 2}, {TokenID: 3}},
	})

	assert.Equal(t, exclBefore+2, testutil.ToFloat64(AdmissionExclusions))
	assert.Equal(t, fbBefore+1, testutil.ToFloat64(GaugeFallbacks))
}

func TestMiddleware_LabelsByRoutePattern(t *testing.T) {
	r := chi.NewRouter()
	r.Use(Middleware)
	r.Get("/pets/{tokenID}/quote", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusTeapot)
	})

	before := testutil.ToFloat64(HTTPRequestsTotal.WithLabelValues(http.MethodGet, "/pets/{tokenID}/quote", "418"))

	req := httptest.NewRequest(http.MethodGet, "/pets/77/quote", nil)
	rr := httptest.NewRecorder()
	r.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusTeapot, rr.Code)
	assert.Equal(t, before+1, testutil.ToFloat64(HTTPRequestsTotal.WithLabelValues(http.MethodGet, "/pets/{tokenID}/quote", "418")))
}
