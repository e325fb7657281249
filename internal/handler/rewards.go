package handler

import (
	"net/http"

	"github.com/osse101/PetFeed_Go/internal/domain"
	"github.com/osse101/PetFeed_Go/internal/logger"
	"github.com/osse101/PetFeed_Go/internal/quote"
	"github.com/osse101/PetFeed_Go/internal/snapshot"
)

// QuoteBatchRequest selects pets by cached token id, inline snapshot, or both
type QuoteBatchRequest struct {
	TokenIDs  []uint64          `json:"token_ids" validate:"required_without=Snapshots,max=1000"`
	Snapshots []snapshot.Record `json:"snapshots" validate:"required_without=TokenIDs,max=1000"`
}

// QuoteBatchResponse is a batch report plus whether a claim would pay out
type QuoteBatchResponse struct {
	domain.RewardBatchReport
	HasClaimableRewards bool `json:"has_claimable_rewards"`
}

// RewardsHandler handles batch reward quotes
type RewardsHandler struct {
	quoteSvc quote.Service
}

// NewRewardsHandler creates a new rewards handler
func NewRewardsHandler(quoteSvc quote.Service) *RewardsHandler {
	return &RewardsHandler{quoteSvc: quoteSvc}
}

// QuoteBatch handles POST /rewards/quote
func (h *RewardsHandler) QuoteBatch(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContext(r.Context())

	var req QuoteBatchRequest
	if err := DecodeAndValidateRequest(r, w, &req, "Batch quote"); err != nil {
		return
	}

	log.Info("Batch quote request received", "tokenIDs", len(req.TokenIDs), "snapshots", len(req.Snapshots))

	report, err := h.quoteSvc.QuoteBatch(r.Context(), req.TokenIDs, req.Snapshots)
	if err != nil {
		respondServiceError(w, r, "Batch quote", err)
		return
	}

	respondJSON(w, http.StatusOK, QuoteBatchResponse{
		RewardBatchReport:   report,
		HasClaimableRewards: report.HasClaimableRewards(),
	})
}
