package handler

import (
	"net/http"

	"github.com/osse101/PetFeed_Go/internal/domain"
	"github.com/osse101/PetFeed_Go/internal/quote"
)

// FeedPlanRequest asks which pets can take requested_hours without passing the cap
type FeedPlanRequest struct {
	TokenIDs       []uint64 `json:"token_ids" validate:"required,min=1,max=1000"`
	RequestedHours uint32   `json:"requested_hours" validate:"feedhours"`
	HardCapHours   uint32   `json:"hard_cap_hours" validate:"omitempty,feedhours"`
}

// FeedPlanResponse is a batch feed plan plus the ids to send in the feed transaction
type FeedPlanResponse struct {
	domain.BatchFeedPlan
	FeedTokenIDs []uint64 `json:"feed_token_ids"`
}

// FeedingHandler handles batch feed planning
type FeedingHandler struct {
	quoteSvc quote.Service
}

// NewFeedingHandler creates a new feeding handler
func NewFeedingHandler(quoteSvc quote.Service) *FeedingHandler {
	return &FeedingHandler{quoteSvc: quoteSvc}
}

// Plan handles POST /feeding/plan
func (h *FeedingHandler) Plan(w http.ResponseWriter, r *http.Request) {
	var req FeedPlanRequest
	if err := DecodeAndValidateRequest(r, w, &req, "Feed plan"); err != nil {
		return
	}

	plan, err := h.quoteSvc.PlanBatchFeed(r.Context(), req.TokenIDs, req.RequestedHours, req.HardCapHours)
	if err != nil {
		respondServiceError(w, r, "Feed plan", err)
		return
	}

	respondJSON(w, http.StatusOK, FeedPlanResponse{
		BatchFeedPlan: plan,
		FeedTokenIDs:  plan.IncludedTokenIDs(),
	})
}
