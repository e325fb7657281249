package handler

import (
	"net/http"

	"github.com/osse101/PetFeed_Go/internal/logger"
	"github.com/osse101/PetFeed_Go/internal/quote"
)

// PetHandler serves per-pet quotes from cached snapshots
type PetHandler struct {
	quoteSvc quote.Service
}

// NewPetHandler creates a new pet handler
func NewPetHandler(quoteSvc quote.Service) *PetHandler {
	return &PetHandler{quoteSvc: quoteSvc}
}

// Quote handles GET /pets/{tokenID}/quote
func (h *PetHandler) Quote(w http.ResponseWriter, r *http.Request) {
	tokenID, ok := getTokenID(w, r)
	if !ok {
		return
	}

	q, err := h.quoteSvc.QuoteToken(r.Context(), tokenID)
	if err != nil {
		respondServiceError(w, r, "Quote", err)
		return
	}

	logger.FromContext(r.Context()).Info("Quote served", "tokenID", tokenID, "pwpot", q.Pwpot, "pwbot", q.Pwbot, "error", q.Error)
	respondJSON(w, http.StatusOK, q)
}

// Remaining handles GET /pets/{tokenID}/remaining
func (h *PetHandler) Remaining(w http.ResponseWriter, r *http.Request) {
	tokenID, ok := getTokenID(w, r)
	if !ok {
		return
	}

	remaining, err := h.quoteSvc.RemainingHours(r.Context(), tokenID)
	if err != nil {
		respondServiceError(w, r, "Remaining hours", err)
		return
	}

	respondJSON(w, http.StatusOK, remaining)
}

// Admission handles GET /pets/{tokenID}/admission?hard_cap=
func (h *PetHandler) Admission(w http.ResponseWriter, r *http.Request) {
	tokenID, ok := getTokenID(w, r)
	if !ok {
		return
	}
	hardCap, ok := getHardCap(w, r)
	if !ok {
		return
	}

	est, err := h.quoteSvc.Admission(r.Context(), tokenID, hardCap)
	if err != nil {
		respondServiceError(w, r, "Admission", err)
		return
	}

	respondJSON(w, http.StatusOK, est)
}
