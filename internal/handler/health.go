package handler

import (
	"net/http"
)

// HealthResponse represents the response for health endpoints
type HealthResponse struct {
	Status  string `json:"status"`
	Message string `json:"message,omitempty"`
}

// SnapshotCounter reports how many snapshots are cached
type SnapshotCounter interface {
	Len() int
}

// HandleHealthz provides a basic liveness check
func HandleHealthz() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		respondJSON(w, http.StatusOK, HealthResponse{Status: "ok"})
	}
}

// HandleReadyz reports ready once at least one snapshot has been ingested,
// since every quote endpoint answers 404 before that.
func HandleReadyz(store SnapshotCounter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if store.Len() == 0 {
			respondJSON(w, http.StatusServiceUnavailable, HealthResponse{
				Status:  "unavailable",
				Message: "no snapshots cached",
			})
			return
		}
		respondJSON(w, http.StatusOK, HealthResponse{Status: "ok"})
	}
}
