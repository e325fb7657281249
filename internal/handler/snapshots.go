package handler

import (
	"net/http"

	"github.com/osse101/PetFeed_Go/internal/logger"
	"github.com/osse101/PetFeed_Go/internal/quote"
	"github.com/osse101/PetFeed_Go/internal/snapshot"
	"github.com/osse101/PetFeed_Go/internal/validation"
)

// SnapshotHandler accepts feeding snapshot uploads from the chain reader
type SnapshotHandler struct {
	quoteSvc quote.Service
	schemas  validation.SchemaValidator
}

// NewSnapshotHandler creates a new snapshot handler
func NewSnapshotHandler(quoteSvc quote.Service, schemas validation.SchemaValidator) *SnapshotHandler {
	if schemas == nil {
		schemas = validation.NewSchemaValidator()
	}
	return &SnapshotHandler{quoteSvc: quoteSvc, schemas: schemas}
}

// SchemaErrorResponse reports where an upload diverged from the batch schema
type SchemaErrorResponse struct {
	Error   string `json:"error"`
	Details string `json:"details"`
}

// Ingest handles PUT /snapshots with a JSON array of chain records.
// The upload succeeds even when individual records are rejected; see IngestResult.
func (h *SnapshotHandler) Ingest(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContext(r.Context())

	body, err := readBody(w, r)
	if err != nil {
		return
	}

	if err := h.schemas.ValidateBytes(body, validation.SchemaSnapshotBatch); err != nil {
		log.Warn("Snapshot batch failed schema validation", "error", err)
		respondJSON(w, http.StatusBadRequest, SchemaErrorResponse{
			Error:   ErrMsgSnapshotSchema,
			Details: err.Error(),
		})
		return
	}

	records, err := snapshot.ParseRecords(body)
	if err != nil {
		respondServiceError(w, r, "Snapshot ingest", err)
		return
	}

	result, err := h.quoteSvc.IngestSnapshots(r.Context(), records)
	if err != nil {
		respondServiceError(w, r, "Snapshot ingest", err)
		return
	}

	respondJSON(w, http.StatusOK, result)
}
