package handler

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/osse101/PetFeed_Go/internal/logger"
)

// MaxRequestBodyBytes bounds every JSON request body
const MaxRequestBodyBytes = 4 << 20

// URL parameter and query names
const (
	URLParamTokenID = "tokenID"
	QueryHardCap    = "hard_cap"
)

// DecodeAndValidateRequest decodes a JSON request body, validates it, and returns appropriate errors.
// If this function returns an error, the HTTP response has already been written and the handler should return.
//
// Example usage:
//
//	var req FeedPlanRequest
//	if err := DecodeAndValidateRequest(r, w, &req, "Feed plan"); err != nil {
//	    return
//	}
func DecodeAndValidateRequest(r *http.Request, w http.ResponseWriter, req interface{}, actionName string) error {
	log := logger.FromContext(r.Context())

	body, err := readBody(w, r)
	if err != nil {
		return err
	}

	if err := json.Unmarshal(body, req); err != nil {
		log.Warn(fmt.Sprintf("Failed to decode %s request", actionName), "error", err)
		respondError(w, http.StatusBadRequest, ErrMsgInvalidRequest)
		return err
	}

	log.Debug(fmt.Sprintf("%s request decoded", actionName))

	if err := GetValidator().ValidateStruct(req); err != nil {
		respondJSON(w, http.StatusBadRequest, ValidationErrorResponse{
			Error:  ErrMsgInvalidRequestSummary,
			Fields: FormatValidationError(err),
		})
		return err
	}

	return nil
}

// readBody reads at most MaxRequestBodyBytes, answering 413 beyond that
func readBody(w http.ResponseWriter, r *http.Request) ([]byte, error) {
	body, err := io.ReadAll(http.MaxBytesReader(w, r.Body, MaxRequestBodyBytes))
	if err == nil {
		return body, nil
	}

	var tooLarge *http.MaxBytesError
	if errors.As(err, &tooLarge) {
		respondError(w, http.StatusRequestEntityTooLarge, ErrMsgRequestTooLarge)
	} else {
		respondError(w, http.StatusBadRequest, ErrMsgInvalidRequest)
	}
	logger.FromContext(r.Context()).Warn("Failed to read request body", "error", err)
	return nil, err
}

// ValidationErrorResponse defines the response structure for validation errors
type ValidationErrorResponse struct {
	Error  string            `json:"error"`
	Fields map[string]string `json:"fields"`
}

// GetOptionalQueryParam retrieves an optional query parameter from the request.
// It returns defaultValue when the parameter is missing.
func GetOptionalQueryParam(r *http.Request, paramName string, defaultValue string) string {
	value := r.URL.Query().Get(paramName)
	if value == "" {
		return defaultValue
	}
	return value
}

// getTokenID parses the {tokenID} path segment. If ok is false the response was written.
func getTokenID(w http.ResponseWriter, r *http.Request) (uint64, bool) {
	raw := chi.URLParam(r, URLParamTokenID)
	id, err := strconv.ParseUint(raw, 10, 64)
	if err != nil {
		logger.FromContext(r.Context()).Warn("Invalid token id", "tokenID", raw)
		respondError(w, http.StatusBadRequest, ErrMsgInvalidTokenID)
		return 0, false
	}
	return id, true
}

// getHardCap parses the optional hard_cap query parameter; zero selects the service default.
// If ok is false the response was written.
func getHardCap(w http.ResponseWriter, r *http.Request) (uint32, bool) {
	raw := GetOptionalQueryParam(r, QueryHardCap, "0")
	hardCap, err := strconv.ParseUint(raw, 10, 32)
	if err != nil || hardCap > MaxFeedHoursPerRequest {
		logger.FromContext(r.Context()).Warn("Invalid hard cap", "hardCap", raw)
		respondError(w, http.StatusBadRequest, ErrMsgInvalidHardCap)
		return 0, false
	}
	return uint32(hardCap), true
}
