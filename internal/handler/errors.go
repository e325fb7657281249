package handler

// Generic HTTP error messages for client responses.
// These messages intentionally do not expose internal error details.
// Both handlers and tests should reference these constants to maintain consistency.
const (
	// HTTP status messages
	ErrMsgInvalidRequest        = "Invalid request body"
	ErrMsgInvalidRequestSummary = "Invalid request"
	ErrMsgRequestTooLarge       = "Request body too large"

	// Parameter error messages
	ErrMsgInvalidTokenID = "Invalid token id"
	ErrMsgInvalidHardCap = "Invalid hard_cap parameter"

	// Snapshot error messages
	ErrMsgSnapshotSchema   = "Snapshot batch does not match the expected format"
	ErrMsgSnapshotNotFound = "No snapshot cached for this pet - upload one first"
)
