package domain

import "errors"

// Error message string constants - single source of truth for error messages
// Use these in assert.Contains() checks when testing error messages
const (
	// Snapshot errors
	ErrMsgInvalidSnapshot  = "invalid feeding snapshot"
	ErrMsgSnapshotNotFound = "snapshot not found"

	// Reward errors
	ErrMsgRewardOverflow = "reward overflow"

	// Input errors
	ErrMsgInvalidInput = "invalid input"
)

// Common domain errors
// These errors should be used consistently across all layers of the application.
// Wrap these errors with fmt.Errorf("%w: %s", domain.ErrXxx, details) for additional context.
var (
	ErrInvalidSnapshot  = errors.New(ErrMsgInvalidSnapshot)
	ErrSnapshotNotFound = errors.New(ErrMsgSnapshotNotFound)
	ErrRewardOverflow   = errors.New(ErrMsgRewardOverflow)
	ErrInvalidInput     = errors.New(ErrMsgInvalidInput)
)

// ErrorKind tags a per-token result that could not be computed normally.
// The zero value means no error.
type ErrorKind string

const (
	ErrorKindNone            ErrorKind = ""
	ErrorKindInvalidSnapshot ErrorKind = "invalid_snapshot"
	ErrorKindOverflow        ErrorKind = "overflow"
)

// Err returns the sentinel error for the kind, or nil for ErrorKindNone
func (k ErrorKind) Err() error {
	switch k {
	case ErrorKindNone:
		return nil
	case ErrorKindInvalidSnapshot:
		return ErrInvalidSnapshot
	case ErrorKindOverflow:
		return ErrRewardOverflow
	default:
		return errors.New(string(k))
	}
}

// ErrorKindOf classifies an error produced by the engine
func ErrorKindOf(err error) ErrorKind {
	switch {
	case err == nil:
		return ErrorKindNone
	case errors.Is(err, ErrRewardOverflow):
		return ErrorKindOverflow
	default:
		return ErrorKindInvalidSnapshot
	}
}
