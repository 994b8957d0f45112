package errs

import "errors"

// Workflow error taxonomy shared by the usecase layers. Every failure that
// leaves the workflow boundary is marked with exactly one of these so the
// handler layer can map it to a status code and an actionable message.
var (
	// Input failed validation; the caller can fix the payload and retry.
	ErrValidation = errors.New("validation failed")

	// Transition attempted from a state that does not permit it. Not
	// retryable without re-reading the current state.
	ErrInvalidState = errors.New("invalid state for requested transition")

	// The quote (or its parent request) passed its validity window.
	ErrExpired = errors.New("expired")

	// A concurrent transition won the compare-and-swap race. The caller may
	// re-fetch and retry once.
	ErrConflict = errors.New("concurrent transition conflict")

	// The quote was already converted into a booking. Terminal.
	ErrAlreadyConverted = errors.New("quote already converted")

	// Auth failures. NotAuthenticated means no valid session was presented,
	// NotAuthorized means the role does not permit the action.
	ErrNotAuthenticated = errors.New("not authenticated")
	ErrNotAuthorized    = errors.New("not authorized")

	// Entity lookups.
	ErrQuoteNotFound        = errors.New("quote not found")
	ErrRequestNotFound      = errors.New("request not found")
	ErrQuoteRequestNotFound = errors.New("quote request not found")
	ErrBookingNotFound      = errors.New("booking not found")

	// Transport-level failures surfaced by the request layer.
	ErrTimedOut = errors.New("request timed out")

	// Operation errors.
	ErrDatabaseOperationFailed = errors.New("database operation failed")
)
