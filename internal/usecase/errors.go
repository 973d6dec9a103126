package usecase

import "errors"

// Error taxonomy of the core. All are local and recoverable; handlers map
// them to specific HTTP statuses and user-facing reasons.
var (
	ErrNotFound              = errors.New("resource not found")
	ErrValidationFailed      = errors.New("validation failed")
	ErrForbidden             = errors.New("forbidden")
	ErrConflict              = errors.New("resource conflict")
	ErrUnauthorized          = errors.New("unauthorized")
	ErrDependencyUnavailable = errors.New("dependency unavailable")
)
