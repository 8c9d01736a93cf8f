// Package apperr defines the domain error taxonomy. Repositories and
// services wrap these sentinels with fmt.Errorf and %w; handlers translate
// them to HTTP status codes at the boundary.
package apperr

import "errors"

var (
	// ErrNotFound marks a missing or soft-deleted row.
	ErrNotFound = errors.New("not found")

	// ErrInvalidOperation marks a business-rule violation, such as
	// reacting to your own content or writing to an archived conversation.
	ErrInvalidOperation = errors.New("invalid operation")

	// ErrValidation marks malformed input rejected before any store access.
	ErrValidation = errors.New("validation failed")

	// ErrDuplicate marks a uniqueness-constraint violation. The reaction
	// toggle catches it and retries once as an update; it never reaches
	// the caller.
	ErrDuplicate = errors.New("duplicate row")
)
