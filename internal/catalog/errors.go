package catalog

import "errors"

var (
	// ErrNotFound indicates the requested entry doesn't exist.
	ErrNotFound = errors.New("not found")

	// ErrConstraint indicates a check constraint violation.
	ErrConstraint = errors.New("constraint violation")

	// ErrInvalidEntry indicates the entry failed validation.
	ErrInvalidEntry = errors.New("invalid entry")

	// ErrInvalidView indicates an unknown view selector.
	ErrInvalidView = errors.New("invalid view")

	// ErrInvalidMediaType indicates an unknown media type.
	ErrInvalidMediaType = errors.New("invalid media type")
)
