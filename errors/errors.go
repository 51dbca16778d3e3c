// Package errors defines all exported error sentinels for the fixedset library.
//
// This is the single source of truth for error values. Both the top-level
// fixedset package and internal hash family packages import from here,
// ensuring errors.Is checks work across package boundaries.
package errors

import "errors"

// Build errors
var (
	ErrBadHashFunction    = errors.New("fixedset: no acceptable hash function found within the attempt ceiling")
	ErrDuplicateKey       = errors.New("fixedset: duplicate key detected")
	ErrInvalidMaxAttempts = errors.New("fixedset: attempt ceiling must be positive")
	ErrUnknownFamily      = errors.New("fixedset: unknown hash family ID")
)
