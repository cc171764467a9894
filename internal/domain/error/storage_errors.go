// Package error defines domain-specific errors for FINDASH.
package error

import "errors"

// Storage errors. Storage failures are never fatal: reads fall back to seed
// data and writes are logged and swallowed.
var (
	// ErrNoSavedState is returned when a collection has never been persisted.
	ErrNoSavedState = errors.New("no saved state")

	// ErrCorruptSavedState is returned when persisted data cannot be decoded.
	ErrCorruptSavedState = errors.New("corrupt saved state")
)
