package tenant

import "errors"

var (
	// ErrNotFound is returned when an enterprise or entity id does not
	// resolve against the current state.
	ErrNotFound = errors.New("not found")

	// ErrInvalidTransition is returned when a repair or ticket status
	// change does not follow its lifecycle.
	ErrInvalidTransition = errors.New("invalid status transition")

	// ErrStorageCorrupt marks a persisted blob that failed to decode.
	// Load paths treat it like absence and fall back to seed data; it
	// never propagates past the store boundary.
	ErrStorageCorrupt = errors.New("storage corrupt")
)
