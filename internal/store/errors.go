package store

import "errors"

// Sentinel errors returned by [StateStore] implementations. Callers should
// use [errors.Is] to match against these values.
var (
	// ErrNoSavedState is returned by Load when no bundle has been saved or
	// the last one was cleared.
	ErrNoSavedState = errors.New("no saved state")

	// ErrUnknownBackend is returned by [NewStateStore] for a backend name it
	// does not know.
	ErrUnknownBackend = errors.New("unknown saved state backend")
)
