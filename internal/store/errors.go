package store

import "errors"

// ErrPersist wraps backend failures. The in-memory change was applied before the
// save failed and is kept.
var ErrPersist = errors.New("failed to persist state")

// ErrClosed is returned by mutations after Close
var ErrClosed = errors.New("store is closed")

func isPersistErr(err error) bool {
	return errors.Is(err, ErrPersist)
}

// ErrInvalidState is returned when an imported state has missing or duplicate IDs
var ErrInvalidState = errors.New("invalid state")
