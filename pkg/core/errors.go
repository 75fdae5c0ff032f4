package core

import "errors"

// Common errors.
var (
	// ErrUnsupported is returned by an Inspector on platforms without
	// foreground-window introspection.
	ErrUnsupported = errors.New("foreground inspection not supported on this platform")

	// ErrDuplicateID is returned when adding a note whose ID is already
	// present in a store.
	ErrDuplicateID = errors.New("note with this ID already exists")
)
