package storage

import "errors"

// Common errors returned by storage implementations.
var (
	// ErrNotDir is returned by Sources when the source root exists but is not a directory.
	ErrNotDir = errors.New("not a directory")
)
