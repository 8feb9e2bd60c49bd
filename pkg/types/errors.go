package types

import "errors"

// Sentinel errors surfaced by the fileindex, merkle, and indexer packages.
// These are reported on result structs or returned values, never
// panicked.
var (
	// ErrInvalidInput covers a malformed glob, a missing root directory,
	// or any other caller-supplied value rejected at the boundary.
	ErrInvalidInput = errors.New("codeintel: invalid input")

	// ErrNotFound names the case of a requested path with no entry. No
	// function in this module returns it; FileIndex.Get reports a missing
	// path with its boolean result.
	ErrNotFound = errors.New("codeintel: not found")

	// ErrCorrupt is returned by deserialize/load on a bad magic, version
	// mismatch, or truncated payload. It never mutates existing state.
	ErrCorrupt = errors.New("codeintel: corrupt data")
)
