package stats

import "errors"

// Error taxonomy surfaced by every engine operation. Callers classify
// with errors.Is; the messages carry the offending arguments.
var (
	// ErrInvalidArgument reports a missing required name or a non-positive limit.
	ErrInvalidArgument = errors.New("invalid argument")

	// ErrNotFound reports a well-formed single-entity lookup that matched
	// zero facts. Collection operations return empty slices instead.
	ErrNotFound = errors.New("not found")

	// ErrStoreUnavailable wraps a failed read from the fact store.
	ErrStoreUnavailable = errors.New("fact store unavailable")
)
