package snapshot

import "errors"

var (
	// ErrCompatMismatch indicates the envelope header's type or version
	// does not match what this package produces.
	ErrCompatMismatch = errors.New("snapshot: incompatible envelope header")
)
