// File: errors.go
// Role: Sentinel error set for the chain package. Grounded on the teacher's
// matrix/errors.go banner convention: only sentinels are exported, callers
// branch with errors.Is, and context is attached via fmt.Errorf("%w", ...)
// at call sites rather than baked into the sentinel message.
package chain

import "errors"

var (
	// ErrDimensionMismatch indicates two vectors (or a vector and a chain)
	// passed to the same operation have incompatible lengths.
	ErrDimensionMismatch = errors.New("chain: dimension mismatch")

	// ErrInvalidWeight indicates a column entry is negative, NaN, or infinite.
	ErrInvalidWeight = errors.New("chain: invalid weight")

	// ErrNumeric indicates a column's weights do not sum to 1 within epsilon.
	ErrNumeric = errors.New("chain: column does not sum to one")

	// ErrInvalidAlpha indicates a teleport probability outside [0, 1].
	ErrInvalidAlpha = errors.New("chain: alpha out of range")

	// ErrEmptySelection indicates Indicator was asked to build a distribution
	// over a selected set that shares no members with order, while selected
	// is itself non-empty (a genuinely disjoint, non-empty selection has no
	// well-defined indicator distribution).
	ErrEmptySelection = errors.New("chain: selected set disjoint from order")

	// ErrNonPositiveSize indicates Uniform was asked to build a distribution
	// over zero or fewer states.
	ErrNonPositiveSize = errors.New("chain: size must be positive")
)
