package solver

import "errors"

var (
	// ErrDimensionMismatch indicates the initial distribution or seed does
	// not match the chain's length.
	ErrDimensionMismatch = errors.New("solver: dimension mismatch")

	// ErrInvalidAlpha indicates a teleport probability outside [0, 1].
	ErrInvalidAlpha = errors.New("solver: alpha out of range")

	// ErrNegativeThreshold indicates a negative convergenceThreshold was supplied.
	ErrNegativeThreshold = errors.New("solver: convergence threshold must be non-negative")

	// ErrNegativeMaxIterations indicates a negative maxIterations was supplied.
	ErrNegativeMaxIterations = errors.New("solver: maxIterations must be non-negative")
)
