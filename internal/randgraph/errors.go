package randgraph

import "errors"

var (
	// ErrTooFewVertices indicates n < 1.
	ErrTooFewVertices = errors.New("randgraph: n must be at least 1")

	// ErrInvalidProbability indicates p outside [0, 1].
	ErrInvalidProbability = errors.New("randgraph: p must be in [0, 1]")

	// ErrNeedRandSource indicates a stochastic draw (0 < p < 1) was
	// requested without an RNG configured.
	ErrNeedRandSource = errors.New("randgraph: rng is required for 0 < p < 1")
)
