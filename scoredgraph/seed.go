// File: seed.go
// Role: The closed tagged union of seed strategies Run accepts, per
// spec.md §4.D/§9 ("implement as a sum type with exhaustive pattern
// matching"). Go has no sum types, so the union is modeled as a kind tag
// plus payload fields the constructors populate consistently; Run switches
// exhaustively over Kind.
package scoredgraph

import "github.com/katalvlaran/credgraph/graphstore"

// SeedKind discriminates the Seed union.
type SeedKind int

const (
	// NoSeedKind: alpha = 0, seed = uniform. No teleport at all.
	NoSeedKind SeedKind = iota
	// UniformSeedKind: alpha as given, seed = uniform.
	UniformSeedKind
	// SelectedSeedKind: alpha as given, seed = uniform over SelectedNodes
	// (collapsing to uniform-over-all if SelectedNodes is empty or, once
	// filtered to addresses present in the graph, covers every node).
	SelectedSeedKind
	// SpecifiedSeedKind: reserved; Run always rejects it with
	// ErrNotImplemented.
	SpecifiedSeedKind
)

// Seed is the closed union Run's seed argument is built from; construct one
// with NoSeed, UniformSeed, SelectedSeed, or SpecifiedSeed.
type Seed struct {
	Kind          SeedKind
	Alpha         float64
	SelectedNodes []graphstore.NodeAddress
	ScoreMap      map[graphstore.NodeAddress]float64
}

// NoSeed returns the NO_SEED strategy: alpha = 0, seed = uniform.
func NoSeed() Seed {
	return Seed{Kind: NoSeedKind}
}

// UniformSeed returns the UNIFORM_SEED strategy with the given teleport
// probability.
func UniformSeed(alpha float64) Seed {
	return Seed{Kind: UniformSeedKind, Alpha: alpha}
}

// SelectedSeed returns the SELECTED_SEED strategy: uniform mass spread over
// selectedNodes. Addresses absent from the graph are silently dropped
// (spec.md §9 open question, resolved in DESIGN.md); an empty or
// full-coverage selection collapses to uniform-over-all.
func SelectedSeed(alpha float64, selectedNodes []graphstore.NodeAddress) Seed {
	return Seed{Kind: SelectedSeedKind, Alpha: alpha, SelectedNodes: selectedNodes}
}

// SpecifiedSeed returns the SPECIFIED_SEED strategy. Run always rejects
// this with ErrNotImplemented; the constructor exists so callers can
// exercise that rejection without reaching into package internals.
func SpecifiedSeed(alpha float64, scoreMap map[graphstore.NodeAddress]float64) Seed {
	return Seed{Kind: SpecifiedSeedKind, Alpha: alpha, ScoreMap: scoreMap}
}
