// Package snapshot implements the scoring engine's canonical external form:
// a versioned envelope wrapping the host graph's canonical JSON, the score
// and weight arrays in canonical (sorted) order, and the synthetic loop
// weight. Serialize/Deserialize round-trip a scoredgraph.ScoredGraph
// through this envelope; because every array is built in sorted-address
// order rather than construction/insertion order, two overlays that differ
// only in how their graphs were built produce byte-identical output
// (spec.md §8 property 4, "canonicality").
//
// Marshaling uses github.com/goccy/go-json, the same drop-in
// encoding/json-compatible encoder graphstore.CanonicalJSON uses, so field
// order (and therefore byte-identical output) follows Go struct-tag
// declaration order exactly as encoding/json would produce.
package snapshot
