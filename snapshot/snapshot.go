// File: snapshot.go
// Role: Serialize/Deserialize, the round-trip pair spec.md §4.E and §8
// property 3 require. Canonicality (byte-identical output regardless of
// construction order, property 4) falls out of ScoredGraph.CanonicalScores
// / CanonicalWeights / graphstore.CanonicalJSON already sorting by address;
// this file adds no ordering logic of its own.
package snapshot

import (
	"fmt"

	json "github.com/goccy/go-json"
	"github.com/katalvlaran/credgraph/graphstore"
	"github.com/katalvlaran/credgraph/scoredgraph"
)

// Serialize encodes sg into the canonical envelope form.
func Serialize(sg *scoredgraph.ScoredGraph) ([]byte, error) {
	graphJSON, err := sg.Graph().CanonicalJSON()
	if err != nil {
		return nil, fmt.Errorf("snapshot: serialize: %w", err)
	}
	scores, err := sg.CanonicalScores()
	if err != nil {
		return nil, fmt.Errorf("snapshot: serialize: %w", err)
	}
	toWeights, froWeights, err := sg.CanonicalWeights()
	if err != nil {
		return nil, fmt.Errorf("snapshot: serialize: %w", err)
	}

	env := Envelope{
		Header: Header{Type: EnvelopeType, Version: EnvelopeVersion},
		Payload: Payload{
			GraphJSON:           graphJSON,
			Scores:              scores,
			ToWeights:           toWeights,
			FroWeights:          froWeights,
			SyntheticLoopWeight: sg.SyntheticLoopWeight(),
		},
	}

	return json.Marshal(env)
}

// Deserialize decodes data into a ScoredGraph. Returns ErrCompatMismatch if
// the header's type or version does not match EnvelopeType/EnvelopeVersion.
func Deserialize(data []byte) (*scoredgraph.ScoredGraph, error) {
	var env Envelope
	if err := json.Unmarshal(data, &env); err != nil {
		return nil, fmt.Errorf("snapshot: deserialize: %w", err)
	}
	if env.Header.Type != EnvelopeType || env.Header.Version != EnvelopeVersion {
		return nil, fmt.Errorf("snapshot: deserialize: header {%s v%d}: %w",
			env.Header.Type, env.Header.Version, ErrCompatMismatch)
	}

	g, err := graphstore.FromCanonicalJSON(env.Payload.GraphJSON)
	if err != nil {
		return nil, fmt.Errorf("snapshot: deserialize: %w", err)
	}

	sg, err := scoredgraph.FromCanonical(g, env.Payload.ToWeights, env.Payload.FroWeights, env.Payload.Scores, env.Payload.SyntheticLoopWeight)
	if err != nil {
		return nil, fmt.Errorf("snapshot: deserialize: %w", err)
	}

	return sg, nil
}
