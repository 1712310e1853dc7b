package snapshot

import json "github.com/goccy/go-json"

// EnvelopeType is the fixed literal value Header.Type must carry.
const EnvelopeType = "credgraph.scoredgraph"

// EnvelopeVersion is the fixed literal value Header.Version must carry.
const EnvelopeVersion = 1

// Header identifies the envelope's schema and version.
type Header struct {
	Type    string `json:"type"`
	Version int    `json:"version"`
}

// Payload is the envelope's body: everything needed to reconstruct a
// scoredgraph.ScoredGraph.
type Payload struct {
	// GraphJSON is the host graph's canonical JSON, embedded verbatim
	// (not re-escaped as a string) via json.RawMessage.
	GraphJSON json.RawMessage `json:"graphJSON"`

	// Scores is one entry per node, in canonical (sorted) node-address order.
	Scores []float64 `json:"scores"`

	// ToWeights and FroWeights are one entry per edge, in canonical
	// (sorted) edge-address order.
	ToWeights  []float64 `json:"toWeights"`
	FroWeights []float64 `json:"froWeights"`

	SyntheticLoopWeight float64 `json:"syntheticLoopWeight"`
}

// Envelope is the full persisted form.
type Envelope struct {
	Header  Header  `json:"header"`
	Payload Payload `json:"payload"`
}
