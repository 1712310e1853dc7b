// File: options.go
// Role: Functional-options config for BuildRandomSparse, grounded on the
// teacher's builder.BuilderOption / WithSeed / WithRand / WithIDScheme.
package randgraph

import (
	"fmt"
	"math/rand"
)

// config is resolved from Option values before BuildRandomSparse samples
// any edges.
type config struct {
	rng    *rand.Rand
	idFunc func(int) string
}

// Option customizes BuildRandomSparse.
type Option func(*config)

// WithRand provides an explicit RNG. Prefer WithSeed for reproducible runs.
func WithRand(r *rand.Rand) Option {
	return func(c *config) { c.rng = r }
}

// WithSeed creates a deterministic RNG from seed.
func WithSeed(seed int64) Option {
	return func(c *config) { c.rng = rand.New(rand.NewSource(seed)) }
}

// WithIDPrefix sets the node-address naming scheme: address i is
// fmt.Sprintf(prefix+"%02d", i). Defaults to "n".
func WithIDPrefix(prefix string) Option {
	return func(c *config) {
		c.idFunc = func(i int) string { return fmt.Sprintf("%s%02d", prefix, i) }
	}
}

func newConfig(opts []Option) config {
	cfg := config{idFunc: func(i int) string { return fmt.Sprintf("n%02d", i) }}
	for _, o := range opts {
		o(&cfg)
	}

	return cfg
}
