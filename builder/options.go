// SPDX-License-Identifier: MIT
// Package: tspbench/builder
//
// options.go — functional options and the resolved builder configuration.
//
// Contract:
//   • Options are functional (type BuilderOption func(*builderConfig)).
//   • Option constructors panic on meaningless inputs (nil RNG, nil WeightFn).
//   • Determinism is explicit: the default RNG is seeded with DefaultSeed.
//   • Options apply in order; later ones override earlier ones.

package builder

import "math/rand"

// Deterministic defaults.
const (
	// DefaultSeed seeds the RNG when neither WithSeed nor WithRand is given.
	DefaultSeed int64 = 1
	// DefaultMaxDistance is the upper bound of the default weight draw.
	DefaultMaxDistance = 100
	// MinDistance is the lower bound of the default weight draw.
	MinDistance = 1
)

// BuilderOption customizes a constructor by mutating builderConfig.
type BuilderOption func(*builderConfig)

// builderConfig aggregates all knobs used by constructors.
type builderConfig struct {
	rng         *rand.Rand
	maxDistance int
	// weightFn overrides the uniform integer draw when non-nil.
	weightFn WeightFn
}

// newBuilderConfig returns defaults with opts applied in order.
func newBuilderConfig(opts ...BuilderOption) builderConfig {
	cfg := builderConfig{maxDistance: DefaultMaxDistance}
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.rng == nil {
		cfg.rng = rand.New(rand.NewSource(DefaultSeed))
	}

	return cfg
}

// WithSeed creates a new *rand.Rand with the given seed (deterministic).
func WithSeed(seed int64) BuilderOption {
	return func(c *builderConfig) {
		c.rng = rand.New(rand.NewSource(seed))
	}
}

// WithRand provides an explicit RNG. The builder advances its state.
// Panics on nil; prefer WithSeed for reproducible runs.
func WithRand(r *rand.Rand) BuilderOption {
	if r == nil {
		panic("builder: WithRand(nil)")
	}

	return func(c *builderConfig) {
		c.rng = r
	}
}

// WithMaxDistance sets the inclusive upper bound of the default weight draw.
// Values below 1 are reported by the constructor as ErrBadMaxDistance.
func WithMaxDistance(d int) BuilderOption {
	return func(c *builderConfig) {
		c.maxDistance = d
	}
}

// WithWeightFn overrides the per-pair weight generator. WithMaxDistance is
// ignored when a custom generator is set. Panics on nil.
func WithWeightFn(fn WeightFn) BuilderOption {
	if fn == nil {
		panic("builder: WithWeightFn(nil)")
	}

	return func(c *builderConfig) {
		c.weightFn = fn
	}
}
