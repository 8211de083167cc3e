package tsp

import "fmt"

// Option customizes a solver call.
// Option constructors validate and panic on meaningless input; solvers never panic.
type Option func(*config)

// config aggregates all solver knobs. Zero value = reference behavior.
type config struct {
	// lowerBound enables admissible pruning in Backtracking.
	lowerBound bool
	// maxPasses caps 2-opt outer passes; 0 means "until no swap improves".
	maxPasses int
}

func newConfig(opts ...Option) config {
	var cfg config
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}

// WithLowerBound enables prune-before-descent in Backtracking using the
// degree-1 relaxation: every city still to be left contributes its cheapest
// outgoing edge. The optimal tour and cost are unchanged; Expanded drops.
func WithLowerBound() Option {
	return func(c *config) { c.lowerBound = true }
}

// WithMaxPasses caps the number of 2-opt passes. When the cap is reached the
// best tour found so far is returned without error. Panics if k < 0.
func WithMaxPasses(k int) Option {
	if k < 0 {
		panic(fmt.Sprintf("tsp: WithMaxPasses(%d): must be ≥ 0", k))
	}

	return func(c *config) { c.maxPasses = k }
}
