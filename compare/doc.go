// Package compare runs the three TSP strategies on one generated instance
// and reports how they stack up.
//
// A run is driven by Config:
//
//  1. builder.RandomComplete produces one symmetric instance from the seed.
//  2. tsp.Backtracking runs when Cities ≤ ExactLimit; otherwise it is
//     recorded as skipped.
//  3. tsp.NearestNeighbor builds the greedy route.
//  4. tsp.TwoOpt refines the greedy route.
//
// The resulting Report renders as text, JSON, or YAML and carries a summary:
// greedy gap over the optimum and 2-opt gain over greedy, in percent.
//
// Logging goes through an injected *zap.Logger (a no-op by default). A
// Recorder, when attached, counts runs and expansions and observes solver
// durations on its own Prometheus registry.
package compare
