// Package tsp - unified dispatcher for the three solvers.
//
// Solve routes to Backtracking, NearestNeighbor, or TwoOpt by Algorithm.
// TwoOpt needs a seed tour: the dispatcher builds it with NearestNeighbor,
// the pairing the comparison harness uses. The returned Result describes the
// refinement step only (Elapsed/Expanded exclude the seed construction).
package tsp

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/tspbench/matrix"
)

// Algorithm selects a solver in Solve.
type Algorithm int

const (
	// ExactBacktracking is the exhaustive search (Backtracking).
	ExactBacktracking Algorithm = iota
	// GreedyNearestNeighbor is the nearest-neighbor construction.
	GreedyNearestNeighbor
	// GreedyTwoOpt is NearestNeighbor followed by TwoOpt refinement.
	GreedyTwoOpt
)

// Algorithms lists every Algorithm in the order the harness runs them.
var Algorithms = []Algorithm{ExactBacktracking, GreedyNearestNeighbor, GreedyTwoOpt}

// String returns the canonical CLI name.
func (a Algorithm) String() string {
	switch a {
	case ExactBacktracking:
		return "backtracking"
	case GreedyNearestNeighbor:
		return "greedy"
	case GreedyTwoOpt:
		return "two-opt"
	default:
		return fmt.Sprintf("Algorithm(%d)", int(a))
	}
}

// ParseAlgorithm maps a name (case-insensitive) to an Algorithm.
// Accepted: backtracking|exact, greedy|nn|nearest-neighbor, two-opt|2opt|2-opt.
func ParseAlgorithm(s string) (Algorithm, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "backtracking", "exact":
		return ExactBacktracking, nil
	case "greedy", "nn", "nearest-neighbor":
		return GreedyNearestNeighbor, nil
	case "two-opt", "2opt", "2-opt":
		return GreedyTwoOpt, nil
	default:
		return 0, fmt.Errorf("ParseAlgorithm(%q): %w", s, ErrUnsupportedAlgorithm)
	}
}

// Solve runs algo on dist.
//
// Errors: those of the selected solver, or ErrUnsupportedAlgorithm.
func Solve(dist matrix.Matrix, algo Algorithm, opts ...Option) (Result, error) {
	switch algo {
	case ExactBacktracking:
		return Backtracking(dist, opts...)

	case GreedyNearestNeighbor:
		return NearestNeighbor(dist, opts...)

	case GreedyTwoOpt:
		seed, err := NearestNeighbor(dist, opts...)
		if err != nil {
			return Result{}, err
		}

		return TwoOpt(dist, seed.Tour, opts...)

	default:
		return Result{}, fmt.Errorf("Solve: %v: %w", algo, ErrUnsupportedAlgorithm)
	}
}
