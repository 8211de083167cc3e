// Package tsp - 2-opt local search (segment reversal).
//
// TwoOpt repeatedly scans every position pair (i, j) with 1 ≤ i < j ≤ n−1 and
// tries reversing tour[i..j]. The depot slots 0 and n are never touched, and
// every interior position is reachable, so the neighbourhood is exactly
// "all reversals that keep the depot fixed".
//
// Acceptance policy (scan-through first improvement):
//   - a candidate is costed with flatCost, the same summation as TourCost;
//   - a strictly lower cost is accepted on the spot and the scan continues
//     with (i, j+1) against the updated tour;
//   - a pass that accepts nothing ends the search (local optimum).
//
// Costs therefore never increase and the result is bit-identical to
// TourCost(dist, result.Tour). Candidates are applied in place and undone by a
// second reversal, so a pass allocates nothing.
//
// Termination: each accepted move strictly lowers a cost drawn from a finite
// set of tours, so the number of passes is finite. WithMaxPasses adds a hard
// cap for callers that want one; by default there is none.
//
// Complexity: O(n) per candidate, O(n³) per pass, O(n) extra space.
package tsp

import (
	"fmt"
	"time"

	"github.com/katalvlaran/tspbench/matrix"
)

// TwoOpt refines initTour and returns a tour whose cost is ≤ the input cost.
// initTour is never mutated.
//
// Result.Expanded counts candidate evaluations, Result.Passes outer passes
// (≥ 1), Result.Swaps accepted moves.
//
// Errors: ErrNilMatrix, ErrNonSquare, ErrInvalidTour / ErrCityOutOfRange.
func TwoOpt(dist matrix.Matrix, initTour []int, opts ...Option) (Result, error) {
	start := time.Now()
	cfg := newConfig(opts...)

	n, w, err := prefetch("TwoOpt", dist)
	if err != nil {
		return Result{}, err
	}
	if err = ValidateTour(initTour, n); err != nil {
		return Result{}, fmt.Errorf("TwoOpt: %w", err)
	}

	// Working copy keeps the caller's tour immutable.
	cur := CopyTour(initTour)
	cost := flatCost(w, n, cur)

	var (
		passes   int
		swaps    int
		expanded int64
		improved bool
		i, j     int
		cand     float64
	)
	for {
		passes++
		improved = false

		for i = 1; i <= n-2; i++ {
			for j = i + 1; j <= n-1; j++ {
				reverseSegment(cur, i, j)
				expanded++
				cand = flatCost(w, n, cur)
				if cand < cost {
					cost = cand
					swaps++
					improved = true
					continue
				}
				reverseSegment(cur, i, j) // undo
			}
		}

		if !improved {
			break
		}
		if cfg.maxPasses > 0 && passes >= cfg.maxPasses {
			break
		}
	}

	return Result{
		Tour:     cur,
		Cost:     cost,
		Elapsed:  time.Since(start),
		Expanded: expanded,
		Passes:   passes,
		Swaps:    swaps,
	}, nil
}
