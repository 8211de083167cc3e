// Package tsp — nearest-neighbor greedy construction.
//
// Deterministic NN from the depot: at each of the n−1 steps every city is
// scanned in index order and the unvisited one with the strictly smallest
// edge from the current city is taken. A candidate replaces the incumbent
// only on a strictly lower weight, so the lowest-indexed minimum wins ties.
//
// Expanded counts each scanned candidate, visited or not, to mirror the
// exhaustive solver's "one unit per state looked at": always n·(n−1).
//
// Complexity: O(n²) time, O(n) space.
package tsp

import (
	"math"
	"time"

	"github.com/katalvlaran/tspbench/matrix"
)

// NearestNeighbor builds one closed tour greedily. It has no optimality
// guarantee and always succeeds on a valid matrix. Options are accepted for
// signature symmetry with the other solvers; none currently apply.
//
// Errors: ErrNilMatrix, ErrNonSquare.
func NearestNeighbor(dist matrix.Matrix, opts ...Option) (Result, error) {
	start := time.Now()
	_ = newConfig(opts...)

	n, w, err := prefetch("NearestNeighbor", dist)
	if err != nil {
		return Result{}, err
	}

	var (
		visited  = make([]bool, n)
		tour     = make([]int, 0, n+1)
		cost     float64
		expanded int64
		cur      = Depot
	)
	visited[Depot] = true
	tour = append(tour, Depot)

	var (
		step, c  int
		next     int
		best, wc float64
	)
	for step = 0; step < n-1; step++ {
		best = math.Inf(1)
		next = -1
		for c = 0; c < n; c++ {
			expanded++
			if visited[c] {
				continue
			}
			wc = w[cur*n+c]
			if next < 0 || wc < best {
				best = wc
				next = c
			}
		}
		tour = append(tour, next)
		visited[next] = true
		cost += best
		cur = next
	}

	// Close the cycle at the depot.
	cost += w[cur*n+Depot]
	tour = append(tour, Depot)

	return Result{
		Tour:     tour,
		Cost:     cost,
		Elapsed:  time.Since(start),
		Expanded: expanded,
	}, nil
}
