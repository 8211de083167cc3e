// Package tsp — exhaustive backtracking search (exact).
//
// Backtracking enumerates every Hamiltonian cycle through the depot by
// depth-first search, keeping the best completed route as the incumbent.
//
// Rationale (succinct):
//  1. Search state lives in an engine struct owned by one call: no closures
//     over shared variables, no package-level state.
//  2. The partial route is a preallocated slice mutated with push/pop
//     (path[depth] = v … visited[v] = false on return): zero allocations per
//     branch, only on incumbent updates.
//  3. Branching order is ascending city index, so the search visits routes
//     in lexicographic order and the first optimal route found is reported.
//  4. The incumbent is replaced only on a strictly lower total cost.
//  5. Expanded counts every invocation of the recursive step, including the
//     ones that close a complete route: Σ_{k=0}^{n−1} (n−1)!/(n−1−k)!.
//
// Optional pruning (WithLowerBound): before descending into a child the
// degree-1 relaxation bound is evaluated (see bound.go). A child whose bound
// is not below the incumbent cannot contain a strictly better completion and
// is skipped, so the reported tour and cost are unchanged; only Expanded drops.
//
// Complexity:
//   - O((n−1)!) expansions without pruning; O(n) per expansion with pruning.
//   - Memory: O(n²) prefetch + O(n) search state.
package tsp

import (
	"fmt"
	"math"
	"time"

	"github.com/katalvlaran/tspbench/matrix"
)

// btEngine holds all search data for one Backtracking call.
type btEngine struct {
	n int
	w []float64 // dense buffer: w[u*n+v]

	// Pruning policy and precomputes (bound.go).
	useBound bool
	minOut   []float64
	minIn    []float64

	// Current search state.
	visited []bool
	path    []int // path[0:depth], path[0] == Depot; len n+1

	// Incumbent.
	bestTour []int
	bestCost float64
	found    bool

	expanded int64
}

// at is a fast accessor into the dense weight buffer.
func (e *btEngine) at(u, v int) float64 { return e.w[u*e.n+v] }

// commit records the completed route path[0:n] + Depot as the new incumbent.
func (e *btEngine) commit(total float64) {
	e.path[e.n] = Depot
	copy(e.bestTour, e.path)
	e.bestCost = total
	e.found = true
}

// search is the recursive step: one call == one expansion.
// depth is the number of cities on the path, last == path[depth-1].
func (e *btEngine) search(last, depth int, costSoFar float64) {
	e.expanded++

	// All cities placed: close the cycle at the depot.
	if depth == e.n {
		total := costSoFar + e.at(last, Depot)
		if !e.found || total < e.bestCost {
			e.commit(total)
		}

		return
	}

	var (
		v int
		c float64
	)
	for v = 0; v < e.n; v++ {
		if e.visited[v] {
			continue
		}
		c = costSoFar + e.at(last, v)

		// push
		e.visited[v] = true
		e.path[depth] = v

		if e.useBound && e.found && e.lowerBound(c, v) >= e.bestCost+boundEps {
			e.visited[v] = false // pruned before descent; not an expansion
			continue
		}
		e.search(v, depth+1, c)

		// pop
		e.visited[v] = false
	}
}

// Backtracking returns a globally optimal tour by exhaustive search.
//
// Contract:
//   - dist is a validated n×n distance matrix, 1 ≤ n ≤ MaxExactCities.
//   - n == 1 yields Tour [0 0], Cost dist[0][0] (= 0), Expanded 1.
//
// Errors: ErrNilMatrix, ErrNonSquare, ErrTooManyCities (all before search).
func Backtracking(dist matrix.Matrix, opts ...Option) (Result, error) {
	start := time.Now()
	cfg := newConfig(opts...)

	n, err := checkShape("Backtracking", dist)
	if err != nil {
		return Result{}, err
	}
	if n > MaxExactCities {
		return Result{}, fmt.Errorf("Backtracking: n=%d > %d: %w", n, MaxExactCities, ErrTooManyCities)
	}

	var e btEngine
	e.n, e.w, err = prefetch("Backtracking", dist)
	if err != nil {
		return Result{}, err
	}
	e.useBound = cfg.lowerBound
	if e.useBound {
		e.precomputeMinima()
	}

	e.visited = make([]bool, n)
	e.path = make([]int, n+1)
	e.bestTour = make([]int, n+1)
	e.bestCost = math.Inf(1)
	e.path[0] = Depot
	e.visited[Depot] = true

	e.search(Depot, 1, 0)

	return Result{
		Tour:     e.bestTour,
		Cost:     e.bestCost,
		Elapsed:  time.Since(start),
		Expanded: e.expanded,
	}, nil
}
