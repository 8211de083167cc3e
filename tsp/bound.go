// Package tsp — degree-1 relaxation lower bound for Backtracking.
//
// In a Hamiltonian cycle every city has exactly one outgoing and one incoming
// edge. For a partial path 0 → … → last, outgoing edges are still open for
// `last` and every unvisited city; incoming edges are still open for the depot
// and every unvisited city. Each open edge costs at least the cheapest edge of
// its endpoint, hence
//
//	LB = costSoFar + max( Σ minOut(open-out), Σ minIn(open-in) ) ≤ any completion.
//
// On symmetric input minOut == minIn; both sums are kept so the bound stays
// admissible even for matrices built outside matrix.NewDistance.
package tsp

import "math"

// boundEps keeps pruning conservative against float rounding: a child is cut
// only when its bound clears the incumbent by more than this slack.
const boundEps = 1e-9

// precomputeMinima fills minOut/minIn, excluding self-loops.
// For n == 1 both stay 0 (the only edge is the diagonal).
func (e *btEngine) precomputeMinima() {
	var (
		inf    = math.Inf(1)
		u, v   int
		mo, mi float64
	)
	e.minOut = make([]float64, e.n)
	e.minIn = make([]float64, e.n)
	if e.n == 1 {
		return
	}
	for v = 0; v < e.n; v++ {
		mo, mi = inf, inf
		for u = 0; u < e.n; u++ {
			if u == v {
				continue
			}
			if c := e.at(v, u); c < mo {
				mo = c
			}
			if c := e.at(u, v); c < mi {
				mi = c
			}
		}
		e.minOut[v] = mo
		e.minIn[v] = mi
	}
}

// lowerBound evaluates the bound for the current visited set where `last`
// is the city just pushed and costSoFar already includes the edge into it.
//
// Complexity: O(n).
func (e *btEngine) lowerBound(costSoFar float64, last int) float64 {
	var (
		sumOut, sumIn float64
		v             int
	)
	for v = 0; v < e.n; v++ {
		if e.visited[v] {
			if v == last {
				sumOut += e.minOut[v]
			}
			if v == Depot {
				sumIn += e.minIn[v]
			}
			continue
		}
		sumOut += e.minOut[v]
		sumIn += e.minIn[v]
	}

	return costSoFar + math.Max(sumOut, sumIn)
}
