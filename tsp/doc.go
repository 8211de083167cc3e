// Package tsp provides the three symmetric-TSP strategies compared by tspbench
// and the cost model they share.
//
// All solvers work on a read-only matrix.Matrix and return a Result whose
// Tour starts and ends at city 0 (the depot):
//
//   - Backtracking: exhaustive depth-first search with incumbent tracking.
//     Globally optimal; O((n−1)!) expansions. Optional admissible pruning via
//     WithLowerBound. Refuses n > MaxExactCities.
//
//   - NearestNeighbor: greedy construction; at each step the strictly closest
//     unvisited city is chosen (lowest index wins ties). O(n²).
//
//   - TwoOpt: segment-reversal local search seeded by any valid tour
//     (typically NearestNeighbor). Every candidate is costed with the same
//     summation as TourCost, so costs are comparable across solvers bit for bit.
//     O(n³) per pass; passes repeat until none improves.
//
// TourCost is the single definition of route cost.
//
// Work counters (Result.Expanded) intentionally differ per solver:
//
//   - Backtracking counts recursive invocations, including the ones that
//     close a complete route;
//   - NearestNeighbor counts every scanned candidate, visited or not,
//     so it is always n·(n−1);
//   - TwoOpt counts candidate evaluations.
//
// Inputs are expected to come from matrix.NewDistance, which enforces the
// complete-graph invariants. Solvers only run a cheap shape guard and return
// ErrNilMatrix / ErrNonSquare before starting any search.
//
// No logging, no goroutines, no I/O. Every call owns its working state, so
// solvers may run concurrently on the same matrix.
package tsp
