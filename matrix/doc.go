// SPDX-License-Identifier: MIT

// Package matrix provides the distance matrix consumed by every TSP solver.
//
// A distance matrix is an N×N table of weights where At(i, j) is the cost of
// travelling directly from city i to city j. This package owns the boundary
// validation of that table: once NewDistance (or NewDistanceFlat) returns a
// *Dense, callers may rely on the following invariants without re-checking:
//
//   - square, N ≥ 1;
//   - zero diagonal;
//   - finite, non-negative entries;
//   - symmetric (At(i, j) == At(j, i)).
//
// *Dense exposes no mutators, so a validated matrix stays valid for its whole
// lifetime and can be shared read-only between solvers and goroutines.
//
// Example:
//
//	m, err := matrix.NewDistance([][]float64{
//		{0, 1, 9},
//		{1, 0, 2},
//		{9, 2, 0},
//	})
//	if err != nil {
//		// errors.Is(err, matrix.ErrAsymmetry), ...
//	}
//	w, _ := m.At(0, 1) // 1
package matrix
