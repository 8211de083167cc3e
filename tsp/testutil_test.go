// Package tsp_test provides lightweight testing helpers shared across *_test.go
// files in this package: fixtures, an independent brute-force oracle, and
// tour assertions.
package tsp_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/tspbench/builder"
	"github.com/katalvlaran/tspbench/matrix"
	"github.com/katalvlaran/tspbench/tsp"
)

// -----------------------------------------------------------------------------
// Fixtures
// -----------------------------------------------------------------------------

// square4Rows is the 4-city scenario: greedy and exact both give 0→1→3→2→0 = 13.
func square4Rows() [][]float64 {
	return [][]float64{
		{0, 1, 9, 9},
		{1, 0, 9, 2},
		{9, 9, 0, 1},
		{9, 2, 1, 0},
	}
}

// mustDist validates rows through the public boundary.
func mustDist(t testing.TB, rows [][]float64) *matrix.Dense {
	t.Helper()
	m, err := matrix.NewDistance(rows)
	require.NoError(t, err)

	return m
}

// randomDist builds a seeded random complete instance with weights in [1,100].
func randomDist(t testing.TB, n int, seed int64) *matrix.Dense {
	t.Helper()
	m, err := builder.RandomComplete(n, builder.WithSeed(seed))
	require.NoError(t, err)

	return m
}

// rawDense is a minimal matrix.Matrix without boundary validation, used to
// exercise the solvers' own shape guards.
type rawDense struct{ a [][]float64 }

var _ matrix.Matrix = rawDense{}

func (m rawDense) Rows() int { return len(m.a) }
func (m rawDense) Cols() int {
	if len(m.a) == 0 {
		return 0
	}

	return len(m.a[0])
}
func (m rawDense) At(i, j int) (float64, error) {
	if i < 0 || i >= m.Rows() || j < 0 || j >= m.Cols() {
		return 0, matrix.ErrIndexOutOfBounds
	}

	return m.a[i][j], nil
}

// -----------------------------------------------------------------------------
// Brute-force oracles (independent of the solvers under test)
// -----------------------------------------------------------------------------

// bruteForceOptimum enumerates every permutation of cities 1..n-1 and returns
// the minimum TourCost over all closed tours through the depot.
func bruteForceOptimum(t testing.TB, dist matrix.Matrix) float64 {
	t.Helper()
	n := dist.Rows()
	tour := make([]int, n+1)
	used := make([]bool, n)
	best := -1.0

	var rec func(depth int)
	rec = func(depth int) {
		if depth == n {
			tour[n] = 0
			c, err := tsp.TourCost(dist, tour)
			require.NoError(t, err)
			if best < 0 || c < best {
				best = c
			}

			return
		}
		for v := 1; v < n; v++ {
			if used[v] {
				continue
			}
			used[v] = true
			tour[depth] = v
			rec(depth + 1)
			used[v] = false
		}
	}
	tour[0] = 0
	used[0] = true
	rec(1)

	return best
}

// improvingReversal reports whether any reversal of tour[i..j] with
// 1 ≤ i < j ≤ n-1 strictly lowers the cost (independent 2-opt neighbourhood).
func improvingReversal(t testing.TB, dist matrix.Matrix, tour []int) bool {
	t.Helper()
	base, err := tsp.TourCost(dist, tour)
	require.NoError(t, err)
	n := len(tour) - 1
	for i := 1; i < n; i++ {
		for j := i + 1; j < n; j++ {
			cand := tsp.CopyTour(tour)
			for a, b := i, j; a < b; a, b = a+1, b-1 {
				cand[a], cand[b] = cand[b], cand[a]
			}
			c, err := tsp.TourCost(dist, cand)
			require.NoError(t, err)
			if c < base {
				return true
			}
		}
	}

	return false
}

// exactExpansions is Σ_{k=0}^{n-1} (n-1)!/(n-1-k)!: the number of recursive
// calls of an unpruned exhaustive search from the depot.
func exactExpansions(n int) int64 {
	var (
		total int64
		term  int64 = 1
	)
	for k := 0; k < n; k++ {
		total += term
		term *= int64(n - 1 - k)
	}

	return total
}

// -----------------------------------------------------------------------------
// Assertions
// -----------------------------------------------------------------------------

// requireResult checks the Hamiltonian invariants and that Cost is exactly
// TourCost of the returned tour.
func requireResult(t testing.TB, dist matrix.Matrix, res tsp.Result) {
	t.Helper()
	n := dist.Rows()
	require.NoError(t, tsp.ValidateTour(res.Tour, n), "tour %v", res.Tour)
	c, err := tsp.TourCost(dist, res.Tour)
	require.NoError(t, err)
	require.Equal(t, c, res.Cost, "reported cost must equal TourCost bit for bit")
}
