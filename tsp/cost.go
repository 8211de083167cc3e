// Package tsp - cost model shared by every solver.
//
// TourCost is the single definition of route cost: the left-to-right sum of
// dist[t[i]][t[i+1]] over consecutive positions. The internal flatCost runs
// the very same summation over a prefetched buffer, so a cost computed inside
// a solver is bit-identical to TourCost on the returned tour.
//
// Complexity: O(len(tour)) time, O(1) extra space.
package tsp

import (
	"fmt"

	"github.com/katalvlaran/tspbench/matrix"
)

// TourCost sums the weights of consecutive edges along tour.
//
// Contract:
//   - dist must be non-nil and square (ErrNilMatrix, ErrNonSquare otherwise).
//   - every index must be in [0, n) (ErrCityOutOfRange otherwise).
//   - tour need not be closed; sequences shorter than 2 cost 0.
func TourCost(dist matrix.Matrix, tour []int) (float64, error) {
	n, err := checkShape("TourCost", dist)
	if err != nil {
		return 0, err
	}

	var (
		sum  float64
		i    int
		u, v int
		w    float64
	)
	for i = 0; i < len(tour); i++ {
		if tour[i] < 0 || tour[i] >= n {
			return 0, fmt.Errorf("TourCost: tour[%d]=%d, n=%d: %w", i, tour[i], n, ErrCityOutOfRange)
		}
	}
	for i = 0; i+1 < len(tour); i++ {
		u = tour[i]
		v = tour[i+1]
		w, err = dist.At(u, v)
		if err != nil {
			return 0, fmt.Errorf("TourCost: At(%d,%d): %w", u, v, err)
		}
		sum += w
	}

	return sum, nil
}

// flatCost is TourCost over a prefetched buffer. Indices are trusted.
func flatCost(w []float64, n int, tour []int) float64 {
	var (
		sum float64
		i   int
	)
	for i = 0; i+1 < len(tour); i++ {
		sum += w[tour[i]*n+tour[i+1]]
	}

	return sum
}
