// Package tsp - shape guard and weight prefetch shared by all solvers.
//
// Full value validation (diagonal, negativity, symmetry, NaN/Inf) happens once
// at the boundary in matrix.NewDistance. Solvers only need to know the matrix
// is non-nil and square so that every index they generate is in range; this
// guard is O(1) plus the O(n²) prefetch that every solver performs anyway.
package tsp

import (
	"fmt"

	"github.com/katalvlaran/tspbench/matrix"
)

// checkShape returns n for a non-nil square matrix with n ≥ 1.
//
// Complexity: O(1).
func checkShape(method string, dist matrix.Matrix) (int, error) {
	if dist == nil {
		return 0, fmt.Errorf("%s: %w", method, ErrNilMatrix)
	}
	var (
		nr = dist.Rows()
		nc = dist.Cols()
	)
	if nr != nc || nr < 1 {
		return 0, fmt.Errorf("%s: %dx%d: %w", method, nr, nc, ErrNonSquare)
	}

	return nr, nil
}

// prefetch copies dist into a dense row-major buffer w[u*n+v] so that hot
// loops avoid interface calls and error plumbing.
//
// Complexity: O(n²) time and space.
func prefetch(method string, dist matrix.Matrix) (int, []float64, error) {
	n, err := checkShape(method, dist)
	if err != nil {
		return 0, nil, err
	}

	w := make([]float64, n*n)
	var (
		i, j int
		x    float64
	)
	for i = 0; i < n; i++ {
		for j = 0; j < n; j++ {
			x, err = dist.At(i, j)
			if err != nil {
				return 0, nil, fmt.Errorf("%s: At(%d,%d): %w", method, i, j, err)
			}
			w[i*n+j] = x
		}
	}

	return n, w, nil
}
