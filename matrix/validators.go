// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//  - Single source of truth for distance-matrix validation.
//  - Keep solvers free of input checks: everything they may assume is proven here.
//
// Determinism & Performance:
//  - Pure, deterministic, allocation-free; fixed row-major scan order so the
//    first violation reported is always the same for the same input.
//  - Symmetry check runs on the upper triangle only.

package matrix

import (
	"fmt"
	"math"
)

// symTol is the structural tolerance for symmetry checks. Integer-valued
// weights compare exactly; the tolerance only absorbs representation noise
// for callers that compute real-valued distances.
const symTol = 1e-12

// validatorErrorf tags a sentinel with the offending coordinates.
func validatorErrorf(i, j int, v float64, err error) error {
	return fmt.Errorf("validateDistance: a[%d][%d]=%g: %w", i, j, v, err)
}

// validateDistance checks a row-major n×n buffer:
//  1. every entry finite (ErrNaNInf);
//  2. off-diagonal entries non-negative (ErrNegativeWeight);
//  3. diagonal exactly zero (ErrNonZeroDiagonal);
//  4. |a_ij − a_ji| ≤ symTol (ErrAsymmetry).
//
// Complexity: O(n²).
func validateDistance(n int, data []float64) error {
	var (
		i, j int
		v    float64
	)

	// Stage 1: per-entry value checks in row-major order.
	for i = 0; i < n; i++ {
		for j = 0; j < n; j++ {
			v = data[i*n+j]
			if math.IsNaN(v) || math.IsInf(v, 0) {
				return validatorErrorf(i, j, v, ErrNaNInf)
			}
			if i == j {
				if v != 0 {
					return validatorErrorf(i, j, v, ErrNonZeroDiagonal)
				}
				continue
			}
			if v < 0 {
				return validatorErrorf(i, j, v, ErrNegativeWeight)
			}
		}
	}

	// Stage 2: symmetry on the upper triangle.
	var diff float64
	for i = 0; i < n; i++ {
		for j = i + 1; j < n; j++ {
			diff = math.Abs(data[i*n+j] - data[j*n+i])
			if diff > symTol {
				return validatorErrorf(i, j, data[i*n+j], ErrAsymmetry)
			}
		}
	}

	return nil
}
