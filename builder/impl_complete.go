// SPDX-License-Identifier: MIT
// Package: tspbench/builder
//
// impl_complete.go — RandomComplete(n): a complete symmetric TSP instance.
//
// Contract:
//   • n ≥ 1 (else ErrTooFewVertices).
//   • maxDistance ≥ 1 when the default weight draw is used (else ErrBadMaxDistance).
//   • One draw per unordered pair {i,j}, i<j, in lexicographic order,
//     mirrored to (j,i); the diagonal stays 0.
//   • The matrix is validated by matrix.NewDistanceFlat before it is returned,
//     so a custom WeightFn producing NaN/Inf/negatives surfaces a matrix error.
//
// Complexity:
//   • Time: O(n²) draws.
//   • Space: O(n²) for the flat buffer (handed to the matrix, then copied).

package builder

import "github.com/katalvlaran/tspbench/matrix"

const (
	methodRandomComplete = "RandomComplete"
	minCompleteNodes     = 1
)

// RandomComplete builds a complete n-city instance.
func RandomComplete(n int, opts ...BuilderOption) (*matrix.Dense, error) {
	if n < minCompleteNodes {
		return nil, builderErrorf(methodRandomComplete, "n=%d < min=%d: %w", n, minCompleteNodes, ErrTooFewVertices)
	}

	cfg := newBuilderConfig(opts...)
	weightFn := cfg.weightFn
	if weightFn == nil {
		if cfg.maxDistance < MinDistance {
			return nil, builderErrorf(methodRandomComplete, "maxDistance=%d: %w", cfg.maxDistance, ErrBadMaxDistance)
		}
		weightFn = UniformIntWeightFn(MinDistance, cfg.maxDistance)
	}

	data := make([]float64, n*n)
	var (
		i, j int
		w    float64
	)
	for i = 0; i < n; i++ {
		for j = i + 1; j < n; j++ {
			w = weightFn(cfg.rng)
			data[i*n+j] = w
			data[j*n+i] = w
		}
	}

	dist, err := matrix.NewDistanceFlat(n, data)
	if err != nil {
		return nil, builderErrorf(methodRandomComplete, "%w", err)
	}

	return dist, nil
}
