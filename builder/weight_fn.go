// SPDX-License-Identifier: MIT
// Package: tspbench/builder
//
// weight_fn.go — edge-weight distributions for generated instances.

package builder

import (
	"fmt"
	"math/rand"
)

// WeightFn produces an edge weight from the builder's RNG.
// It must be deterministic for a given RNG state.
type WeightFn func(rng *rand.Rand) float64

// UniformIntWeightFn returns a WeightFn drawing integers uniformly from
// [min, max] inclusive. A nil rng yields min.
// Panics if min < 0 or max < min.
// Complexity: O(1) time, O(1) space.
func UniformIntWeightFn(min, max int) WeightFn {
	if min < 0 || max < min {
		panic(fmt.Sprintf("UniformIntWeightFn: require 0 ≤ min ≤ max, got min=%d, max=%d", min, max))
	}
	span := max - min + 1

	return func(rng *rand.Rand) float64 {
		if rng == nil || span == 1 {
			return float64(min)
		}

		return float64(min + rng.Intn(span))
	}
}

// ConstantWeightFn returns a WeightFn that always yields value.
// Panics if value < 0.
func ConstantWeightFn(value float64) WeightFn {
	if value < 0 {
		panic(fmt.Sprintf("ConstantWeightFn: value must be ≥ 0, got %g", value))
	}

	return func(_ *rand.Rand) float64 {
		return value
	}
}
