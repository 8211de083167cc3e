// SPDX-License-Identifier: MIT

// Package builder generates reproducible TSP instances as validated
// distance matrices.
//
// The package offers:
//
//   - RandomComplete(n, opts...): a complete symmetric instance on n cities
//     with a zero diagonal and, by default, integer weights drawn uniformly
//     from [1, maxDistance].
//   - Configuration primitives:
//     – BuilderOption:      a function that mutates builderConfig before use.
//     – WithSeed / WithRand: explicit RNG policy (default seed DefaultSeed).
//     – WithMaxDistance:     upper bound of the default weight distribution.
//     – WithWeightFn:        custom per-edge weight generator.
//   - Edge-weight distributions (WeightFn implementations):
//     – UniformIntWeightFn:  integers ∼U{min..max}.
//     – ConstantWeightFn:    fixed user-provided value.
//
// Guarantees:
//
//   - Determinism: the same n and options produce the same matrix.
//   - Pair order is lexicographic (i<j), one draw per unordered pair,
//     mirrored to (j,i).
//   - The result went through matrix.NewDistanceFlat, so every invariant of
//     a distance matrix holds or an error is returned.
//   - Option constructors panic on programmer error; RandomComplete returns
//     sentinel errors for bad parameters and never panics.
package builder
