// SPDX-License-Identifier: MIT
// Package matrix: sentinel error set.
//
// Every message is prefixed with "matrix: ...". Constructors wrap these
// sentinels with the offending coordinates via %w; callers match them with
// errors.Is and never compare strings.
//
// ERROR PRIORITY (enforced by NewDistance, tested):
// empty -> non-square -> first bad entry in row-major order (NaN/Inf,
// negative, non-zero diagonal) -> asymmetry.

package matrix

import "errors"

var (
	// ErrEmpty is returned when the input has no rows (N < 1).
	ErrEmpty = errors.New("matrix: empty matrix")

	// ErrNonSquare signals that some row length differs from the row count.
	ErrNonSquare = errors.New("matrix: matrix is not square")

	// ErrNaNInf signals a NaN or ±Inf entry. The graph must be complete,
	// so "missing edge" encodings are rejected as well.
	ErrNaNInf = errors.New("matrix: NaN or Inf encountered")

	// ErrNegativeWeight signals a negative off-diagonal distance.
	ErrNegativeWeight = errors.New("matrix: negative weight")

	// ErrNonZeroDiagonal signals that At(i, i) != 0 for some i.
	ErrNonZeroDiagonal = errors.New("matrix: diagonal not zero")

	// ErrAsymmetry signals At(i, j) != At(j, i) beyond the symmetry tolerance.
	ErrAsymmetry = errors.New("matrix: matrix is not symmetric")

	// ErrIndexOutOfBounds is returned by At for coordinates outside [0, N).
	ErrIndexOutOfBounds = errors.New("matrix: index out of bounds")
)
