// SPDX-License-Identifier: MIT

// Package matrix: public read-only Matrix surface.
package matrix

// Matrix is the read-only view of a distance table that solvers depend on.
// Implementations must be safe for concurrent reads.
//
// Complexity notes: all methods are expected O(1).
type Matrix interface {
	// Rows returns the number of rows in the matrix.
	Rows() int

	// Cols returns the number of columns in the matrix.
	Cols() int

	// At retrieves the element at position (i, j).
	// Returns ErrIndexOutOfBounds if i<0, i>=Rows(), j<0 or j>=Cols().
	At(i, j int) (float64, error)
}
