// SPDX-License-Identifier: MIT

// Package matrix - Dense distance storage (row-major) & safe accessors.
//
// Purpose:
//   - Provide a cache-friendly row-major buffer with the explicit index formula i*n + j.
//   - Guarantee safety at the public surface: At returns errors instead of panicking.
//   - Own a private copy of the input so a validated matrix cannot be changed later.
//
// Complexity quicksheet:
//   - NewDistance / NewDistanceFlat: O(n²) validate + copy; At: O(1); Rows/Cols/Size: O(1).

package matrix

import (
	"fmt"
	"strconv"
	"strings"
)

const ctxAt = "At" // method tag used in error wrappers

// ---------- Formatting literals ----------
const (
	_fmtRowOpen  = "["
	_fmtRowClose = "]\n"
	_fmtSep      = ", "
)

// denseErrorf wraps an error with a uniform Dense context and callsite indices.
func denseErrorf(method string, row, col int, err error) error {
	return fmt.Errorf("Dense.%s(%d,%d): %w", method, row, col, err)
}

// Dense is an immutable, validated n×n distance matrix.
//   - n is the order (number of cities), n ≥ 1.
//   - data is a flat buffer of length n*n in row-major order (offset = i*n + j).
type Dense struct {
	n    int       // matrix order
	data []float64 // contiguous row-major storage (len == n*n)
}

// Compile-time assertions for interface & fmt.Stringer conformance.
var (
	_ Matrix       = (*Dense)(nil)
	_ fmt.Stringer = (*Dense)(nil)
)

// NewDistance validates rows as a distance matrix and returns an independent copy.
//
// Implementation:
//   - Stage 1: validate shape (non-empty, every row of length n).
//   - Stage 2: copy into a flat buffer.
//   - Stage 3: validate values (see validateDistance).
//
// Errors: ErrEmpty, ErrNonSquare, ErrNaNInf, ErrNegativeWeight,
// ErrNonZeroDiagonal, ErrAsymmetry, each wrapped with coordinates.
//
// Complexity: O(n²) time and memory.
func NewDistance(rows [][]float64) (*Dense, error) {
	n := len(rows)
	if n == 0 {
		return nil, ErrEmpty
	}

	var i int
	for i = 0; i < n; i++ {
		if len(rows[i]) != n {
			return nil, fmt.Errorf("NewDistance: row %d has length %d, want %d: %w",
				i, len(rows[i]), n, ErrNonSquare)
		}
	}

	data := make([]float64, n*n)
	for i = 0; i < n; i++ {
		copy(data[i*n:(i+1)*n], rows[i])
	}
	if err := validateDistance(n, data); err != nil {
		return nil, err
	}

	return &Dense{n: n, data: data}, nil
}

// NewDistanceFlat is NewDistance for a row-major buffer of length n*n.
// The buffer is copied; later writes to data do not affect the result.
//
// Complexity: O(n²).
func NewDistanceFlat(n int, data []float64) (*Dense, error) {
	if n <= 0 {
		return nil, ErrEmpty
	}
	if len(data) != n*n {
		return nil, fmt.Errorf("NewDistanceFlat: len(data)=%d, want %d: %w", len(data), n*n, ErrNonSquare)
	}

	buf := make([]float64, n*n)
	copy(buf, data)
	if err := validateDistance(n, buf); err != nil {
		return nil, err
	}

	return &Dense{n: n, data: buf}, nil
}

// Rows returns the row count. Complexity: O(1).
func (m *Dense) Rows() int { return m.n }

// Cols returns the column count. Complexity: O(1).
func (m *Dense) Cols() int { return m.n }

// Size returns the number of cities n.
func (m *Dense) Size() int { return m.n }

// At returns the distance from city row to city col or ErrIndexOutOfBounds.
// Never panics on out-of-range input.
//
// Complexity: O(1).
func (m *Dense) At(row, col int) (float64, error) {
	if row < 0 || row >= m.n || col < 0 || col >= m.n {
		return 0, denseErrorf(ctxAt, row, col, ErrIndexOutOfBounds)
	}

	return m.data[row*m.n+col], nil
}

// ToRows returns a fresh [][]float64 copy of the matrix, suitable for
// encoding into reports. Complexity: O(n²).
func (m *Dense) ToRows() [][]float64 {
	out := make([][]float64, m.n)
	var i int
	for i = 0; i < m.n; i++ {
		out[i] = make([]float64, m.n)
		copy(out[i], m.data[i*m.n:(i+1)*m.n])
	}

	return out
}

// String implements fmt.Stringer: one bracketed row per line.
//
// Complexity: O(n²).
func (m *Dense) String() string {
	var (
		b       strings.Builder
		i, j, o int
	)
	for i = 0; i < m.n; i++ {
		b.WriteString(_fmtRowOpen)
		o = i * m.n
		for j = 0; j < m.n; j++ {
			b.WriteString(strconv.FormatFloat(m.data[o+j], 'g', -1, 64))
			if j+1 < m.n {
				b.WriteString(_fmtSep)
			}
		}
		b.WriteString(_fmtRowClose)
	}

	return b.String()
}
