// SPDX-License-Identifier: MIT
// Package: tspbench/builder
//
// errors.go — sentinel errors for the builder package.
//
// Error policy:
//   • Only sentinel variables are exposed; callers branch with errors.Is.
//   • Implementations attach context with %w via builderErrorf.
//   • Runtime parameters (n, maxDistance) fail with errors, never panics.

package builder

import (
	"errors"
	"fmt"
)

// ErrTooFewVertices indicates that n is smaller than the allowed minimum.
// Usage: if errors.Is(err, ErrTooFewVertices) { /* report invalid size */ }.
var ErrTooFewVertices = errors.New("builder: parameter too small")

// ErrBadMaxDistance indicates a maximum edge weight below 1.
var ErrBadMaxDistance = errors.New("builder: max distance must be ≥ 1")

// builderErrorf formats "<method>: <detail>" and keeps %w chains intact.
func builderErrorf(method, format string, args ...any) error {
	return fmt.Errorf(method+": "+format, args...)
}
