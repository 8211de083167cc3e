// Package tsp — tour utilities shared by all solvers.
//
// Helpers operating purely on tour structure (index sequences), without
// touching distance matrices:
//   - ValidateTour: enforce the closed-Hamiltonian-cycle invariants.
//   - CopyTour: independent copy, so returned tours never alias solver state.
//   - TourString: compact printable form, e.g. "0 → 1 → 3 → 2 → 0".
//   - reverseSegment: in-place reversal of tour[i..j] (2-opt move).
//
// No panics on user input; only sentinel errors from types.go.
package tsp

import (
	"fmt"
	"strconv"
	"strings"
)

// tourArrow separates cities in TourString.
const tourArrow = " → "

// ValidateTour enforces the Route invariants for an n-city instance:
//
//	len(tour) == n+1, tour[0] == tour[n] == Depot,
//	each city v ∈ [0, n) appears exactly once in tour[0:n].
//
// Errors are ErrInvalidTour or ErrCityOutOfRange, wrapped with the position.
//
// Complexity: O(n) time, O(n) space.
func ValidateTour(tour []int, n int) error {
	if n < 1 || len(tour) != n+1 {
		return fmt.Errorf("ValidateTour: len=%d, want %d: %w", len(tour), n+1, ErrInvalidTour)
	}
	if tour[0] != Depot || tour[n] != Depot {
		return fmt.Errorf("ValidateTour: endpoints (%d,%d), want (%d,%d): %w",
			tour[0], tour[n], Depot, Depot, ErrInvalidTour)
	}

	seen := make([]bool, n)
	var (
		i int
		v int
	)
	for i = 0; i < n; i++ {
		v = tour[i]
		if v < 0 || v >= n {
			return fmt.Errorf("ValidateTour: tour[%d]=%d: %w", i, v, ErrCityOutOfRange)
		}
		if seen[v] {
			return fmt.Errorf("ValidateTour: city %d repeated at %d: %w", v, i, ErrInvalidTour)
		}
		seen[v] = true
	}

	return nil
}

// CopyTour returns an independent copy of tour (nil stays nil).
//
// Complexity: O(n).
func CopyTour(tour []int) []int {
	if tour == nil {
		return nil
	}
	out := make([]int, len(tour))
	copy(out, tour)

	return out
}

// TourString renders a tour as "0 → 4 → 2 → 0". An empty tour renders as "∅".
func TourString(tour []int) string {
	if len(tour) == 0 {
		return "∅"
	}
	var b strings.Builder
	for i, v := range tour {
		if i > 0 {
			b.WriteString(tourArrow)
		}
		b.WriteString(strconv.Itoa(v))
	}

	return b.String()
}

// reverseSegment reverses tour[i..j] inclusive, in place.
// Caller guarantees 0 ≤ i ≤ j < len(tour).
//
// Complexity: O(j−i).
func reverseSegment(tour []int, i, j int) {
	for i < j {
		tour[i], tour[j] = tour[j], tour[i]
		i++
		j--
	}
}
