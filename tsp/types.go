package tsp

import (
	"errors"
	"time"
)

// Sentinel errors. Callers match them with errors.Is; solvers wrap them with
// call-site context via %w.
var (
	// ErrNilMatrix is returned when a nil distance matrix is supplied.
	ErrNilMatrix = errors.New("tsp: nil distance matrix")

	// ErrNonSquare is returned for a matrix that is not n×n with n ≥ 1.
	ErrNonSquare = errors.New("tsp: distance matrix is not square")

	// ErrCityOutOfRange is returned when a tour references a city outside [0, n).
	ErrCityOutOfRange = errors.New("tsp: city index out of range")

	// ErrInvalidTour is returned when a tour is not a closed Hamiltonian cycle
	// through the depot (len n+1, tour[0]==tour[n]==0, each city exactly once).
	ErrInvalidTour = errors.New("tsp: invalid tour")

	// ErrTooManyCities is returned by Backtracking for n > MaxExactCities.
	ErrTooManyCities = errors.New("tsp: too many cities for exhaustive search")

	// ErrUnsupportedAlgorithm is returned by Solve / ParseAlgorithm for unknown algorithms.
	ErrUnsupportedAlgorithm = errors.New("tsp: unsupported algorithm")
)

// Depot is the fixed start and end city of every tour.
const Depot = 0

// MaxExactCities caps Backtracking so that a call always finishes in bounded
// time: 12! ≈ 4.8e8 leaf routes at n = 13.
const MaxExactCities = 13

// Result holds the outcome of a single solver invocation.
type Result struct {
	// Tour is the sequence of city indices, starting and ending at Depot.
	// For n cities, len(Tour) == n+1.
	Tour []int

	// Cost is TourCost(dist, Tour).
	Cost float64

	// Elapsed is the wall-clock duration of the solver call.
	Elapsed time.Duration

	// Expanded is the solver-specific work counter (see package doc).
	Expanded int64

	// Passes is the number of 2-opt outer passes (0 for other solvers).
	Passes int

	// Swaps is the number of accepted 2-opt moves (0 for other solvers).
	Swaps int
}
