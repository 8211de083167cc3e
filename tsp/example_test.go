// Package tsp_test provides runnable, deterministic examples for the three
// solvers. Every instance is fixed, so the // Output: blocks are stable.
package tsp_test

import (
	"fmt"

	"github.com/katalvlaran/tspbench/matrix"
	"github.com/katalvlaran/tspbench/tsp"
)

// ExampleBacktracking solves a 4-city instance exactly.
func ExampleBacktracking() {
	dist, err := matrix.NewDistance([][]float64{
		{0, 1, 9, 9},
		{1, 0, 9, 2},
		{9, 9, 0, 1},
		{9, 2, 1, 0},
	})
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	res, err := tsp.Backtracking(dist)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println(tsp.TourString(res.Tour))
	fmt.Printf("cost=%.0f expanded=%d\n", res.Cost, res.Expanded)
	// Output:
	// 0 → 1 → 3 → 2 → 0
	// cost=13 expanded=16
}

// ExampleNearestNeighbor shows the greedy route; ties go to the lower index.
func ExampleNearestNeighbor() {
	dist, _ := matrix.NewDistance([][]float64{
		{0, 5, 5},
		{5, 0, 1},
		{5, 1, 0},
	})

	res, _ := tsp.NearestNeighbor(dist)
	fmt.Println(tsp.TourString(res.Tour), res.Cost)
	// Output:
	// 0 → 1 → 2 → 0 11
}

// ExampleTwoOpt repairs a poor starting route with segment reversals.
func ExampleTwoOpt() {
	dist, _ := matrix.NewDistance([][]float64{
		{0, 1, 9, 9},
		{1, 0, 9, 2},
		{9, 9, 0, 1},
		{9, 2, 1, 0},
	})

	start := []int{0, 2, 1, 3, 0}
	before, _ := tsp.TourCost(dist, start)

	res, _ := tsp.TwoOpt(dist, start)
	fmt.Printf("%.0f → %.0f in %d passes, %d swaps\n", before, res.Cost, res.Passes, res.Swaps)
	fmt.Println(tsp.TourString(res.Tour))
	// Output:
	// 29 → 13 in 2 passes, 2 swaps
	// 0 → 1 → 3 → 2 → 0
}

// ExampleSolve picks a solver by its CLI name.
func ExampleSolve() {
	dist, _ := matrix.NewDistance([][]float64{{0, 7}, {7, 0}})

	algo, err := tsp.ParseAlgorithm("2opt")
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	res, _ := tsp.Solve(dist, algo)
	fmt.Println(algo, tsp.TourString(res.Tour), res.Cost)
	// Output:
	// two-opt 0 → 1 → 0 14
}
