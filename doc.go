// Package tspbench compares strategies for the symmetric Travelling Salesman
// Problem on complete graphs.
//
// What is inside?
//
//	• matrix/   — immutable, validated distance matrices (square, zero
//	              diagonal, finite non-negative, symmetric)
//	• builder/  — reproducible random complete instances
//	• tsp/      — the cost model and three solvers:
//	                Backtracking     exact depth-first search with optional pruning
//	                NearestNeighbor  greedy construction from the depot
//	                TwoOpt           segment-reversal local search
//	• compare/  — the harness: runs all solvers on one instance, reports
//	              routes, costs, timings and expansion counts as text, JSON
//	              or YAML, with optional Prometheus metrics
//	• cmd/tspbench — the command-line front end (compare, solve)
//
// Quick start:
//
//	dist, _ := builder.RandomComplete(9, builder.WithSeed(1))
//	exact, _ := tsp.Backtracking(dist)
//	greedy, _ := tsp.NearestNeighbor(dist)
//	refined, _ := tsp.TwoOpt(dist, greedy.Tour)
//
// Every route starts and ends at city 0 and has length n+1. Every reported
// cost equals tsp.TourCost of the reported route.
package tspbench
