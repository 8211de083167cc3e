// Command tspbench compares exhaustive, greedy and 2-opt TSP solvers on
// generated instances.
//
//	tspbench compare --cities 9 --seed 1
//	tspbench solve --algo two-opt --cities 40 --format json
//
// Every flag can also be set through a TSPBENCH_* environment variable,
// e.g. TSPBENCH_MAX_DISTANCE=50.
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
