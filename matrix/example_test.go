package matrix_test

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/tspbench/matrix"
)

// ExampleNewDistance validates a small symmetric table and reads one edge.
func ExampleNewDistance() {
	m, err := matrix.NewDistance([][]float64{
		{0, 4, 7},
		{4, 0, 2},
		{7, 2, 0},
	})
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	w, _ := m.At(1, 2)
	fmt.Println("cities:", m.Size(), "w(1,2) =", w)

	_, err = matrix.NewDistance([][]float64{{0, 1}, {2, 0}})
	fmt.Println("asymmetric rejected:", errors.Is(err, matrix.ErrAsymmetry))
	// Output:
	// cities: 3 w(1,2) = 2
	// asymmetric rejected: true
}
