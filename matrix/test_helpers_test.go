package matrix_test

import (
	"fmt"
	"math/rand"
)

// buildSymmetric returns labels "V0".."V(n-1)" and a symmetric n×n value
// table with a zero diagonal and off-diagonal weights in [0.5, 10.5).
// The random number generator is seeded deterministically so that fixtures
// are identical across runs.
func buildSymmetric(n int, seed int64) ([]string, [][]float64) {
	// 1. Deterministic generator: never the global rand, never time-seeded.
	r := rand.New(rand.NewSource(seed))

	// 2. Labels in index order.
	labels := make([]string, n)
	for i := range labels {
		labels[i] = fmt.Sprintf("V%d", i)
	}

	// 3. Mirror each upper-triangle draw into the lower triangle.
	values := make([][]float64, n)
	for i := range values {
		values[i] = make([]float64, n)
	}
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			w := 0.5 + 10*r.Float64() // strictly positive off-diagonal weight
			values[i][j] = w
			values[j][i] = w
		}
	}

	return labels, values
}
