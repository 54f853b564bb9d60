package core_test

import (
	"fmt"
	"math/rand"
	"testing"

	"github.com/katalvlaran/minspan/matrix"
	"github.com/stretchr/testify/require"
)

// stockLabels and stockDistances reproduce the six-stock pairwise distance
// table from Mantegna & Stanley's chapter on hierarchical structure in
// financial markets; a compact, fully connected, symmetric fixture.
var (
	stockLabels = []string{"CHV", "GE", "KO", "PG", "TX", "XON"}

	stockDistances = [][]float64{
		{0, 1.15, 1.18, 1.15, 0.84, 0.89},
		{1.15, 0, 0.86, 0.89, 1.26, 1.16},
		{1.18, 0.86, 0, 0.74, 1.27, 1.11},
		{1.15, 0.89, 0.74, 0, 1.26, 1.10},
		{0.84, 1.26, 1.27, 1.26, 0, 0.94},
		{0.89, 1.16, 1.11, 1.10, 0.94, 0},
	}
)

// mustMatrix builds a DistanceMatrix or fails the test immediately.
func mustMatrix(tb testing.TB, labels []string, values [][]float64) *matrix.DistanceMatrix {
	tb.Helper()
	m, err := matrix.New(labels, values)
	require.NoError(tb, err)

	return m
}

// buildSymmetricMatrix returns an n×n symmetric DistanceMatrix with a zero
// diagonal and strictly positive off-diagonal weights, generated from a
// fixed seed for reproducibility.
func buildSymmetricMatrix(tb testing.TB, n int, seed int64) *matrix.DistanceMatrix {
	tb.Helper()
	r := rand.New(rand.NewSource(seed))

	labels := make([]string, n)
	for i := range labels {
		labels[i] = fmt.Sprintf("V%d", i)
	}
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

	return mustMatrix(tb, labels, values)
}
