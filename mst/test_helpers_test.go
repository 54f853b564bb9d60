package mst_test

import (
	"fmt"
	"math/rand"
	"testing"

	"github.com/katalvlaran/minspan/core"
	"github.com/katalvlaran/minspan/matrix"
	"github.com/stretchr/testify/require"
)

// stockLabels and stockDistances reproduce the six-stock pairwise distance
// table from Mantegna & Stanley's chapter on hierarchical structure in
// financial markets. Its MST is known in closed form, which makes it the
// canonical correctness fixture here.
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

	// stockTree is the spanning tree the book derives, in canonical edge
	// order; total weight 4.43.
	stockTree = []core.Edge{
		{Weight: 0.74, From: "KO", To: "PG"},
		{Weight: 0.84, From: "CHV", To: "TX"},
		{Weight: 0.86, From: "GE", To: "KO"},
		{Weight: 0.89, From: "CHV", To: "XON"},
		{Weight: 1.10, From: "PG", To: "XON"},
	}
)

// mustGraph builds a graph over a distance table or fails the test
// immediately.
func mustGraph(tb testing.TB, labels []string, values [][]float64) *core.Graph {
	tb.Helper()
	m, err := matrix.New(labels, values)
	require.NoError(tb, err)
	g, err := core.NewGraph(m)
	require.NoError(tb, err)

	return g
}

// buildRandomGraph returns a connected graph over n vertices whose
// symmetric distance table has a zero diagonal and strictly positive
// off-diagonal weights, drawn from a deterministically seeded generator so
// fixtures are identical across runs. Continuous draws make weight ties
// vanishingly unlikely, so the MST over the result is unique.
func buildRandomGraph(tb testing.TB, n int, seed int64) *core.Graph {
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

	return mustGraph(tb, labels, values)
}
