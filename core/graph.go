// Package core: the Graph type and its constructor.

package core

import "github.com/katalvlaran/minspan/matrix"

// Graph is an immutable adjacency view over a distance matrix.
//
// For every vertex in matrix order, Graph stores the ordered sequence of
// edges (weight, vertex, other) for every other vertex in matrix order,
// excluding exact-zero entries. Because nothing mutates a Graph after
// NewGraph returns, any number of goroutines may enumerate edges or run
// spanning-tree computations on the same instance without locks.
type Graph struct {
	order []string          // vertex labels in matrix order
	index map[string]int    // label -> position in order
	adj   map[string][]Edge // label -> adjacency list in matrix column order
}

// NewGraph builds the adjacency view of a distance matrix.
//
// Error Conditions:
//   - ErrNilMatrix : m is nil.
//
// Steps:
//  1. Validate m != nil; the matrix contents were validated by matrix.New.
//  2. Freeze the vertex order to the matrix label order.
//  3. For each vertex v, collect Edge{w, v, other} for every other vertex
//     in matrix column order, skipping entries whose weight is exactly 0.
//
// Zero means "absent": a true zero-weight link between two distinct
// vertices is dropped here, at construction, not during spanning-tree
// computation. Downstream listings and trees never see it.
//
// Complexity: O(n²) time and memory.
func NewGraph(m *matrix.DistanceMatrix) (*Graph, error) {
	// 1. Validate the input pointer.
	if m == nil {
		return nil, ErrNilMatrix
	}

	// 2. Freeze vertex order and allocate storage.
	labels := m.Labels()
	g := &Graph{
		order: labels,
		index: make(map[string]int, len(labels)),
		adj:   make(map[string][]Edge, len(labels)),
	}
	for i, v := range labels {
		g.index[v] = i
	}

	// 3. Build each adjacency list in matrix column order.
	var w float64
	var err error
	for i, v := range labels {
		list := make([]Edge, 0, len(labels))
		for j, other := range labels {
			if w, err = m.AtIndex(i, j); err != nil {
				// Unreachable for a well-formed matrix; propagate regardless.
				return nil, err
			}
			if w == 0 {
				// Zero entries mean "no edge" and never enter adjacency.
				continue
			}
			list = append(list, Edge{Weight: w, From: v, To: other})
		}
		g.adj[v] = list
	}

	return g, nil
}
