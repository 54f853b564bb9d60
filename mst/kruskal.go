// Package mst: Kruskal's Minimum Spanning Tree algorithm over a
// distance-matrix graph, using a min-heap of candidate edges and a
// disjoint set with path compression and union by rank.

package mst

import (
	"container/heap"

	"github.com/katalvlaran/minspan/core"
)

// Kruskal computes the Minimum Spanning Tree (MST) of g.
//
// Error Conditions:
//   - ErrNilGraph     : g is nil.
//   - ErrEmptyGraph   : g has no vertices.
//   - ErrDisconnected : |V| > 1 and no spanning tree covers every vertex.
//
// Steps:
//  1. Validate: g != nil; if |V| == 0 → ErrEmptyGraph.
//     If |V| == 1 → trivial MST (empty, weight 0).
//  2. Collect the undirected weighted edges, skip self-pairs, and
//     establish the min-heap keyed by Edge.Less.
//  3. Initialize the disjoint set: every vertex its own component.
//  4. Pop the globally smallest edge repeatedly: endpoints in different
//     components → union them and take the edge; otherwise discard it.
//  5. Stop once the MST holds |V|-1 edges. If the heap exhausts first the
//     graph is disconnected → ErrDisconnected, never an empty-pop panic.
//
// The result is in pop order, which for Kruskal is the canonical ascending
// edge order; equal weights resolve by (origin, destination).
//
// Complexity: O(E log E + α(V)·E) ≈ O(E log V) time. Memory: O(E + V).
func Kruskal(g *core.Graph) ([]core.Edge, float64, error) {
	// 1. Validate the graph pointer and the vertex count.
	if g == nil {
		return nil, 0, ErrNilGraph
	}
	vertices := g.Vertices()
	n := len(vertices)
	if n == 0 {
		// No vertices: a spanning tree is undefined.
		return nil, 0, ErrEmptyGraph
	}
	if n == 1 {
		// Single vertex: the MST is trivially empty with total weight 0.
		return []core.Edge{}, 0, nil
	}

	// 2. Build the candidate min-heap from the undirected edge listing.
	pq := newEdgeHeap(g)

	// 3. One disjoint-set entry per vertex.
	ds := newDisjointSet(vertices)

	// 4.-5. Grow the forest until it collapses into one spanning tree.
	var (
		mst   = make([]core.Edge, 0, n-1) // resulting edges in the MST
		total float64                     // sum of taken weights
		e     core.Edge
	)
	for len(mst) < n-1 {
		if pq.Len() == 0 {
			// Candidates ran out short of |V|-1 edges: some vertex is
			// unreachable.
			return nil, 0, ErrDisconnected
		}
		e = heap.Pop(pq).(core.Edge)
		if ds.find(e.From) == ds.find(e.To) {
			// Endpoints already connected; taking e would close a cycle.
			continue
		}
		ds.union(e.From, e.To)
		mst = append(mst, e)
		total += e.Weight
	}

	return mst, total, nil
}
