// Package mst: Prim's Minimum Spanning Tree algorithm, edge-driven
// variant: the min-heap holds edges rather than vertex keys, the globally
// smallest edge seeds the tree, and each growth step scans a snapshot copy
// of the heap for the smallest crossing edge.

package mst

import (
	"container/heap"

	"github.com/katalvlaran/minspan/core"
)

// Prim computes the Minimum Spanning Tree (MST) of g by edge relaxation.
//
// Unlike the textbook vertex-keyed Prim, the heap here holds ALL
// undirected edges and the tree seeds itself from the globally smallest
// one; there is no caller-chosen root. Each growth step pops from a
// snapshot copy of the live heap until it meets the smallest edge with
// exactly one endpoint visited. The copy per step is what keeps an edge
// popped while both endpoints were unvisited available for the later step
// where it becomes the bridge; a pop-and-discard lazy queue would lose it.
//
// Error Conditions:
//   - ErrNilGraph     : g is nil.
//   - ErrEmptyGraph   : g has no vertices.
//   - ErrDisconnected : no edges exist at all, or some growth step finds
//     no edge crossing from the visited set to the rest.
//
// Steps:
//  1. Validate: g != nil; if |V| == 0 → ErrEmptyGraph.
//     If |V| == 1 → trivial MST (empty, weight 0).
//  2. Collect the undirected weighted edges, skip self-pairs, and
//     establish the min-heap keyed by Edge.Less.
//  3. Pop the globally smallest edge to seed visited with its endpoints.
//  4. While some vertex is unvisited: scan a snapshot copy of the heap
//     for the smallest edge with exactly one endpoint visited; take it
//     and mark the newly reached vertex. An exhausted snapshot means no
//     crossing edge exists → ErrDisconnected, never an empty-pop panic.
//
// The result is in discovery order; equal weights resolve by (origin,
// destination). Use core.SortEdges to normalize for comparison.
//
// Complexity: O(V·E log E) time worst case (one snapshot scan per added
// vertex). Memory: O(E + V).
func Prim(g *core.Graph) ([]core.Edge, float64, error) {
	// 1. Validate the graph pointer and the vertex count.
	if g == nil {
		return nil, 0, ErrNilGraph
	}
	n := g.VertexCount()
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
	if pq.Len() == 0 {
		// Two or more vertices with no edges cannot be spanned.
		return nil, 0, ErrDisconnected
	}

	// 3. Seed the tree with the globally smallest edge.
	seed := heap.Pop(pq).(core.Edge)
	visited := make(map[string]bool, n)
	visited[seed.From] = true
	visited[seed.To] = true
	mst := make([]core.Edge, 0, n-1)
	mst = append(mst, seed)
	total := seed.Weight

	// 4. Grow by one vertex per step until the tree spans the graph.
	for len(visited) < n {
		e, ok := smallestCrossing(pq, visited)
		if !ok {
			// No edge leaves the visited set: the rest is unreachable.
			return nil, 0, ErrDisconnected
		}
		// Exactly one endpoint is new; marking both is harmless.
		visited[e.From] = true
		visited[e.To] = true
		mst = append(mst, e)
		total += e.Weight
	}

	return mst, total, nil
}

// smallestCrossing pops a snapshot copy of pq until it finds the smallest
// edge with exactly one endpoint in visited. The live heap is never
// mutated, so edges skipped here — both endpoints visited, or neither —
// remain candidates for every later step. Reports ok == false when the
// snapshot exhausts without meeting a crossing edge.
// Complexity: O(E log E) worst case per call.
func smallestCrossing(pq *edgeHeap, visited map[string]bool) (core.Edge, bool) {
	snap := pq.snapshot()
	var e core.Edge
	for snap.Len() > 0 {
		e = heap.Pop(&snap).(core.Edge)
		// One endpoint inside the tree, one outside: e crosses the cut.
		if visited[e.From] != visited[e.To] {
			return e, true
		}
	}

	return core.Edge{}, false
}
