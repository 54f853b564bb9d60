// Package mst: the candidate min-heap both algorithms pop edges from.

package mst

import (
	"container/heap"

	"github.com/katalvlaran/minspan/core"
)

// edgeHeap implements heap.Interface for a min-heap of core.Edge, ordered
// by Edge.Less: ascending weight, ties by origin, then destination. Keying
// every pop on that order is what makes equal-weight candidates resolve
// the same way on every run.
type edgeHeap []core.Edge

// Len returns the number of edges in the heap.
// Complexity: O(1).
func (h edgeHeap) Len() int { return len(h) }

// Less reports whether element i sorts before element j in the canonical
// edge order.
// Complexity: O(1).
func (h edgeHeap) Less(i, j int) bool { return h[i].Less(h[j]) }

// Swap swaps elements at indices i and j.
// Complexity: O(1).
func (h edgeHeap) Swap(i, j int) { h[i], h[j] = h[j], h[i] }

// Push appends a new core.Edge to the underlying slice.
// Called by heap.Push. Complexity: O(log N) amortized.
func (h *edgeHeap) Push(x interface{}) { *h = append(*h, x.(core.Edge)) }

// Pop removes and returns the element heap.Pop moved to the end.
// Called by heap.Pop. Complexity: O(log N) amortized.
func (h *edgeHeap) Pop() interface{} {
	old := *h
	n := len(old)
	e := old[n-1]
	*h = old[:n-1]

	return e
}

// snapshot returns an independent copy of the heap. Copying preserves the
// element order, hence the heap invariant, so the copy can be popped from
// without disturbing the original.
// Complexity: O(E) time and memory.
func (h edgeHeap) snapshot() edgeHeap {
	out := make(edgeHeap, len(h))
	copy(out, h)

	return out
}

// newEdgeHeap collects the undirected weighted edges of g, skips
// self-pairs (a vertex cannot span to itself), and establishes the heap
// order over the rest.
// Complexity: O(E) collection + O(E) heapify.
func newEdgeHeap(g *core.Graph) *edgeHeap {
	all := g.Edges(core.WithUndirected())
	h := make(edgeHeap, 0, len(all))
	for _, e := range all {
		if e.From == e.To {
			// A non-zero diagonal entry survives enumeration but can
			// never be part of a spanning tree.
			continue
		}
		h = append(h, e)
	}
	heap.Init(&h)

	return &h
}
