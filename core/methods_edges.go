// Package core: edge-level read accessors and enumeration.

package core

import "sort"

// Adjacency returns a copy of id's adjacency list: the edges (weight, id,
// other) for every other vertex in matrix column order whose entry is
// non-zero.
//
// Error Conditions:
//   - ErrVertexNotFound : id is not a vertex of the graph.
//
// Complexity: O(n) time and memory.
func (g *Graph) Adjacency(id string) ([]Edge, error) {
	list, ok := g.adj[id]
	if !ok {
		return nil, ErrVertexNotFound
	}
	out := make([]Edge, len(list))
	copy(out, list)

	return out, nil
}

// Edges returns the weighted edge listing.
//
// Directed mode (the default) emits every stored adjacency entry, vertex
// by vertex in matrix order: n² items for an all-non-zero matrix, with
// self-pairs included only when their weight is non-zero.
//
// Undirected mode (WithUndirected) emits each unordered pair exactly once
// by, for the i-th vertex in matrix order, skipping the first i entries of
// its adjacency list. This windowing relies on symmetric weights and on
// adjacency entries appearing in the same relative order as Vertices(); it
// is not a generic de-duplication. Zero entries shorten adjacency lists,
// so a zero off-diagonal pair shifts the windows of later vertices and
// drops pairs from the listing; see NewGraph for the zero-entry rule.
//
// Complexity: O(n²) time and memory.
func (g *Graph) Edges(opts ...EnumOption) []Edge {
	o := gatherEnumOptions(opts...)

	out := make([]Edge, 0, len(g.order)*len(g.order))
	for i, v := range g.order {
		list := g.adj[v]
		if o.directed {
			out = append(out, list...)

			continue
		}
		// Windowed emission: the first i entries repeat pairs already
		// emitted from earlier vertices.
		if i < len(list) {
			out = append(out, list[i:]...)
		}
	}

	return out
}

// Pairs returns the unweighted edge listing: the same items as Edges with
// the weight component dropped.
// Complexity: O(n²) time and memory.
func (g *Graph) Pairs(opts ...EnumOption) []Pair {
	edges := g.Edges(opts...)
	out := make([]Pair, len(edges))
	for i, e := range edges {
		out[i] = Pair{From: e.From, To: e.To}
	}

	return out
}

// SortEdges sorts edges in place into the canonical order: ascending
// weight, then origin, then destination. Useful for normalizing spanning
// trees before comparison or display.
// Complexity: O(E log E).
func SortEdges(edges []Edge) {
	sort.Slice(edges, func(i, j int) bool { return edges[i].Less(edges[j]) })
}
