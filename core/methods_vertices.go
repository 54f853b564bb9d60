// Package core: vertex-level read accessors.

package core

// VertexCount returns the number of vertices.
// Complexity: O(1).
func (g *Graph) VertexCount() int {
	return len(g.order)
}

// Vertices returns a copy of the vertex labels in matrix order, with no
// duplicates. The slice is the caller's to mutate.
// Complexity: O(n).
func (g *Graph) Vertices() []string {
	out := make([]string, len(g.order))
	copy(out, g.order)

	return out
}

// HasVertex reports whether id is a vertex of the graph.
// Complexity: O(1).
func (g *Graph) HasVertex(id string) bool {
	_, ok := g.index[id]

	return ok
}
