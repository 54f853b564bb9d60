// Package mst provides two classical algorithms for computing the Minimum
// Spanning Tree (MST) of a distance-matrix graph (*core.Graph): Kruskal's
// algorithm and an edge-driven variant of Prim's algorithm.
//
// What & Why
//
//   - What is an MST?
//     Given an undirected, connected, weighted graph G = (V, E), an MST is
//     a subset T ⊆ E such that T connects all vertices in V and the sum of
//     weights of edges in T is minimized.
//
//   - Why MST matters here:
//     over a correlation-derived distance matrix, the MST is the skeleton
//     of the market's hierarchical structure (Mantegna & Stanley's
//     construction): strongly correlated entities chain together and the
//     longest branches mark the natural places to cut for clustering.
//
// Algorithms Provided
//
//   - Kruskal(g *core.Graph) ([]core.Edge, float64, error)
//
//   - Strategy: feed every undirected edge into a min-heap keyed by the
//     canonical (weight, origin, destination) order, then pop minima,
//     merging components through a disjoint set (union-find with path
//     compression and union by rank) and discarding edges whose endpoints
//     are already connected. Stop once |V|−1 edges have been taken.
//
//   - Complexity: O(E log E + α(V)·E) ≈ O(E log V) time (E = number of
//     edges, V = number of vertices, α = inverse Ackermann);
//     O(V + E) memory.
//
//   - Prim(g *core.Graph) ([]core.Edge, float64, error)
//
//   - Strategy: feed every undirected edge into the same min-heap, seed
//     the tree with the globally smallest edge, then grow one vertex per
//     step by scanning a snapshot copy of the heap for the smallest edge
//     with exactly one endpoint in the tree. There is no caller-chosen
//     root; the seed edge decides where growth starts.
//
//   - Complexity: O(V·E log E) time worst case — the snapshot copy per
//     step trades speed for keeping every skipped edge available to later
//     steps; O(V + E) memory.
//
// Determinism
//
// Both algorithms key every pop on core.Edge.Less: ascending weight, ties
// by origin, then destination. Equal-weight candidates therefore resolve
// identically on every run, and both algorithms agree on total weight for
// any connected input (the edge sets themselves can differ only under
// weight ties).
//
// Error Conditions
//
//	Both algorithms return sentinel errors to signal invalid inputs or
//	unreachable MST scenarios:
//
//	- ErrNilGraph
//	    - the *core.Graph pointer is nil.
//
//	- ErrEmptyGraph
//	    - |V| == 0 (a spanning tree is undefined with no vertices).
//
//	- ErrDisconnected
//	    - |V| > 1 but no spanning tree covers every vertex: Kruskal's heap
//	      exhausts short of |V|−1 edges, or a Prim step finds no crossing
//	      edge. Neither algorithm ever returns a partial tree.
//
//	- ErrUnknownMethod (Compute only)
//	    - the method name is neither MethodKruskal nor MethodPrim.
//
// A single-vertex graph is the trivial case, not an error: both algorithms
// return an empty edge slice with total weight 0.
//
// Use Compute with WithMethod to select an algorithm by name, or call
// Kruskal and Prim directly. For usage, see example_test.go.
package mst
