// Package mst: disjoint-set (union-find) support for Kruskal.

package mst

// disjointSet tracks a partition of vertex labels into components under
// the union-by-rank-with-path-compression discipline, giving amortized
// near-constant-time find and union.
type disjointSet struct {
	parent map[string]string // vertex -> parent link; a root points to itself
	rank   map[string]int    // root -> rank (upper bound on its tree height)
}

// newDisjointSet initializes every vertex as its own root with rank 0.
// Complexity: O(V) time and memory.
func newDisjointSet(vertices []string) *disjointSet {
	d := &disjointSet{
		parent: make(map[string]string, len(vertices)),
		rank:   make(map[string]int, len(vertices)),
	}
	for _, v := range vertices {
		d.parent[v] = v
		d.rank[v] = 0
	}

	return d
}

// find returns the root of v's component with full path compression:
// first walk parent links to the root, then a second pass re-points every
// visited vertex directly at that root. Iterative on purpose, so a
// pathological chain cannot grow the call stack.
// Complexity: amortized O(α(V)), effectively constant.
func (d *disjointSet) find(v string) string {
	// 1. Walk up to the root.
	root := v
	for d.parent[root] != root {
		root = d.parent[root]
	}

	// 2. Re-point every vertex on the walked path at the root.
	for d.parent[v] != root {
		d.parent[v], v = root, d.parent[v]
	}

	return root
}

// union merges the components of v1 and v2. Equal roots are a no-op.
// Otherwise the lower-rank root attaches under the higher-rank root; on a
// rank tie the first argument's root survives and its rank increments.
// Complexity: amortized O(α(V)), effectively constant.
func (d *disjointSet) union(v1, v2 string) {
	root1 := d.find(v1)
	root2 := d.find(v2)
	if root1 == root2 {
		// Already one component; nothing to merge.
		return
	}
	// Attach the smaller-rank tree under the larger-rank root.
	if d.rank[root1] < d.rank[root2] {
		root1, root2 = root2, root1
	}
	d.parent[root2] = root1
	if d.rank[root1] == d.rank[root2] {
		d.rank[root1]++
	}
}
