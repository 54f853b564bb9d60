package mst

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

// TestDisjointSet_InitialRoots verifies that every vertex starts as its
// own root.
func TestDisjointSet_InitialRoots(t *testing.T) {
	d := newDisjointSet([]string{"A", "B", "C"})

	assert.Equal(t, "A", d.find("A"))
	assert.Equal(t, "B", d.find("B"))
	assert.Equal(t, "C", d.find("C"))
}

// TestDisjointSet_UnionFindAgreement verifies that after union(a, b) both
// endpoints resolve to the same root, while untouched vertices keep theirs.
func TestDisjointSet_UnionFindAgreement(t *testing.T) {
	d := newDisjointSet([]string{"A", "B", "C", "D"})

	d.union("A", "B")
	assert.Equal(t, d.find("A"), d.find("B"))    // merged pair shares a root
	assert.NotEqual(t, d.find("A"), d.find("C")) // C still its own component

	d.union("C", "D")
	d.union("B", "C")
	assert.Equal(t, d.find("A"), d.find("D")) // transitively one component
}

// TestDisjointSet_UnionIdempotent verifies that repeating a union changes
// nothing: same root, same rank.
func TestDisjointSet_UnionIdempotent(t *testing.T) {
	d := newDisjointSet([]string{"A", "B"})

	d.union("A", "B")
	root := d.find("A")
	rank := d.rank[root]

	d.union("A", "B") // repeat: both endpoints already share the root
	assert.Equal(t, root, d.find("A"))
	assert.Equal(t, root, d.find("B"))
	assert.Equal(t, rank, d.rank[root]) // no rank drift on the no-op
}

// TestDisjointSet_RankTie verifies the tie rule: merging two rank-equal
// roots keeps the first argument's root and increments its rank.
func TestDisjointSet_RankTie(t *testing.T) {
	d := newDisjointSet([]string{"A", "B"})

	d.union("A", "B")

	assert.Equal(t, "A", d.find("B")) // A's root survived the rank tie
	assert.Equal(t, 1, d.rank["A"])   // survivor's rank bumped from 0 to 1
}

// TestDisjointSet_UnionByRank verifies that the lower-rank root attaches
// under the higher-rank root, leaving the higher rank unchanged.
func TestDisjointSet_UnionByRank(t *testing.T) {
	d := newDisjointSet([]string{"A", "B", "C"})

	d.union("A", "B") // A gains rank 1
	d.union("C", "A") // C (rank 0) must go under A despite being first

	assert.Equal(t, "A", d.find("C")) // higher-rank root survives
	assert.Equal(t, 1, d.rank["A"])   // no increment on an unequal merge
}

// TestDisjointSet_ChainCollapse verifies that a chain of unions across all
// vertices collapses the whole set to a single root.
func TestDisjointSet_ChainCollapse(t *testing.T) {
	const n = 50
	vertices := make([]string, n)
	for i := range vertices {
		vertices[i] = fmt.Sprintf("V%d", i)
	}
	d := newDisjointSet(vertices)

	for i := 1; i < n; i++ {
		d.union(vertices[i-1], vertices[i])
	}

	root := d.find(vertices[0])
	for _, v := range vertices {
		assert.Equal(t, root, d.find(v))
	}
}

// TestDisjointSet_PathCompression verifies the two-pass find: one lookup
// on a deliberately deep chain re-points every visited vertex directly at
// the root.
func TestDisjointSet_PathCompression(t *testing.T) {
	d := newDisjointSet([]string{"A", "B", "C", "D"})
	// Force the chain D -> C -> B -> A through raw parent links.
	d.parent["B"] = "A"
	d.parent["C"] = "B"
	d.parent["D"] = "C"

	assert.Equal(t, "A", d.find("D"))

	// The walked path is now flat: each vertex links straight to the root.
	assert.Equal(t, "A", d.parent["D"])
	assert.Equal(t, "A", d.parent["C"])
	assert.Equal(t, "A", d.parent["B"])
}
