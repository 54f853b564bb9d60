// Package core: Edge and Pair value types plus the package sentinel errors.
// This file declares the edge ordering every heap and sort in minspan keys
// on; changing Less changes which spanning-tree edge wins a weight tie.

package core

import "errors"

// Sentinel errors for core graph operations.
var (
	// ErrNilMatrix indicates that a nil *matrix.DistanceMatrix was passed
	// to NewGraph.
	ErrNilMatrix = errors.New("core: distance matrix is nil")

	// ErrVertexNotFound indicates an operation referenced a non-existent vertex.
	ErrVertexNotFound = errors.New("core: vertex not found")
)

// Edge represents a weighted connection between two vertices: the ordered
// triple (weight, origin, destination).
type Edge struct {
	// Weight is the distance between From and To; always >= 0.
	Weight float64

	// From is the origin vertex label.
	From string

	// To is the destination vertex label.
	To string
}

// Less reports whether e orders before other in the canonical edge order:
// ascending Weight, then From, then To. This ordering is load-bearing: it
// keys every edge heap and sort, so it decides which edge is picked among
// equal-weight candidates.
// Complexity: O(1).
func (e Edge) Less(other Edge) bool {
	if e.Weight != other.Weight {
		return e.Weight < other.Weight
	}
	if e.From != other.From {
		return e.From < other.From
	}

	return e.To < other.To
}

// Pair is the unweighted enumeration item: an (origin, destination) tuple
// with the weight component dropped.
type Pair struct {
	// From is the origin vertex label.
	From string

	// To is the destination vertex label.
	To string
}
