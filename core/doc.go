// Package core defines the central Graph, Edge, and Pair types built on
// top of a validated distance matrix.
//
// A Graph is constructed once from a *matrix.DistanceMatrix and never
// mutated again: vertex order is frozen to matrix order, adjacency lists
// are frozen to matrix column order, and every accessor returns a copy.
// Immutability is the concurrency model; any number of goroutines may read
// one Graph (Vertices, Adjacency, Edges, Pairs) without locks.
//
// Edge enumeration comes in two modes:
//
//	directed (default) : every stored adjacency entry, n² items for an
//	                     all-non-zero matrix
//	undirected         : each unordered pair once, emitted from the
//	                     earlier vertex in matrix order
//
// Edges order canonically by (Weight, From, To); see Edge.Less. That order
// decides every tie downstream, so spanning trees are deterministic.
//
// Zero-weight entries are treated as "absent" and never enter adjacency;
// see NewGraph and Edges for the consequences of that rule.
//
// Errors:
//
//	ErrNilMatrix      - nil distance matrix passed to NewGraph.
//	ErrVertexNotFound - requested vertex does not exist.
package core
