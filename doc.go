// Package minspan turns labeled distance matrices into weighted graphs
// and computes minimum spanning trees over them.
//
// 🚀 What is minspan?
//
//	A small, deterministic library for the matrix-to-MST pipeline:
//		• Distance matrices: square, labeled, validated at construction
//		• Graph views: vertex order, adjacency, directed/undirected edge listings
//		• Minimum spanning trees: Kruskal (union-find) and Prim (edge heap)
//
// ✨ Why choose minspan?
//
//   - Deterministic: edge ordering by (weight, origin, destination) decides
//     every tie, so repeated runs agree bit for bit
//   - Rock-solid failure modes: sentinel errors for malformed input,
//     disconnected graphs and empty graphs, checked via errors.Is
//   - Pure Go: no cgo, a single test-only dependency
//   - Safe to share: graphs are immutable after construction, so concurrent
//     reads need no locks
//
// Everything is organized under three subpackages:
//
//	matrix/ : DistanceMatrix, a labeled square float64 table + validation
//	core/   : Graph, Edge, Pair, adjacency built from a DistanceMatrix
//	mst/    : Kruskal, Prim and the Compute dispatcher
//
// Quick ASCII example:
//
//	     KO──0.74──PG
//	     │          │
//	   0.86       1.10
//	     │          │
//	     GE        XON──0.89──CHV──0.84──TX
//
//	a minimum spanning tree over six stocks from their pairwise distances.
//
// Dive into examples/ for a runnable end-to-end scenario.
//
//	go get github.com/katalvlaran/minspan
package minspan
