// Package mst: configuration options and sentinel errors for spanning-tree
// computation. It supports selecting between Kruskal and Prim via Options.

package mst

import (
	"errors"

	"github.com/katalvlaran/minspan/core"
)

// Sentinel errors for MST computation.
var (
	// ErrNilGraph indicates that a nil *core.Graph was passed.
	ErrNilGraph = errors.New("mst: graph is nil")

	// ErrEmptyGraph indicates that the graph has no vertices, so a spanning
	// tree is undefined. A single vertex is NOT this case: its tree is
	// trivially empty.
	ErrEmptyGraph = errors.New("mst: graph has no vertices")

	// ErrDisconnected indicates that no spanning tree covers every vertex:
	// Kruskal exhausted its candidate heap short of |V|-1 edges, or a Prim
	// growth step found no edge crossing from the visited set to the rest.
	ErrDisconnected = errors.New("mst: graph is disconnected")

	// ErrUnknownMethod indicates that Compute received a method name other
	// than MethodKruskal or MethodPrim.
	ErrUnknownMethod = errors.New("mst: unknown method")
)

// MethodKruskal selects Kruskal's algorithm (edge heap plus union-find).
const MethodKruskal = "kruskal"

// MethodPrim selects Prim's algorithm (edge heap, growth from the globally
// smallest edge).
const MethodPrim = "prim"

// Options configures which MST algorithm Compute runs.
// Use DefaultOptions() to get the default setup (Kruskal).
//
// Fields:
//
//	Method string — one of MethodKruskal or MethodPrim.
//
// See: mst.Kruskal, mst.Prim
type Options struct {
	// Method to use: MethodKruskal or MethodPrim.
	Method string
}

// Option configures Options. All Option functions modify the pointed Options.
type Option func(*Options)

// WithMethod returns an Option that sets the algorithm Method.
// Allowed values: MethodKruskal, MethodPrim; anything else surfaces as
// ErrUnknownMethod when Compute runs.
func WithMethod(m string) Option {
	return func(o *Options) { o.Method = m }
}

// DefaultOptions returns Options initialized for Kruskal by default.
// Complexity: O(1) to construct.
func DefaultOptions() Options {
	return Options{Method: MethodKruskal}
}

// Compute resolves opts against DefaultOptions and runs the selected
// algorithm:
//
//	– MethodKruskal (default): calls Kruskal(g).
//	– MethodPrim:              calls Prim(g).
//	– anything else:           returns ErrUnknownMethod.
//
// Returns:
//
//	[]core.Edge — edges of the spanning tree (empty for a single vertex).
//	float64     — total weight of the tree (zero if no edges).
//	error       — non-nil if computation cannot proceed.
//
// Note: this is optional scaffolding — Kruskal and Prim can be called
// directly.
func Compute(g *core.Graph, opts ...Option) ([]core.Edge, float64, error) {
	// Resolve options against defaults; last writer wins.
	o := DefaultOptions()
	for _, set := range opts {
		set(&o)
	}

	// Dispatch by method name.
	switch o.Method {
	case MethodKruskal:
		return Kruskal(g)
	case MethodPrim:
		return Prim(g)
	default:
		return nil, 0, ErrUnknownMethod
	}
}
