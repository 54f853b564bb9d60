// Package core: functional configuration for edge enumeration.

package core

// DefaultDirected controls the enumeration mode when no option is given:
// true means every stored adjacency entry is emitted.
const DefaultDirected = true

// EnumOptions stores the effective enumeration configuration.
// Fields are unexported; Edges and Pairs accept `...EnumOption`.
type EnumOptions struct {
	directed bool // DefaultDirected
}

// EnumOption configures edge enumeration. All EnumOption functions modify
// the pointed EnumOptions.
type EnumOption func(*EnumOptions)

// WithDirected emits every stored adjacency entry: both orientations of
// each symmetric pair, plus self-pairs whose weight is non-zero.
// This is the default mode.
func WithDirected() EnumOption {
	return func(o *EnumOptions) { o.directed = true }
}

// WithUndirected emits each unordered pair exactly once, from the earlier
// vertex in matrix order. See Edges for the windowing contract.
func WithUndirected() EnumOption {
	return func(o *EnumOptions) { o.directed = false }
}

// gatherEnumOptions resolves option setters against the defaults.
// Last-writer-wins semantics. Complexity: O(k) for k = len(user).
func gatherEnumOptions(user ...EnumOption) EnumOptions {
	o := EnumOptions{directed: DefaultDirected}
	for _, set := range user {
		set(&o) // apply in order
	}

	return o
}
