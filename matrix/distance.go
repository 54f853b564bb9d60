// SPDX-License-Identifier: MIT

// Package matrix: the DistanceMatrix type and its constructors.
// DistanceMatrix is a concrete, row-major distance table with labeled axes,
// storing elements in a flat slice for performance and cache friendliness.

package matrix

// DistanceMatrix is a labeled, square, row-major matrix of float64 distances.
// labels holds the axis labels in first-appearance order, index maps each
// label to its row/column position, and data holds n*n elements row-major.
//
// A DistanceMatrix is immutable after construction: accessors return copies
// and no setter exists, so a single instance is safe for concurrent reads.
type DistanceMatrix struct {
	labels []string       // axis labels in matrix order
	index  map[string]int // label -> row/column position
	data   []float64      // flat backing storage, length == n*n
	n      int            // number of labels (matrix dimension)
}

// New creates a DistanceMatrix from labels and a square value table.
//
// Error Conditions:
//   - ErrNonSquare       : len(values) != len(labels), or a ragged row.
//   - ErrEmptyLabel      : some label is the empty string.
//   - ErrDuplicateLabel  : some label appears more than once.
//   - ErrNaNInf          : a NaN or ±Inf entry (unless WithNoFiniteCheck).
//   - ErrNegativeWeight  : a negative entry.
//   - ErrAsymmetry       : halves disagree beyond eps (only WithSymmetryCheck).
//
// Steps:
//  1. Resolve options against documented defaults.
//  2. Validate shape, then labels, then values, then (opt-in) symmetry;
//     the first broken invariant wins.
//  3. Copy labels, build the label index, flatten values row-major.
//
// A zero-length label set with zero rows is valid and yields the empty
// matrix; downstream consumers decide how to treat a graph with no vertices.
//
// Complexity: O(n²) time and memory.
func New(labels []string, values [][]float64, opts ...Option) (*DistanceMatrix, error) {
	// 1. Resolve the numeric policy.
	o := gatherOptions(opts...)

	// 2. Validate in documented priority order; first failure wins.
	if err := validateShape(labels, values); err != nil {
		return nil, err
	}
	if err := validateLabels(labels); err != nil {
		return nil, err
	}
	if err := validateValues(values, o); err != nil {
		return nil, err
	}
	if o.checkSymmetry {
		if err := validateSymmetry(values, o.eps); err != nil {
			return nil, err
		}
	}

	// 3. Copy inputs into the immutable representation.
	n := len(labels)
	m := &DistanceMatrix{
		labels: make([]string, n),
		index:  make(map[string]int, n),
		data:   make([]float64, n*n),
		n:      n,
	}
	copy(m.labels, labels)
	for i, label := range labels {
		m.index[label] = i
	}
	for i, row := range values {
		copy(m.data[i*n:(i+1)*n], row)
	}

	return m, nil
}

// FromTable creates a DistanceMatrix from a table with separate row and
// column label axes, as produced by tabular data sources.
//
// Error Conditions:
//   - ErrLabelMismatch : axes differ in length or disagree at some position.
//   - plus every New error condition, in the same priority order.
//
// Steps:
//  1. Verify the axes agree position by position.
//  2. Delegate to New with the row labels.
//
// Complexity: O(n²) time and memory (dominated by New).
func FromTable(rowLabels, colLabels []string, values [][]float64, opts ...Option) (*DistanceMatrix, error) {
	// 1. Axes must be the same labels in the same order.
	if len(rowLabels) != len(colLabels) {
		return nil, ErrLabelMismatch
	}
	for i := range rowLabels {
		if rowLabels[i] != colLabels[i] {
			return nil, ErrLabelMismatch
		}
	}

	// 2. A square table over one agreed axis is a New call.
	return New(rowLabels, values, opts...)
}
