// SPDX-License-Identifier: MIT

// Package matrix: read accessors of DistanceMatrix.
// All accessors are pure reads; lookups return sentinel errors, never panic.

package matrix

import (
	"fmt"
	"strings"
)

// Size returns the matrix dimension (number of labels).
// Complexity: O(1).
func (m *DistanceMatrix) Size() int {
	return m.n // return stored dimension
}

// Labels returns a copy of the axis labels in matrix order.
// Complexity: O(n).
func (m *DistanceMatrix) Labels() []string {
	out := make([]string, m.n)
	copy(out, m.labels)

	return out
}

// Has reports whether label is one of the matrix's axis labels.
// Complexity: O(1).
func (m *DistanceMatrix) Has(label string) bool {
	_, ok := m.index[label]

	return ok
}

// At retrieves the distance between labels u and v.
// Returns ErrNilMatrix for a nil receiver and ErrUnknownLabel (wrapped
// with call context) when either label is not part of the matrix.
// Complexity: O(1).
func (m *DistanceMatrix) At(u, v string) (float64, error) {
	if m == nil {
		return 0, fmt.Errorf("DistanceMatrix.At(%q,%q): %w", u, v, ErrNilMatrix)
	}
	i, ok := m.index[u]
	if !ok {
		return 0, fmt.Errorf("DistanceMatrix.At(%q,%q): %w", u, v, ErrUnknownLabel)
	}
	j, ok := m.index[v]
	if !ok {
		return 0, fmt.Errorf("DistanceMatrix.At(%q,%q): %w", u, v, ErrUnknownLabel)
	}

	// Compute flat offset and read.
	return m.data[i*m.n+j], nil
}

// AtIndex retrieves the distance at row i, column j in matrix order.
// Returns ErrNilMatrix for a nil receiver and ErrOutOfRange (wrapped with
// call context) for invalid indices.
// Complexity: O(1).
func (m *DistanceMatrix) AtIndex(i, j int) (float64, error) {
	if m == nil {
		return 0, fmt.Errorf("DistanceMatrix.AtIndex(%d,%d): %w", i, j, ErrNilMatrix)
	}
	// Validate row index.
	if i < 0 || i >= m.n {
		return 0, fmt.Errorf("DistanceMatrix.AtIndex(%d,%d): %w", i, j, ErrOutOfRange)
	}
	// Validate column index.
	if j < 0 || j >= m.n {
		return 0, fmt.Errorf("DistanceMatrix.AtIndex(%d,%d): %w", i, j, ErrOutOfRange)
	}

	return m.data[i*m.n+j], nil
}

// Clone returns a deep copy of the matrix.
// The returned DistanceMatrix is independent of the original.
// Complexity: O(n²) time and memory.
func (m *DistanceMatrix) Clone() *DistanceMatrix {
	out := &DistanceMatrix{
		labels: make([]string, m.n),
		index:  make(map[string]int, m.n),
		data:   make([]float64, len(m.data)),
		n:      m.n,
	}
	copy(out.labels, m.labels)
	copy(out.data, m.data)
	for label, i := range m.index {
		out.index[label] = i
	}

	return out
}

// String implements fmt.Stringer for easy debugging: one labeled row per
// line, values in matrix order.
// Complexity: O(n²) for string construction.
func (m *DistanceMatrix) String() string {
	var b strings.Builder
	var i, j int
	for i = 0; i < m.n; i++ { // iterate over rows
		b.WriteString(m.labels[i])
		b.WriteString(": [")
		for j = 0; j < m.n; j++ { // iterate over columns
			// compute flat index directly for performance
			fmt.Fprintf(&b, "%g", m.data[i*m.n+j])
			if j < m.n-1 {
				b.WriteString(", ") // separate values with comma
			}
		}
		b.WriteString("]\n") // close row
	}

	return b.String()
}
