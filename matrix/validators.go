// SPDX-License-Identifier: MIT

// Package matrix: construction-time validation helpers.
// Each helper checks exactly one invariant and returns exactly one sentinel;
// New composes them in the documented priority order (see errors.go).

package matrix

import "math"

// isNonFinite reports whether x is NaN or ±Inf.
// Complexity: O(1).
func isNonFinite(x float64) bool {
	return math.IsNaN(x) || math.IsInf(x, 0)
}

// validateShape verifies that values forms a square table over labels:
// exactly len(labels) rows, each of length len(labels).
// Returns ErrNonSquare on the first violation.
// Complexity: O(n) for n = len(labels).
func validateShape(labels []string, values [][]float64) error {
	// Row count must match the label count.
	if len(values) != len(labels) {
		return ErrNonSquare
	}
	// Every row must span all columns.
	for _, row := range values {
		if len(row) != len(labels) {
			return ErrNonSquare
		}
	}

	return nil
}

// validateLabels verifies that every label is non-empty and unique.
// Returns ErrEmptyLabel or ErrDuplicateLabel on the first violation.
// Complexity: O(n) time, O(n) memory.
func validateLabels(labels []string) error {
	seen := make(map[string]struct{}, len(labels))
	for _, label := range labels {
		if label == "" {
			return ErrEmptyLabel
		}
		if _, dup := seen[label]; dup {
			return ErrDuplicateLabel
		}
		seen[label] = struct{}{}
	}

	return nil
}

// validateValues scans every entry under the numeric policy:
// non-finite entries (when the finite check is enabled) yield ErrNaNInf,
// negative entries yield ErrNegativeWeight. First offending cell wins;
// within a cell the finite check has priority, so -Inf reports ErrNaNInf.
// Complexity: O(n²).
func validateValues(values [][]float64, opts Options) error {
	for _, row := range values {
		for _, v := range row {
			if opts.validateFinite && isNonFinite(v) {
				return ErrNaNInf
			}
			if v < 0 {
				return ErrNegativeWeight
			}
		}
	}

	return nil
}

// validateSymmetry verifies |values[i][j] - values[j][i]| <= eps for every
// pair above the diagonal. Returns ErrAsymmetry on the first violation.
// Complexity: O(n²).
func validateSymmetry(values [][]float64, eps float64) error {
	for i := range values {
		for j := i + 1; j < len(values); j++ {
			if math.Abs(values[i][j]-values[j][i]) > eps {
				return ErrAsymmetry
			}
		}
	}

	return nil
}
