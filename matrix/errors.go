// SPDX-License-Identifier: MIT
// Package matrix: sentinel error set (unified, consistent).
// This file defines ONLY package-level sentinel errors used across the matrix
// package. All constructors and accessors MUST return these sentinels and
// tests MUST check them via errors.Is. No code path panics on user-triggered
// error conditions. Panics are reserved for programmer errors in option
// constructors.

package matrix

import "errors"

// NOTE ON NAMING & PREFIXING
// --------------------------
// Every message is prefixed with "matrix: ..." for consistency and to allow
// easy grepping across logs. DO NOT %w wrap these sentinels when returning
// directly; if context is essential, wrap with fmt.Errorf("ctx: %w", ErrX)
// at the outer boundary. Callers still use errors.Is to match.
//
// ERROR PRIORITY (documented, enforced in tests):
// shape -> labels -> NaN/Inf -> negative values -> symmetry (opt-in).

var (
	// ErrNonSquare signals that the value table is not square: the number of
	// rows differs from the number of labels, or some row has a different
	// length than the label set.
	ErrNonSquare = errors.New("matrix: matrix is not square")

	// ErrLabelMismatch signals that the row and column label axes disagree,
	// either in length or position by position.
	ErrLabelMismatch = errors.New("matrix: row and column labels mismatch")

	// ErrDuplicateLabel signals that the same label appears twice; labels
	// must uniquely identify rows and columns.
	ErrDuplicateLabel = errors.New("matrix: duplicate label")

	// ErrEmptyLabel signals that a label is the empty string.
	ErrEmptyLabel = errors.New("matrix: empty label")

	// ErrNaNInf signals a NaN or ±Inf value was encountered where finite
	// values are required by the numeric policy (construction).
	ErrNaNInf = errors.New("matrix: NaN or Inf encountered")

	// ErrNegativeWeight signals a negative entry; distances must be >= 0.
	ErrNegativeWeight = errors.New("matrix: negative weight")

	// ErrAsymmetry signals that a matrix expected to be symmetric violated
	// symmetry within the configured numeric policy (epsilon).
	// Only returned when the symmetry check is enabled.
	ErrAsymmetry = errors.New("matrix: matrix is not symmetric within eps")

	// ErrUnknownLabel indicates that a referenced label is not present in
	// the matrix's label set.
	ErrUnknownLabel = errors.New("matrix: unknown label")

	// ErrOutOfRange indicates that a row or column index is outside valid
	// bounds. Public indexers MUST return this, not panic.
	ErrOutOfRange = errors.New("matrix: index out of range")

	// ErrNilMatrix indicates that a nil *DistanceMatrix (receiver or
	// argument) was used.
	ErrNilMatrix = errors.New("matrix: nil receiver")
)
