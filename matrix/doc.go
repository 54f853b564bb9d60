// SPDX-License-Identifier: MIT

// Package matrix provides DistanceMatrix, a labeled, square, row-major
// table of pairwise distances.
//
// The matrix package is the validated input surface of minspan:
//
//   - New ingests labels plus a square [][]float64 table and rejects
//     malformed input at construction (shape, labels, NaN/Inf, negatives).
//   - FromTable accepts separate row and column label axes and verifies
//     they agree position by position.
//   - Accessors (At, AtIndex, Labels, Size, Has) never panic on bad input;
//     they return sentinel errors checked via errors.Is.
//
// A DistanceMatrix is immutable after construction. Symmetry is assumed by
// downstream consumers but not verified by default; enable WithSymmetryCheck
// to reject tables whose halves disagree beyond the configured epsilon.
//
// Matrices are dense, so memory is O(n²); best for the small-to-medium
// label sets typical of pairwise-distance work.
//
// See core.NewGraph for turning a DistanceMatrix into an adjacency view.
package matrix
