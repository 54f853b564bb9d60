// SPDX-License-Identifier: MIT

// Package matrix: functional configuration for the numeric policy applied
// at construction. This file defines:
//   - Option / Options (functional options with internal state),
//   - documented defaults (constants),
//   - WithX constructors with strong validation (panic on nonsensical values),
//   - gatherOptions helper (internal) that resolves options against defaults.
//
// Design goals:
//   - Deterministic behavior: no global state, no implicit randomness.
//   - No dead switches: each flag impacts behavior and is covered by tests.
//   - Safe by construction: panic only on invalid parameters (programmer error).
//   - Options fields are unexported; public APIs consume ...Option.

package matrix

// ---------- Defaults (single source of truth) ----------

const (
	// DefaultEpsilon defines the non-negative tolerance used by the
	// symmetry check: entries (i,j) and (j,i) may differ by at most eps.
	DefaultEpsilon = 1e-9

	// DefaultValidateFinite toggles strict finite-value validation on
	// construction. When enabled, NaN and ±Inf entries are rejected.
	DefaultValidateFinite = true

	// DefaultCheckSymmetry controls whether construction verifies that the
	// table is symmetric within epsilon. Disabled by default: consumers
	// assume symmetry, and callers that cannot guarantee it opt in.
	DefaultCheckSymmetry = false
)

// ---------- Internal panic messages (no magic strings) ----------

const panicEpsilonInvalid = "matrix: WithEpsilon: eps must be finite, non-negative"

// ---------- Public option type (functional) ----------

// Option mutates internal options. Safe to apply repeatedly (idempotent).
// Constructors MUST panic only on nonsensical values (programmer error).
type Option func(*Options)

// Options stores the effective configuration after applying Option setters.
// Fields are intentionally unexported to prevent external mutation; public
// entry points accept `...Option` and resolve them via gatherOptions.
type Options struct {
	eps            float64 // >= 0; DefaultEpsilon
	validateFinite bool    // DefaultValidateFinite
	checkSymmetry  bool    // DefaultCheckSymmetry
}

// ---------- Constructors (WithX) ----------

// WithEpsilon sets the numeric tolerance eps used by the symmetry check.
// Larger eps relaxes the comparison; eps must be finite and >= 0.
// Panics with a stable message when eps is invalid.
// Complexity: O(1).
func WithEpsilon(eps float64) Option {
	if isNonFinite(eps) || eps < 0 {
		panic(panicEpsilonInvalid)
	}

	// Assign validated epsilon.
	return func(o *Options) { o.eps = eps }
}

// WithFiniteCheck enables strict finite-value validation (the default):
// NaN and ±Inf entries are rejected with ErrNaNInf at construction.
// Complexity: O(1).
func WithFiniteCheck() Option {
	return func(o *Options) { o.validateFinite = true }
}

// WithNoFiniteCheck disables NaN/Inf validation (use with care).
// Non-finite entries pass into the matrix; negative finite entries are
// still rejected. Intended for controlled experiments with placeholder
// values, not for regular ingestion.
// Complexity: O(1).
func WithNoFiniteCheck() Option {
	return func(o *Options) { o.validateFinite = false }
}

// WithSymmetryCheck verifies at construction that the table is symmetric:
// |v[i][j] - v[j][i]| <= eps for every pair, else ErrAsymmetry.
// Complexity: O(1) to set; the check itself is O(n²) at construction.
func WithSymmetryCheck() Option {
	return func(o *Options) { o.checkSymmetry = true }
}

// WithNoSymmetryCheck disables symmetry verification (the default).
// Complexity: O(1).
func WithNoSymmetryCheck() Option {
	return func(o *Options) { o.checkSymmetry = false }
}

// --------------------------- Option Resolution ---------------------------

// gatherOptions applies user-provided Option setters on top of defaults.
// This is the canonical internal entry for every public constructor.
// Last-writer-wins semantics; stable for a given sequence of setters.
// Complexity: O(k) for k = len(user).
func gatherOptions(user ...Option) Options {
	o := Options{
		eps:            DefaultEpsilon,
		validateFinite: DefaultValidateFinite,
		checkSymmetry:  DefaultCheckSymmetry,
	}
	for _, set := range user {
		set(&o) // apply in order; last-writer-wins semantics
	}

	return o
}
