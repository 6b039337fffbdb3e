// SPDX-License-Identifier: MIT

// Package matrix: functional configuration for format conversion and
// structural comparisons. This file defines:
//   - Option / Options (functional options with internal state),
//   - documented defaults (constants),
//   - WithX constructors with strong validation (panic on nonsensical values),
//   - gatherOptions helper (internal).
//
// Design goals:
//   - Deterministic behavior: no global state, no implicit randomness.
//   - No dead switches: each option impacts behavior and is covered by tests.
package matrix

import "math"

// ---------- Defaults (single source of truth) ----------

const (
	// DefaultEpsilon is the tolerance used by AllClose.
	DefaultEpsilon = 1e-9

	// DefaultZeroThreshold is the conversion drop threshold: elements with
	// |v| <= threshold are not stored in the destination. 0 drops exact zeros only.
	DefaultZeroThreshold = 0.0
)

// ---------- Internal panic messages (no magic strings) ----------

const (
	panicEpsilonInvalid   = "matrix: WithEpsilon: eps must be finite, non-negative"
	panicThresholdInvalid = "matrix: WithZeroThreshold: threshold must be finite, non-negative"
)

// Option mutates internal options. Safe to apply repeatedly (idempotent).
// Constructors MUST panic only on nonsensical values (programmer error).
type Option func(*Options)

// Options stores the effective configuration after applying Option setters.
// Fields are unexported; public entry points accept ...Option.
type Options struct {
	eps           float64 // >= 0; DefaultEpsilon
	zeroThreshold float64 // >= 0; DefaultZeroThreshold
}

// WithEpsilon sets the tolerance used by AllClose.
// Panics with a stable message when eps is NaN, ±Inf or negative.
// Complexity: O(1).
func WithEpsilon(eps float64) Option {
	if isNonFinite(eps) || eps < 0 {
		panic(panicEpsilonInvalid)
	}

	return func(o *Options) { o.eps = eps }
}

// WithZeroThreshold sets the zero-interpretation threshold used by Convert.
// Implementation:
//   - Stage 1: validate t is finite and ≥ 0.
//   - Stage 2: return a setter that writes t into Options.
//
// Behavior highlights:
//   - Elements with |v| <= t are treated as structural zeros and not copied.
//
// Errors:
//   - Panics with a stable message when t is invalid.
//
// AI-Hints:
//   - Pick t relative to the data scale; 1e-12 cleans round-off after factorizations.
func WithZeroThreshold(t float64) Option {
	if isNonFinite(t) || t < 0 {
		panic(panicThresholdInvalid)
	}

	return func(o *Options) { o.zeroThreshold = t }
}

// gatherOptions applies user setters on top of defaults (last-writer-wins).
// Complexity: O(k) for k=len(user).
func gatherOptions(user ...Option) Options {
	o := Options{
		eps:           DefaultEpsilon,
		zeroThreshold: DefaultZeroThreshold,
	}
	for _, set := range user {
		set(&o)
	}

	return o
}

func isNonFinite(x float64) bool { return math.IsNaN(x) || math.IsInf(x, 0) }
