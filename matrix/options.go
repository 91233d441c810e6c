// SPDX-License-Identifier: MIT

// Package matrix: functional configuration for the factorization kernels.
// This file defines:
//   - Option / Options (functional options with internal state),
//   - documented defaults (constants),
//   - WithX constructors with strong validation (panic on nonsensical values),
//   - gatherOptions helper (internal).
//
// Design goals:
//   - Deterministic behavior: no global state, no implicit randomness.
//   - No dead switches: each flag impacts behavior and is covered by tests.
//   - Safe by construction: panic only on invalid parameters (programmer error).
package matrix

// ---------- Defaults (single source of truth) ----------

const (
	// DefaultValidateNaNInf toggles strict finite-value validation in Set.
	DefaultValidateNaNInf = true

	// DefaultConditionLimit is the smallest accepted ratio min|Uᵢᵢ| / max|Uᵢᵢ|
	// after pivoting. Below it the factorization is reported as ill-conditioned.
	DefaultConditionLimit = 1e-12
)

// ---------- Internal panic messages (no magic strings) ----------

const (
	panicConditionLimitInvalid = "matrix: WithConditionLimit: limit must be finite and in [0, 1)"
)

// Option mutates internal options. Safe to apply repeatedly (idempotent).
type Option func(*Options)

// Options stores the effective configuration after applying Option setters.
// Fields are unexported; public entry points accept `...Option`.
type Options struct {
	conditionLimit float64 // DefaultConditionLimit
}

// WithConditionLimit sets the pivot-ratio threshold used by LU and Solve.
// A limit of 0 disables the conditioning guard (zero pivots still fail).
//
// Errors:
//   - Panics with a stable message when limit is NaN/Inf, negative or >= 1.
//
// Complexity:
//   - Time O(1), Space O(1).
func WithConditionLimit(limit float64) Option {
	if isNonFinite(limit) || limit < 0 || limit >= 1 {
		panic(panicConditionLimitInvalid)
	}

	return func(o *Options) { o.conditionLimit = limit }
}

// defaultOptions returns Options populated from the Default* constants.
func defaultOptions() Options {
	return Options{conditionLimit: DefaultConditionLimit}
}

// gatherOptions resolves opts on top of the defaults. Nil options are skipped.
func gatherOptions(opts ...Option) Options {
	o := defaultOptions()
	for _, fn := range opts {
		if fn != nil {
			fn(&o)
		}
	}

	return o
}
