// SPDX-License-Identifier: MIT

// Package matrix: functional configuration for the tolerance-based helpers
// (AllClose, IsIdentity). Inversion itself takes no options: singularity is
// an exact-zero test.
//
// Design goals:
//   - Deterministic behavior: no global state.
//   - Safe by construction: panic only on invalid parameters (programmer error).
package matrix

import "math"

// DefaultEpsilon defines the non-negative tolerance used by AllClose/IsIdentity.
const DefaultEpsilon = 1e-9

const panicEpsilonInvalid = "matrix: WithEpsilon: eps must be finite, non-negative"

// Option mutates internal options. Safe to apply repeatedly (idempotent).
type Option func(*Options)

// Options stores the effective configuration after applying Option setters.
// Fields are unexported; public entry points accept ...Option.
type Options struct {
	eps float64 // >= 0; DefaultEpsilon
}

// Epsilon returns the resolved tolerance.
func (o Options) Epsilon() float64 { return o.eps }

// WithEpsilon sets the tolerance used by element-wise closeness checks.
// Panics with a stable message when eps is NaN, ±Inf or negative.
//
// AI-Hints:
//   - 1e-9 suits well-conditioned double-precision inputs; relax it for
//     matrices whose determinant is tiny relative to their entries.
func WithEpsilon(eps float64) Option {
	if math.IsNaN(eps) || math.IsInf(eps, 0) || eps < 0 {
		panic(panicEpsilonInvalid)
	}

	return func(o *Options) { o.eps = eps }
}

// NewOptions resolves option setters against documented defaults.
func NewOptions(opts ...Option) Options {
	return gatherOptions(opts...)
}

// gatherOptions applies setters on top of defaults (last-writer-wins).
// Nil setters are skipped.
func gatherOptions(opts ...Option) Options {
	o := Options{eps: DefaultEpsilon}
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}

	return o
}
