// SPDX-License-Identifier: MIT

// Package matrix: functional options for the factorization kernels.
//
// Purpose:
//   - Keep kernel signatures stable while allowing the pivot tolerance to be tuned.
//   - Centralize defaults in one place (DefaultEpsilon, DefaultValidateNaNInf).
package matrix

import "math"

// DefaultEpsilon is the pivot tolerance used by LU/Solve/Inverse.
// Zero means only an exactly-zero pivot column is reported as singular.
const DefaultEpsilon = 0.0

// DefaultValidateNaNInf is the numeric policy applied by NewDense.
const DefaultValidateNaNInf = true

const panicEpsilonInvalid = "matrix: WithEpsilon: eps must be finite, non-negative"

// Option mutates internal options. Safe to apply repeatedly.
// Constructors panic only on nonsensical values (programmer error).
type Option func(*Options)

// Options stores the effective configuration after applying Option setters.
type Options struct {
	eps float64 // pivot tolerance, >= 0
}

// WithEpsilon sets the pivot tolerance: a column whose largest remaining
// magnitude is <= eps is treated as singular.
//
// Panics when eps is negative, NaN or infinite.
func WithEpsilon(eps float64) Option {
	if math.IsNaN(eps) || math.IsInf(eps, 0) || eps < 0 {
		panic(panicEpsilonInvalid)
	}

	return func(o *Options) { o.eps = eps }
}

// Epsilon reports the resolved pivot tolerance.
func (o Options) Epsilon() float64 { return o.eps }

// NewOptions resolves opts on top of the defaults (last writer wins).
func NewOptions(opts ...Option) Options {
	return gatherOptions(opts...)
}

// gatherOptions applies user-provided setters on top of defaults.
func gatherOptions(user ...Option) Options {
	o := Options{eps: DefaultEpsilon}
	for _, set := range user {
		if set != nil {
			set(&o)
		}
	}

	return o
}
