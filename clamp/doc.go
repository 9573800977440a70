// SPDX-License-Identifier: MIT

// Package clamp provides the bounded-counter helpers used by the generator
// builder and the metric weights.
//
// Two flavours are offered:
//
//   - Ordered clamps any ordered value with max(min(v, hi), lo) precedence.
//     When lo > hi the lower bound wins, so a degenerate range always yields lo.
//   - Float clamps float64 values under the IEEE-754 total order, which makes
//     NaN and signed zeros compare deterministically:
//
//     -NaN < -Inf < ... < -0 < +0 < ... < +Inf < +NaN
//
// Both helpers are pure and allocation-free.
package clamp
