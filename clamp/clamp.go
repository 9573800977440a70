// SPDX-License-Identifier: MIT

package clamp

import (
	"math"

	"golang.org/x/exp/constraints"
)

// signMask flips every non-sign bit of a negative float's bit pattern so the
// result orders like a two's complement integer.
const signMask = math.MaxInt64

// Ordered returns value bounded to [lo, hi] as max(min(value, hi), lo).
//
// Behavior highlights:
//   - value < lo → lo; value > hi → hi; otherwise value.
//   - lo > hi → lo for every input (the lower bound is applied last).
//
// Complexity: O(1).
func Ordered[T constraints.Ordered](value, lo, hi T) T {
	// Stage 1: bound from above.
	if hi < value {
		value = hi
	}
	// Stage 2: bound from below; wins over Stage 1 when lo > hi.
	if value < lo {
		value = lo
	}

	return value
}

// Float bounds value to [lo, hi] using the IEEE-754 total order.
//
// Implementation:
//   - Stage 1: lhs = value if value < hi, else hi.
//   - Stage 2: return lhs if lhs > lo, else lo.
//
// The outcome of Stage 1 feeds Stage 2, so the order of the two comparisons
// is part of the contract. Under the total order a positive NaN is above
// +Inf and a negative NaN is below -Inf; both clamp to a finite bound when
// the bounds are finite.
//
// Complexity: O(1).
func Float(value, lo, hi float64) float64 {
	var lhs float64
	if TotalCompare(value, hi) < 0 {
		lhs = value
	} else {
		lhs = hi
	}

	if TotalCompare(lhs, lo) > 0 {
		return lhs
	}

	return lo
}

// TotalCompare compares a and b under the IEEE-754 totalOrder predicate.
// It returns -1 when a sorts before b, +1 when after and 0 when both carry
// the same bit pattern.
//
// Complexity: O(1).
func TotalCompare(a, b float64) int {
	ka, kb := totalKey(a), totalKey(b)
	switch {
	case ka < kb:
		return -1
	case ka > kb:
		return 1
	default:
		return 0
	}
}

// totalKey maps f to an int64 whose signed order equals the total order of f.
func totalKey(f float64) int64 {
	k := int64(math.Float64bits(f))
	if k < 0 {
		k ^= signMask
	}

	return k
}
