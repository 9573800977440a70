// SPDX-License-Identifier: MIT
// Package qtm_test contains shared fixtures.
//
// Purpose:
//   - Provide the reference scenario and a small deterministic parameter grid.
//   - Keep every grid point solvable (λ > 0, μ > 0).

package qtm_test

import (
	"fmt"
	"math"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"

	"github.com/katalvlaran/qtmcalc/qtm"
)

// referenceConfig has the closed-form solution [1/7, 2/7, 2/7, 2/7].
var referenceConfig = qtm.Config{ChannelCount: 2, QueueSize: 1, La: 10, Mu: 5, Nu: 0, N: qtm.InfinitePopulation}

var referenceStates = []float64{1.0 / 7, 2.0 / 7, 2.0 / 7, 2.0 / 7}

// approx compares float slices to an absolute margin of 1e-9.
var approx = cmpopts.EquateApprox(0, 1e-9)

func diff(want, got []float64) string { return cmp.Diff(want, got, approx) }

func inf() float64 { return math.Inf(1) }

func name(c qtm.Config) string {
	return fmt.Sprintf("c=%d/k=%d/la=%g/mu=%g/nu=%g/n=%d", c.ChannelCount, c.QueueSize, c.La, c.Mu, c.Nu, c.N)
}

// configGrid enumerates small models across both population modes.
func configGrid() []qtm.Config {
	var out []qtm.Config
	for _, c := range []int{1, 2, 3} {
		for _, k := range []int{0, 1, 3} {
			for _, la := range []float64{0.5, 10} {
				for _, mu := range []float64{1, 5} {
					for _, nu := range []float64{0, 0.7} {
						for _, n := range []int{qtm.InfinitePopulation, 5} {
							out = append(out, qtm.Config{ChannelCount: c, QueueSize: k, La: la, Mu: mu, Nu: nu, N: n})
						}
					}
				}
			}
		}
	}

	return out
}
