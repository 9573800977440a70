// SPDX-License-Identifier: MIT

// Package qtm_test provides benchmarks for generator construction and solving.
package qtm_test

import (
	"fmt"
	"testing"

	"github.com/katalvlaran/qtmcalc/qtm"
)

var sinkPi []float64

func BenchmarkModelSolve(b *testing.B) {
	b.ReportAllocs()
	for _, c := range []int{4, 32, 128} {
		cfg := qtm.Config{ChannelCount: c, QueueSize: c, La: float64(c), Mu: 1.1, Nu: 0.1, N: qtm.InfinitePopulation}
		b.Run(fmt.Sprintf("states=%d", cfg.StateCount()), func(b *testing.B) {
			m, err := qtm.NewModel(cfg)
			if err != nil {
				b.Fatal(err)
			}
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				if sinkPi, err = m.Solve(); err != nil {
					b.Fatal(err)
				}
			}
		})
	}
}
