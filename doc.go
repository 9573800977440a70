// SPDX-License-Identifier: MIT

// Package qtmcalc computes steady-state performance of multi-server queues
// with a bounded waiting line, customer abandonment and an optional finite
// source population.
//
// What is inside?
//
//	A small, deterministic toolkit that:
//		• builds the birth-death generator matrix of the queue
//		• solves the balance equations with a dense LU (or explicit inverse)
//		• derives queue length, utilization, served fraction and occupancy
//
// Packages:
//
//	clamp/   - Ordered and Float clamps, IEEE-754 total order
//	matrix/  - dense row-major matrix, resize, pivoted LU, Solve, Inverse
//	qtm/     - Config, BuildGenerator, SteadyState, Model
//	metrics/ - the six indicators and Summarize
//	cmd/qtmcalc - command line: solve, sweep, version
//
// Quick example (c=2 servers, k=1 waiting place, λ=10, μ=5):
//
//	m, _ := qtm.NewModel(qtm.Config{ChannelCount: 2, QueueSize: 1, La: 10, Mu: 5, N: qtm.InfinitePopulation})
//	pi, _ := m.Solve()          // [1/7 2/7 2/7 2/7]
//	s, _ := metrics.Summarize(m) // s.FractionServed == 5/7
//
//	go install github.com/katalvlaran/qtmcalc/cmd/qtmcalc@latest
package qtmcalc
