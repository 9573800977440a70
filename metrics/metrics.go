// SPDX-License-Identifier: MIT

// Package metrics computes performance indicators of a solved queue model.
//
// Every function reads the stationary distribution through Solution, never
// mutates it, and may be called any number of times in any order. Before the
// first successful Solve they return qtm.ErrUninitializedState.
package metrics

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/qtmcalc/clamp"
	"github.com/katalvlaran/qtmcalc/qtm"
)

// ErrStaleState is returned when the stored distribution no longer has one
// entry per occupancy state of the current configuration, which happens when
// c or k is changed after Solve.
var ErrStaleState = errors.New("metrics: distribution does not match configuration")

// Solution is the read-only view the metrics need. *qtm.Model implements it.
type Solution interface {
	Config() qtm.Config
	Distribution() ([]float64, error)
}

// load returns the configuration and distribution of s after checking that
// they belong together.
func load(s Solution) (qtm.Config, []float64, error) {
	pi, err := s.Distribution()
	if err != nil {
		return qtm.Config{}, nil, err
	}
	cfg := s.Config()
	if cfg.ChannelCount < 1 {
		return qtm.Config{}, nil, fmt.Errorf("%w: channel_count must be >= 1, got %d", qtm.ErrInvalidConfiguration, cfg.ChannelCount)
	}
	if len(pi) != cfg.StateCount() {
		return qtm.Config{}, nil, fmt.Errorf("%w: %d states for c=%d, k=%d", ErrStaleState, len(pi), cfg.ChannelCount, cfg.QueueSize)
	}

	return cfg, pi, nil
}

// AvgQueueLength is the expected number of waiting customers, Σ w·p_i over
// states i > c. The weight starts at 1 and is clamped to [1, k].
// It is 0 when k = 0.
func AvgQueueLength(s Solution) (float64, error) {
	cfg, pi, err := load(s)
	if err != nil {
		return 0, err
	}

	return avgQueueLength(cfg, pi), nil
}

func avgQueueLength(cfg qtm.Config, pi []float64) float64 {
	var res float64
	w := 1
	for _, p := range pi[cfg.ChannelCount+1:] {
		res += float64(w) * p
		w = clamp.Ordered(w+1, 1, cfg.QueueSize)
	}

	return res
}

// EndToEnd is the mean number of busy servers divided by c, i.e. the server
// utilization. Weights run 0, 1, …, c and stay at c.
func EndToEnd(s Solution) (float64, error) {
	cfg, pi, err := load(s)
	if err != nil {
		return 0, err
	}

	return endToEnd(cfg, pi), nil
}

func endToEnd(cfg qtm.Config, pi []float64) float64 {
	var res float64
	w := 0
	for _, p := range pi {
		res += float64(w) * p
		w = clamp.Ordered(w+1, 0, cfg.ChannelCount)
	}

	return res / float64(cfg.ChannelCount)
}

// AvgTimeInQueue is AvgQueueLength / c · μ.
func AvgTimeInQueue(s Solution) (float64, error) {
	cfg, pi, err := load(s)
	if err != nil {
		return 0, err
	}

	return avgTimeInQueue(cfg, pi), nil
}

func avgTimeInQueue(cfg qtm.Config, pi []float64) float64 {
	return avgQueueLength(cfg, pi) / float64(cfg.ChannelCount) * cfg.Mu
}

// FractionServed is 1 - p_last, the complement of the blocking probability.
func FractionServed(s Solution) (float64, error) {
	_, pi, err := load(s)
	if err != nil {
		return 0, err
	}

	return fractionServed(pi), nil
}

func fractionServed(pi []float64) float64 { return 1 - pi[len(pi)-1] }

// AvgCountServedReq is Σ w·p_i with w = i capped at c+1.
func AvgCountServedReq(s Solution) (float64, error) {
	cfg, pi, err := load(s)
	if err != nil {
		return 0, err
	}

	return avgCountServedReq(cfg, pi), nil
}

func avgCountServedReq(cfg qtm.Config, pi []float64) float64 {
	var res float64
	w := 0
	for _, p := range pi {
		res += p * float64(w)
		if w < cfg.ChannelCount+1 {
			w++
		}
	}

	return res
}

// AvgCountReq is the expected occupancy Σ i·p_i.
func AvgCountReq(s Solution) (float64, error) {
	_, pi, err := load(s)
	if err != nil {
		return 0, err
	}

	return avgCountReq(pi), nil
}

func avgCountReq(pi []float64) float64 {
	var res float64
	for i, p := range pi {
		res += p * float64(i)
	}

	return res
}
