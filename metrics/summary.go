// SPDX-License-Identifier: MIT

package metrics

import (
	"github.com/katalvlaran/qtmcalc/qtm"
)

// Summary holds every metric of one solved model.
type Summary struct {
	// Config is read after Solve, so N reflects the population already drawn.
	Config            qtm.Config `json:"config" yaml:"config"`
	States            []float64  `json:"states" yaml:"states"`
	AvgQueueLength    float64    `json:"avg_queue_length" yaml:"avg_queue_length"`
	EndToEnd          float64    `json:"end_to_end" yaml:"end_to_end"`
	AvgTimeInQueue    float64    `json:"avg_time_in_queue" yaml:"avg_time_in_queue"`
	FractionServed    float64    `json:"fraction_served" yaml:"fraction_served"`
	AvgCountServedReq float64    `json:"avg_count_served_req" yaml:"avg_count_served_req"`
	AvgCountReq       float64    `json:"avg_count_req" yaml:"avg_count_req"`
}

// Summarize computes all six metrics from a single read of s.
// Results are identical to calling the functions one by one.
func Summarize(s Solution) (Summary, error) {
	cfg, pi, err := load(s)
	if err != nil {
		return Summary{}, err
	}

	return Summary{
		Config:            cfg,
		States:            pi,
		AvgQueueLength:    avgQueueLength(cfg, pi),
		EndToEnd:          endToEnd(cfg, pi),
		AvgTimeInQueue:    avgTimeInQueue(cfg, pi),
		FractionServed:    fractionServed(pi),
		AvgCountServedReq: avgCountServedReq(cfg, pi),
		AvgCountReq:       avgCountReq(pi),
	}, nil
}
