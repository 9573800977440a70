// SPDX-License-Identifier: MIT

package report

import (
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/katalvlaran/qtmcalc/metrics"
	"github.com/katalvlaran/qtmcalc/qtm"
)

// metric pairs an output name with its Summary field.
type metric struct {
	name string
	help string
	get  func(metrics.Summary) float64
}

var summaryMetrics = []metric{
	{"avg_queue_length", "Expected number of waiting customers.", func(s metrics.Summary) float64 { return s.AvgQueueLength }},
	{"end_to_end", "Mean busy servers divided by the channel count.", func(s metrics.Summary) float64 { return s.EndToEnd }},
	{"avg_time_in_queue", "Average queue length divided by the channel count, times mu.", func(s metrics.Summary) float64 { return s.AvgTimeInQueue }},
	{"fraction_served", "One minus the probability of the full state.", func(s metrics.Summary) float64 { return s.FractionServed }},
	{"avg_count_served_req", "Expected occupancy with the weight capped at c+1.", func(s metrics.Summary) float64 { return s.AvgCountServedReq }},
	{"avg_count_req", "Expected number of customers in the system.", func(s metrics.Summary) float64 { return s.AvgCountReq }},
}

func modelLine(c qtm.Config) string {
	return fmt.Sprintf("c=%d k=%d la=%g mu=%g nu=%g n=%d", c.ChannelCount, c.QueueSize, c.La, c.Mu, c.Nu, c.N)
}

func writeText(w io.Writer, r Report) error {
	tw := tabwriter.NewWriter(w, 1, 1, 2, ' ', 0)
	fmt.Fprintf(tw, "Run:\t%s\n", r.RunID)
	fmt.Fprintf(tw, "Model:\t%s\n", modelLine(r.Input))
	fmt.Fprintf(tw, "Solver:\t%s\n", r.Solver)
	fmt.Fprintln(tw)
	for _, m := range summaryMetrics {
		fmt.Fprintf(tw, "%s\t%.10g\n", m.name, m.get(r.Summary))
	}
	fmt.Fprintln(tw)
	fmt.Fprintf(tw, "state\tprobability\n")
	for i, p := range r.Summary.States {
		fmt.Fprintf(tw, "%d\t%.10g\n", i, p)
	}

	return tw.Flush()
}

func writeSweepText(w io.Writer, r SweepReport) error {
	tw := tabwriter.NewWriter(w, 1, 1, 2, ' ', 0)
	fmt.Fprintf(tw, "Run:\t%s\n", r.RunID)
	fmt.Fprintf(tw, "Model:\t%s\n", modelLine(r.Input))
	fmt.Fprintf(tw, "Solver:\t%s\n", r.Solver)
	fmt.Fprintln(tw)
	fmt.Fprint(tw, r.Param)
	for _, m := range summaryMetrics {
		fmt.Fprintf(tw, "\t%s", m.name)
	}
	fmt.Fprintln(tw)
	for _, p := range r.Points {
		fmt.Fprintf(tw, "%g", p.Value)
		for _, m := range summaryMetrics {
			fmt.Fprintf(tw, "\t%.6g", m.get(p.Summary))
		}
		fmt.Fprintln(tw)
	}

	return tw.Flush()
}
