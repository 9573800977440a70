// SPDX-License-Identifier: MIT

package report

import (
	"fmt"
	"io"
	"strconv"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/common/expfmt"
)

const namespace = "qtmcalc"

// writeProm registers one gauge per metric plus the state distribution on a
// private registry and writes the gathered families as text exposition.
func writeProm(w io.Writer, r Report) error {
	reg := prometheus.NewRegistry()
	labels := prometheus.Labels{"run_id": r.RunID, "solver": r.Solver}

	for _, m := range summaryMetrics {
		g := prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace:   namespace,
			Name:        m.name,
			Help:        m.help,
			ConstLabels: labels,
		})
		g.Set(m.get(r.Summary))
		if err := reg.Register(g); err != nil {
			return fmt.Errorf("report: register %s: %w", m.name, err)
		}
	}

	states := prometheus.NewGaugeVec(prometheus.GaugeOpts{
		Namespace:   namespace,
		Name:        "state_probability",
		Help:        "Stationary probability of each occupancy state.",
		ConstLabels: labels,
	}, []string{"state"})
	for i, p := range r.Summary.States {
		states.WithLabelValues(strconv.Itoa(i)).Set(p)
	}
	if err := reg.Register(states); err != nil {
		return fmt.Errorf("report: register state_probability: %w", err)
	}

	return gatherTo(w, reg)
}

func writeSweepProm(w io.Writer, r SweepReport) error {
	reg := prometheus.NewRegistry()
	labels := prometheus.Labels{"run_id": r.RunID, "solver": r.Solver, "param": string(r.Param)}

	for _, m := range summaryMetrics {
		g := prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Namespace:   namespace,
			Subsystem:   "sweep",
			Name:        m.name,
			Help:        m.help,
			ConstLabels: labels,
		}, []string{"value"})
		for _, p := range r.Points {
			g.WithLabelValues(strconv.FormatFloat(p.Value, 'g', -1, 64)).Set(m.get(p.Summary))
		}
		if err := reg.Register(g); err != nil {
			return fmt.Errorf("report: register sweep %s: %w", m.name, err)
		}
	}

	return gatherTo(w, reg)
}

func gatherTo(w io.Writer, g prometheus.Gatherer) error {
	families, err := g.Gather()
	if err != nil {
		return fmt.Errorf("report: gather: %w", err)
	}
	for _, mf := range families {
		if _, err = expfmt.MetricFamilyToText(w, mf); err != nil {
			return fmt.Errorf("report: write %s: %w", mf.GetName(), err)
		}
	}

	return nil
}
