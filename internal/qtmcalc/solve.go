// SPDX-License-Identifier: MIT

package qtmcalc

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/katalvlaran/qtmcalc/internal/report"
	"github.com/katalvlaran/qtmcalc/metrics"
	"github.com/katalvlaran/qtmcalc/qtm"
)

// Solve solves the configured model once and writes its report to a.Out.
func (a *App) Solve(ctx context.Context) error {
	cfg := a.Params.Config
	if err := cfg.Validate(); err != nil {
		return err
	}
	format, err := report.ParseFormat(cfg.Output)
	if err != nil {
		return err
	}
	solver, err := cfg.SolverOption()
	if err != nil {
		return err
	}

	runID := a.NewRunID()
	log := a.Log.With("run_id", runID)

	m, err := qtm.NewModel(cfg.Model, solver)
	if err != nil {
		return err
	}
	start := time.Now()
	pi, err := m.Solve()
	if err != nil {
		return fmt.Errorf("solve %s: %w", runID, err)
	}
	log.Info("model solved", "states", len(pi), "solver", cfg.Solver, "elapsed", time.Since(start))

	if log.Enabled(ctx, slog.LevelDebug) {
		a.logResidual(log, cfg.Model, pi)
	}

	summary, err := metrics.Summarize(m)
	if err != nil {
		return err
	}

	return report.Write(a.Out, format, report.Report{
		RunID:   runID,
		Solver:  cfg.Solver,
		Input:   cfg.Model,
		Summary: summary,
	})
}

// logResidual rebuilds the generator from the input configuration and logs
// how well pi satisfies the balance equations.
func (a *App) logResidual(log *slog.Logger, cfg qtm.Config, pi []float64) {
	gen, err := qtm.BuildGenerator(cfg)
	if err != nil {
		log.Debug("residual unavailable", "err", err)
		return
	}
	res, err := qtm.Residual(gen.Matrix, pi)
	if err != nil {
		log.Debug("residual unavailable", "err", err)
		return
	}
	log.Debug("balance residual", "max_abs", res)
}
