// SPDX-License-Identifier: MIT

package qtmcalc

import (
	"context"
	"time"

	"github.com/katalvlaran/qtmcalc/internal/report"
	"github.com/katalvlaran/qtmcalc/internal/sweep"
)

// Sweep solves the configured model across the sweep values and writes one
// report covering every point.
func (a *App) Sweep(ctx context.Context) error {
	cfg := a.Params.Config
	if err := cfg.ValidateSweep(); err != nil {
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
	param, err := sweep.ParseParam(cfg.Sweep.Param)
	if err != nil {
		return err
	}
	values, err := cfg.SweepValues()
	if err != nil {
		return err
	}

	runID := a.NewRunID()
	log := a.Log.With("run_id", runID)
	log.Info("sweep started", "param", param, "points", len(values), "workers", cfg.Sweep.Workers)

	start := time.Now()
	points, err := sweep.Run(ctx, cfg.Model, param, values, cfg.Sweep.Workers, solver)
	if err != nil {
		log.Error("sweep failed", "err", err)
		return err
	}
	log.Info("sweep finished", "elapsed", time.Since(start))

	return report.WriteSweep(a.Out, format, report.SweepReport{
		RunID:  runID,
		Solver: cfg.Solver,
		Input:  cfg.Model,
		Param:  param,
		Points: points,
	})
}
