// SPDX-License-Identifier: MIT

// Package qtmcalc implements the qtmcalc commands. The cobra layer in
// cmd/qtmcalc only parses flags and calls into App.
package qtmcalc

import (
	"io"
	"log/slog"
	"os"

	"github.com/google/uuid"

	"github.com/katalvlaran/qtmcalc/internal/config"
)

// Params are the resolved settings of one invocation.
type Params struct {
	Config config.Config
}

// App is the qtmcalc application.
type App struct {
	Params *Params
	// Out receives reports.
	Out io.Writer
	// Log receives diagnostics; it never writes to Out.
	Log *slog.Logger
	// NewRunID labels each report.
	NewRunID func() string
}

// New returns an App writing to stdout with the default logger.
func New() *App {
	return &App{
		Params:   &Params{},
		Out:      os.Stdout,
		Log:      slog.Default(),
		NewRunID: uuid.NewString,
	}
}
