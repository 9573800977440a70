// SPDX-License-Identifier: MIT

// Package report renders solved models and sweeps as text, JSON, YAML or
// Prometheus text exposition.
package report

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/qtmcalc/internal/sweep"
	"github.com/katalvlaran/qtmcalc/metrics"
	"github.com/katalvlaran/qtmcalc/qtm"
)

// ErrUnknownFormat is returned for an output name ParseFormat does not know.
var ErrUnknownFormat = errors.New("report: unknown output format")

type Format string

const (
	FormatText Format = "text"
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
	FormatProm Format = "prom"
)

// Formats lists the accepted names in help-text order.
var Formats = []Format{FormatText, FormatJSON, FormatYAML, FormatProm}

func ParseFormat(name string) (Format, error) {
	f := Format(strings.ToLower(strings.TrimSpace(name)))
	switch f {
	case FormatText, FormatJSON, FormatYAML, FormatProm:
		return f, nil
	case "yml":
		return FormatYAML, nil
	case "prometheus":
		return FormatProm, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownFormat, name)
	}
}

// Report is one solved model.
type Report struct {
	RunID   string          `json:"run_id" yaml:"run_id"`
	Solver  string          `json:"solver" yaml:"solver"`
	Input   qtm.Config      `json:"input" yaml:"input"`
	Summary metrics.Summary `json:"summary" yaml:"summary"`
}

// SweepReport is a parameter sweep.
type SweepReport struct {
	RunID  string        `json:"run_id" yaml:"run_id"`
	Solver string        `json:"solver" yaml:"solver"`
	Input  qtm.Config    `json:"input" yaml:"input"`
	Param  sweep.Param   `json:"param" yaml:"param"`
	Points []sweep.Point `json:"points" yaml:"points"`
}

// Write renders r to w in format f.
func Write(w io.Writer, f Format, r Report) error {
	switch f {
	case FormatText:
		return writeText(w, r)
	case FormatJSON:
		return writeJSON(w, r)
	case FormatYAML:
		return writeYAML(w, r)
	case FormatProm:
		return writeProm(w, r)
	default:
		return fmt.Errorf("%w: %q", ErrUnknownFormat, f)
	}
}

// WriteSweep renders r to w in format f.
func WriteSweep(w io.Writer, f Format, r SweepReport) error {
	switch f {
	case FormatText:
		return writeSweepText(w, r)
	case FormatJSON:
		return writeJSON(w, r)
	case FormatYAML:
		return writeYAML(w, r)
	case FormatProm:
		return writeSweepProm(w, r)
	default:
		return fmt.Errorf("%w: %q", ErrUnknownFormat, f)
	}
}

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		return fmt.Errorf("report: encode json: %w", err)
	}

	return nil
}

func writeYAML(w io.Writer, v any) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(v); err != nil {
		return fmt.Errorf("report: encode yaml: %w", err)
	}

	return enc.Close()
}
