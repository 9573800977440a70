// SPDX-License-Identifier: MIT

// Package sweep evaluates a queue model over a list of values of one rate
// parameter. Points are solved in parallel, each on its own Model, and
// returned in input order.
package sweep

import (
	"context"
	"errors"
	"fmt"
	"math"
	"strings"

	"golang.org/x/exp/slices"
	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/qtmcalc/metrics"
	"github.com/katalvlaran/qtmcalc/qtm"
)

// MaxPoints caps the number of values a Range may expand to.
const MaxPoints = 100_000

// ErrInvalidSweep is returned for an unusable parameter name, range or
// worker count.
var ErrInvalidSweep = errors.New("sweep: invalid sweep")

// Param names the swept rate.
type Param string

const (
	ParamLa Param = "la"
	ParamMu Param = "mu"
	ParamNu Param = "nu"
)

// ParseParam accepts la, mu or nu in any case.
func ParseParam(name string) (Param, error) {
	p := Param(strings.ToLower(strings.TrimSpace(name)))
	switch p {
	case ParamLa, ParamMu, ParamNu:
		return p, nil
	default:
		return "", fmt.Errorf("%w: unknown parameter %q (want la, mu or nu)", ErrInvalidSweep, name)
	}
}

// Apply returns cfg with the swept parameter set to v.
func (p Param) Apply(cfg qtm.Config, v float64) qtm.Config {
	switch p {
	case ParamLa:
		cfg.La = v
	case ParamMu:
		cfg.Mu = v
	case ParamNu:
		cfg.Nu = v
	}

	return cfg
}

// Range is the closed interval [From, To] walked in Step increments.
type Range struct {
	From, To, Step float64
}

// Values expands r. The end point is included when it lies within a
// relative 1e-9 of a step boundary.
func (r Range) Values() ([]float64, error) {
	for _, v := range []float64{r.From, r.To, r.Step} {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return nil, fmt.Errorf("%w: range bounds must be finite", ErrInvalidSweep)
		}
	}
	if !(r.Step > 0) {
		return nil, fmt.Errorf("%w: step must be > 0, got %g", ErrInvalidSweep, r.Step)
	}
	if r.To < r.From {
		return nil, fmt.Errorf("%w: to (%g) < from (%g)", ErrInvalidSweep, r.To, r.From)
	}
	span := (r.To - r.From) / r.Step
	if span+1 > MaxPoints {
		return nil, fmt.Errorf("%w: %.0f points exceed %d", ErrInvalidSweep, span+1, MaxPoints)
	}

	count := int(math.Floor(span+1e-9)) + 1
	out := make([]float64, count)
	for i := range out {
		out[i] = r.From + float64(i)*r.Step
	}

	return out, nil
}

// Values returns a sorted copy of list without duplicates.
func Values(list []float64) []float64 {
	out := slices.Clone(list)
	slices.Sort(out)

	return slices.Compact(out)
}

// Point is the result for one swept value.
type Point struct {
	Value   float64         `json:"value" yaml:"value"`
	Summary metrics.Summary `json:"summary" yaml:"summary"`
}

// Run solves base with p set to each of values, using at most workers
// goroutines. The first error cancels the remaining points and is returned.
func Run(ctx context.Context, base qtm.Config, p Param, values []float64, workers int, opts ...qtm.Option) ([]Point, error) {
	if workers < 1 {
		return nil, fmt.Errorf("%w: workers must be >= 1, got %d", ErrInvalidSweep, workers)
	}
	if _, err := ParseParam(string(p)); err != nil {
		return nil, err
	}

	points := make([]Point, len(values))
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)
	for i, v := range values {
		i, v := i, v
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			s, err := solvePoint(p.Apply(base, v), opts)
			if err != nil {
				return fmt.Errorf("%s=%g: %w", p, v, err)
			}
			points[i] = Point{Value: v, Summary: s}

			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	return points, nil
}

func solvePoint(cfg qtm.Config, opts []qtm.Option) (metrics.Summary, error) {
	m, err := qtm.NewModel(cfg, opts...)
	if err != nil {
		return metrics.Summary{}, err
	}
	if _, err = m.Solve(); err != nil {
		return metrics.Summary{}, err
	}

	return metrics.Summarize(m)
}
