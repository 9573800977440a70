// SPDX-License-Identifier: MIT

package qtm

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/qtmcalc/matrix"
)

// Solver selects the dense back end used by SteadyState.
type Solver int

const (
	// SolverLU factors the augmented matrix once and runs one pair of
	// triangular solves. Default.
	SolverLU Solver = iota
	// SolverInverse forms the full inverse and multiplies it by the
	// right-hand side.
	SolverInverse
)

// String returns the lower-case solver name.
func (s Solver) String() string {
	switch s {
	case SolverLU:
		return "lu"
	case SolverInverse:
		return "inverse"
	default:
		return fmt.Sprintf("solver(%d)", int(s))
	}
}

// ParseSolver maps "lu" or "inverse" (case-insensitive) to a Solver.
func ParseSolver(name string) (Solver, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", "lu":
		return SolverLU, nil
	case "inverse", "inv":
		return SolverInverse, nil
	default:
		return SolverLU, fmt.Errorf("%w: unknown solver %q", ErrInvalidConfiguration, name)
	}
}

// Option configures SteadyState and Model.
type Option func(*options)

type options struct {
	solver Solver
	pivot  []matrix.Option
}

// WithSolver selects the back end (default SolverLU).
func WithSolver(s Solver) Option {
	return func(o *options) { o.solver = s }
}

// WithPivotEpsilon forwards a pivot tolerance to the factorization.
// Panics when eps is negative or not finite (see matrix.WithEpsilon).
func WithPivotEpsilon(eps float64) Option {
	opt := matrix.WithEpsilon(eps)

	return func(o *options) { o.pivot = append(o.pivot, opt) }
}

func gatherOptions(user ...Option) options {
	o := options{solver: SolverLU}
	for _, set := range user {
		if set != nil {
			set(&o)
		}
	}

	return o
}
