// SPDX-License-Identifier: MIT

package qtm

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidConfiguration is returned when a Config violates a parameter
	// constraint (c ≥ 1, k ≥ 0, finite non-negative rates, N ≥ -1).
	ErrInvalidConfiguration = errors.New("qtm: invalid configuration")

	// ErrSingularMatrix is returned when the augmented generator cannot be
	// factored. The matrix.ErrSingular cause stays matchable through errors.Is.
	ErrSingularMatrix = errors.New("qtm: singular augmented generator")

	// ErrUninitializedState is returned when a solution is requested from a
	// model that has not been solved, or whose last solve failed.
	ErrUninitializedState = errors.New("qtm: model has not been solved")
)

// Operation tags for error wrapping.
const (
	opBuild       = "BuildGenerator"
	opSteadyState = "SteadyState"
	opResidual    = "Residual"
	opSolve       = "Model.Solve"
)

// qtmErrorf wraps err with an operation tag, preserving it via %w.
func qtmErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}
