// SPDX-License-Identifier: MIT

package qtm

import (
	"errors"
	"fmt"
	"math"

	"github.com/katalvlaran/qtmcalc/matrix"
)

// SteadyState returns the stationary distribution π of the generator gen.
//
// Implementation:
//   - Stage 1: copy gen into an (m+1)×(m+1) matrix A, m = gen.Rows().
//   - Stage 2: last column of A = 1/m for the first m rows, last row = 1,
//     corner = 0. The last row is the normalization Σπ = 1.
//   - Stage 3: solve A·x = e_last with the selected back end.
//   - Stage 4: return x[0:m]; the extra unknown is a slack that is zero for a
//     consistent generator.
//
// Errors:
//   - matrix.ErrNilMatrix / matrix.ErrDimensionMismatch for a nil or
//     non-square gen.
//   - ErrSingularMatrix (also matching matrix.ErrSingular) when the augmented
//     system has no unique solution.
//
// Complexity: Time O(m³), Space O(m²).
func SteadyState(gen *matrix.Dense, opts ...Option) ([]float64, error) {
	if err := matrix.ValidateSquareNonNil(gen); err != nil {
		return nil, qtmErrorf(opSteadyState, err)
	}
	o := gatherOptions(opts...)

	states := gen.Rows()
	last := states
	a, err := gen.Resize(states+1, states+1)
	if err != nil {
		return nil, qtmErrorf(opSteadyState, err)
	}
	weight := 1 / float64(states)
	var i int
	for i = 0; i < states; i++ {
		if err = a.Set(i, last, weight); err != nil {
			return nil, qtmErrorf(opSteadyState, err)
		}
		if err = a.Set(last, i, 1); err != nil {
			return nil, qtmErrorf(opSteadyState, err)
		}
	}

	rhs := make([]float64, states+1)
	rhs[last] = 1

	var x []float64
	switch o.solver {
	case SolverInverse:
		var inv *matrix.Dense
		if inv, err = matrix.Inverse(a, o.pivot...); err == nil {
			x, err = matrix.MatVec(inv, rhs)
		}
	case SolverLU:
		x, err = matrix.Solve(a, rhs, o.pivot...)
	default:
		return nil, qtmErrorf(opSteadyState, fmt.Errorf("%w: unknown solver %v", ErrInvalidConfiguration, o.solver))
	}
	if err != nil {
		if errors.Is(err, matrix.ErrSingular) {
			return nil, fmt.Errorf("%s: %w: %w", opSteadyState, ErrSingularMatrix, err)
		}

		return nil, qtmErrorf(opSteadyState, err)
	}

	return x[:states:states], nil
}

// Residual returns max_i |(gen·pi)_i|, the balance-equation violation of pi.
// A correct stationary vector gives a value near machine precision times the
// largest rate.
//
// Complexity: Time O(m²), Space O(m).
func Residual(gen *matrix.Dense, pi []float64) (float64, error) {
	if err := matrix.ValidateSquareNonNil(gen); err != nil {
		return 0, qtmErrorf(opResidual, err)
	}
	r, err := matrix.MatVec(gen, pi)
	if err != nil {
		return 0, qtmErrorf(opResidual, err)
	}
	worst := 0.0
	for _, v := range r {
		worst = math.Max(worst, math.Abs(v))
	}

	return worst, nil
}
