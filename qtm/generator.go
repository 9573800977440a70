// SPDX-License-Identifier: MIT

package qtm

import (
	"fmt"

	"github.com/katalvlaran/qtmcalc/clamp"
	"github.com/katalvlaran/qtmcalc/matrix"
)

// Generator is the output of BuildGenerator.
type Generator struct {
	// Matrix is the (c+k+1)×(c+k+1) intensity matrix; entry (i,j) is the
	// rate of the move j → i and the diagonal holds negated column sums.
	Matrix *matrix.Dense
	// Consumed is the number of population units drawn by arrival cells.
	// Always 0 for InfinitePopulation.
	Consumed int
}

// BuildGenerator emits the generator matrix for cfg.
//
// Implementation:
//   - Stage 1: allocate an (m×m) zero matrix, m = c+k+1.
//   - Stage 2: row-major sweep over (i,j).
//     Cell (i, i-1) receives the arrival rate. With a finite population the
//     rate is clamp(remaining/N, 0, N)·λ and remaining drops by one per cell;
//     once remaining equals InfinitePopulation the remaining cells use λ.
//     Cell (i, i+1) receives busy·μ, where busy counts 1, 2, …, c and then
//     stays at c.
//   - Stage 3: for i = 0..m-2 add waiting·ν to cell (i, i+1); waiting starts
//     at k and steps down to 0.
//   - Stage 4: set (i,i) to minus the sum of the off-diagonal entries of
//     column i, accumulated top-down.
//
// cfg is not validated here; NewModel and Config.Validate own that.
//
// Errors:
//   - matrix.ErrInvalidDimensions when c+k+1 < 1.
//   - matrix.ErrNaNInf when a rate is NaN or ±Inf.
//
// Complexity: Time O(m²), Space O(m²).
func BuildGenerator(cfg Config) (Generator, error) {
	total := cfg.TotalCount()
	size := total + 1
	q, err := matrix.NewDense(size, size)
	if err != nil {
		return Generator{}, qtmErrorf(opBuild, err)
	}

	var (
		i, j      int
		rate      float64
		remaining = cfg.N
		ceiling   = float64(cfg.N)
		consumed  int
		busy      int
	)
	for i = 0; i <= total; i++ {
		for j = 0; j <= total; j++ {
			switch {
			case i == j+1:
				rate = cfg.La
				if remaining != InfinitePopulation {
					rate = clamp.Float(float64(remaining)/ceiling, 0, ceiling) * cfg.La
					remaining--
					consumed++
				}
			case j == i+1:
				busy = clamp.Ordered(busy+1, 0, cfg.ChannelCount)
				rate = float64(busy) * cfg.Mu
			default:
				continue
			}
			if err = q.Set(i, j, rate); err != nil {
				return Generator{}, qtmErrorf(opBuild, err)
			}
		}
	}

	waiting := cfg.QueueSize
	for i = 0; i < total; i++ {
		if err = q.AddAt(i, i+1, float64(waiting)*cfg.Nu); err != nil {
			return Generator{}, qtmErrorf(opBuild, err)
		}
		waiting = clamp.Ordered(waiting-1, 0, cfg.QueueSize-1)
	}

	var sum, v float64
	for i = 0; i < size; i++ {
		sum = 0
		for j = 0; j < size; j++ {
			if j == i {
				continue
			}
			if v, err = q.At(j, i); err != nil {
				return Generator{}, qtmErrorf(opBuild, err)
			}
			sum += v
		}
		if err = q.Set(i, i, -sum); err != nil {
			return Generator{}, qtmErrorf(opBuild, fmt.Errorf("diagonal %d: %w", i, err))
		}
	}

	return Generator{Matrix: q, Consumed: consumed}, nil
}
