// SPDX-License-Identifier: MIT
// Package matrix provides the linear-algebra kernels used by the steady-state
// solver: matrix-vector product, column sums, LU factorization with partial
// pivoting, and the Solve/Inverse facades.
//
// Notes:
//   - All kernels validate through validators.go and wrap failures with an
//     operation tag via matrixErrorf, so errors read "Op: underlying" and still
//     match with errors.Is.
//   - *Dense inputs take a flat-slice fast path; other Matrix implementations
//     go through At/Set.

package matrix

import (
	"fmt"
	"math"
)

// ZeroSum is the initial sum value for substitutions and reductions.
const ZeroSum = 0.0

// Operation name constants for unified error wrapping.
const (
	opMatVec     = "MatVec"
	opColumnSums = "ColumnSums"
	opLU         = "LU"
	opSolve      = "Solve"
	opInverse    = "Inverse"
)

// matrixErrorf wraps err with an operation tag, preserving it via %w.
// Use only when err != nil.
func matrixErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// toDense returns m itself when it is a *Dense, or a Dense copy otherwise.
// The returned matrix must be treated as read-only by callers that did not clone.
func toDense(m Matrix) (*Dense, error) {
	if d, ok := m.(*Dense); ok {
		return d, nil
	}
	rows, cols := m.Rows(), m.Cols()
	d, err := NewDense(rows, cols)
	if err != nil {
		return nil, err
	}
	var i, j int
	var v float64
	for i = 0; i < rows; i++ {
		for j = 0; j < cols; j++ {
			v, err = m.At(i, j)
			if err != nil {
				return nil, fmt.Errorf("At(%d,%d): %w", i, j, err)
			}
			d.data[i*cols+j] = v
		}
	}

	return d, nil
}

// MatVec computes y = m * x for a column vector x.
//
// Contract: m non-nil; x non-nil; len(x) == m.Cols().
// Determinism: fixed i→j loop order.
// Complexity: Time O(r*c), Space O(r) for y.
func MatVec(m Matrix, x []float64) ([]float64, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opMatVec, err)
	}
	if err := ValidateVecLen(x, m.Cols()); err != nil {
		return nil, matrixErrorf(opMatVec, err)
	}
	rows, cols := m.Rows(), m.Cols()
	y := make([]float64, rows)

	// Fast-path: *Dense allows flat, row-major dot-products.
	if d, ok := m.(*Dense); ok {
		var i, j, base int
		var acc float64
		for i = 0; i < d.r; i++ {
			acc = ZeroSum
			base = i * d.c
			for j = 0; j < d.c; j++ {
				acc += d.data[base+j] * x[j]
			}
			y[i] = acc
		}

		return y, nil
	}

	// Fallback: interface-based dot-products via At.
	var i, j int
	var mv float64
	var err error
	for i = 0; i < rows; i++ {
		y[i] = ZeroSum
		for j = 0; j < cols; j++ {
			mv, err = m.At(i, j)
			if err != nil {
				return nil, matrixErrorf(opMatVec, fmt.Errorf("At(%d,%d): %w", i, j, err))
			}
			y[i] += mv * x[j]
		}
	}

	return y, nil
}

// ColumnSums returns s[j] = Σ_i m[i,j], summing rows top-down.
//
// A CTMC generator stored with the source state as the column index has
// ColumnSums ≈ 0 everywhere.
//
// Complexity: Time O(r*c), Space O(c).
func ColumnSums(m Matrix) ([]float64, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opColumnSums, err)
	}
	d, err := toDense(m)
	if err != nil {
		return nil, matrixErrorf(opColumnSums, err)
	}
	sums := make([]float64, d.c)
	var i, j, base int
	for i = 0; i < d.r; i++ {
		base = i * d.c
		for j = 0; j < d.c; j++ {
			sums[j] += d.data[base+j]
		}
	}

	return sums, nil
}

// LU holds a factorization P·A = L·U computed with partial pivoting.
// L (unit lower) and U (upper) share one packed n×n buffer; perm records the
// source row of every factored row.
type LU struct {
	n    int
	lu   *Dense
	perm []int
}

// Factorize computes the LU factorization of a square matrix with partial
// (row) pivoting. The input is never mutated.
//
// Implementation:
//   - Stage 1: validate non-nil and square; copy A into a packed work buffer.
//   - Stage 2: for each column k pick the row p ≥ k with the largest |A[p,k]|
//     (lowest index on ties), fail with ErrSingular when that magnitude is ≤ eps,
//     swap rows k and p, then eliminate below the pivot.
//
// Errors:
//   - ErrNilMatrix, ErrDimensionMismatch, ErrSingular (all wrapped with "LU").
//
// Determinism:
//   - Fixed k→i→j order and lowest-index tie breaking.
//
// Complexity:
//   - Time O(n³), Space O(n²).
func Factorize(m Matrix, opts ...Option) (*LU, error) {
	if err := ValidateSquareNonNil(m); err != nil {
		return nil, matrixErrorf(opLU, err)
	}
	o := gatherOptions(opts...)

	src, err := toDense(m)
	if err != nil {
		return nil, matrixErrorf(opLU, err)
	}
	a := src.clone()
	n := a.r
	perm := make([]int, n)
	var i, j, k, p int
	for i = 0; i < n; i++ {
		perm[i] = i
	}

	var best, v, factor, pivot float64
	var rowK, rowI int
	for k = 0; k < n; k++ {
		// Pivot search in column k.
		p, best = k, math.Abs(a.data[k*n+k])
		for i = k + 1; i < n; i++ {
			v = math.Abs(a.data[i*n+k])
			if v > best {
				p, best = i, v
			}
		}
		if !(best > o.eps) {
			return nil, matrixErrorf(opLU, fmt.Errorf("column %d: %w", k, ErrSingular))
		}

		// Row swap (whole rows, so L multipliers travel with their row).
		if p != k {
			rowK, rowI = k*n, p*n
			for j = 0; j < n; j++ {
				a.data[rowK+j], a.data[rowI+j] = a.data[rowI+j], a.data[rowK+j]
			}
			perm[k], perm[p] = perm[p], perm[k]
		}

		// Elimination below the pivot.
		rowK = k * n
		pivot = a.data[rowK+k]
		for i = k + 1; i < n; i++ {
			rowI = i * n
			factor = a.data[rowI+k] / pivot
			a.data[rowI+k] = factor
			if factor == 0 {
				continue
			}
			for j = k + 1; j < n; j++ {
				a.data[rowI+j] -= factor * a.data[rowK+j]
			}
		}
	}

	return &LU{n: n, lu: a, perm: perm}, nil
}

// Size returns the order n of the factored matrix.
func (f *LU) Size() int { return f.n }

// Solve returns x with A·x = b using the stored factors.
//
// Implementation:
//   - Stage 1: y = P·b.
//   - Stage 2: forward substitution L·z = y (unit diagonal).
//   - Stage 3: backward substitution U·x = z.
//
// Errors:
//   - ErrNilMatrix / ErrDimensionMismatch for a bad b (wrapped with "Solve").
//
// Complexity: Time O(n²), Space O(n).
func (f *LU) Solve(b []float64) ([]float64, error) {
	if err := ValidateVecLen(b, f.n); err != nil {
		return nil, matrixErrorf(opSolve, err)
	}
	n := f.n
	d := f.lu.data
	x := make([]float64, n)
	var i, k, base int
	var sum float64

	// Forward: L·z = P·b.
	for i = 0; i < n; i++ {
		sum = b[f.perm[i]]
		base = i * n
		for k = 0; k < i; k++ {
			sum -= d[base+k] * x[k]
		}
		x[i] = sum
	}

	// Backward: U·x = z.
	for i = n - 1; i >= 0; i-- {
		sum = x[i]
		base = i * n
		for k = i + 1; k < n; k++ {
			sum -= d[base+k] * x[k]
		}
		x[i] = sum / d[base+i]
	}

	return x, nil
}

// Solve factors a and solves a·x = b in one call.
//
// Errors:
//   - everything Factorize and (*LU).Solve return, wrapped with "Solve".
//
// Complexity: Time O(n³), Space O(n²).
func Solve(a Matrix, b []float64, opts ...Option) ([]float64, error) {
	f, err := Factorize(a, opts...)
	if err != nil {
		return nil, matrixErrorf(opSolve, err)
	}
	x, err := f.Solve(b)
	if err != nil {
		return nil, matrixErrorf(opSolve, err)
	}

	return x, nil
}

// Inverse computes A⁻¹ from one pivoted LU factorization by solving against
// every canonical basis column e_col in ascending order.
//
// Errors:
//   - ErrNilMatrix, ErrDimensionMismatch, ErrSingular (wrapped with "Inverse").
//
// Notes:
//   - If only A⁻¹·b is needed, Solve is cheaper and more accurate.
//
// Complexity: Time O(n³), Space O(n²).
func Inverse(m Matrix, opts ...Option) (*Dense, error) {
	f, err := Factorize(m, opts...)
	if err != nil {
		return nil, matrixErrorf(opInverse, err)
	}
	n := f.n
	inv, err := NewDense(n, n)
	if err != nil {
		return nil, matrixErrorf(opInverse, err)
	}

	e := make([]float64, n)
	var col, i int
	var x []float64
	for col = 0; col < n; col++ {
		e[col] = 1
		x, err = f.Solve(e)
		if err != nil {
			return nil, matrixErrorf(opInverse, err)
		}
		e[col] = 0
		for i = 0; i < n; i++ {
			inv.data[i*n+col] = x[i]
		}
	}

	return inv, nil
}
