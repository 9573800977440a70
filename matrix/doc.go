// SPDX-License-Identifier: MIT

// Package matrix is the dense linear-algebra back end of qtmcalc.
//
// The package provides:
//
//   - Dense, a row-major float64 matrix with bounds-checked At/Set, zero-filled
//     Resize and a finite-only numeric policy.
//   - LU factorization with partial pivoting and the Solve/Inverse facades
//     built on it.
//   - MatVec and ColumnSums, the two reductions the steady-state solver and
//     its diagnostics rely on.
//
// Error handling (sentinel errors, match with errors.Is):
//
//   - ErrInvalidDimensions: non-positive shape at construction or resize.
//   - ErrOutOfRange: index outside the matrix.
//   - ErrDimensionMismatch: non-square input or vector length mismatch.
//   - ErrNilMatrix: nil matrix or vector argument.
//   - ErrNaNInf: non-finite value rejected by the numeric policy.
//   - ErrSingular: no usable pivot left during factorization.
//
// Determinism: every kernel walks its data in a fixed order and pivot
// selection breaks ties by the lowest row index, so identical inputs give
// bit-identical outputs.
//
// Matrices here are small (a few thousand rows at most); O(n³) dense
// factorization is the intended cost model.
package matrix
