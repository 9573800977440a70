// SPDX-License-Identifier: MIT

// Package qtm builds and solves the continuous-time Markov chain of a
// finite-capacity multi-server queue with abandonment and an optional finite
// source population.
//
// Overview:
//
//   - Config holds the six model parameters: channel count c, queue capacity k,
//     arrival rate λ (La), per-server service rate μ (Mu), per-customer
//     abandonment rate ν (Nu) and the source population N
//     (InfinitePopulation = -1 disables the finite-population ramp).
//   - BuildGenerator emits the (c+k+1)×(c+k+1) generator matrix. Entry (i,j)
//     is the intensity of the move from state j into state i, so every column
//     sums to zero.
//   - SteadyState replaces one redundant balance equation with the
//     normalization Σπ = 1, solves the augmented system and returns π.
//   - Model ties the three together and remembers the last solution; the
//     metrics package reads it.
//
// Finite population:
//
//	Each arrival cell written while the population counter is not the
//	sentinel draws one unit from it (rate = clamp(remaining/N, 0, N)·λ).
//	BuildGenerator takes N by value and reports the units it drew in
//	Generator.Consumed. Model.Solve subtracts that count from the model's N,
//	so a second Solve without ResetPopulation or SetN sees a smaller
//	population and returns a different vector.
//
// Abandonment placement:
//
//	The ν term is added to cell (i, i+1) for i = 0..c+k-1, with weights
//	k, k-1, …, 0, 0, … starting from the lowest state. Read with the row as
//	the source this is the upward i → i+1 cell; in the column-as-source
//	orientation used by the solver it lands on the same cells as the
//	service term. The placement is kept as-is; abandonment conventionally
//	acts only on waiting customers in states above c.
//
// Error handling (sentinel errors):
//
//   - ErrInvalidConfiguration: a parameter violates its constraint
//     (all violations are reported together).
//   - ErrSingularMatrix: the augmented system has no unique solution
//     (for example, every rate is zero).
//   - ErrUninitializedState: the model has not been solved yet.
//
// Complexity: building is O(m²), solving O(m³) time and O(m²) space for
// m = c+k+2. A Model is not safe for concurrent use; independent models are.
package qtm
