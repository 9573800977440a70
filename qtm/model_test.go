// SPDX-License-Identifier: MIT
// Package qtm_test contains unit tests for Model and Config validation.
package qtm_test

import (
	"errors"
	"math"
	"testing"

	"github.com/hashicorp/go-multierror"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/qtmcalc/matrix"
	"github.com/katalvlaran/qtmcalc/qtm"
)

// TestConfig_Counts checks the derived state counts.
func TestConfig_Counts(t *testing.T) {
	require.Equal(t, 3, referenceConfig.TotalCount())
	require.Equal(t, 4, referenceConfig.StateCount())
	require.False(t, referenceConfig.FinitePopulation())
	require.True(t, qtm.Config{N: 0}.FinitePopulation())
}

// TestConfig_Validate reports every violation at once.
func TestConfig_Validate(t *testing.T) {
	require.NoError(t, referenceConfig.Validate())
	require.NoError(t, qtm.Config{ChannelCount: 1}.Validate())

	err := qtm.Config{ChannelCount: 0, QueueSize: -1, La: math.NaN(), Mu: math.Inf(1), Nu: -0.5, N: -2}.Validate()
	require.ErrorIs(t, err, qtm.ErrInvalidConfiguration)

	var merr *multierror.Error
	require.True(t, errors.As(err, &merr))
	require.Len(t, merr.Errors, 6)
	for _, e := range merr.Errors {
		require.ErrorIs(t, e, qtm.ErrInvalidConfiguration)
	}
}

// TestNewModel_Invalid rejects a bad configuration.
func TestNewModel_Invalid(t *testing.T) {
	m, err := qtm.NewModel(qtm.Config{ChannelCount: 0})
	require.ErrorIs(t, err, qtm.ErrInvalidConfiguration)
	require.Nil(t, m)
}

// TestModel_Accessors covers getters and validating setters.
func TestModel_Accessors(t *testing.T) {
	m, err := qtm.NewModel(referenceConfig)
	require.NoError(t, err)
	require.Equal(t, referenceConfig, m.Config())
	require.Equal(t, 2, m.ChannelCount())
	require.Equal(t, 1, m.QueueSize())
	require.Equal(t, 10.0, m.La())
	require.Equal(t, 5.0, m.Mu())
	require.Equal(t, 0.0, m.Nu())
	require.Equal(t, qtm.InfinitePopulation, m.N())

	require.NoError(t, m.SetChannelCount(4))
	require.NoError(t, m.SetQueueSize(0))
	require.NoError(t, m.SetLa(1.5))
	require.NoError(t, m.SetMu(2.5))
	require.NoError(t, m.SetNu(0.25))
	require.NoError(t, m.SetN(7))
	want := qtm.Config{ChannelCount: 4, QueueSize: 0, La: 1.5, Mu: 2.5, Nu: 0.25, N: 7}
	require.Equal(t, want, m.Config())

	require.ErrorIs(t, m.SetChannelCount(0), qtm.ErrInvalidConfiguration)
	require.ErrorIs(t, m.SetQueueSize(-1), qtm.ErrInvalidConfiguration)
	require.ErrorIs(t, m.SetLa(-1), qtm.ErrInvalidConfiguration)
	require.ErrorIs(t, m.SetMu(math.NaN()), qtm.ErrInvalidConfiguration)
	require.ErrorIs(t, m.SetNu(math.Inf(-1)), qtm.ErrInvalidConfiguration)
	require.ErrorIs(t, m.SetN(-3), qtm.ErrInvalidConfiguration)
	require.Equal(t, want, m.Config(), "rejected setters must not change the model")
}

// TestModel_Unsolved reports the uninitialized state.
func TestModel_Unsolved(t *testing.T) {
	m, err := qtm.NewModel(referenceConfig)
	require.NoError(t, err)
	require.False(t, m.Solved())
	require.Empty(t, m.States())
	_, err = m.Distribution()
	require.ErrorIs(t, err, qtm.ErrUninitializedState)
}

// TestModel_SolveReference solves the closed-form scenario and checks copies.
func TestModel_SolveReference(t *testing.T) {
	m, err := qtm.NewModel(referenceConfig)
	require.NoError(t, err)
	pi, err := m.Solve()
	require.NoError(t, err)
	require.Empty(t, diff(referenceStates, pi))
	require.True(t, m.Solved())
	require.Equal(t, qtm.InfinitePopulation, m.N())

	pi[0] = 42
	require.Empty(t, diff(referenceStates, m.States()))
	d, err := m.Distribution()
	require.NoError(t, err)
	require.Equal(t, m.States(), d)
}

// TestModel_SolveInverse matches the default back end.
func TestModel_SolveInverse(t *testing.T) {
	m, err := qtm.NewModel(referenceConfig, qtm.WithSolver(qtm.SolverInverse))
	require.NoError(t, err)
	pi, err := m.Solve()
	require.NoError(t, err)
	require.Empty(t, diff(referenceStates, pi))
}

// TestModel_RepeatedSolveDepletesPopulation checks that a finite-population
// model solved twice without a reset returns a different vector.
func TestModel_RepeatedSolveDepletesPopulation(t *testing.T) {
	cfg := qtm.Config{ChannelCount: 1, QueueSize: 1, La: 4, Mu: 3, Nu: 0, N: 10}
	m, err := qtm.NewModel(cfg)
	require.NoError(t, err)

	first, err := m.Solve()
	require.NoError(t, err)
	require.Equal(t, 8, m.N())

	second, err := m.Solve()
	require.NoError(t, err)
	require.Equal(t, 6, m.N())
	require.NotEmpty(t, diff(first, second))

	// π ∝ [1, 4/3, 4/3 · 3.6/3] for N = 10
	z := 1 + 4.0/3 + 1.6
	require.Empty(t, diff([]float64{1 / z, (4.0 / 3) / z, 1.6 / z}, first))

	m.ResetPopulation()
	require.Equal(t, 10, m.N())
	again, err := m.Solve()
	require.NoError(t, err)
	require.Equal(t, first, again)
}

// TestModel_PopulationRunsOut drives N down to the sentinel.
func TestModel_PopulationRunsOut(t *testing.T) {
	m, err := qtm.NewModel(qtm.Config{ChannelCount: 1, QueueSize: 2, La: 1, Mu: 1, N: 2})
	require.NoError(t, err)
	_, err = m.Solve()
	require.NoError(t, err)
	require.Equal(t, qtm.InfinitePopulation, m.N())

	infinite, err := m.Solve()
	require.NoError(t, err)
	require.Equal(t, qtm.InfinitePopulation, m.N())
	require.Empty(t, diff([]float64{0.25, 0.25, 0.25, 0.25}, infinite))

	require.NoError(t, m.SetN(2))
	m.ResetPopulation()
	require.Equal(t, 2, m.N())
}

// TestModel_SolveErrorClearsState leaves no stale solution behind.
func TestModel_SolveErrorClearsState(t *testing.T) {
	m, err := qtm.NewModel(referenceConfig)
	require.NoError(t, err)
	_, err = m.Solve()
	require.NoError(t, err)

	require.NoError(t, m.SetLa(0))
	require.NoError(t, m.SetMu(0))
	_, err = m.Solve()
	require.ErrorIs(t, err, qtm.ErrSingularMatrix)
	require.ErrorIs(t, err, matrix.ErrSingular)
	require.False(t, m.Solved())
	require.Empty(t, m.States())
	_, err = m.Distribution()
	require.ErrorIs(t, err, qtm.ErrUninitializedState)
}
