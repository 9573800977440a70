// SPDX-License-Identifier: MIT

package qtm

import (
	"golang.org/x/exp/slices"
)

// Model is a queue configuration plus the result of its last Solve.
//
// Setters validate the whole configuration before applying a change and
// leave the model untouched on error. They do not clear the last solution;
// call Solve again to refresh it.
type Model struct {
	cfg        Config
	population int
	opts       []Option
	states     []float64
	solved     bool
}

// NewModel validates cfg and returns an unsolved model.
// opts are passed to SteadyState on every Solve.
func NewModel(cfg Config, opts ...Option) (*Model, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &Model{
		cfg:        cfg,
		population: cfg.N,
		opts:       slices.Clone(opts),
	}, nil
}

// Config returns a copy of the current parameters, including the live
// population counter.
func (m *Model) Config() Config { return m.cfg }

func (m *Model) ChannelCount() int { return m.cfg.ChannelCount }
func (m *Model) QueueSize() int    { return m.cfg.QueueSize }
func (m *Model) La() float64       { return m.cfg.La }
func (m *Model) Mu() float64       { return m.cfg.Mu }
func (m *Model) Nu() float64       { return m.cfg.Nu }
func (m *Model) N() int            { return m.cfg.N }

func (m *Model) SetChannelCount(c int) error {
	return m.update(func(cfg *Config) { cfg.ChannelCount = c })
}

func (m *Model) SetQueueSize(k int) error {
	return m.update(func(cfg *Config) { cfg.QueueSize = k })
}

func (m *Model) SetLa(la float64) error {
	return m.update(func(cfg *Config) { cfg.La = la })
}

func (m *Model) SetMu(mu float64) error {
	return m.update(func(cfg *Config) { cfg.Mu = mu })
}

func (m *Model) SetNu(nu float64) error {
	return m.update(func(cfg *Config) { cfg.Nu = nu })
}

// SetN sets the population and makes it the value ResetPopulation restores.
func (m *Model) SetN(n int) error {
	if err := m.update(func(cfg *Config) { cfg.N = n }); err != nil {
		return err
	}
	m.population = n

	return nil
}

// ResetPopulation restores N to the value given at construction or by the
// latest SetN.
func (m *Model) ResetPopulation() { m.cfg.N = m.population }

func (m *Model) update(apply func(*Config)) error {
	next := m.cfg
	apply(&next)
	if err := next.Validate(); err != nil {
		return err
	}
	m.cfg = next

	return nil
}

// Solve builds the generator, solves for the stationary distribution and
// stores it. The returned slice is a copy.
//
// With a finite population, Solve lowers N by the units the generator drew
// (Generator.Consumed). Repeated calls therefore see a shrinking population
// until ResetPopulation or SetN is called; once N reaches InfinitePopulation
// further calls behave as the infinite-population model.
//
// The previous solution is discarded first, so after an error the model
// reports ErrUninitializedState.
//
// Complexity: Time O(m³), Space O(m²), m = c+k+2.
func (m *Model) Solve() ([]float64, error) {
	m.states = nil
	m.solved = false

	gen, err := BuildGenerator(m.cfg)
	if err != nil {
		return nil, qtmErrorf(opSolve, err)
	}
	m.cfg.N -= gen.Consumed

	pi, err := SteadyState(gen.Matrix, m.opts...)
	if err != nil {
		return nil, qtmErrorf(opSolve, err)
	}
	m.states = pi
	m.solved = true

	return slices.Clone(pi), nil
}

// Solved reports whether the model holds a solution.
func (m *Model) Solved() bool { return m.solved }

// States returns a copy of the last solution, or nil before the first
// successful Solve.
func (m *Model) States() []float64 { return slices.Clone(m.states) }

// Distribution returns a copy of the last solution or ErrUninitializedState.
func (m *Model) Distribution() ([]float64, error) {
	if !m.solved {
		return nil, ErrUninitializedState
	}

	return slices.Clone(m.states), nil
}
