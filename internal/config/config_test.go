// SPDX-License-Identifier: MIT

package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/hashicorp/go-multierror"
	"github.com/mitchellh/go-homedir"
	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/qtmcalc/internal/report"
	"github.com/katalvlaran/qtmcalc/internal/sweep"
	"github.com/katalvlaran/qtmcalc/qtm"
)

const modelYAML = `
model:
  channel_count: 2
  queue_size: 1
  la: 10
  mu: 5
  nu: 0
  n: -1
output: json
solver: inverse
sweep:
  param: mu
  values: [3, 1, 2, 1]
  workers: 2
`

func writeFile(t *testing.T, name, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))

	return path
}

func defaults(t *testing.T) Config {
	t.Helper()
	c, err := Load(viper.New(), "")
	require.NoError(t, err)

	return c
}

func TestLoad_Defaults(t *testing.T) {
	c := defaults(t)
	assert.Equal(t, qtm.Config{ChannelCount: 1, QueueSize: 0, La: 1, Mu: 1, Nu: 0, N: qtm.InfinitePopulation}, c.Model)
	assert.Equal(t, "lu", c.Solver)
	assert.Equal(t, "text", c.Output)
	assert.Equal(t, DefaultMaxStates, c.MaxStates)
	assert.Equal(t, "info", c.Log.Level)
	assert.False(t, c.Log.NoColor)
	assert.Equal(t, "la", c.Sweep.Param)
	assert.Equal(t, 4, c.Sweep.Workers)
	assert.NoError(t, c.Validate())
}

func TestLoad_File(t *testing.T) {
	c, err := Load(viper.New(), writeFile(t, "model.yaml", modelYAML))
	require.NoError(t, err)
	assert.Equal(t, qtm.Config{ChannelCount: 2, QueueSize: 1, La: 10, Mu: 5, Nu: 0, N: -1}, c.Model)
	assert.Equal(t, "json", c.Output)
	assert.Equal(t, "inverse", c.Solver)
	require.NoError(t, c.ValidateSweep())

	values, err := c.SweepValues()
	require.NoError(t, err)
	assert.Equal(t, []float64{1, 2, 3}, values)
}

func TestLoad_EnvOverridesFile(t *testing.T) {
	t.Setenv("QTMCALC_MODEL_LA", "7.5")
	t.Setenv("QTMCALC_MAX_STATES", "10")
	t.Setenv("QTMCALC_LOG_LEVEL", "debug")

	c, err := Load(viper.New(), writeFile(t, "model.yaml", modelYAML))
	require.NoError(t, err)
	assert.Equal(t, 7.5, c.Model.La)
	assert.Equal(t, 5.0, c.Model.Mu)
	assert.Equal(t, 10, c.MaxStates)
	assert.Equal(t, "debug", c.Log.Level)
}

func TestLoad_JSONFile(t *testing.T) {
	c, err := Load(viper.New(), writeFile(t, "model.json", `{"model": {"channel_count": 3, "n": 12}}`))
	require.NoError(t, err)
	assert.Equal(t, 3, c.Model.ChannelCount)
	assert.Equal(t, 12, c.Model.N)
	assert.Equal(t, 1.0, c.Model.La, "unset keys keep their defaults")
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(viper.New(), filepath.Join(t.TempDir(), "absent.yaml"))
	assert.Error(t, err)
}

func TestValidate_Aggregates(t *testing.T) {
	c := defaults(t)
	c.Model.ChannelCount = 0
	c.Solver = "qr"
	c.Output = "xml"

	err := c.Validate()
	require.Error(t, err)
	assert.ErrorIs(t, err, qtm.ErrInvalidConfiguration)
	assert.ErrorIs(t, err, report.ErrUnknownFormat)

	var merr *multierror.Error
	require.True(t, errors.As(err, &merr))
	assert.Len(t, merr.Errors, 3)
}

func TestValidate_TooManyStates(t *testing.T) {
	c := defaults(t)
	c.Model.ChannelCount = 10
	c.Model.QueueSize = 10
	c.MaxStates = 21
	require.NoError(t, c.Validate())

	c.MaxStates = 20
	assert.ErrorIs(t, c.Validate(), ErrTooManyStates)

	c.MaxStates = 0
	assert.ErrorIs(t, c.Validate(), qtm.ErrInvalidConfiguration)
}

func TestValidateSweep(t *testing.T) {
	tests := map[string]func(*Config){
		"zero step":    func(c *Config) { c.Sweep.From, c.Sweep.To, c.Sweep.Step = 1, 2, 0 },
		"reversed":     func(c *Config) { c.Sweep.From, c.Sweep.To, c.Sweep.Step = 2, 1, 0.5 },
		"bad param":    func(c *Config) { c.Sweep.Values = []float64{1}; c.Sweep.Param = "xi" },
		"zero workers": func(c *Config) { c.Sweep.Values = []float64{1}; c.Sweep.Workers = 0 },
	}
	for name, mutate := range tests {
		t.Run(name, func(t *testing.T) {
			c := defaults(t)
			mutate(&c)
			assert.ErrorIs(t, c.ValidateSweep(), sweep.ErrInvalidSweep)
		})
	}

	c := defaults(t)
	c.Sweep.From, c.Sweep.To, c.Sweep.Step = 1, 2, 0.5
	require.NoError(t, c.ValidateSweep())
	values, err := c.SweepValues()
	require.NoError(t, err)
	assert.Equal(t, []float64{1, 1.5, 2}, values)
}

func TestSolverOption(t *testing.T) {
	c := defaults(t)
	opt, err := c.SolverOption()
	require.NoError(t, err)
	assert.NotNil(t, opt)

	c.Solver = "cholesky"
	_, err = c.SolverOption()
	assert.ErrorIs(t, err, qtm.ErrInvalidConfiguration)
}

func TestLoadDotEnv(t *testing.T) {
	require.NoError(t, LoadDotEnv(filepath.Join(t.TempDir(), ".env")))

	const key = "QTMCALC_DOTENV_PROBE"
	t.Cleanup(func() { os.Unsetenv(key) })
	require.NoError(t, LoadDotEnv(writeFile(t, ".env", key+"=42\n")))
	assert.Equal(t, "42", os.Getenv(key))
}

func TestDefaultFile(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)
	homedir.DisableCache = true
	t.Cleanup(func() { homedir.DisableCache = false })

	path, err := DefaultFile()
	require.NoError(t, err)
	assert.Empty(t, path)

	want := filepath.Join(home, UserFileName)
	require.NoError(t, os.WriteFile(want, []byte(modelYAML), 0o600))
	path, err = DefaultFile()
	require.NoError(t, err)
	assert.Equal(t, want, path)
}
