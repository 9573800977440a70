// SPDX-License-Identifier: MIT

// Package config loads qtmcalc settings from defaults, an optional config
// file, QTMCALC_* environment variables and command-line flags, in increasing
// order of precedence.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/hashicorp/go-multierror"
	"github.com/joho/godotenv"
	"github.com/mitchellh/go-homedir"
	"github.com/spf13/viper"

	"github.com/katalvlaran/qtmcalc/internal/report"
	"github.com/katalvlaran/qtmcalc/internal/sweep"
	"github.com/katalvlaran/qtmcalc/qtm"
)

// EnvPrefix is prepended to every environment key: model.la -> QTMCALC_MODEL_LA.
const EnvPrefix = "QTMCALC"

// DefaultMaxStates bounds c+k+1. Solving is cubic in the state count.
const DefaultMaxStates = 5000

// ErrTooManyStates is returned when c+k+1 exceeds max_states.
var ErrTooManyStates = errors.New("config: state count exceeds max_states")

type Config struct {
	Model     qtm.Config  `mapstructure:"model"`
	Solver    string      `mapstructure:"solver"`
	Output    string      `mapstructure:"output"`
	MaxStates int         `mapstructure:"max_states"`
	Log       LogConfig   `mapstructure:"log"`
	Sweep     SweepConfig `mapstructure:"sweep"`
}

type LogConfig struct {
	Level   string `mapstructure:"level"`
	NoColor bool   `mapstructure:"no_color"`
}

// SweepConfig describes a parameter sweep. Values, when set, replaces the
// From/To/Step range.
type SweepConfig struct {
	Param   string    `mapstructure:"param"`
	From    float64   `mapstructure:"from"`
	To      float64   `mapstructure:"to"`
	Step    float64   `mapstructure:"step"`
	Values  []float64 `mapstructure:"values"`
	Workers int       `mapstructure:"workers"`
}

// SetDefaults registers every key on v so that environment variables are
// picked up by Unmarshal.
func SetDefaults(v *viper.Viper) {
	v.SetDefault("model.channel_count", 1)
	v.SetDefault("model.queue_size", 0)
	v.SetDefault("model.la", 1.0)
	v.SetDefault("model.mu", 1.0)
	v.SetDefault("model.nu", 0.0)
	v.SetDefault("model.n", qtm.InfinitePopulation)
	v.SetDefault("solver", qtm.SolverLU.String())
	v.SetDefault("output", string(report.FormatText))
	v.SetDefault("max_states", DefaultMaxStates)
	v.SetDefault("log.level", "info")
	v.SetDefault("log.no_color", false)
	v.SetDefault("sweep.param", string(sweep.ParamLa))
	v.SetDefault("sweep.from", 0.0)
	v.SetDefault("sweep.to", 0.0)
	v.SetDefault("sweep.step", 0.0)
	v.SetDefault("sweep.values", []float64{})
	v.SetDefault("sweep.workers", 4)
}

// Load reads settings into a Config. file may be empty; its format is
// taken from the extension (yaml, json, toml, ...). Flags must already be
// bound to v. The result is not validated.
func Load(v *viper.Viper, file string) (Config, error) {
	SetDefaults(v)
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if file != "" {
		v.SetConfigFile(file)
		if err := v.ReadInConfig(); err != nil {
			return Config{}, fmt.Errorf("[config.Load] error reading config file %s: %w", file, err)
		}
	}

	var c Config
	if err := v.Unmarshal(&c); err != nil {
		return Config{}, fmt.Errorf("[config.Load] error decoding settings: %w", err)
	}

	return c, nil
}

// UserFileName is looked up in the home directory when no file is given.
const UserFileName = ".qtmcalc.yaml"

// DefaultFile returns the path of ~/.qtmcalc.yaml, or "" when the file does
// not exist.
func DefaultFile() (string, error) {
	home, err := homedir.Dir()
	if err != nil {
		return "", fmt.Errorf("[config.DefaultFile] error getting user home directory: %w", err)
	}
	path := filepath.Join(home, UserFileName)
	if _, err = os.Stat(path); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return "", nil
		}
		return "", fmt.Errorf("[config.DefaultFile] %s: %w", path, err)
	}

	return path, nil
}

// LoadDotEnv exports the variables of a .env file into the process
// environment. A missing file is not an error.
func LoadDotEnv(path string) error {
	if err := godotenv.Load(path); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("[config.LoadDotEnv] %s: %w", path, err)
	}

	return nil
}

// SolverOption maps the solver name to a qtm option.
func (c Config) SolverOption() (qtm.Option, error) {
	s, err := qtm.ParseSolver(c.Solver)
	if err != nil {
		return nil, err
	}

	return qtm.WithSolver(s), nil
}

// Validate checks everything a solve needs and reports all problems at once.
func (c Config) Validate() error {
	var result *multierror.Error
	if err := c.Model.Validate(); err != nil {
		result = multierror.Append(result, err)
	}
	if _, err := qtm.ParseSolver(c.Solver); err != nil {
		result = multierror.Append(result, err)
	}
	if _, err := report.ParseFormat(c.Output); err != nil {
		result = multierror.Append(result, err)
	}
	if c.MaxStates < 1 {
		result = multierror.Append(result, fmt.Errorf("%w: max_states must be >= 1, got %d", qtm.ErrInvalidConfiguration, c.MaxStates))
	} else if n := c.Model.StateCount(); n > c.MaxStates {
		result = multierror.Append(result, fmt.Errorf("%w: %d > %d", ErrTooManyStates, n, c.MaxStates))
	}

	return result.ErrorOrNil()
}

// ValidateSweep runs Validate and additionally checks the sweep section.
func (c Config) ValidateSweep() error {
	var result *multierror.Error
	if err := c.Validate(); err != nil {
		result = multierror.Append(result, err)
	}
	if _, err := c.SweepValues(); err != nil {
		result = multierror.Append(result, err)
	}
	if _, err := sweep.ParseParam(c.Sweep.Param); err != nil {
		result = multierror.Append(result, err)
	}
	if c.Sweep.Workers < 1 {
		result = multierror.Append(result, fmt.Errorf("%w: workers must be >= 1, got %d", sweep.ErrInvalidSweep, c.Sweep.Workers))
	}

	return result.ErrorOrNil()
}

// SweepValues returns the sorted, de-duplicated list of sweep points.
func (c Config) SweepValues() ([]float64, error) {
	if len(c.Sweep.Values) > 0 {
		return sweep.Values(c.Sweep.Values), nil
	}

	return sweep.Range{From: c.Sweep.From, To: c.Sweep.To, Step: c.Sweep.Step}.Values()
}
