// SPDX-License-Identifier: MIT

package qtm

import (
	"fmt"
	"math"

	"github.com/hashicorp/go-multierror"
)

// InfinitePopulation is the N sentinel meaning arrivals never deplete a
// source population: every arrival cell carries the constant rate λ.
const InfinitePopulation = -1

// Config is the problem definition of a queue model.
//
// Field tags are consumed by the configuration loader (mapstructure) and by
// the report encoders (json, yaml).
type Config struct {
	ChannelCount int     `mapstructure:"channel_count" json:"channel_count" yaml:"channel_count"`
	QueueSize    int     `mapstructure:"queue_size" json:"queue_size" yaml:"queue_size"`
	La           float64 `mapstructure:"la" json:"la" yaml:"la"`
	Mu           float64 `mapstructure:"mu" json:"mu" yaml:"mu"`
	Nu           float64 `mapstructure:"nu" json:"nu" yaml:"nu"`
	N            int     `mapstructure:"n" json:"n" yaml:"n"`
}

// TotalCount is the highest occupancy state, c + k.
func (c Config) TotalCount() int { return c.ChannelCount + c.QueueSize }

// StateCount is the number of occupancy states, c + k + 1.
func (c Config) StateCount() int { return c.TotalCount() + 1 }

// FinitePopulation reports whether the arrival ramp is active.
func (c Config) FinitePopulation() bool { return c.N != InfinitePopulation }

// Validate checks every parameter and reports all violations at once.
// Each violation wraps ErrInvalidConfiguration; the aggregate is a
// *multierror.Error.
//
// Complexity: O(1).
func (c Config) Validate() error {
	var result *multierror.Error

	if c.ChannelCount < 1 {
		result = multierror.Append(result, fmt.Errorf("%w: channel_count must be >= 1, got %d", ErrInvalidConfiguration, c.ChannelCount))
	}
	if c.QueueSize < 0 {
		result = multierror.Append(result, fmt.Errorf("%w: queue_size must be >= 0, got %d", ErrInvalidConfiguration, c.QueueSize))
	}
	for _, r := range []struct {
		name string
		v    float64
	}{
		{"la", c.La},
		{"mu", c.Mu},
		{"nu", c.Nu},
	} {
		if math.IsInf(r.v, 0) || !(r.v >= 0) {
			result = multierror.Append(result, fmt.Errorf("%w: %s must be finite and >= 0, got %v", ErrInvalidConfiguration, r.name, r.v))
		}
	}
	if c.N < InfinitePopulation {
		result = multierror.Append(result, fmt.Errorf("%w: n must be >= %d, got %d", ErrInvalidConfiguration, InfinitePopulation, c.N))
	}

	return result.ErrorOrNil()
}
