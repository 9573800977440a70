// SPDX-License-Identifier: MIT

package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/katalvlaran/qtmcalc/internal/config"
	"github.com/katalvlaran/qtmcalc/internal/logging"
	"github.com/katalvlaran/qtmcalc/internal/qtmcalc"
	"github.com/katalvlaran/qtmcalc/internal/report"
	"github.com/katalvlaran/qtmcalc/qtm"
)

const configFlag = "config"

// flagKeys maps persistent flag names to configuration keys.
var flagKeys = map[string]string{
	"channels":   "model.channel_count",
	"queue":      "model.queue_size",
	"la":         "model.la",
	"mu":         "model.mu",
	"nu":         "model.nu",
	"population": "model.n",
	"solver":     "solver",
	"output":     "output",
	"max-states": "max_states",
	"log-level":  "log.level",
	"no-color":   "log.no_color",
}

// RootCmd is the root Cobra command that gets called from the main func.
// All other sub-commands should be registered here.
func RootCmd() *cobra.Command {
	a := qtmcalc.New()
	v := viper.New()

	cmd := &cobra.Command{
		Use:          "qtmcalc",
		Short:        "qtmcalc solves multi-server queues with abandonment and reports their metrics.",
		SilenceUsage: true,
	}

	pf := cmd.PersistentFlags()
	pf.String(configFlag, "", "Configuration file (yaml, json or toml); defaults to ~/"+config.UserFileName+" when present")
	pf.Int("channels", 1, "Number of servers c")
	pf.Int("queue", 0, "Waiting places k")
	pf.Float64("la", 1, "Arrival rate")
	pf.Float64("mu", 1, "Service rate per server")
	pf.Float64("nu", 0, "Abandonment rate per waiting customer")
	pf.Int("population", qtm.InfinitePopulation, "Source population, -1 for infinite")
	pf.String("solver", qtm.SolverLU.String(), "Linear solver: lu or inverse")
	pf.StringP("output", "o", string(report.FormatText), "Output format: "+formatNames())
	pf.Int("max-states", config.DefaultMaxStates, "Upper bound on c+k+1")
	pf.String("log-level", "info", "Log level: debug, info, warn or error")
	pf.Bool("no-color", false, "Disable colored log output")

	cmd.AddCommand(
		solveCmd(a, v),
		sweepCmd(a, v),
		versionCmd(a),
	)

	return cmd
}

// initApp resolves settings for cmd and wires the app to cmd's streams.
func initApp(cmd *cobra.Command, a *qtmcalc.App, v *viper.Viper) error {
	var err error
	cmd.Flags().VisitAll(func(f *pflag.Flag) {
		if key, ok := flagKeys[f.Name]; ok && err == nil {
			err = v.BindPFlag(key, f)
		}
	})
	if err != nil {
		return err
	}

	file, err := cmd.Flags().GetString(configFlag)
	if err != nil {
		return err
	}
	if file == "" {
		if file, err = config.DefaultFile(); err != nil {
			return err
		}
	}
	c, err := config.Load(v, file)
	if err != nil {
		return err
	}
	a.Params.Config = c
	a.Out = cmd.OutOrStdout()

	a.Log, err = logging.New(cmd.ErrOrStderr(), c.Log.Level, c.Log.NoColor)

	return err
}

func formatNames() string {
	names := make([]string, len(report.Formats))
	for i, f := range report.Formats {
		names[i] = string(f)
	}

	return strings.Join(names, ", ")
}

func bindSweepFlags(cmd *cobra.Command, v *viper.Viper) error {
	for flag, key := range map[string]string{
		"param":   "sweep.param",
		"from":    "sweep.from",
		"to":      "sweep.to",
		"step":    "sweep.step",
		"values":  "sweep.values",
		"workers": "sweep.workers",
	} {
		if err := v.BindPFlag(key, cmd.Flags().Lookup(flag)); err != nil {
			return fmt.Errorf("bind --%s: %w", flag, err)
		}
	}

	return nil
}
