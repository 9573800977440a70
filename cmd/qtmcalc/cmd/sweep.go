// SPDX-License-Identifier: MIT

package cmd

import (
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/katalvlaran/qtmcalc/internal/qtmcalc"
	"github.com/katalvlaran/qtmcalc/internal/sweep"
)

func sweepCmd(a *qtmcalc.App, v *viper.Viper) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "sweep",
		Short: "Solve the model for a range of one rate parameter",
		Example: `  qtmcalc sweep --channels 2 --queue 4 --mu 5 --param la --from 1 --to 20 --step 1
  qtmcalc sweep --param nu --values 0,0.1,0.5 -o prom`,
		Args: cobra.NoArgs,
		PreRunE: func(cmd *cobra.Command, args []string) error {
			if err := bindSweepFlags(cmd, v); err != nil {
				return err
			}
			return initApp(cmd, a, v)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.Sweep(cmd.Context())
		},
	}

	f := cmd.Flags()
	f.String("param", string(sweep.ParamLa), "Parameter to sweep: la, mu or nu")
	f.Float64("from", 0, "First value")
	f.Float64("to", 0, "Last value (inclusive)")
	f.Float64("step", 0, "Increment")
	f.StringSlice("values", nil, "Explicit comma-separated values; overrides --from/--to/--step")
	f.Int("workers", 4, "Models solved in parallel")

	return cmd
}
