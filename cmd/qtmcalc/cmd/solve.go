// SPDX-License-Identifier: MIT

package cmd

import (
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/katalvlaran/qtmcalc/internal/qtmcalc"
)

func solveCmd(a *qtmcalc.App, v *viper.Viper) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "solve",
		Short: "Solve one model and print its metrics",
		Example: `  qtmcalc solve --channels 2 --queue 1 --la 10 --mu 5
  qtmcalc solve --config model.yaml -o json`,
		Args: cobra.NoArgs,
		PreRunE: func(cmd *cobra.Command, args []string) error {
			return initApp(cmd, a, v)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.Solve(cmd.Context())
		},
	}

	return cmd
}
