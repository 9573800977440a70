// SPDX-License-Identifier: MIT

package main

import (
	"fmt"
	"os"

	"github.com/katalvlaran/qtmcalc/cmd/qtmcalc/cmd"
	"github.com/katalvlaran/qtmcalc/internal/config"
)

func main() {
	if err := config.LoadDotEnv(".env"); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	if err := cmd.RootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
