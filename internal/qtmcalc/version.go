// SPDX-License-Identifier: MIT

package qtmcalc

import (
	"fmt"
	"text/tabwriter"

	"github.com/katalvlaran/qtmcalc/internal/qtmcalc/build"
)

// Version prints build information to the app output.
func (a *App) Version() error {
	w := tabwriter.NewWriter(a.Out, 1, 1, 1, ' ', 0)
	fmt.Fprintf(w, "Version:\t%s\n", build.ReleaseVersion)
	fmt.Fprintf(w, "Commit:\t%s\n", build.GitCommit)
	fmt.Fprintf(w, "Go version:\t%s\n", build.GoVersion)
	fmt.Fprintf(w, "Built:\t%s\n", build.BuildTime)

	return w.Flush()
}
