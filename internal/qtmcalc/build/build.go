// SPDX-License-Identifier: MIT

// Package build holds release information injected at link time, e.g.
//
//	go build -ldflags "-X github.com/katalvlaran/qtmcalc/internal/qtmcalc/build.ReleaseVersion=v0.3.0"
package build

import "runtime"

var (
	ReleaseVersion = "dev"
	GitCommit      = "unknown"
	BuildTime      = "unknown"
	GoVersion      = runtime.Version()
)
