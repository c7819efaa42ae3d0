package cmd

import (
	"fmt"
	"runtime"
)

// Set via ldflags
var (
	Version   = "dev"
	Commit    = "unknown"
	BuildDate = "unknown"
)

// versionString renders the build metadata shown by --version.
func versionString() string {
	s := Version
	if Commit != "unknown" && Commit != "" {
		s += fmt.Sprintf("\n  commit:  %s", Commit)
	}
	if BuildDate != "unknown" && BuildDate != "" {
		s += fmt.Sprintf("\n  built:   %s", BuildDate)
	}
	s += fmt.Sprintf("\n  os/arch: %s/%s", runtime.GOOS, runtime.GOARCH)
	return s
}
