package version

import (
	"fmt"
	"runtime"
)

// AppName is the human readable name of the server.
const AppName = "Incident Dashboard"

// Version information that can be set at build time
var (
	// These can be set via ldflags during build:
	// go build -ldflags "-X github.com/redhat-appstudio/incident-dashboard/internal/version.BuildVersion=v1.2.3 -X github.com/redhat-appstudio/incident-dashboard/internal/version.BuildCommit=$(git rev-parse --short HEAD)"
	BuildVersion = "v0.1.0"
	BuildTime    = "unknown"
	BuildCommit  = "unknown"
)

// GetVersion returns the current version string.
func GetVersion() string {
	return BuildVersion
}

// GetBuildInfo returns version, build time, commit and Go runtime in one line.
func GetBuildInfo() string {
	return fmt.Sprintf("%s %s (built: %s, commit: %s, go: %s)",
		AppName, BuildVersion, BuildTime, BuildCommit, runtime.Version())
}

// GetShortVersion returns the version without the "v" prefix.
func GetShortVersion() string {
	if len(BuildVersion) > 0 && BuildVersion[0] == 'v' {
		return BuildVersion[1:]
	}
	return BuildVersion
}
