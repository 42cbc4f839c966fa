package modmeta

import (
	"fmt"
	"runtime"
)

// Version is the semantic version of the modmeta library and CLI.
const Version = "0.1.0"

// Build metadata, stamped by the release build:
//
//	go build -ldflags="-X github.com/simonhull/modmeta.gitCommit=$(git rev-parse --short HEAD) \
//	  -X github.com/simonhull/modmeta.buildTime=$(date -u +%Y-%m-%dT%H:%M:%SZ)" ./cmd/modmeta
var (
	gitCommit = "unknown"
	buildTime = "unknown"
)

// BuildInfo describes the running build.
type BuildInfo struct {
	Version   string
	GitCommit string
	BuildTime string
	GoVersion string
}

// GetBuildInfo returns the version and build metadata. Fields not stamped
// at build time read "unknown"; GoVersion comes from the runtime.
func GetBuildInfo() BuildInfo {
	return BuildInfo{
		Version:   Version,
		GitCommit: gitCommit,
		BuildTime: buildTime,
		GoVersion: runtime.Version(),
	}
}

// String formats the build for a version banner.
func (b BuildInfo) String() string {
	if b.GitCommit == "unknown" {
		return fmt.Sprintf("%s (built from source, %s)", b.Version, b.GoVersion)
	}
	return fmt.Sprintf("%s (commit: %s, built: %s, %s)", b.Version, b.GitCommit, b.BuildTime, b.GoVersion)
}
