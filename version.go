package krc

import (
	"runtime"
	"runtime/debug"
)

// Version is the semantic version of the krc library.
const Version = "0.1.0"

// GetVersion returns the current version string.
func GetVersion() string {
	return Version
}

// VersionInfo contains detailed version information.
type VersionInfo struct {
	Version   string `json:"version"`
	GitCommit string `json:"gitCommit"`
	BuildTime string `json:"buildTime"`
	GoVersion string `json:"goVersion"`
}

// GetVersionInfo returns detailed version information.
//
// GitCommit and BuildTime are set with -ldflags:
//
//	go build -ldflags="-X github.com/simonhull/krc.gitCommit=$(git rev-parse HEAD) \
//	  -X github.com/simonhull/krc.buildTime=$(date -u +%Y-%m-%dT%H:%M:%SZ)" ./cmd/krc
//
// When they are not, the VCS stamp embedded by the go command is used.
func GetVersionInfo() VersionInfo {
	info := VersionInfo{
		Version:   Version,
		GitCommit: gitCommit,
		BuildTime: buildTime,
		GoVersion: runtime.Version(),
	}

	if bi, ok := debug.ReadBuildInfo(); ok {
		for _, s := range bi.Settings {
			switch s.Key {
			case "vcs.revision":
				if info.GitCommit == "unknown" {
					info.GitCommit = s.Value
				}
			case "vcs.time":
				if info.BuildTime == "unknown" {
					info.BuildTime = s.Value
				}
			}
		}
	}
	return info
}

// Variables populated at build time via -ldflags.
var (
	gitCommit = "unknown"
	buildTime = "unknown"
)
