// Package version reports the build version of the daikinbridge binaries.
package version

import (
	"fmt"
	"runtime/debug"
	"time"
)

// These variables can be set at build time via ldflags:
//
//	go build -ldflags="-X github.com/muurk/daikinbridge/internal/version.Version=v1.2.3 \
//	                   -X github.com/muurk/daikinbridge/internal/version.Commit=abc123"
//
// If not set, they are populated from the module and VCS build info, or
// fall back to "dev" with a timestamp.
var (
	// Version is the semantic version of the application
	Version = ""
	// Commit is the git commit hash
	Commit = ""
)

func init() {
	if Version == "" || Commit == "" {
		if info, ok := debug.ReadBuildInfo(); ok {
			Version, Commit = fromBuildInfo(info, Version, Commit)
		}
	}

	if Version == "" {
		Version = fmt.Sprintf("dev-%s", time.Now().Format("20060102-150405"))
	}
	if Commit == "" {
		Commit = "unknown"
	}
}

// fromBuildInfo fills whichever of version and commit is empty.
// A tagged module version (go install ...@v1.2.3) wins over VCS time.
func fromBuildInfo(info *debug.BuildInfo, version, commit string) (string, string) {
	var vcsRevision, vcsModified, vcsTime string
	for _, setting := range info.Settings {
		switch setting.Key {
		case "vcs.revision":
			vcsRevision = setting.Value
		case "vcs.modified":
			vcsModified = setting.Value
		case "vcs.time":
			vcsTime = setting.Value
		}
	}

	if commit == "" && vcsRevision != "" {
		commit = vcsRevision
		if len(commit) > 7 {
			commit = commit[:7]
		}
		if vcsModified == "true" {
			commit += "-dirty"
		}
	}

	if version == "" {
		if v := info.Main.Version; v != "" && v != "(devel)" {
			version = v
		} else if t, err := time.Parse(time.RFC3339, vcsTime); err == nil {
			version = fmt.Sprintf("dev-%s", t.Format("20060102"))
		}
	}

	return version, commit
}

// Full returns the full version string including commit
func Full() string {
	return fmt.Sprintf("%s (commit: %s)", Version, Commit)
}
