// Package version reports the build version of anagram-form.
package version

import (
	"fmt"
	"runtime/debug"
	"time"
)

// Set at build time via ldflags:
//
//	go build -ldflags="-X github.com/muurk/anagram-form/internal/version.Version=v0.3.0 \
//	                   -X github.com/muurk/anagram-form/internal/version.Commit=abc1234"
//
// Otherwise they are filled from the VCS stamp in the build info, or fall
// back to "dev".
var (
	Version = ""
	Commit  = ""
)

func init() {
	Version, Commit = resolve(Version, Commit, readSettings(), time.Now())
}

// readSettings returns the build settings embedded by the Go toolchain
func readSettings() map[string]string {
	info, ok := debug.ReadBuildInfo()
	if !ok {
		return nil
	}
	settings := make(map[string]string, len(info.Settings))
	for _, s := range info.Settings {
		settings[s.Key] = s.Value
	}
	return settings
}

// resolve fills missing version and commit values from VCS build settings.
func resolve(version, commit string, settings map[string]string, now time.Time) (string, string) {
	if commit == "" {
		if rev := settings["vcs.revision"]; rev != "" {
			if len(rev) > 7 {
				rev = rev[:7]
			}
			if settings["vcs.modified"] == "true" {
				rev += "-dirty"
			}
			commit = rev
		}
	}

	if version == "" {
		if t, err := time.Parse(time.RFC3339, settings["vcs.time"]); err == nil {
			version = "dev-" + t.Format("20060102")
		}
	}

	if version == "" {
		version = "dev-" + now.Format("20060102-150405")
	}
	if commit == "" {
		commit = "unknown"
	}
	return version, commit
}

// Full returns the version string including commit
func Full() string {
	return fmt.Sprintf("%s (commit: %s)", Version, Commit)
}
