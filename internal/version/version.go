// Package version provides version information for the propgen CLI.
//
// Overview:
//   - Responsibility: CLI version metadata (version, commit, build time)
//   - Key Types: Version variables and formatting functions
//   - Concurrency Model: Immutable after link time, safe for concurrent use
//   - Error Semantics: No errors
//   - Performance Notes: Zero-cost variables
//
// Usage:
//
//	version.GetVersionString()
package version

import (
	"fmt"
	"runtime"
)

// Version is the CLI version. Set with -ldflags "-X" during release builds.
var Version = "v0.1.0"

// Commit is the git commit hash. Set with -ldflags "-X" during release builds.
var Commit = "unknown"

// BuildTime is the build timestamp in RFC3339 format. Set with -ldflags "-X" during release builds.
var BuildTime = "unknown"

// GetVersionString returns the version string in the format:
// propgen version v0.1.0 (commit 4a9b2c1, built 2025-10-31T12:10:00Z)
func GetVersionString() string {
	return fmt.Sprintf("propgen version %s (commit %s, built %s)", Version, Commit, BuildTime)
}

// GetFullVersionInfo returns the version string followed by the Go runtime.
func GetFullVersionInfo() string {
	return fmt.Sprintf("%s\ngo version %s (%s/%s)",
		GetVersionString(),
		runtime.Version(), runtime.GOOS, runtime.GOARCH)
}
