package common

import "fmt"

// Version information set at build time via ldflags
var (
	Version   = "0.1.0"
	Build     = "dev"
	GitCommit = "unknown"
)

// GetVersion returns the semantic version string
func GetVersion() string {
	return Version
}

// GetFullVersion returns version with build metadata
func GetFullVersion() string {
	return fmt.Sprintf("%s (build %s, commit %s)", Version, Build, GitCommit)
}
