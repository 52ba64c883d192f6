package version

import "fmt"

// Version is set at build time:
// go build -ldflags "-X github.com/DavideDaniel/research/internal/version.Version=v0.3.0".
var Version = "unknown"

// Build metadata, set the same way as Version.
var (
	BuildTime = "unknown"
	GitCommit = "unknown"
)

// String formats the version line printed by sitemeta --version.
func String() string {
	return fmt.Sprintf("sitemeta %s (commit %s, built %s)", Version, GitCommit, BuildTime)
}
