// Package version holds the immich-search build metadata. The values are
// injected via -ldflags at build time and reported in the startup log line.
package version

//nolint:revive // Set via ldflags at build time.
var (
	Version = "dev"
	Commit  = "unknown"
	Date    = "unknown"
)
