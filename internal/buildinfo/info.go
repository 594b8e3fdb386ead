// Package buildinfo carries version metadata injected at build time.
package buildinfo

// Set via -ldflags "-X ..." by the release build; defaults identify a
// from-source build.
var (
	Version = "dev"
	Commit  = "none"
	Date    = "unknown"
)
