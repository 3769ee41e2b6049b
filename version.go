package postbuild

import (
	"runtime/debug"

	"golang.org/x/mod/semver"
)

var (
	// Version is set at build time with -ldflags.
	Version = "0.0.0"
	// Prerelease is set at build time with -ldflags.
	Prerelease = ""
)

// SemVer returns the semantic version of postbuild, falling back to
// the main module's version from the build info.
func SemVer() string {
	v := "v" + Version
	if Prerelease != "" {
		v += "-" + Prerelease
	}

	if v == "v0.0.0" {
		if bi, ok := debug.ReadBuildInfo(); ok && semver.IsValid(bi.Main.Version) {
			v = bi.Main.Version
		}
	}

	if !semver.IsValid(v) {
		return Version
	}

	return semver.Canonical(v)
}
