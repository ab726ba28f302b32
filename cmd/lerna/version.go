package main

import (
	"runtime/debug"
	"strings"

	"golang.org/x/mod/semver"
)

// toolVersion returns the version of this binary as written into package.json.
// The ldflags version wins; module build info is the fallback for go install.
func toolVersion() string {
	if v, ok := canonicalVersion(version); ok {
		return v
	}
	if info, ok := debug.ReadBuildInfo(); ok {
		if v, ok := canonicalVersion(info.Main.Version); ok {
			return v
		}
	}
	return "0.0.0"
}

// canonicalVersion normalizes v to MAJOR.MINOR.PATCH[-PRERELEASE] without
// the leading "v". Build metadata is dropped.
func canonicalVersion(v string) (string, bool) {
	v = "v" + strings.TrimPrefix(v, "v")
	if !semver.IsValid(v) {
		return "", false
	}
	return strings.TrimPrefix(semver.Canonical(v), "v"), true
}
