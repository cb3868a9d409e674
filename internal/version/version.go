// Package version resolves the version printed by --version.
package version

import (
	"runtime/debug"
	"strings"

	"golang.org/x/mod/module"
	"golang.org/x/mod/semver"
)

// Version is set at build time:
//
//	go build -ldflags "-X github.com/ldm0/cargo-llvm-cov/internal/version.Version=0.5.0"
var Version = ""

const dev = "dev"

// String returns the release version without a leading "v", or "dev" for
// untagged builds.
func String() string {
	if Version != "" {
		return canonical(Version)
	}
	if info, ok := debug.ReadBuildInfo(); ok {
		return canonical(info.Main.Version)
	}
	return dev
}

// canonical normalizes v to "MAJOR.MINOR.PATCH[-pre][+build]". Pseudo-versions
// and "(devel)" are not releases and map to "dev".
func canonical(v string) string {
	if !strings.HasPrefix(v, "v") {
		v = "v" + v
	}
	if !semver.IsValid(v) || module.IsPseudoVersion(v) {
		return dev
	}
	return strings.TrimPrefix(v, "v")
}
