package cli

import "github.com/ldm0/cargo-llvm-cov/core/invariant"

// Args is the result of one successful parse.
//
// The cov, build and manifest records each have exactly one consumer. They
// are handed over with TakeCov, TakeBuild and TakeManifest; taking a record
// twice panics.
type Args struct {
	Subcommand Subcommand
	TestSelection

	// CargoArgs are tokens this engine does not interpret, forwarded to cargo
	// in order of appearance.
	CargoArgs []string
	// Rest are the tokens after "--", forwarded verbatim to the test binary.
	Rest []string

	cov       *CovOptions
	build     *BuildOptions
	manifest  *ManifestOptions
	verbosity uint8
}

// TakeCov moves the report options out of a.
func (a *Args) TakeCov() CovOptions {
	invariant.Invariant(a.cov != nil, "cov options already taken")
	o := *a.cov
	a.cov = nil
	return o
}

// TakeBuild moves the build options out of a.
func (a *Args) TakeBuild() BuildOptions {
	invariant.Invariant(a.build != nil, "build options already taken")
	o := *a.build
	a.build = nil
	return o
}

// TakeManifest moves the manifest options out of a.
func (a *Args) TakeManifest() ManifestOptions {
	invariant.Invariant(a.manifest != nil, "manifest options already taken")
	o := *a.manifest
	a.manifest = nil
	return o
}

// Verbose reports whether -v was given at least once. It stays valid after
// TakeBuild; pass it to collaborators that log.
func (a *Args) Verbose() bool {
	return a.verbosity > 0
}

// Verbosity is the saturated number of -v occurrences.
func (a *Args) Verbosity() uint8 {
	return a.verbosity
}
