package cli

import "strconv"

// CovOptions are the report generation flags, passed to llvm-cov export/show.
// The engine stores them; it does not interpret thresholds or formats.
type CovOptions struct {
	JSON        bool
	LCOV        bool
	Text        bool
	HTML        bool
	Open        bool
	SummaryOnly bool

	OutputPath          *string
	OutputDir           *string
	FailureMode         *string // "any" or "all", checked downstream
	IgnoreFilenameRegex *string

	DisableDefaultIgnoreFilenameRegex bool
	HideInstantiations                bool
	NoCfgCoverage                     bool
	NoCfgCoverageNightly              bool
	NoReport                          bool

	FailUnderLines         *float64
	FailUncoveredLines     *uint64
	FailUncoveredRegions   *uint64
	FailUncoveredFunctions *uint64

	ShowMissingLines   bool
	IncludeBuildScript bool
}

// Show reports whether the report is rendered by `llvm-cov show` rather than
// exported.
func (o CovOptions) Show() bool {
	return o.Text || o.HTML
}

// BuildOptions are forwarded to the cargo build of the instrumented targets.
type BuildOptions struct {
	Jobs               *uint32
	Release            bool
	Profile            *string
	Target             *string
	CoverageTargetOnly bool
	Verbose            uint8 // occurrences of -v, saturated
	Color              *Color
	RemapPathPrefix    bool
	IncludeFFI         bool
}

// CargoArgs renders the options cargo itself understands, in a fixed order.
func (o BuildOptions) CargoArgs() []string {
	out := []string{}
	if o.Jobs != nil {
		out = append(out, "--jobs", strconv.FormatUint(uint64(*o.Jobs), 10))
	}
	if o.Release {
		out = append(out, "--release")
	}
	if o.Profile != nil {
		out = append(out, "--profile", *o.Profile)
	}
	if o.Target != nil {
		out = append(out, "--target", *o.Target)
	}
	if o.Color != nil {
		out = append(out, "--color", o.Color.CargoColor())
	}
	return out
}

// ManifestOptions locate the workspace.
type ManifestOptions struct {
	ManifestPath *string
}

// TestSelection chooses which targets and packages are exercised.
type TestSelection struct {
	Doctests      bool
	NoRun         bool
	NoFailFast    bool
	IgnoreRunFail bool // implies NoFailFast downstream

	Lib        bool
	Bin        []string
	Bins       bool
	Example    []string
	Examples   bool
	Test       []string
	Tests      bool
	Bench      []string
	Benches    bool
	AllTargets bool
	Doc        bool

	Package           []string
	Workspace         bool
	Exclude           []string
	ExcludeFromTest   []string
	ExcludeFromReport []string
}
