package cli

import (
	"github.com/ldm0/cargo-llvm-cov/core/invariant"
	"github.com/ldm0/cargo-llvm-cov/internal/rules"
	"github.com/ldm0/cargo-llvm-cov/internal/slot"
)

// Help sections, in display order.
const (
	sectionTest     = "Test options"
	sectionPackage  = "Package selection"
	sectionReport   = "Report options"
	sectionBuild    = "Build options"
	sectionManifest = "Manifest options"
)

// flagDef declares one recognized flag.
type flagDef struct {
	long    string   // canonical spelling, "--name"
	short   string   // "-c" or ""
	aliases []string // other long spellings
	slot    slot.Slot
	value   string // value name in help, empty for flags without a value
	help    string // one line
	detail  string // extra paragraph for --help
	section string
	hidden  bool
}

// flagSet owns the slots for one parse.
type flagSet struct {
	color        *slot.Single[Color]
	manifestPath *slot.Single[string]

	doctests      slot.Bool
	noRun         slot.Bool
	noFailFast    slot.Bool
	ignoreRunFail slot.Bool
	lib           slot.Bool
	bin           *slot.List[string]
	bins          slot.Bool
	example       *slot.List[string]
	examples      slot.Bool
	test          *slot.List[string]
	tests         slot.Bool
	bench         *slot.List[string]
	benches       slot.Bool
	allTargets    slot.Bool
	doc           slot.Bool

	pkg               *slot.List[string]
	workspace         slot.Bool
	exclude           *slot.List[string]
	excludeFromTest   *slot.List[string]
	excludeFromReport *slot.List[string]

	json                              slot.Bool
	lcov                              slot.Bool
	text                              slot.Bool
	html                              slot.Bool
	open                              slot.Bool
	summaryOnly                       slot.Bool
	outputPath                        *slot.Single[string]
	outputDir                         *slot.Single[string]
	failureMode                       *slot.Single[string]
	ignoreFilenameRegex               *slot.Single[string]
	disableDefaultIgnoreFilenameRegex slot.Bool
	hideInstantiations                slot.Bool
	noCfgCoverage                     slot.Bool
	noCfgCoverageNightly              slot.Bool
	noReport                          slot.Bool
	failUnderLines                    *slot.Single[float64]
	failUncoveredLines                *slot.Single[uint64]
	failUncoveredRegions              *slot.Single[uint64]
	failUncoveredFunctions            *slot.Single[uint64]
	showMissingLines                  slot.Bool
	includeBuildScript                slot.Bool

	jobs               *slot.Single[uint32]
	release            slot.Bool
	profile            *slot.Single[string]
	target             *slot.Single[string]
	coverageTargetOnly slot.Bool
	remapPathPrefix    slot.Bool
	includeFFI         slot.Bool
	verbose            slot.Count

	defs  []flagDef
	index map[string]*flagDef // every spelling -> definition
}

func newFlagSet() *flagSet {
	f := &flagSet{
		color:        slot.NewSingle(ParseColor),
		manifestPath: slot.NewSingle(slot.String),

		bin:     slot.NewList(slot.String),
		example: slot.NewList(slot.String),
		test:    slot.NewList(slot.String),
		bench:   slot.NewList(slot.String),

		pkg:               slot.NewList(slot.String),
		exclude:           slot.NewList(slot.String),
		excludeFromTest:   slot.NewList(slot.String),
		excludeFromReport: slot.NewList(slot.String),

		outputPath:             slot.NewSingle(slot.NonEmpty),
		outputDir:              slot.NewSingle(slot.NonEmpty),
		failureMode:            slot.NewSingle(slot.String),
		ignoreFilenameRegex:    slot.NewSingle(slot.NonEmpty),
		failUnderLines:         slot.NewSingle(slot.Float64),
		failUncoveredLines:     slot.NewSingle(slot.Uint64),
		failUncoveredRegions:   slot.NewSingle(slot.Uint64),
		failUncoveredFunctions: slot.NewSingle(slot.Uint64),

		jobs:    slot.NewSingle(slot.PositiveUint32),
		profile: slot.NewSingle(slot.String),
		target:  slot.NewSingle(slot.String),
	}

	f.defs = []flagDef{
		{long: "--doctests", slot: &f.doctests, section: sectionTest,
			help:   "Including doc tests (unstable)",
			detail: "This flag is unstable."},
		{long: "--no-run", slot: &f.noRun, section: sectionTest,
			help: "Generate coverage report without running tests"},
		{long: "--no-fail-fast", slot: &f.noFailFast, section: sectionTest,
			help: "Run all tests regardless of failure"},
		{long: "--ignore-run-fail", slot: &f.ignoreRunFail, section: sectionTest,
			help:   "Run all tests regardless of failure and generate report",
			detail: "If tests failed but report generation succeeded, exit with a status of 0."},
		{long: "--lib", slot: &f.lib, section: sectionTest,
			help: "Test only this package's library unit tests"},
		{long: "--bin", slot: f.bin, value: "NAME", section: sectionTest,
			help: "Test only the specified binary"},
		{long: "--bins", slot: &f.bins, section: sectionTest,
			help: "Test all binaries"},
		{long: "--example", slot: f.example, value: "NAME", section: sectionTest,
			help: "Test only the specified example"},
		{long: "--examples", slot: &f.examples, section: sectionTest,
			help: "Test all examples"},
		{long: "--test", slot: f.test, value: "NAME", section: sectionTest,
			help: "Test only the specified test target"},
		{long: "--tests", slot: &f.tests, section: sectionTest,
			help: "Test all tests"},
		{long: "--bench", slot: f.bench, value: "NAME", section: sectionTest,
			help: "Test only the specified bench target"},
		{long: "--benches", slot: &f.benches, section: sectionTest,
			help: "Test all benches"},
		{long: "--all-targets", slot: &f.allTargets, section: sectionTest,
			help: "Test all targets"},
		{long: "--doc", slot: &f.doc, section: sectionTest,
			help:   "Test only this library's documentation (unstable)",
			detail: "This flag is unstable because it automatically enables --doctests flag."},

		{long: "--package", short: "-p", slot: f.pkg, value: "SPEC", section: sectionPackage,
			help: "Package to run tests for"},
		{long: "--workspace", aliases: []string{"--all"}, slot: &f.workspace, section: sectionPackage,
			help: "Test all packages in the workspace"},
		{long: "--exclude", slot: f.exclude, value: "SPEC", section: sectionPackage,
			help: "Exclude packages from both the test and report"},
		{long: "--exclude-from-test", slot: f.excludeFromTest, value: "SPEC", section: sectionPackage,
			help: "Exclude packages from the test (but not from the report)"},
		{long: "--exclude-from-report", slot: f.excludeFromReport, value: "SPEC", section: sectionPackage,
			help: "Exclude packages from the report (but not from the test)"},

		{long: "--json", slot: &f.json, section: sectionReport,
			help:   `Export coverage data in "json" format`,
			detail: "If --output-path is not specified, the report will be printed to stdout."},
		{long: "--lcov", slot: &f.lcov, section: sectionReport,
			help:   `Export coverage data in "lcov" format`,
			detail: "If --output-path is not specified, the report will be printed to stdout."},
		{long: "--text", slot: &f.text, section: sectionReport,
			help:   `Generate coverage report in "text" format`,
			detail: "If --output-path or --output-dir is not specified, the report will be printed to stdout."},
		{long: "--html", slot: &f.html, section: sectionReport,
			help:   `Generate coverage report in "html" format`,
			detail: "If --output-dir is not specified, the report will be generated in target/llvm-cov/html directory."},
		{long: "--open", slot: &f.open, section: sectionReport,
			help: `Generate coverage reports in "html" format and open them in a browser after the operation`},
		{long: "--summary-only", slot: &f.summaryOnly, section: sectionReport,
			help:   "Export only summary information for each file in the coverage data",
			detail: "This flag can only be used together with either --json or --lcov."},
		{long: "--output-path", slot: f.outputPath, value: "PATH", section: sectionReport,
			help:   "Specify a file to write coverage data into",
			detail: "This flag can only be used together with --json, --lcov, or --text."},
		{long: "--output-dir", slot: f.outputDir, value: "DIRECTORY", section: sectionReport,
			help:   "Specify a directory to write coverage report into (default to target/llvm-cov)",
			detail: "This flag can only be used together with --text, --html, or --open."},
		{long: "--failure-mode", slot: f.failureMode, value: "any|all", section: sectionReport,
			help: "Fail if 'any' or 'all' profiles cannot be merged (default to 'any')"},
		{long: "--ignore-filename-regex", slot: f.ignoreFilenameRegex, value: "PATTERN", section: sectionReport,
			help: "Skip source code files with file paths that match the given regular expression"},
		{long: "--disable-default-ignore-filename-regex", slot: &f.disableDefaultIgnoreFilenameRegex, section: sectionReport,
			hidden: true},
		{long: "--hide-instantiations", slot: &f.hideInstantiations, section: sectionReport,
			help: "Hide instantiations from report"},
		{long: "--no-cfg-coverage", slot: &f.noCfgCoverage, section: sectionReport,
			help: "Unset cfg(coverage), which is enabled when code is built using cargo-llvm-cov"},
		{long: "--no-cfg-coverage-nightly", slot: &f.noCfgCoverageNightly, section: sectionReport,
			help: "Unset cfg(coverage_nightly), which is enabled when code is built using cargo-llvm-cov and nightly compiler"},
		{long: "--no-report", slot: &f.noReport, section: sectionReport,
			help: "Run tests, but don't generate coverage report"},
		{long: "--fail-under-lines", slot: f.failUnderLines, value: "MIN", section: sectionReport,
			help: "Exit with a status of 1 if the total line coverage is less than MIN percent"},
		{long: "--fail-uncovered-lines", slot: f.failUncoveredLines, value: "MAX", section: sectionReport,
			help: "Exit with a status of 1 if the uncovered lines are greater than MAX"},
		{long: "--fail-uncovered-regions", slot: f.failUncoveredRegions, value: "MAX", section: sectionReport,
			help: "Exit with a status of 1 if the uncovered regions are greater than MAX"},
		{long: "--fail-uncovered-functions", slot: f.failUncoveredFunctions, value: "MAX", section: sectionReport,
			help: "Exit with a status of 1 if the uncovered functions are greater than MAX"},
		{long: "--show-missing-lines", slot: &f.showMissingLines, section: sectionReport,
			help: "Show lines with no coverage"},
		{long: "--include-build-script", slot: &f.includeBuildScript, section: sectionReport,
			help: "Include build script in coverage report"},

		{long: "--jobs", short: "-j", slot: f.jobs, value: "N", section: sectionBuild,
			help: "Number of parallel jobs, defaults to # of CPUs"},
		{long: "--release", short: "-r", slot: &f.release, section: sectionBuild,
			help: "Build artifacts in release mode, with optimizations"},
		{long: "--profile", slot: f.profile, value: "PROFILE-NAME", section: sectionBuild,
			help: "Build artifacts with the specified profile"},
		{long: "--target", slot: f.target, value: "TRIPLE", section: sectionBuild,
			help:   "Build for the target triple",
			detail: "When this option is used, coverage for proc-macro and build script will not be displayed because cargo does not pass RUSTFLAGS to them."},
		{long: "--coverage-target-only", slot: &f.coverageTargetOnly, section: sectionBuild,
			help: "Activate coverage reporting only for the target triple specified via --target"},
		{long: "--verbose", short: "-v", slot: &f.verbose, section: sectionBuild,
			help:   "Use verbose output",
			detail: "Use -vv (-vvv) to propagate verbosity to cargo."},
		{long: "--color", slot: f.color, value: "WHEN", section: sectionBuild,
			help: "Coloring: auto, always, never"},
		{long: "--remap-path-prefix", slot: &f.remapPathPrefix, section: sectionBuild,
			help: "Use --remap-path-prefix for workspace root"},
		{long: "--include-ffi", slot: &f.includeFFI, section: sectionBuild,
			help: "Include coverage of C/C++ code linked to Rust library/binary"},

		{long: "--manifest-path", slot: f.manifestPath, value: "PATH", section: sectionManifest,
			help: "Path to Cargo.toml"},
	}

	f.index = make(map[string]*flagDef, len(f.defs)*2)
	for i := range f.defs {
		d := &f.defs[i]
		invariant.Invariant(d.slot.Arity().TakesValue() == (d.value != ""),
			"%s: value name must be set exactly for flags that take a value", d.long)
		for _, spelling := range d.spellings() {
			_, dup := f.index[spelling]
			invariant.Invariant(!dup, "%s declared twice", spelling)
			f.index[spelling] = d
		}
	}
	return f
}

func (d *flagDef) spellings() []string {
	out := append([]string{d.long}, d.aliases...)
	if d.short != "" {
		out = append(out, d.short)
	}
	return out
}

// lookup finds the definition for a flag as spelled on the command line.
func (f *flagSet) lookup(flag string) (*flagDef, bool) {
	d, ok := f.index[flag]
	return d, ok
}

// present reports whether the flag with canonical spelling long was given.
func (f *flagSet) present(long string) bool {
	d, ok := f.index[long]
	invariant.Precondition(ok && d.long == long, "%s is not a canonical flag", long)
	return d.slot.Seen()
}

// crossFlagRules are checked after the whole command line has been read.
var crossFlagRules = append([]rules.Rule{
	rules.Requires("--exclude", "--workspace"),
	rules.Requires("--coverage-target-only", "--target"),
	rules.Conflicts("--open", "--json"),
	rules.Conflicts("--open", "--lcov"),
	rules.Conflicts("--open", "--text"),
}, rules.ConflictsPairwise("--json", "--lcov", "--text", "--html")...)
