// Package cli turns the `cargo llvm-cov` command line into an Args value.
//
// Parsing is a single pass. Flags this tool owns are stored in typed slots,
// everything else is reconstructed and forwarded to cargo, and the tokens
// after "--" are forwarded to the test binary untouched. The first bare value
// may name a subcommand. Flag combinations are validated once the whole
// command line has been read.
package cli

import (
	"log/slog"
	"strings"

	"github.com/ldm0/cargo-llvm-cov/internal/argv"
	"github.com/ldm0/cargo-llvm-cov/internal/lexer"
	"github.com/ldm0/cargo-llvm-cov/internal/rules"
)

const (
	// Name is the program name used in help and version output.
	Name = "cargo-llvm-cov"
	// Literal is the subcommand cargo passes as the second argument.
	Literal = "llvm-cov"
)

// Parse parses a full process argument vector, host program name included.
// It returns a *HelpRequest or ErrVersion when the user asked for help or
// version text instead of a run.
func Parse(args []string, opts ...Option) (*Args, error) {
	cfg := newConfig(opts)

	inv, err := argv.Read(args, Literal)
	if err != nil {
		return nil, err
	}

	p := &parser{
		lx:        lexer.New(inv.Tokens),
		flags:     newFlagSet(),
		cargoArgs: []string{},
		logger:    cfg.logger,
	}
	if err := p.run(); err != nil {
		return nil, err
	}
	return p.assemble(inv.Trailing)
}

type parser struct {
	lx    *lexer.Lexer
	flags *flagSet

	subcommand Subcommand
	chosen     bool // a bare value selected the subcommand
	sawValue   bool // subcommand resolution already happened
	cargoArgs  []string
	logger     *slog.Logger
}

func (p *parser) run() error {
	for {
		arg, ok, err := p.lx.Next()
		if err != nil {
			return err
		}
		if !ok {
			return nil
		}

		if arg.Kind == lexer.Value {
			if err := p.value(arg.Name); err != nil {
				return err
			}
			continue
		}

		if d, ok := p.flags.lookup(arg.Flag()); ok {
			if err := p.accept(d, arg); err != nil {
				return err
			}
			continue
		}

		switch {
		case !p.chosen && arg.Is("-h", "--help"):
			return &HelpRequest{Long: arg.Kind == lexer.Long}
		case arg.Is("-V", "--version"):
			if p.chosen {
				return &UnexpectedArgumentError{Arg: arg.Flag()}
			}
			return ErrVersion
		}

		p.forward(arg)
	}
}

// accept stores one occurrence of a recognized flag.
func (p *parser) accept(d *flagDef, arg lexer.Arg) error {
	flag := arg.Flag()
	arity := d.slot.Arity()

	// Reject a repeat before pulling its value, so "--output-path a
	// --output-path" reports the duplicate rather than the missing value.
	if !arity.Repeatable() && d.slot.Seen() {
		return d.slot.Accept(flag, "")
	}

	value := ""
	if arity.TakesValue() {
		v, err := p.lx.Value()
		if err != nil {
			return err
		}
		value = v
	}

	p.logger.Debug("flag", "flag", flag, "canonical", d.long, "arity", arity, "value", value)
	return d.slot.Accept(flag, value)
}

// forward reconstructs an unrecognized option for cargo. Only an attached
// value travels with it; a following token is classified on its own.
func (p *parser) forward(arg lexer.Arg) {
	var token string
	switch arg.Kind {
	case lexer.Long:
		token = arg.Flag()
		if v, ok := p.lx.OptionalValue(); ok {
			token += "=" + v
		}
	case lexer.Short:
		token = arg.Flag()
		// -q takes no value; keep the rest of a bundle such as -qv classified.
		if arg.Name != "q" {
			if v, ok := p.lx.OptionalValue(); ok {
				token += v
			}
		}
	}
	p.logger.Debug("forward", "token", token)
	p.cargoArgs = append(p.cargoArgs, token)
}

// value handles a bare value. Only the first one may name a subcommand.
func (p *parser) value(text string) error {
	if p.sawValue {
		p.cargoArgs = append(p.cargoArgs, text)
		return nil
	}
	p.sawValue = true

	sub, ok := ParseKeyword(text)
	if !ok {
		p.logger.Debug("forward", "token", text)
		p.cargoArgs = append(p.cargoArgs, text)
		return nil
	}
	p.subcommand = sub
	p.chosen = true
	p.logger.Debug("subcommand", "subcommand", sub)

	if sub == Demangle && p.lx.Remaining() {
		arg, ok, err := p.lx.Next()
		if err != nil {
			return err
		}
		if ok {
			return &UnexpectedTrailingArgumentError{Subcommand: sub, Arg: display(arg)}
		}
	}
	return nil
}

func (p *parser) assemble(rest []string) (*Args, error) {
	f := p.flags

	if err := rules.Check(f.present, crossFlagRules...); err != nil {
		return nil, err
	}

	// The tool itself only needs to know whether -v was given; extra
	// occurrences are passed on, so -vv means cargo -v.
	if n := f.verbose.N(); n > 1 {
		p.cargoArgs = append(p.cargoArgs, "-"+strings.Repeat("v", n-1))
	}

	args := &Args{
		Subcommand: p.subcommand,
		TestSelection: TestSelection{
			Doctests:          f.doctests.Get(),
			NoRun:             f.noRun.Get(),
			NoFailFast:        f.noFailFast.Get(),
			IgnoreRunFail:     f.ignoreRunFail.Get(),
			Lib:               f.lib.Get(),
			Bin:               f.bin.Values(),
			Bins:              f.bins.Get(),
			Example:           f.example.Values(),
			Examples:          f.examples.Get(),
			Test:              f.test.Values(),
			Tests:             f.tests.Get(),
			Bench:             f.bench.Values(),
			Benches:           f.benches.Get(),
			AllTargets:        f.allTargets.Get(),
			Doc:               f.doc.Get(),
			Package:           f.pkg.Values(),
			Workspace:         f.workspace.Get(),
			Exclude:           f.exclude.Values(),
			ExcludeFromTest:   f.excludeFromTest.Values(),
			ExcludeFromReport: f.excludeFromReport.Values(),
		},
		CargoArgs: p.cargoArgs,
		Rest:      rest,
		cov: &CovOptions{
			JSON:                              f.json.Get(),
			LCOV:                              f.lcov.Get(),
			Text:                              f.text.Get(),
			HTML:                              f.html.Get(),
			Open:                              f.open.Get(),
			SummaryOnly:                       f.summaryOnly.Get(),
			OutputPath:                        f.outputPath.Ptr(),
			OutputDir:                         f.outputDir.Ptr(),
			FailureMode:                       f.failureMode.Ptr(),
			IgnoreFilenameRegex:               f.ignoreFilenameRegex.Ptr(),
			DisableDefaultIgnoreFilenameRegex: f.disableDefaultIgnoreFilenameRegex.Get(),
			HideInstantiations:                f.hideInstantiations.Get(),
			NoCfgCoverage:                     f.noCfgCoverage.Get(),
			NoCfgCoverageNightly:              f.noCfgCoverageNightly.Get(),
			NoReport:                          f.noReport.Get(),
			FailUnderLines:                    f.failUnderLines.Ptr(),
			FailUncoveredLines:                f.failUncoveredLines.Ptr(),
			FailUncoveredRegions:              f.failUncoveredRegions.Ptr(),
			FailUncoveredFunctions:            f.failUncoveredFunctions.Ptr(),
			ShowMissingLines:                  f.showMissingLines.Get(),
			IncludeBuildScript:                f.includeBuildScript.Get(),
		},
		build: &BuildOptions{
			Jobs:               f.jobs.Ptr(),
			Release:            f.release.Get(),
			Profile:            f.profile.Ptr(),
			Target:             f.target.Ptr(),
			CoverageTargetOnly: f.coverageTargetOnly.Get(),
			Verbose:            f.verbose.Uint8(),
			Color:              f.color.Ptr(),
			RemapPathPrefix:    f.remapPathPrefix.Get(),
			IncludeFFI:         f.includeFFI.Get(),
		},
		manifest: &ManifestOptions{
			ManifestPath: f.manifestPath.Ptr(),
		},
		verbosity: f.verbose.Uint8(),
	}

	p.logger.Debug("parsed", "subcommand", args.Subcommand, "cargo_args", args.CargoArgs, "rest", args.Rest)
	return args, nil
}

// display renders a token as the user typed it.
func display(arg lexer.Arg) string {
	if arg.Kind == lexer.Value {
		return arg.Name
	}
	return arg.Flag()
}
