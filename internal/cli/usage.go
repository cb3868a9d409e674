package cli

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/pflag"
)

const usageWidth = 100

var subcommandHelp = []struct {
	sub  Subcommand
	help string
}{
	{Test, "Run tests and generate coverage report (default)"},
	{Run, "Run a binary or example and generate coverage report"},
	{ShowEnv, "Output the environment set by cargo-llvm-cov to build Rust projects"},
	{Clean, "Remove artifacts that cargo-llvm-cov has generated in the past"},
	{Nextest, "Run tests with cargo nextest"},
}

var sections = []string{sectionTest, sectionPackage, sectionReport, sectionBuild, sectionManifest}

// helpValue satisfies pflag.Value so that value flags render with their
// value name, e.g. "--jobs N".
type helpValue string

func (v helpValue) String() string   { return "" }
func (v helpValue) Set(string) error { return nil }
func (v helpValue) Type() string     { return string(v) }

// Header is the command description printed above the option tables.
type Header struct {
	Short string // one line, used by -h
	Long  string // used by --help; falls back to Short
	Use   string // usage line
}

// Usage writes help text. long selects the --help form, which adds the
// per-flag detail paragraphs.
func Usage(w io.Writer, long bool, h Header) error {
	var b strings.Builder

	about := h.Short
	if long && h.Long != "" {
		about = h.Long
	}
	if about != "" {
		fmt.Fprintf(&b, "%s\n\n", about)
	}
	if h.Use != "" {
		fmt.Fprintf(&b, "USAGE:\n    %s\n\n", h.Use)
	}
	b.WriteString("ARGS:\n    <args>...    Arguments for the test binary\n\n")

	b.WriteString("SUBCOMMANDS:\n")
	for _, s := range subcommandHelp {
		fmt.Fprintf(&b, "    %-10s %s\n", s.sub, s.help)
	}

	general := pflag.NewFlagSet("general", pflag.ContinueOnError)
	general.BoolP("help", "h", false, "Print help information")
	general.BoolP("version", "V", false, "Print version information")
	b.WriteString("\nOPTIONS:\n")
	b.WriteString(render(general, long))

	fl := newFlagSet()
	for _, section := range sections {
		fs := pflag.NewFlagSet(section, pflag.ContinueOnError)
		for i := range fl.defs {
			d := &fl.defs[i]
			if d.section == section {
				addFlag(fs, d, long)
			}
		}
		if !fs.HasAvailableFlags() {
			continue
		}
		fmt.Fprintf(&b, "\n%s:\n", strings.ToUpper(section))
		b.WriteString(render(fs, long))
	}

	_, err := io.WriteString(w, b.String())
	return err
}

func addFlag(fs *pflag.FlagSet, d *flagDef, long bool) {
	name := strings.TrimPrefix(d.long, "--")
	short := strings.TrimPrefix(d.short, "-")

	help := d.help
	if len(d.aliases) > 0 {
		help += fmt.Sprintf(" (alias: %s)", strings.Join(d.aliases, ", "))
	}
	if d.slot.Arity().Repeatable() && d.slot.Arity().TakesValue() {
		help += " (may be repeated)"
	}
	if long && d.detail != "" {
		help += ". " + d.detail
	}

	if d.slot.Arity().TakesValue() {
		fs.VarP(helpValue(d.value), name, short, help)
	} else {
		fs.BoolP(name, short, false, help)
	}
	if d.hidden {
		_ = fs.MarkHidden(name)
	}
}

func render(fs *pflag.FlagSet, long bool) string {
	if long {
		return fs.FlagUsagesWrapped(usageWidth)
	}
	return fs.FlagUsages()
}
