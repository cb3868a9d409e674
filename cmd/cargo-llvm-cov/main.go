package main

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/ldm0/cargo-llvm-cov/internal/cli"
	"github.com/ldm0/cargo-llvm-cov/internal/version"
)

// Setting this variable to any non-empty value traces argument classification
// on stderr.
const debugEnv = "CARGO_LLVM_COV_DEBUG_ARGS"

const longAbout = `Cargo subcommand to easily use LLVM source-based code coverage (-C instrument-coverage).

Tokens this tool does not recognize are passed on to cargo. Tokens after -- are
passed to the test binary.`

const (
	exitSuccess = 0
	exitFailure = 1
)

func main() {
	os.Exit(run(os.Args, os.Stdout, os.Stderr))
}

func run(argv []string, stdout, stderr io.Writer) int {
	host := "cargo"
	if len(argv) > 0 {
		host = argv[0]
		argv = argv[1:]
	}
	if argv == nil {
		argv = []string{}
	}

	code := exitSuccess
	root := &cobra.Command{
		Use:     "cargo llvm-cov [OPTIONS] [SUBCOMMAND] [-- <args>...]",
		Short:   "Cargo subcommand to easily use LLVM source-based code coverage",
		Long:    longAbout,
		Version: version.String(),
		// Every token belongs to the engine, including -h and --version.
		DisableFlagParsing:    true,
		DisableFlagsInUseLine: true,
		SilenceErrors:         true,
		SilenceUsage:          true,
		RunE: func(cmd *cobra.Command, args []string) error {
			code = execute(cmd, append([]string{host}, args...))
			return nil
		},
	}
	root.SetArgs(argv)
	root.SetOut(stdout)
	root.SetErr(stderr)

	if err := root.Execute(); err != nil {
		printError(stderr, err)
		return exitFailure
	}
	return code
}

func execute(cmd *cobra.Command, argv []string) int {
	stdout, stderr := cmd.OutOrStdout(), cmd.ErrOrStderr()

	var opts []cli.Option
	if os.Getenv(debugEnv) != "" {
		opts = append(opts, cli.WithLogger(newLogger(stderr)))
	}

	args, err := cli.Parse(argv, opts...)
	var help *cli.HelpRequest
	switch {
	case errors.As(err, &help):
		header := cli.Header{Short: cmd.Short, Long: cmd.Long, Use: cmd.UseLine()}
		if err := cli.Usage(stdout, help.Long, header); err != nil {
			printError(stderr, err)
			return exitFailure
		}
		return exitSuccess
	case errors.Is(err, cli.ErrVersion):
		fmt.Fprintf(stdout, "%s %s\n", cli.Name, cmd.Version)
		return exitSuccess
	case err != nil:
		printError(stderr, err)
		return exitFailure
	}

	if args.Verbose() {
		build := args.TakeBuild()
		fmt.Fprintf(stderr, "running cargo llvm-cov %s %v\n", args.Subcommand, append(build.CargoArgs(), args.CargoArgs...))
	}
	return exitSuccess
}

// newLogger writes bare key=value debug lines.
func newLogger(w io.Writer) *slog.Logger {
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{
		Level: slog.LevelDebug,
		ReplaceAttr: func(groups []string, a slog.Attr) slog.Attr {
			if len(groups) == 0 && (a.Key == slog.TimeKey || a.Key == slog.LevelKey) {
				return slog.Attr{}
			}
			return a
		},
	}))
}

func printError(w io.Writer, err error) {
	useColor := shouldUseColor(w)
	fmt.Fprintf(w, "%s %s\n", colorize("error:", colorRed, useColor), err)

	var hinted interface{ Hint() string }
	if errors.As(err, &hinted) {
		if hint := hinted.Hint(); hint != "" {
			fmt.Fprintf(w, "%s %s\n", colorize("hint:", colorYellow, useColor), hint)
		}
	}
}
