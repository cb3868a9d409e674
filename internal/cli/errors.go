package cli

import (
	"errors"
	"fmt"
)

var (
	// ErrHelp is matched by every HelpRequest.
	ErrHelp = errors.New("help requested")
	// ErrVersion is returned when -V/--version appears before any subcommand.
	ErrVersion = errors.New("version requested")
)

// HelpRequest is returned when -h/--help appears before any subcommand. It
// ends parsing successfully; the caller prints usage and exits 0.
type HelpRequest struct {
	Long bool // --help rather than -h
}

func (e *HelpRequest) Error() string { return ErrHelp.Error() }

func (e *HelpRequest) Is(target error) bool { return target == ErrHelp }

// UnexpectedArgumentError reports a flag that is not valid where it appears,
// such as --version after a subcommand.
type UnexpectedArgumentError struct {
	Arg string
}

func (e *UnexpectedArgumentError) Error() string {
	return fmt.Sprintf("Found argument '%s' which wasn't expected, or isn't valid in this context", e.Arg)
}

// UnexpectedTrailingArgumentError reports input after a subcommand that takes
// no arguments.
type UnexpectedTrailingArgumentError struct {
	Subcommand Subcommand
	Arg        string
}

func (e *UnexpectedTrailingArgumentError) Error() string {
	return fmt.Sprintf("Found argument '%s' which wasn't expected, or isn't valid in this context (subcommand '%s' takes no arguments)",
		e.Arg, e.Subcommand)
}
