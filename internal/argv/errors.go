package argv

import (
	"errors"
	"fmt"
)

// ErrMissingSubcommand is matched by every MissingSubcommandError.
var ErrMissingSubcommand = errors.New("missing subcommand")

// EncodingError reports a token that is not valid Unicode text.
type EncodingError struct {
	Index int // 1-based position in the argument vector
	Arg   string
}

func (e *EncodingError) Error() string {
	return fmt.Sprintf("argument %d is not valid Unicode: %q", e.Index, e.Arg)
}

// MissingSubcommandError is returned when the vector ends before the
// subcommand literal.
type MissingSubcommandError struct {
	Expected string
}

func (e *MissingSubcommandError) Error() string {
	return fmt.Sprintf("expected subcommand '%s'", e.Expected)
}

func (e *MissingSubcommandError) Is(target error) bool {
	return target == ErrMissingSubcommand
}

// UnexpectedSubcommandError is returned when the second token is not the
// subcommand literal.
type UnexpectedSubcommandError struct {
	Expected   string
	Found      string
	Suggestion string // empty when Found is not close to Expected
}

func (e *UnexpectedSubcommandError) Error() string {
	return fmt.Sprintf("expected subcommand '%s', found argument '%s'", e.Expected, e.Found)
}

// Hint returns a "did you mean" line, or "" when there is nothing to suggest.
func (e *UnexpectedSubcommandError) Hint() string {
	if e.Suggestion == "" {
		return ""
	}
	return fmt.Sprintf("did you mean '%s'?", e.Suggestion)
}
