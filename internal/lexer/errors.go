package lexer

import "fmt"

// MissingValueError is returned by Value when the input ends before the
// option's value.
type MissingValueError struct {
	Flag string
}

func (e *MissingValueError) Error() string {
	return fmt.Sprintf("missing argument for option '%s'", e.Flag)
}

// UnexpectedValueError is returned by Next when an option that was not asked
// for a value carries an attached one, as in "--release=yes".
type UnexpectedValueError struct {
	Flag  string
	Value string
}

func (e *UnexpectedValueError) Error() string {
	return fmt.Sprintf("unexpected argument for option '%s': %q", e.Flag, e.Value)
}
