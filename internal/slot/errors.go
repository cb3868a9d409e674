package slot

import "fmt"

// DuplicateArgumentError reports a second occurrence of a flag that may only
// be given once.
type DuplicateArgumentError struct {
	Flag string
}

func (e *DuplicateArgumentError) Error() string {
	return fmt.Sprintf("The argument '%s' was provided more than once, but cannot be used multiple times", e.Flag)
}

// InvalidValueError reports a value that could not be converted to the
// flag's type.
type InvalidValueError struct {
	Flag  string
	Value string
	Err   error
}

func (e *InvalidValueError) Error() string {
	return fmt.Sprintf("invalid value '%s' for '%s': %v", e.Value, e.Flag, e.Err)
}

func (e *InvalidValueError) Unwrap() error {
	return e.Err
}
