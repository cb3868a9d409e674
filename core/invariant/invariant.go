// Package invariant provides contract assertions for the argument engine.
//
// User mistakes on the command line are reported as errors. The functions in
// this package are for the other kind of failure: a flag table declared
// inconsistently, a sub-record taken twice, a branch the classifier can never
// reach. Those are programming errors and panic.
package invariant

import (
	"fmt"
	"runtime"
)

// Precondition checks an input contract at function entry.
// Panics with PRECONDITION VIOLATION if condition is false.
//
// Example:
//
//	func requires(flag string, oneOf []string) error {
//	    invariant.Precondition(len(oneOf) > 0, "%s: requires list must not be empty", flag)
//	    // ...
//	}
func Precondition(condition bool, format string, args ...any) {
	if !condition {
		fail("PRECONDITION", format, args...)
	}
}

// Invariant checks internal consistency during function execution.
// Panics with INVARIANT VIOLATION if condition is false.
func Invariant(condition bool, format string, args ...any) {
	if !condition {
		fail("INVARIANT", format, args...)
	}
}

// Unreachable marks a branch that a correct caller can never take.
func Unreachable(format string, args ...any) {
	fail("UNREACHABLE", format, args...)
}

// fail panics with the violation kind and the location of the failed check.
func fail(kind, format string, args ...any) {
	msg := fmt.Sprintf("%s VIOLATION: "+format, append([]any{kind}, args...)...)

	// Skip runtime.Callers, fail and the exported wrapper.
	pc := make([]uintptr, 1)
	if runtime.Callers(3, pc) > 0 {
		frame, _ := runtime.CallersFrames(pc).Next()
		msg += fmt.Sprintf("\n  at %s:%d", frame.File, frame.Line)
	}

	panic(msg)
}
