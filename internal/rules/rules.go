// Package rules checks flag combinations after the whole command line has
// been read.
package rules

import (
	"fmt"
	"strings"

	"github.com/ldm0/cargo-llvm-cov/core/invariant"
)

// Presence reports whether a flag, by canonical spelling, was given.
type Presence func(flag string) bool

// Rule is one flag-combination constraint.
type Rule interface {
	Check(present Presence) error
}

type requires struct {
	flag  string
	oneOf []string
}

// Requires demands that flag only appears together with at least one of oneOf.
func Requires(flag string, oneOf ...string) Rule {
	invariant.Precondition(len(oneOf) > 0, "%s: requires list must not be empty", flag)
	return requires{flag: flag, oneOf: oneOf}
}

func (r requires) Check(present Presence) error {
	if !present(r.flag) {
		return nil
	}
	for _, f := range r.oneOf {
		if present(f) {
			return nil
		}
	}
	return &RequiresFlagError{Flag: r.flag, Requires: r.oneOf}
}

type conflicts struct {
	a, b string
}

// Conflicts forbids a and b from appearing together.
func Conflicts(a, b string) Rule {
	invariant.Precondition(a != b, "%s cannot conflict with itself", a)
	return conflicts{a: a, b: b}
}

func (c conflicts) Check(present Presence) error {
	if present(c.a) && present(c.b) {
		return &ConflictError{A: c.a, B: c.b}
	}
	return nil
}

// ConflictsPairwise returns a Conflicts rule for every pair in flags, in
// declaration order.
func ConflictsPairwise(flags ...string) []Rule {
	var out []Rule
	for i, a := range flags {
		for _, b := range flags[i+1:] {
			out = append(out, Conflicts(a, b))
		}
	}
	return out
}

// Check returns the first violated rule's error, in declaration order.
func Check(present Presence, rules ...Rule) error {
	invariant.Precondition(present != nil, "presence must not be nil")
	for _, r := range rules {
		if err := r.Check(present); err != nil {
			return err
		}
	}
	return nil
}

// RequiresFlagError reports a dependent flag used without its prerequisite.
type RequiresFlagError struct {
	Flag     string
	Requires []string
}

func (e *RequiresFlagError) Error() string {
	return fmt.Sprintf("%s can only be used together with %s", e.Flag, alternatives(e.Requires))
}

// ConflictError reports two flags that may not be combined.
type ConflictError struct {
	A, B string
}

func (e *ConflictError) Error() string {
	return fmt.Sprintf("%s may not be used together with %s", e.A, e.B)
}

// alternatives joins flags as "a", "either a or b", or "a, b, or c".
func alternatives(flags []string) string {
	switch len(flags) {
	case 0:
		invariant.Unreachable("empty alternatives list")
		return ""
	case 1:
		return flags[0]
	case 2:
		return fmt.Sprintf("either %s or %s", flags[0], flags[1])
	default:
		var b strings.Builder
		for _, f := range flags[:len(flags)-1] {
			b.WriteString(f)
			b.WriteString(", ")
		}
		b.WriteString("or ")
		b.WriteString(flags[len(flags)-1])
		return b.String()
	}
}
