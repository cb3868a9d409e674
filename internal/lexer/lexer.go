// Package lexer classifies command-line tokens into long options, short
// options and bare values.
//
// The lexer walks the token list left to right and never looks further ahead
// than the token after the current one. Option values are pulled on demand by
// the caller: Value takes an attached value or the next token, OptionalValue
// only ever takes an attached one.
package lexer

import (
	"strings"
	"unicode/utf8"

	"github.com/ldm0/cargo-llvm-cov/core/invariant"
)

// Kind is the shape of a classified token.
type Kind int

const (
	Long  Kind = iota // --name or --name=value
	Short             // -c, -cvalue or one character of a bundle
	Value             // anything else
)

func (k Kind) String() string {
	switch k {
	case Long:
		return "long"
	case Short:
		return "short"
	case Value:
		return "value"
	default:
		return "unknown"
	}
}

// Arg is one classified token.
type Arg struct {
	Kind Kind
	Name string // option name without dashes; the bare text for Value
}

// Flag renders the option the way a user would spell it.
func (a Arg) Flag() string {
	switch a.Kind {
	case Long:
		return "--" + a.Name
	case Short:
		return "-" + a.Name
	default:
		invariant.Unreachable("value %q formatted as a flag", a.Name)
		return ""
	}
}

// Is reports whether a is an option spelled as one of flags ("--name" or "-c").
func (a Arg) Is(flags ...string) bool {
	if a.Kind == Value {
		return false
	}
	f := a.Flag()
	for _, want := range flags {
		if f == want {
			return true
		}
	}
	return false
}

// Lexer holds the classification state for one token list.
type Lexer struct {
	tokens []string
	pos    int // next token to read

	// Attached "=value" of the last long option, until consumed.
	pending    string
	hasPending bool

	// Short option bundle being split, and the byte offset of its next character.
	shorts   string
	shortPos int

	last string // last option as spelled, for diagnostics
}

// New creates a Lexer over tokens. The "--" separator must already have been
// split off; a "--" reaching the lexer is classified as a plain value.
func New(tokens []string) *Lexer {
	return &Lexer{tokens: tokens}
}

// Next returns the next classified token. ok is false once the input is
// exhausted.
func (l *Lexer) Next() (arg Arg, ok bool, err error) {
	if l.hasPending {
		value := l.pending
		l.clearPending()
		return Arg{}, false, &UnexpectedValueError{Flag: l.last, Value: value}
	}

	if l.inShorts() {
		ch, size := utf8.DecodeRuneInString(l.shorts[l.shortPos:])
		if ch == '=' && l.shortPos > 1 {
			value, _ := l.OptionalValue()
			return Arg{}, false, &UnexpectedValueError{Flag: l.last, Value: value}
		}
		l.shortPos += size
		arg = Arg{Kind: Short, Name: string(ch)}
		l.last = arg.Flag()
		if !l.inShorts() {
			l.clearShorts()
		}
		return arg, true, nil
	}

	if l.pos >= len(l.tokens) {
		return Arg{}, false, nil
	}
	token := l.tokens[l.pos]
	l.pos++

	switch {
	case token == "--" || token == "-" || !strings.HasPrefix(token, "-"):
		return Arg{Kind: Value, Name: token}, true, nil

	case strings.HasPrefix(token, "--"):
		name, value, found := strings.Cut(token[2:], "=")
		if found {
			l.pending = value
			l.hasPending = true
		}
		arg = Arg{Kind: Long, Name: name}
		l.last = arg.Flag()
		return arg, true, nil

	default:
		l.shorts = token
		l.shortPos = 1
		return l.Next()
	}
}

// Value returns the value of the option just returned by Next: an attached
// "=value", the rest of a short bundle, or else the next token whatever its
// shape.
func (l *Lexer) Value() (string, error) {
	if value, ok := l.OptionalValue(); ok {
		return value, nil
	}
	if l.pos >= len(l.tokens) {
		return "", &MissingValueError{Flag: l.last}
	}
	value := l.tokens[l.pos]
	l.pos++
	return value, nil
}

// OptionalValue returns a value attached to the option just returned by Next.
// It never consumes a separate token.
func (l *Lexer) OptionalValue() (string, bool) {
	if l.hasPending {
		value := l.pending
		l.clearPending()
		return value, true
	}
	if l.inShorts() {
		value := strings.TrimPrefix(l.shorts[l.shortPos:], "=")
		l.clearShorts()
		return value, true
	}
	return "", false
}

// Remaining reports whether any input is left, including attached values and
// the rest of a short bundle.
func (l *Lexer) Remaining() bool {
	return l.hasPending || l.inShorts() || l.pos < len(l.tokens)
}

func (l *Lexer) inShorts() bool {
	return l.shorts != "" && l.shortPos < len(l.shorts)
}

func (l *Lexer) clearShorts() {
	l.shorts = ""
	l.shortPos = 0
}

func (l *Lexer) clearPending() {
	l.pending = ""
	l.hasPending = false
}
