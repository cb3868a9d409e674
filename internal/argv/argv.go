// Package argv validates the raw process argument vector and strips the
// `cargo llvm-cov` invocation envelope from it.
//
// The envelope is the fixed `<host> <literal>` pair cargo passes to an
// external subcommand. Everything after it is split at the first bare `--`:
// tokens before the marker are handed to the classifier, tokens after it are
// kept verbatim for the wrapped test binary.
package argv

import (
	"slices"
	"strings"
	"unicode/utf8"

	"github.com/lithammer/fuzzysearch/fuzzy"
)

// Separator ends the parseable segment of the argument vector.
const Separator = "--"

// maxSuggestDistance is the largest edit distance still reported as a typo.
const maxSuggestDistance = 2

// Invocation is the argument vector with its envelope removed.
type Invocation struct {
	Tokens   []string // before the first "--", in order
	Trailing []string // after the first "--", never reinterpreted
}

// Decode checks that every token is valid UTF-8 text. cargo and rustc reject
// non-Unicode arguments, so there is nothing useful to forward either.
func Decode(raw []string) ([]string, error) {
	for i, arg := range raw {
		if !utf8.ValidString(arg) {
			return nil, &EncodingError{Index: i + 1, Arg: arg}
		}
	}
	return raw, nil
}

// Strip removes the host program name and the expected subcommand literal,
// then splits the remaining tokens at the first Separator.
func Strip(tokens []string, literal string) (Invocation, error) {
	if len(tokens) < 2 {
		return Invocation{}, &MissingSubcommandError{Expected: literal}
	}
	if found := tokens[1]; found != literal {
		return Invocation{}, &UnexpectedSubcommandError{
			Expected:   literal,
			Found:      found,
			Suggestion: suggest(found, literal),
		}
	}

	rest := tokens[2:]
	i := slices.Index(rest, Separator)
	if i < 0 {
		return Invocation{Tokens: slices.Clone(rest), Trailing: []string{}}, nil
	}
	return Invocation{
		Tokens:   slices.Clone(rest[:i]),
		Trailing: slices.Clone(rest[i+1:]),
	}, nil
}

// Read decodes the raw vector and strips its envelope.
func Read(raw []string, literal string) (Invocation, error) {
	tokens, err := Decode(raw)
	if err != nil {
		return Invocation{}, err
	}
	return Strip(tokens, literal)
}

// suggest returns literal when found looks like a mistyped spelling of it.
func suggest(found, literal string) string {
	if found == "" {
		return ""
	}
	if fuzzy.LevenshteinDistance(strings.ToLower(found), strings.ToLower(literal)) <= maxSuggestDistance {
		return literal
	}
	return ""
}
