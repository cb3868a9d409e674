package argv

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestDecodeRejectsInvalidUTF8(t *testing.T) {
	tests := []struct {
		name  string
		raw   []string
		index int
	}{
		{"after separator", []string{"cargo", "llvm-cov", "--", "fo\x80o"}, 4},
		{"host name", []string{"\xff", "llvm-cov"}, 1},
		{"flag value", []string{"cargo", "llvm-cov", "--output-path", "\xc3\x28"}, 4},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Decode(tt.raw)
			var encErr *EncodingError
			if !errors.As(err, &encErr) {
				t.Fatalf("expected *EncodingError, got %v", err)
			}
			if diff := cmp.Diff(tt.index, encErr.Index); diff != "" {
				t.Errorf("index mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestStripEnvelope(t *testing.T) {
	tests := []struct {
		name string
		raw  []string
		want Invocation
	}{
		{
			name: "no separator",
			raw:  []string{"cargo", "llvm-cov", "--json", "run"},
			want: Invocation{Tokens: []string{"--json", "run"}, Trailing: []string{}},
		},
		{
			name: "separator splits once",
			raw:  []string{"cargo", "llvm-cov", "run", "--release", "--", "--", "foo"},
			want: Invocation{Tokens: []string{"run", "--release"}, Trailing: []string{"--", "foo"}},
		},
		{
			name: "flag-shaped trailing tokens are kept",
			raw:  []string{"cargo", "llvm-cov", "--", "--json", "-v", "test"},
			want: Invocation{Tokens: []string{}, Trailing: []string{"--json", "-v", "test"}},
		},
		{
			name: "envelope only",
			raw:  []string{"cargo", "llvm-cov"},
			want: Invocation{Tokens: []string{}, Trailing: []string{}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Read(tt.raw, "llvm-cov")
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("invocation mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestStripMissingSubcommand(t *testing.T) {
	for _, raw := range [][]string{nil, {}, {"cargo"}} {
		_, err := Read(raw, "llvm-cov")
		if !errors.Is(err, ErrMissingSubcommand) {
			t.Errorf("Read(%q): expected ErrMissingSubcommand, got %v", raw, err)
		}
		if err != nil && err.Error() != "expected subcommand 'llvm-cov'" {
			t.Errorf("Read(%q): unexpected message %q", raw, err.Error())
		}
	}
}

func TestStripUnexpectedSubcommand(t *testing.T) {
	_, err := Read([]string{"cargo", "notllvm-cov"}, "llvm-cov")
	var subErr *UnexpectedSubcommandError
	if !errors.As(err, &subErr) {
		t.Fatalf("expected *UnexpectedSubcommandError, got %v", err)
	}
	if diff := cmp.Diff("notllvm-cov", subErr.Found); diff != "" {
		t.Errorf("found mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff("expected subcommand 'llvm-cov', found argument 'notllvm-cov'", err.Error()); diff != "" {
		t.Errorf("message mismatch (-want +got):\n%s", diff)
	}
	if subErr.Hint() != "" {
		t.Errorf("expected no hint, got %q", subErr.Hint())
	}
}

func TestStripSuggestsLiteral(t *testing.T) {
	tests := []struct {
		found string
		hint  string
	}{
		{"llvm-cvo", "did you mean 'llvm-cov'?"},
		{"llvmcov", "did you mean 'llvm-cov'?"},
		{"LLVM-COV", "did you mean 'llvm-cov'?"},
		{"llvm-co", "did you mean 'llvm-cov'?"},
		{"llvm", ""},
		{"notllvm-cov", ""},
		{"-v", ""},
		{"c", ""},
	}

	for _, tt := range tests {
		t.Run(tt.found, func(t *testing.T) {
			_, err := Read([]string{"cargo", tt.found}, "llvm-cov")
			var subErr *UnexpectedSubcommandError
			if !errors.As(err, &subErr) {
				t.Fatalf("expected *UnexpectedSubcommandError, got %v", err)
			}
			if diff := cmp.Diff(tt.hint, subErr.Hint()); diff != "" {
				t.Errorf("hint mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestStripDoesNotAliasInput(t *testing.T) {
	raw := []string{"cargo", "llvm-cov", "a", "--", "b"}
	inv, err := Read(raw, "llvm-cov")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	inv.Tokens[0] = "changed"
	inv.Trailing[0] = "changed"
	if raw[2] != "a" || raw[4] != "b" {
		t.Errorf("input mutated: %q", raw)
	}
}
