package rules

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// flags is a Presence backed by a set of canonical spellings.
type flags map[string]bool

func (f flags) Has(flag string) bool { return f[flag] }

func TestRequiresMessageGrammar(t *testing.T) {
	tests := []struct {
		name  string
		oneOf []string
		want  string
	}{
		{"one", []string{"--workspace"}, "--exclude can only be used together with --workspace"},
		{"two", []string{"--workspace", "--all"}, "--exclude can only be used together with either --workspace or --all"},
		{"three", []string{"--a", "--b", "--c"}, "--exclude can only be used together with --a, --b, or --c"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := Check(flags{"--exclude": true}.Has, Requires("--exclude", tt.oneOf...))
			require.Error(t, err)
			if diff := cmp.Diff(tt.want, err.Error()); diff != "" {
				t.Errorf("message mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestRequiresSatisfied(t *testing.T) {
	rule := Requires("--exclude", "--workspace")

	assert.NoError(t, Check(flags{}.Has, rule), "dependent flag absent")
	assert.NoError(t, Check(flags{"--exclude": true, "--workspace": true}.Has, rule))
	assert.NoError(t, Check(flags{"--workspace": true}.Has, rule))
}

func TestRequiresErrorFields(t *testing.T) {
	err := Check(flags{"--coverage-target-only": true}.Has, Requires("--coverage-target-only", "--target"))

	var reqErr *RequiresFlagError
	require.ErrorAs(t, err, &reqErr)
	if diff := cmp.Diff(RequiresFlagError{Flag: "--coverage-target-only", Requires: []string{"--target"}}, *reqErr); diff != "" {
		t.Errorf("error mismatch (-want +got):\n%s", diff)
	}
}

func TestConflicts(t *testing.T) {
	rule := Conflicts("--json", "--lcov")

	assert.NoError(t, Check(flags{"--json": true}.Has, rule))

	err := Check(flags{"--json": true, "--lcov": true}.Has, rule)
	var conflict *ConflictError
	require.ErrorAs(t, err, &conflict)
	assert.Equal(t, "--json may not be used together with --lcov", err.Error())
}

func TestConflictsPairwise(t *testing.T) {
	rs := ConflictsPairwise("--json", "--lcov", "--text", "--html")
	assert.Len(t, rs, 6)

	err := Check(flags{"--text": true, "--html": true}.Has, rs...)
	assert.EqualError(t, err, "--text may not be used together with --html")
}

func TestCheckReportsFirstViolation(t *testing.T) {
	present := flags{"--exclude": true, "--json": true, "--lcov": true}.Has
	err := Check(present,
		Requires("--exclude", "--workspace"),
		Conflicts("--json", "--lcov"),
	)
	assert.EqualError(t, err, "--exclude can only be used together with --workspace")
}

func TestRequiresEmptyListPanics(t *testing.T) {
	assert.Panics(t, func() { Requires("--exclude") })
}
