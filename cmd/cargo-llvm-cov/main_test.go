package main

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/ldm0/cargo-llvm-cov/internal/version"
)

func runArgs(t *testing.T, argv ...string) (int, string, string) {
	t.Helper()
	var stdout, stderr bytes.Buffer
	code := run(argv, &stdout, &stderr)
	return code, stdout.String(), stderr.String()
}

func TestRunSuccess(t *testing.T) {
	code, stdout, stderr := runArgs(t, "cargo", "llvm-cov", "--lcov", "--output-path", "lcov.info")
	assert.Equal(t, exitSuccess, code)
	assert.Empty(t, stdout)
	assert.Empty(t, stderr)
}

func TestRunHelp(t *testing.T) {
	code, stdout, stderr := runArgs(t, "cargo", "llvm-cov", "--help")
	assert.Equal(t, exitSuccess, code)
	assert.Contains(t, stdout, "(-C instrument-coverage)")
	assert.Contains(t, stdout, "USAGE:\n    cargo llvm-cov [OPTIONS] [SUBCOMMAND] [-- <args>...]\n")
	assert.Contains(t, stdout, "--output-path PATH")
	assert.Empty(t, stderr)

	code, stdout, _ = runArgs(t, "cargo", "llvm-cov", "-h")
	assert.Equal(t, exitSuccess, code)
	assert.True(t, strings.HasPrefix(stdout, "Cargo subcommand to easily use LLVM source-based code coverage\n\nUSAGE:"), stdout)
}

func TestRunVersion(t *testing.T) {
	code, stdout, _ := runArgs(t, "cargo", "llvm-cov", "--version")
	assert.Equal(t, exitSuccess, code)
	assert.Equal(t, "cargo-llvm-cov "+version.String()+"\n", stdout)
}

func TestRunParseError(t *testing.T) {
	code, stdout, stderr := runArgs(t, "cargo", "llvm-cov", "--release", "--release")
	assert.Equal(t, exitFailure, code)
	assert.Empty(t, stdout)
	assert.Equal(t,
		"error: The argument '--release' was provided more than once, but cannot be used multiple times\n",
		stderr)
}

func TestRunPrintsHint(t *testing.T) {
	code, _, stderr := runArgs(t, "cargo", "llvm-cvo")
	assert.Equal(t, exitFailure, code)
	assert.Contains(t, stderr, "error: expected subcommand 'llvm-cov', found argument 'llvm-cvo'\n")
	assert.Contains(t, stderr, "hint: did you mean 'llvm-cov'?\n")
}

func TestRunMissingSubcommand(t *testing.T) {
	code, _, stderr := runArgs(t, "cargo")
	assert.Equal(t, exitFailure, code)
	assert.Contains(t, stderr, "expected subcommand 'llvm-cov'")
}

func TestRunVerboseSummary(t *testing.T) {
	code, _, stderr := runArgs(t, "cargo", "llvm-cov", "run", "-vv", "--release", "--locked")
	assert.Equal(t, exitSuccess, code)
	assert.Equal(t, "running cargo llvm-cov run [--release --locked -v]\n", stderr)
}

func TestRunDebugTrace(t *testing.T) {
	t.Setenv(debugEnv, "1")
	code, _, stderr := runArgs(t, "cargo", "llvm-cov", "--locked")
	assert.Equal(t, exitSuccess, code)
	assert.Contains(t, stderr, "msg=forward token=--locked\n")
	assert.NotContains(t, stderr, "level=")
}
