package version

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCanonical(t *testing.T) {
	tests := map[string]string{
		"0.5.0":                              "0.5.0",
		"v0.5.0":                             "0.5.0",
		"v1.2.3-rc.1":                        "1.2.3-rc.1",
		"(devel)":                            "dev",
		"":                                   "dev",
		"v0.0.0-20251105223424-05107dc292f1": "dev",
		"not-a-version":                      "dev",
	}
	for in, want := range tests {
		assert.Equal(t, want, canonical(in), "canonical(%q)", in)
	}
}

func TestStringUsesInjectedVersion(t *testing.T) {
	old := Version
	t.Cleanup(func() { Version = old })

	Version = "0.5.0"
	assert.Equal(t, "0.5.0", String())
}
