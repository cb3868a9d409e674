package cli

import (
	"fmt"
	"strings"

	"github.com/lithammer/fuzzysearch/fuzzy"
)

// Color is the --color setting, propagated to both cargo and llvm-cov.
type Color int

const (
	ColorAuto Color = iota
	ColorAlways
	ColorNever
)

var colorNames = []string{"auto", "always", "never"}

// maxHintDistance is the largest edit distance still reported as a typo.
const maxHintDistance = 2

func (c Color) String() string {
	if int(c) < len(colorNames) {
		return colorNames[c]
	}
	return fmt.Sprintf("Color(%d)", int(c))
}

// CargoColor is the spelling cargo expects for --color.
func (c Color) CargoColor() string {
	return c.String()
}

// ParseColor parses a --color value.
func ParseColor(s string) (Color, error) {
	for i, name := range colorNames {
		if s == name {
			return Color(i), nil
		}
	}
	return 0, &ColorError{Value: s}
}

// ColorError reports an unknown --color value.
type ColorError struct {
	Value string
}

func (e *ColorError) Error() string {
	return "possible values are auto, always, never"
}

// Hint suggests the closest valid spelling.
func (e *ColorError) Hint() string {
	best, bestDistance := "", maxHintDistance+1
	for _, name := range colorNames {
		if d := fuzzy.LevenshteinDistance(strings.ToLower(e.Value), name); d < bestDistance {
			best, bestDistance = name, d
		}
	}
	if best == "" {
		return ""
	}
	return fmt.Sprintf("did you mean '%s'?", best)
}
