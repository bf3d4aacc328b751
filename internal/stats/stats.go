package stats

import (
	"fmt"
	"strings"

	"github.com/mcncl/jsonsmith/internal/models"
)

var sizeUnits = []string{"B", "KB", "MB", "GB"}

// Size returns the UTF-8 byte size of text in a human-readable form with two
// decimals, using 1024 as the step between units.
func Size(text string) string {
	size := float64(len(text))
	unit := 0
	for size >= 1024 && unit < len(sizeUnits)-1 {
		size /= 1024
		unit++
	}
	return fmt.Sprintf("%.2f %s", size, sizeUnits[unit])
}

// Lines returns the number of newline-separated lines in text. Empty text
// counts as one line.
func Lines(text string) int {
	return strings.Count(text, "\n") + 1
}

// Summary describes the shape of a parsed document.
type Summary struct {
	// Depth is the number of nested container levels; a scalar has depth 0.
	Depth   int `json:"depth" yaml:"depth"`
	Objects int `json:"objects" yaml:"objects"`
	Arrays  int `json:"arrays" yaml:"arrays"`
	Keys    int `json:"keys" yaml:"keys"`
	Strings int `json:"strings" yaml:"strings"`
	Numbers int `json:"numbers" yaml:"numbers"`
	Bools   int `json:"bools" yaml:"bools"`
	Nulls   int `json:"nulls" yaml:"nulls"`
}

// Summarize counts the nodes of v by kind.
func Summarize(v models.Value) Summary {
	var s Summary
	s.Depth = s.walk(v)
	return s
}

// walk counts v and its descendants and returns the depth of v.
func (s *Summary) walk(v models.Value) int {
	switch v := v.(type) {
	case models.Object:
		s.Objects++
		s.Keys += len(v)
		deepest := 0
		for _, m := range v {
			deepest = max(deepest, s.walk(m.Value))
		}
		return deepest + 1
	case models.Array:
		s.Arrays++
		deepest := 0
		for _, elem := range v {
			deepest = max(deepest, s.walk(elem))
		}
		return deepest + 1
	case models.String:
		s.Strings++
	case models.Number:
		s.Numbers++
	case models.Bool:
		s.Bools++
	default:
		s.Nulls++
	}
	return 0
}
