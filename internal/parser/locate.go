package parser

import (
	"strings"
	"unicode/utf8"
)

// Position is a 1-based line and column in source text. Columns count
// characters, not bytes.
type Position struct {
	Line   int
	Column int
}

// Locate converts a zero-based byte offset into src to a line and column.
// The line is one more than the number of newlines before offset, and the
// column is one more than the number of characters since the last newline.
// It reports false if offset is not positive or is past the end of src; a
// fault at offset 0 has no position worth reporting.
func Locate(src string, offset int) (Position, bool) {
	if offset <= 0 || offset > len(src) {
		return Position{}, false
	}
	prefix := src[:offset]
	start := strings.LastIndexByte(prefix, '\n') + 1
	return Position{
		Line:   strings.Count(prefix, "\n") + 1,
		Column: utf8.RuneCountInString(prefix[start:]) + 1,
	}, true
}
