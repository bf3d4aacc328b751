package formatter

import (
	"github.com/mcncl/jsonsmith/internal/errors"
	"github.com/mcncl/jsonsmith/internal/parser"
)

// Formatter re-serializes JSON documents
type Formatter struct {
	options parser.Options
}

// NewFormatter creates a new Formatter instance
func NewFormatter() *Formatter {
	return &Formatter{}
}

// NewFormatterWithOptions creates a Formatter that parses input with opts.
func NewFormatterWithOptions(opts parser.Options) *Formatter {
	return &Formatter{options: opts}
}

// Format parses text and re-serializes it with indent spaces per level.
// Object key order is preserved.
func (f *Formatter) Format(text string, indent int) (string, error) {
	v, err := parser.ParseWithOptions([]byte(text), f.options)
	if err != nil {
		return "", errors.NewFormatError("input is not valid JSON: cannot format", err)
	}
	return Encode(v, indent), nil
}

// Minify parses text and re-serializes it without insignificant whitespace.
func (f *Formatter) Minify(text string) (string, error) {
	v, err := parser.ParseWithOptions([]byte(text), f.options)
	if err != nil {
		return "", errors.NewFormatError("input is not valid JSON: cannot minify", err)
	}
	return Encode(v, 0), nil
}

// Format formats strict JSON text with the given indent width.
func Format(text string, indent int) (string, error) {
	return NewFormatter().Format(text, indent)
}

// Minify minifies strict JSON text.
func Minify(text string) (string, error) {
	return NewFormatter().Minify(text)
}
