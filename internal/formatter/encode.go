package formatter

import (
	"math"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/mcncl/jsonsmith/internal/models"
	"go4.org/mem"
)

const (
	// DefaultIndent is the indent width used when none is configured.
	DefaultIndent = 2
	// MaxIndent is the widest indent honoured; wider requests are clamped.
	MaxIndent = 10
)

var controlEsc = [...]byte{
	'\b': 'b',
	'\f': 'f',
	'\n': 'n',
	'\r': 'r',
	'\t': 't',
	' ':  ' ', // sentinel
}

var hexDigit = []byte("0123456789abcdef")

// Encode renders v as JSON text with indent spaces per nesting level.
// The indent is clamped to [0, MaxIndent]; zero produces output without
// insignificant whitespace.
func Encode(v models.Value, indent int) string {
	e := encoder{indent: strings.Repeat(" ", clampIndent(indent))}
	e.value(v, 0)
	return string(e.buf)
}

func clampIndent(n int) int {
	return min(max(n, 0), MaxIndent)
}

type encoder struct {
	buf    []byte
	indent string
}

func (e *encoder) newline(depth int) {
	if e.indent == "" {
		return
	}
	e.buf = append(e.buf, '\n')
	for range depth {
		e.buf = append(e.buf, e.indent...)
	}
}

func (e *encoder) value(v models.Value, depth int) {
	switch t := v.(type) {
	case nil, models.Null:
		e.buf = append(e.buf, "null"...)
	case models.Bool:
		e.buf = strconv.AppendBool(e.buf, bool(t))
	case models.Number:
		e.buf = appendNumber(e.buf, float64(t))
	case models.String:
		e.buf = appendQuoted(e.buf, string(t))
	case models.Array:
		if len(t) == 0 {
			e.buf = append(e.buf, "[]"...)
			return
		}
		e.buf = append(e.buf, '[')
		for i, elt := range t {
			if i > 0 {
				e.buf = append(e.buf, ',')
			}
			e.newline(depth + 1)
			e.value(elt, depth+1)
		}
		e.newline(depth)
		e.buf = append(e.buf, ']')
	case models.Object:
		if len(t) == 0 {
			e.buf = append(e.buf, "{}"...)
			return
		}
		e.buf = append(e.buf, '{')
		for i, m := range t {
			if i > 0 {
				e.buf = append(e.buf, ',')
			}
			e.newline(depth + 1)
			e.buf = appendQuoted(e.buf, m.Key)
			e.buf = append(e.buf, ':')
			if e.indent != "" {
				e.buf = append(e.buf, ' ')
			}
			e.value(m.Value, depth+1)
		}
		e.newline(depth)
		e.buf = append(e.buf, '}')
	}
}

// appendNumber formats f the way ECMAScript converts numbers to strings:
// shortest round-trip digits, exponent form outside [1e-6, 1e21). Values
// that JSON cannot represent become null, and negative zero becomes 0.
func appendNumber(dst []byte, f float64) []byte {
	if math.IsInf(f, 0) || math.IsNaN(f) {
		return append(dst, "null"...)
	}
	if f == 0 {
		return append(dst, '0')
	}

	abs := math.Abs(f)
	fmt := byte('f')
	if abs < 1e-6 || abs >= 1e21 {
		fmt = 'e'
	}
	dst = strconv.AppendFloat(dst, f, fmt, -1, 64)
	if fmt == 'e' {
		// Clean up e-09 to e-9.
		n := len(dst)
		if n >= 4 && dst[n-4] == 'e' && dst[n-3] == '-' && dst[n-2] == '0' {
			dst[n-2] = dst[n-1]
			dst = dst[:n-1]
		}
	}
	return dst
}

// appendQuoted appends s as a quoted JSON string. Only the quote, the
// backslash and control characters are escaped.
func appendQuoted(dst []byte, s string) []byte {
	dst = append(dst, '"')
	src := mem.S(s)
	for src.Len() > 0 {
		r, n := mem.DecodeRune(src)
		switch {
		case r == '"' || r == '\\':
			dst = append(dst, '\\', byte(r))
		case r < ' ':
			if b := controlEsc[r]; b != 0 {
				dst = append(dst, '\\', b)
			} else {
				dst = append(dst, '\\', 'u', '0', '0', hexDigit[int(r>>4)], hexDigit[int(r&15)])
			}
		case r == utf8.RuneError && n == 1:
			dst = utf8.AppendRune(dst, utf8.RuneError)
		default:
			dst = mem.Append(dst, src.SliceTo(n))
		}
		src = src.SliceFrom(n)
	}
	return append(dst, '"')
}

// Quote renders s as a JSON string literal, which is also a valid
// JavaScript and TypeScript string literal.
func Quote(s string) string {
	return string(appendQuoted(nil, s))
}

// Escape escapes backslashes, double quotes, newlines, carriage returns and
// tabs in text so it can be embedded in a string literal.
func Escape(text string) string {
	src := mem.S(text)
	buf := make([]byte, 0, src.Len())
	for i := 0; i < src.Len(); i++ {
		switch c := src.At(i); c {
		case '\\', '"':
			buf = append(buf, '\\', c)
		case '\n':
			buf = append(buf, '\\', 'n')
		case '\r':
			buf = append(buf, '\\', 'r')
		case '\t':
			buf = append(buf, '\\', 't')
		default:
			buf = append(buf, c)
		}
	}
	return string(buf)
}
