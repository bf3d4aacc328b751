package parser

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"regexp"
	"strconv"
	"strings"

	stderrors "errors" // Standard errors package

	"github.com/creachadair/mds/stack"
	"github.com/mcncl/jsonsmith/internal/errors" // Custom errors package
	"github.com/mcncl/jsonsmith/internal/models"
	"github.com/tailscale/hujson"
)

// Options control how source text is read.
type Options struct {
	// Lenient accepts HuJSON extensions: comments and trailing commas.
	Lenient bool
}

// ParseString parses JSON from a string
func ParseString(jsonString string) (models.Value, error) {
	return ParseWithOptions([]byte(jsonString), Options{})
}

// MustParseString is like ParseString but panics if the input does not parse.
func MustParseString(jsonString string) models.Value {
	v, err := ParseString(jsonString)
	if err != nil {
		panic(err)
	}
	return v
}

// ParseWithOptions parses a single JSON document. Object key order is
// preserved. Syntax errors are reported as *errors.SyntaxError values
// (wrapped in an AppError) carrying the line and column of the fault when
// the underlying decoder reports an offset.
func ParseWithOptions(data []byte, opts Options) (models.Value, error) {
	if len(bytes.TrimSpace(data)) == 0 {
		return nil, errors.NewInputError("input is empty or contains only whitespace", errors.ErrEmptyInput)
	}

	src := data
	if opts.Lenient {
		// Standardize replaces comments and trailing commas with spaces, so
		// offsets into std are offsets into data.
		std, err := hujson.Standardize(bytes.Clone(data))
		if err != nil {
			return nil, lenientSyntaxError(data, err)
		}
		src = std
	}

	if err := checkSyntax(src); err != nil {
		return nil, err
	}
	return build(src)
}

// checkSyntax runs the standard decoder over the whole of src, which rejects
// malformed documents and trailing data after the top-level value.
func checkSyntax(src []byte) error {
	var raw json.RawMessage
	err := json.Unmarshal(src, &raw)
	if err == nil {
		return nil
	}

	var syntaxError *json.SyntaxError
	if !stderrors.As(err, &syntaxError) {
		return errors.NewSyntaxError(err.Error(), 0, 0)
	}

	// Offset counts the bytes consumed including the one that failed, except
	// at end of input where nothing failed and Offset is len(src).
	msg := syntaxError.Error()
	var line, col int
	if syntaxError.Offset > 0 {
		at := int(syntaxError.Offset) - 1
		if strings.HasPrefix(msg, "unexpected end of JSON input") {
			at = int(syntaxError.Offset)
		}
		if pos, ok := Locate(string(src), at); ok {
			line, col = pos.Line, pos.Column
		}
	}
	return errors.NewSyntaxError(msg, line, col)
}

// hujsonPosition matches the line and byte column hujson puts in front of
// its error messages.
var hujsonPosition = regexp.MustCompile(`^line (\d+), column (\d+): `)

// lenientSyntaxError moves the position hujson reports in its message into
// the line and column of a SyntaxError.
func lenientSyntaxError(src []byte, err error) error {
	msg := strings.TrimPrefix(err.Error(), "hujson: ")
	m := hujsonPosition.FindStringSubmatch(msg)
	if m == nil {
		return errors.NewSyntaxError(msg, 0, 0)
	}
	msg = msg[len(m[0]):]

	line, _ := strconv.Atoi(m[1])
	col, _ := strconv.Atoi(m[2])
	start := lineStart(src, line)
	if start < 0 || col < 1 {
		return errors.NewSyntaxError(msg, 0, 0)
	}
	pos, ok := Locate(string(src), start+col-1)
	if !ok {
		return errors.NewSyntaxError(msg, 0, 0)
	}
	return errors.NewSyntaxError(msg, pos.Line, pos.Column)
}

// lineStart returns the byte offset at which the 1-based line begins, or -1
// if src has fewer lines.
func lineStart(src []byte, line int) int {
	if line < 1 {
		return -1
	}
	start := 0
	for ; line > 1; line-- {
		i := bytes.IndexByte(src[start:], '\n')
		if i < 0 {
			return -1
		}
		start += i + 1
	}
	return start
}

// A frame is an object or array whose closing delimiter has not been seen.
type frame struct {
	isObject bool
	array    models.Array
	object   models.Object
	index    map[string]int

	key    string
	hasKey bool
}

func (f *frame) add(v models.Value) {
	if !f.isObject {
		f.array = append(f.array, v)
		return
	}
	// A repeated key keeps its first position and takes the last value.
	if i, ok := f.index[f.key]; ok {
		f.object[i].Value = v
	} else {
		f.index[f.key] = len(f.object)
		f.object = append(f.object, models.Member{Key: f.key, Value: v})
	}
	f.key, f.hasKey = "", false
}

func (f *frame) value() models.Value {
	if f.isObject {
		if f.object == nil {
			return models.Object{}
		}
		return f.object
	}
	if f.array == nil {
		return models.Array{}
	}
	return f.array
}

// build constructs the ordered value tree for a syntactically valid document.
func build(src []byte) (models.Value, error) {
	dec := json.NewDecoder(bytes.NewReader(src))
	dec.UseNumber()

	open := stack.New[*frame]()
	var root models.Value
	for {
		tok, err := dec.Token()
		if err == io.EOF {
			break
		} else if err != nil {
			return nil, errors.NewSyntaxError(err.Error(), 0, 0)
		}

		var v models.Value
		switch t := tok.(type) {
		case json.Delim:
			switch t {
			case '{':
				open.Push(&frame{isObject: true, index: make(map[string]int)})
				continue
			case '[':
				open.Push(new(frame))
				continue
			default:
				f, _ := open.Pop()
				v = f.value()
			}
		case string:
			if top, ok := open.Peek(0); ok && top.isObject && !top.hasKey {
				top.key, top.hasKey = t, true
				continue
			}
			v = models.String(t)
		case json.Number:
			v = parseNumber(t)
		case bool:
			v = models.Bool(t)
		case nil:
			v = models.Null{}
		default:
			return nil, fmt.Errorf("unexpected json token type: %T", t)
		}

		if top, ok := open.Peek(0); ok {
			top.add(v)
		} else {
			root = v
		}
	}
	return root, nil
}

// parseNumber converts a number literal to a double. Literals outside the
// double range saturate to an infinity or zero.
func parseNumber(num json.Number) models.Number {
	f, _ := strconv.ParseFloat(string(num), 64)
	return models.Number(f)
}
