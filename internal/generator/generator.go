package generator

import (
	"bytes"
	"fmt"
	"regexp"
	"strings"
	"unicode"

	"github.com/iancoleman/strcase"
	"github.com/mcncl/jsonsmith/internal/analyzer"
	"github.com/mcncl/jsonsmith/internal/errors"
	"github.com/mcncl/jsonsmith/internal/formatter"
	"github.com/mcncl/jsonsmith/internal/models"
	"github.com/mcncl/jsonsmith/internal/parser"
)

// DefaultRootName is the declaration name used when none is given.
const DefaultRootName = "Root"

var identifierRegex = regexp.MustCompile(`^[A-Za-z_$][A-Za-z0-9_$]*$`)

// Options control TypeScript output.
type Options struct {
	// Export prefixes the declaration with the export keyword.
	Export bool
	// Indent is the number of spaces per nesting level.
	Indent int
	// MaxDepth rejects documents nested deeper than this; 0 means unlimited.
	MaxDepth int
	// Parse controls how input text is parsed by TypeScript.
	Parse parser.Options
}

// Generator renders type descriptors as TypeScript declarations
type Generator struct {
	options Options
}

// NewGenerator creates a new Generator instance
func NewGenerator() *Generator {
	return &Generator{options: Options{Indent: 2}}
}

// NewGeneratorWithOptions creates a Generator with custom options.
func NewGeneratorWithOptions(opts Options) *Generator {
	if opts.Indent <= 0 {
		opts.Indent = 2
	}
	return &Generator{options: opts}
}

// TypeScript parses text, infers its type and renders it as a declaration
// named rootName. Object roots become interfaces; any other root becomes a
// type alias.
func (g *Generator) TypeScript(text, rootName string) (string, error) {
	v, err := parser.ParseWithOptions([]byte(text), g.options.Parse)
	if err != nil {
		return "", errors.NewFormatError("input is not valid JSON: cannot generate TypeScript interface", err)
	}
	desc, err := analyzer.NewAnalyzerWithMaxDepth(g.options.MaxDepth).Analyze(v)
	if err != nil {
		return "", errors.NewGenerateError("failed to infer types", err)
	}
	return g.Generate(desc, rootName)
}

// Generate renders desc as a TypeScript declaration named name.
func (g *Generator) Generate(desc models.TypeDescriptor, name string) (string, error) {
	var buf bytes.Buffer
	if g.options.Export {
		buf.WriteString("export ")
	}

	name = TypeName(name)
	if desc.Kind == models.TypeRecord {
		fmt.Fprintf(&buf, "interface %s ", name)
		if err := g.writeType(&buf, desc, 0); err != nil {
			return "", errors.NewGenerateError("failed to render declaration", err)
		}
		return buf.String(), nil
	}

	fmt.Fprintf(&buf, "type %s = ", name)
	if err := g.writeType(&buf, desc, 0); err != nil {
		return "", errors.NewGenerateError("failed to render declaration", err)
	}
	buf.WriteString(";")
	return buf.String(), nil
}

func (g *Generator) writeIndent(buf *bytes.Buffer, depth int) {
	buf.WriteString(strings.Repeat(" ", depth*g.options.Indent))
}

func (g *Generator) writeType(buf *bytes.Buffer, desc models.TypeDescriptor, depth int) error {
	switch desc.Kind {
	case models.TypeNull:
		buf.WriteString("null")
	case models.TypeBool:
		buf.WriteString("boolean")
	case models.TypeNumber:
		buf.WriteString("number")
	case models.TypeString:
		buf.WriteString("string")
	case models.TypeUnknown:
		buf.WriteString("any")
	case models.TypeArray:
		if desc.Elem == nil {
			return fmt.Errorf("array type without element type")
		}
		if err := g.writeType(buf, *desc.Elem, depth); err != nil {
			return err
		}
		buf.WriteString("[]")
	case models.TypeRecord:
		if len(desc.Fields) == 0 {
			buf.WriteString("{}")
			return nil
		}
		buf.WriteString("{\n")
		for _, f := range desc.Fields {
			g.writeIndent(buf, depth+1)
			buf.WriteString(propertyName(f.Name))
			buf.WriteString(": ")
			if err := g.writeType(buf, f.Type, depth+1); err != nil {
				return fmt.Errorf("field '%s': %w", f.Name, err)
			}
			buf.WriteString(";\n")
		}
		g.writeIndent(buf, depth)
		buf.WriteString("}")
	default:
		return fmt.Errorf("unexpected type kind: %d", desc.Kind)
	}
	return nil
}

// propertyName quotes keys that are not valid identifiers.
func propertyName(key string) string {
	if identifierRegex.MatchString(key) {
		return key
	}
	return formatter.Quote(key)
}

// TypeName returns name unchanged when it is already a valid identifier.
// Other names are converted to PascalCase and characters that cannot appear
// in an identifier are dropped.
func TypeName(name string) string {
	name = strings.TrimSpace(name)
	if identifierRegex.MatchString(name) {
		return name
	}
	name = strcase.ToCamel(name)
	if name == "" {
		return DefaultRootName
	}
	if first := []rune(name)[0]; unicode.IsDigit(first) {
		name = "T" + name
	}
	return name
}

// TypeScript renders strict JSON text as a TypeScript declaration.
func TypeScript(text, rootName string) (string, error) {
	return NewGenerator().TypeScript(text, rootName)
}
