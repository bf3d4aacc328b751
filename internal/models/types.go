package models

import "fmt"

// TypeKind identifies the variant of a TypeDescriptor.
type TypeKind int

const (
	TypeNull TypeKind = iota
	TypeBool
	TypeNumber
	TypeString
	// TypeUnknown marks an element type that could not be inferred,
	// which happens for empty arrays.
	TypeUnknown
	TypeArray
	TypeRecord
)

// TypeDescriptor is the structural type inferred from a JSON value.
type TypeDescriptor struct {
	Kind TypeKind

	// Elem is the element type of a TypeArray.
	Elem *TypeDescriptor

	// Fields are the members of a TypeRecord, in source key order.
	Fields []Field
}

// Field is a named member of a record type.
type Field struct {
	Name string
	Type TypeDescriptor
}

// ArrayOf returns an array descriptor with the given element type.
func ArrayOf(elem TypeDescriptor) TypeDescriptor {
	return TypeDescriptor{Kind: TypeArray, Elem: &elem}
}

// RecordOf returns a record descriptor with the given fields.
func RecordOf(fields ...Field) TypeDescriptor {
	return TypeDescriptor{Kind: TypeRecord, Fields: fields}
}

// DiagnosticKind separates empty input from parser-reported failures.
type DiagnosticKind string

const (
	DiagnosticEmptyInput DiagnosticKind = "empty_input"
	DiagnosticSyntax     DiagnosticKind = "syntax"
)

// Diagnostic describes why a document failed to validate. Line and Column
// are 1-based; both are zero when the position is unknown.
type Diagnostic struct {
	Kind    DiagnosticKind
	Message string
	Line    int
	Column  int
}

// HasPosition reports whether the diagnostic carries a source position.
func (d Diagnostic) HasPosition() bool { return d.Line > 0 && d.Column > 0 }

// Position renders the source position for display.
func (d Diagnostic) Position() string {
	if !d.HasPosition() {
		return "position unknown"
	}
	return fmt.Sprintf("line %d, column %d", d.Line, d.Column)
}

// ParseOutcome is the result of validating a document: either Value and
// Formatted are set, or Diagnostic is.
type ParseOutcome struct {
	Value      Value
	Formatted  string
	Diagnostic *Diagnostic
}

// OK reports whether the document parsed.
func (p ParseOutcome) OK() bool { return p.Diagnostic == nil }
