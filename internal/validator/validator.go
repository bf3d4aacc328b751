package validator

import (
	"strings"

	"github.com/mcncl/jsonsmith/internal/errors"
	"github.com/mcncl/jsonsmith/internal/formatter"
	"github.com/mcncl/jsonsmith/internal/models"
	"github.com/mcncl/jsonsmith/internal/parser"
)

// EmptyInputMessage is the diagnostic message for blank documents.
const EmptyInputMessage = "empty input"

// Validator checks documents and reports either the canonical rendering or
// a positioned diagnostic.
type Validator struct {
	options parser.Options
}

// NewValidator creates a Validator for strict JSON.
func NewValidator() *Validator {
	return &Validator{}
}

// NewValidatorWithOptions creates a Validator with custom parse options.
func NewValidatorWithOptions(opts parser.Options) *Validator {
	return &Validator{options: opts}
}

// Validate parses text. Blank text yields an empty-input diagnostic without
// consulting the parser. A valid document yields its value and its
// rendering with two-space indentation.
func (v *Validator) Validate(text string) models.ParseOutcome {
	if strings.TrimSpace(text) == "" {
		return models.ParseOutcome{Diagnostic: &models.Diagnostic{
			Kind:    models.DiagnosticEmptyInput,
			Message: EmptyInputMessage,
		}}
	}

	value, err := parser.ParseWithOptions([]byte(text), v.options)
	if err != nil {
		return models.ParseOutcome{Diagnostic: diagnose(err)}
	}

	return models.ParseOutcome{
		Value:     value,
		Formatted: formatter.Encode(value, formatter.DefaultIndent),
	}
}

func diagnose(err error) *models.Diagnostic {
	d := &models.Diagnostic{Kind: models.DiagnosticSyntax, Message: err.Error()}
	if se, ok := errors.AsSyntaxError(err); ok {
		d.Message = se.Message
		d.Line, d.Column = se.Line, se.Column
	}
	return d
}

// Validate checks strict JSON text.
func Validate(text string) models.ParseOutcome {
	return NewValidator().Validate(text)
}
