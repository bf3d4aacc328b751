package errors

import (
	"errors"
	"fmt"
)

// Standard application errors
var (
	ErrEmptyInput      = errors.New("empty input")
	ErrInvalidJSON     = errors.New("input is not valid JSON")
	ErrFileNotFound    = errors.New("file not found")
	ErrInvalidFilePath = errors.New("invalid file path")
	ErrNotFound        = errors.New("entry not found")
	ErrLimitReached    = errors.New("maximum number of entries reached")
)

// ErrorType categorizes errors
type ErrorType string

const (
	ErrorTypeInput    ErrorType = "input"
	ErrorTypeSyntax   ErrorType = "syntax"
	ErrorTypeFormat   ErrorType = "format"
	ErrorTypeGenerate ErrorType = "generate"
	ErrorTypeStorage  ErrorType = "storage"
	ErrorTypeConfig   ErrorType = "config"
	ErrorTypeOutput   ErrorType = "output"
	ErrorTypeUnknown  ErrorType = "unknown"
)

// AppError is an application-specific error with context
type AppError struct {
	Type    ErrorType
	Message string
	Err     error
}

// Error implements error interface
func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Type, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Type, e.Message)
}

// Unwrap returns wrapped error
func (e *AppError) Unwrap() error {
	return e.Err
}

// Is implements errors.Is for comparison
func (e *AppError) Is(target error) bool {
	t, ok := target.(*AppError)
	if !ok {
		return false
	}
	return e.Type == t.Type
}

// SyntaxError is a parser failure with an optional source position.
// Line and Column are 1-based; zero means the position is unknown.
type SyntaxError struct {
	Message string
	Line    int
	Column  int
}

// Error implements error interface
func (e *SyntaxError) Error() string {
	return fmt.Sprintf("%s (%s)", e.Message, e.Position())
}

// HasPosition reports whether the error carries a source position.
func (e *SyntaxError) HasPosition() bool {
	return e.Line > 0 && e.Column > 0
}

// Position renders the source position, or "position unknown".
func (e *SyntaxError) Position() string {
	if !e.HasPosition() {
		return "position unknown"
	}
	return fmt.Sprintf("line %d, column %d", e.Line, e.Column)
}

// NewInputError creates a new error related to input processing
func NewInputError(message string, err error) *AppError {
	return &AppError{
		Type:    ErrorTypeInput,
		Message: message,
		Err:     err,
	}
}

// NewSyntaxError creates a new error for a document the parser rejected.
func NewSyntaxError(message string, line, column int) *AppError {
	return &AppError{
		Type:    ErrorTypeSyntax,
		Message: message,
		Err:     &SyntaxError{Message: message, Line: line, Column: column},
	}
}

// NewFormatError creates a new error for an operation that requires valid
// JSON input. The cause is kept in the chain next to ErrInvalidJSON.
func NewFormatError(message string, cause error) *AppError {
	err := ErrInvalidJSON
	if cause != nil {
		err = fmt.Errorf("%w: %w", ErrInvalidJSON, cause)
	}
	return &AppError{
		Type:    ErrorTypeFormat,
		Message: message,
		Err:     err,
	}
}

// NewGenerateError creates a new error related to type declaration output
func NewGenerateError(message string, err error) *AppError {
	return &AppError{
		Type:    ErrorTypeGenerate,
		Message: message,
		Err:     err,
	}
}

// NewStorageError creates a new error related to the persistent store
func NewStorageError(message string, err error) *AppError {
	return &AppError{
		Type:    ErrorTypeStorage,
		Message: message,
		Err:     err,
	}
}

// NewConfigError creates a new error related to configuration
func NewConfigError(message string, err error) *AppError {
	return &AppError{
		Type:    ErrorTypeConfig,
		Message: message,
		Err:     err,
	}
}

// NewOutputError creates a new error related to output processing
func NewOutputError(message string, err error) *AppError {
	return &AppError{
		Type:    ErrorTypeOutput,
		Message: message,
		Err:     err,
	}
}

// AsSyntaxError returns the SyntaxError in err's chain, if any.
func AsSyntaxError(err error) (*SyntaxError, bool) {
	var se *SyntaxError
	if errors.As(err, &se) {
		return se, true
	}
	return nil, false
}

// UserFriendlyError returns a user-friendly error message
func UserFriendlyError(err error) string {
	var appErr *AppError
	if errors.As(err, &appErr) {
		switch appErr.Type {
		case ErrorTypeSyntax:
			if se, ok := AsSyntaxError(appErr.Err); ok {
				return syntaxMessage(se)
			}
			return fmt.Sprintf("JSON syntax error: %s", appErr.Message)
		case ErrorTypeInput:
			if errors.Is(appErr.Err, ErrEmptyInput) {
				return "Input error: the input is empty. Please provide JSON data."
			}
			return fmt.Sprintf("Input error: %s", appErr.Message)
		case ErrorTypeFormat:
			if se, ok := AsSyntaxError(appErr.Err); ok {
				return fmt.Sprintf("Format error: %s\n%s", appErr.Message, syntaxMessage(se))
			}
			return fmt.Sprintf("Format error: %s", appErr.Message)
		case ErrorTypeGenerate:
			return fmt.Sprintf("Type generation error: %s", appErr.Message)
		case ErrorTypeStorage:
			return fmt.Sprintf("Storage error: %s", appErr.Message)
		case ErrorTypeConfig:
			return fmt.Sprintf("Configuration error: %s", appErr.Message)
		case ErrorTypeOutput:
			return fmt.Sprintf("Output error: %s", appErr.Message)
		default:
			return fmt.Sprintf("Error: %s", appErr.Message)
		}
	}

	if se, ok := AsSyntaxError(err); ok {
		return syntaxMessage(se)
	}

	// Handle standard errors
	if errors.Is(err, ErrEmptyInput) {
		return "Error: The input is empty. Please provide valid JSON data."
	}
	if errors.Is(err, ErrInvalidJSON) {
		return "Error: The input contains invalid JSON. Please check your JSON syntax."
	}
	if errors.Is(err, ErrFileNotFound) {
		return "Error: The specified file could not be found. Please check the file path."
	}
	if errors.Is(err, ErrInvalidFilePath) {
		return "Error: Invalid file path. Please provide a valid file path."
	}
	if errors.Is(err, ErrNotFound) {
		return "Error: No entry with that ID exists."
	}
	if errors.Is(err, ErrLimitReached) {
		return "Error: The maximum number of entries has been reached."
	}

	// Generic error message for unknown errors
	return fmt.Sprintf("Error: %v", err)
}

func syntaxMessage(se *SyntaxError) string {
	return fmt.Sprintf("JSON syntax error at %s: %s", se.Position(), se.Message)
}
