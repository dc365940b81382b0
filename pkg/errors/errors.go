// Package errors defines the typed errors returned at vitrine's edges:
// configuration loading and name lookups in the CLI.
package errors

import (
	stderrors "errors"
	"fmt"
	"strings"
)

// ParseError represents a YAML parsing failure with optional line metadata.
type ParseError struct {
	Path    string
	Line    int
	Message string
	Err     error
}

// NewParseError constructs a ParseError.
func NewParseError(path string, line int, err error) error {
	message := ""
	if err != nil {
		message = err.Error()
	}
	return &ParseError{Path: path, Line: line, Message: message, Err: err}
}

func (e *ParseError) Error() string {
	if e == nil {
		return ""
	}

	if e.Line > 0 {
		return fmt.Sprintf("parse error: %s:%d: %s", e.Path, e.Line, e.Message)
	}
	return fmt.Sprintf("parse error: %s: %s", e.Path, e.Message)
}

// Unwrap exposes the underlying error.
func (e *ParseError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

// ValidationError captures configuration validation issues.
type ValidationError struct {
	Field   string
	Message string
	Err     error
}

// NewValidationError constructs a ValidationError.
func NewValidationError(field, message string, err error) error {
	return &ValidationError{Field: field, Message: message, Err: err}
}

func (e *ValidationError) Error() string {
	if e == nil {
		return ""
	}
	if e.Field != "" {
		return fmt.Sprintf("validation error: %s: %s", e.Field, e.Message)
	}
	return fmt.Sprintf("validation error: %s", e.Message)
}

// Unwrap exposes the underlying error.
func (e *ValidationError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

// ErrNotFound is matched by every LookupError.
var ErrNotFound = stderrors.New("not found")

// LookupError reports a name that does not match any known page, component
// or theme.
type LookupError struct {
	Kind  string
	Name  string
	Known []string
}

// NewLookupError constructs a LookupError listing the accepted names.
func NewLookupError(kind, name string, known []string) error {
	return &LookupError{Kind: kind, Name: name, Known: known}
}

func (e *LookupError) Error() string {
	if e == nil {
		return ""
	}
	if len(e.Known) == 0 {
		return fmt.Sprintf("unknown %s %q", e.Kind, e.Name)
	}
	return fmt.Sprintf("unknown %s %q (known: %s)", e.Kind, e.Name, strings.Join(e.Known, ", "))
}

// Is reports whether target is ErrNotFound.
func (e *LookupError) Is(target error) bool {
	return target == ErrNotFound
}
