package errors

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrTokenNotFound is matched by every TokenNotFoundError.
	ErrTokenNotFound = errors.New("token not found")
	// ErrMissingColorMode is matched by every MissingColorModeError.
	ErrMissingColorMode = errors.New("missing color mode")
	// ErrTokenCycle reports alias tokens that reference each other.
	ErrTokenCycle = errors.New("token alias cycle")
	// ErrUnknownComponent is returned when no style config is registered under a name.
	ErrUnknownComponent = errors.New("unknown component")
)

// ParseError represents a theme document parsing failure with optional line metadata.
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

// ValidationError captures theme document validation issues.
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

// TokenNotFoundError is raised by direct token path lookups. Callers are
// expected to fall back to the raw literal.
type TokenNotFoundError struct {
	Path    []string
	Segment string
}

// NewTokenNotFoundError constructs a TokenNotFoundError for the first missing segment.
func NewTokenNotFoundError(path []string, segment string) error {
	return &TokenNotFoundError{Path: append([]string(nil), path...), Segment: segment}
}

func (e *TokenNotFoundError) Error() string {
	if e == nil {
		return ""
	}
	if e.Segment != "" {
		return fmt.Sprintf("token not found: %s (missing %q)", strings.Join(e.Path, "."), e.Segment)
	}
	return fmt.Sprintf("token not found: %s", strings.Join(e.Path, "."))
}

// Is matches ErrTokenNotFound.
func (e *TokenNotFoundError) Is(target error) bool {
	return target == ErrTokenNotFound
}

// MissingColorModeError is raised when a mode-dependent value is evaluated
// without a resolvable color mode.
type MissingColorModeError struct {
	Got string
}

// NewMissingColorModeError constructs a MissingColorModeError.
func NewMissingColorModeError(got string) error {
	return &MissingColorModeError{Got: got}
}

func (e *MissingColorModeError) Error() string {
	if e == nil {
		return ""
	}
	if e.Got != "" {
		return fmt.Sprintf("missing color mode: %q is not light or dark", e.Got)
	}
	return "missing color mode: no mode supplied"
}

// Is matches ErrMissingColorMode.
func (e *MissingColorModeError) Is(target error) bool {
	return target == ErrMissingColorMode
}

// SourceError indicates a theme location could not be fetched.
type SourceError struct {
	Kind     string
	Location string
	Err      error
}

// NewSourceError constructs a SourceError for the given source kind.
func NewSourceError(kind, location string, err error) error {
	return &SourceError{Kind: kind, Location: location, Err: err}
}

func (e *SourceError) Error() string {
	if e == nil {
		return ""
	}
	if e.Kind != "" {
		return fmt.Sprintf("source error [%s] %s: %v", e.Kind, e.Location, e.Err)
	}
	return fmt.Sprintf("source error %s: %v", e.Location, e.Err)
}

// Unwrap exposes the underlying error.
func (e *SourceError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}
