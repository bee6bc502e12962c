// Package aaerrors provides structured error types for asyncapitools.
//
// These error types enable programmatic error handling via errors.Is() and
// errors.As(), allowing callers to distinguish between different categories
// of errors.
//
// # Error Categories
//
//   - ParseError: malformed YAML/JSON source text below the structural layer
//   - SchemaMismatchError: a value in the document does not match any accepted
//     shape for its declared type
//   - MissingFieldError: a required field is absent from a document object
//   - ConfigError: invalid configuration or input options
//
// # Usage with errors.Is
//
//	result, err := parser.ParseWithOptions(parser.WithFilePath("asyncapi.yaml"))
//	if err != nil {
//	    var mismatch *aaerrors.SchemaMismatchError
//	    if errors.As(err, &mismatch) {
//	        fmt.Printf("bad value at %s: expected %s\n", mismatch.Path, mismatch.Expected)
//	    }
//	}
package aaerrors

import (
	"errors"
	"fmt"
	"strconv"
)

// Sentinel errors for use with errors.Is().
var (
	// ErrParse matches any ParseError
	ErrParse = errors.New("parse error")
	// ErrSchemaMismatch matches any SchemaMismatchError
	ErrSchemaMismatch = errors.New("schema mismatch")
	// ErrMissingField matches any MissingFieldError
	ErrMissingField = errors.New("missing required field")
	// ErrConfig matches any ConfigError
	ErrConfig = errors.New("configuration error")
)

// ParseError represents a failure to read the source text itself: malformed
// YAML or JSON that never produced a document tree. Structural problems in a
// well-formed document are reported as SchemaMismatchError instead.
type ParseError struct {
	// Path is the JSON path where parsing failed, if known
	Path string
	// Line is the 1-based line number of the failure (0 if unknown)
	Line int
	// Column is the 1-based column number of the failure (0 if unknown)
	Column int
	// Message describes the parse failure
	Message string
	// Cause is the underlying error, if any
	Cause error
}

// Error returns a human-readable error message.
func (e *ParseError) Error() string {
	msg := "parse error"
	if e.Path != "" {
		msg += " in " + e.Path
	}
	if e.Line > 0 {
		msg += fmt.Sprintf(" at line %d", e.Line)
		if e.Column > 0 {
			msg += fmt.Sprintf(", column %d", e.Column)
		}
	}
	if e.Message != "" {
		msg += ": " + e.Message
	}
	if e.Cause != nil {
		msg += ": " + e.Cause.Error()
	}
	return msg
}

// Unwrap returns the underlying cause for error chaining.
func (e *ParseError) Unwrap() error {
	return e.Cause
}

// Is reports whether target matches this error type.
func (e *ParseError) Is(target error) bool {
	return target == ErrParse
}

// SchemaMismatchError represents a document value that does not match any
// accepted shape for its declared type: wrong scalar kind, a non-mapping where
// an object is required, or an untagged union that matched no variant.
type SchemaMismatchError struct {
	// Path is the JSON path to the problematic value (e.g., "channels.user/signedup.publish")
	Path string
	// Expected describes the shape that was expected (e.g., "string", "mapping")
	Expected string
	// Actual describes the value that was found (e.g., "sequence", "!!int scalar")
	Actual string
	// Cause is the underlying error, if any
	Cause error
}

// Error returns a human-readable error message.
func (e *SchemaMismatchError) Error() string {
	msg := "schema mismatch"
	if e.Path != "" {
		msg += " at " + e.Path
	}
	if e.Expected != "" {
		msg += ": expected " + e.Expected
	}
	if e.Actual != "" {
		msg += ", got " + e.Actual
	}
	if e.Cause != nil {
		msg += ": " + e.Cause.Error()
	}
	return msg
}

// Unwrap returns the underlying cause for error chaining.
func (e *SchemaMismatchError) Unwrap() error {
	return e.Cause
}

// Is reports whether target matches this error type.
func (e *SchemaMismatchError) Is(target error) bool {
	return target == ErrSchemaMismatch
}

// MissingFieldError represents a required field that is absent from a
// document object, such as a Reference without "$ref" or an Info without
// "title".
type MissingFieldError struct {
	// Path is the JSON path to the object missing the field
	Path string
	// Field is the name of the missing field as it appears on the wire
	Field string
}

// Error returns a human-readable error message.
func (e *MissingFieldError) Error() string {
	msg := "missing required field"
	if e.Field != "" {
		msg += " " + strconv.Quote(e.Field)
	}
	if e.Path != "" {
		msg += " at " + e.Path
	}
	return msg
}

// Is reports whether target matches this error type.
func (e *MissingFieldError) Is(target error) bool {
	return target == ErrMissingField
}

// ConfigError represents invalid configuration or input options.
type ConfigError struct {
	// Option is the name of the problematic option, if applicable
	Option string
	// Message describes what is wrong with the configuration
	Message string
	// Cause is the underlying error, if any
	Cause error
}

// Error returns a human-readable error message.
func (e *ConfigError) Error() string {
	msg := "configuration error"
	if e.Option != "" {
		msg += " for option " + e.Option
	}
	if e.Message != "" {
		msg += ": " + e.Message
	}
	if e.Cause != nil {
		msg += ": " + e.Cause.Error()
	}
	return msg
}

// Unwrap returns the underlying cause for error chaining.
func (e *ConfigError) Unwrap() error {
	return e.Cause
}

// Is reports whether target matches this error type.
func (e *ConfigError) Is(target error) bool {
	return target == ErrConfig
}
