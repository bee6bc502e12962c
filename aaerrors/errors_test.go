package aaerrors

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseError(t *testing.T) {
	cause := errors.New("unexpected end of stream")
	err := &ParseError{
		Path:    "channels",
		Line:    12,
		Column:  3,
		Message: "malformed document",
		Cause:   cause,
	}

	assert.Contains(t, err.Error(), "parse error in channels")
	assert.Contains(t, err.Error(), "line 12, column 3")
	assert.Contains(t, err.Error(), "malformed document")
	assert.True(t, errors.Is(err, ErrParse))
	assert.False(t, errors.Is(err, ErrSchemaMismatch))
	assert.ErrorIs(t, err, cause)
}

func TestParseError_Minimal(t *testing.T) {
	err := &ParseError{}
	assert.Equal(t, "parse error", err.Error())
	assert.Nil(t, err.Unwrap())
}

func TestSchemaMismatchError(t *testing.T) {
	err := &SchemaMismatchError{
		Path:     "components.schemas.User",
		Expected: "mapping",
		Actual:   "!!int scalar",
	}

	assert.Equal(t, "schema mismatch at components.schemas.User: expected mapping, got !!int scalar", err.Error())
	assert.True(t, errors.Is(err, ErrSchemaMismatch))
	assert.False(t, errors.Is(err, ErrParse))
}

func TestSchemaMismatchError_As(t *testing.T) {
	var err error = fmt.Errorf("decode failed: %w", &SchemaMismatchError{Path: "info", Expected: "mapping"})

	var mismatch *SchemaMismatchError
	require.True(t, errors.As(err, &mismatch))
	assert.Equal(t, "info", mismatch.Path)
}

func TestMissingFieldError(t *testing.T) {
	err := &MissingFieldError{Path: "info", Field: "title"}

	assert.Equal(t, `missing required field "title" at info`, err.Error())
	assert.True(t, errors.Is(err, ErrMissingField))
	assert.False(t, errors.Is(err, ErrSchemaMismatch))
}

func TestConfigError(t *testing.T) {
	err := &ConfigError{Option: "WithFilePath", Message: "path must not be empty"}

	assert.Contains(t, err.Error(), "WithFilePath")
	assert.Contains(t, err.Error(), "path must not be empty")
	assert.True(t, errors.Is(err, ErrConfig))
}

func TestSentinelsAreDistinct(t *testing.T) {
	sentinels := []error{ErrParse, ErrSchemaMismatch, ErrMissingField, ErrConfig}
	for i, a := range sentinels {
		for j, b := range sentinels {
			if i == j {
				continue
			}
			assert.NotErrorIs(t, a, b)
		}
	}
}
