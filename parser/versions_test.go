package parser

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseVersion(t *testing.T) {
	tests := []struct {
		input string
		want  AsyncAPIVersion
		ok    bool
	}{
		{input: "2.0.0", want: AsyncAPIVersion200, ok: true},
		{input: "2.4.0", want: AsyncAPIVersion240, ok: true},
		{input: "2.6.0", want: AsyncAPIVersion260, ok: true},
		// Future patches within a known minor series
		{input: "2.6.3", want: AsyncAPIVersion260, ok: true},
		{input: "2.0.17", want: AsyncAPIVersion200, ok: true},
		// Pre-release and build suffixes
		{input: "2.6.0-rc1", want: AsyncAPIVersion260, ok: true},
		{input: "2.5.0+build.7", want: AsyncAPIVersion250, ok: true},
		// Out of range
		{input: "2.7.0", want: Unknown, ok: false},
		{input: "3.0.0", want: Unknown, ok: false},
		{input: "1.2.0", want: Unknown, ok: false},
		{input: "not-a-version", want: Unknown, ok: false},
		{input: "", want: Unknown, ok: false},
	}
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, ok := ParseVersion(tt.input)
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestAsyncAPIVersionString(t *testing.T) {
	assert.Equal(t, "2.6.0", AsyncAPIVersion260.String())
	assert.Equal(t, "unknown", Unknown.String())
	assert.True(t, AsyncAPIVersion200.IsValid())
	assert.False(t, Unknown.IsValid())
}

func TestFormatBytes(t *testing.T) {
	assert.Equal(t, "512 B", FormatBytes(512))
	assert.Equal(t, "1.0 KiB", FormatBytes(1024))
	assert.Equal(t, "1.5 MiB", FormatBytes(1572864))
	assert.Equal(t, "-1 B", FormatBytes(-1))
}
