package parser

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/erraggy/asyncapitools/aaerrors"
)

const minimalJSONDoc = `{
  "asyncapi": "2.0.0",
  "info": {"title": "t", "version": "1"},
  "channels": {"events": {}}
}`

func TestParseFile(t *testing.T) {
	specPath := filepath.Join(t.TempDir(), "asyncapi.yaml")
	require.NoError(t, os.WriteFile(specPath, []byte(minimalDoc), 0o644))

	p := New()
	result, err := p.Parse(specPath)
	require.NoError(t, err)

	assert.Equal(t, specPath, result.SourcePath)
	assert.Equal(t, SourceFormatYAML, result.SourceFormat)
	assert.Equal(t, "2.6.0", result.Version)
	assert.Equal(t, AsyncAPIVersion260, result.AsyncAPIVersion)
	assert.Equal(t, int64(len(minimalDoc)), result.SourceSize)
	assert.Equal(t, 1, result.Stats.ChannelCount)
	assert.Equal(t, 1, result.Stats.OperationCount)
}

func TestParseFileNotFound(t *testing.T) {
	_, err := New().Parse(filepath.Join(t.TempDir(), "nope.yaml"))
	require.Error(t, err)
	assert.ErrorContains(t, err, "failed to read file")
}

func TestParseBytesSetsSourcePath(t *testing.T) {
	p := New()

	result, err := p.ParseBytes([]byte(minimalDoc))
	require.NoError(t, err)
	assert.Equal(t, "ParseBytes.yaml", result.SourcePath)
	assert.Equal(t, SourceFormatYAML, result.SourceFormat)

	result, err = p.ParseBytes([]byte(minimalJSONDoc))
	require.NoError(t, err)
	assert.Equal(t, "ParseBytes.json", result.SourcePath)
	assert.Equal(t, SourceFormatJSON, result.SourceFormat)
}

func TestParseReaderSetsSourcePath(t *testing.T) {
	result, err := New().ParseReader(strings.NewReader(minimalDoc))
	require.NoError(t, err)
	assert.Equal(t, "ParseReader.yaml", result.SourcePath)
	assert.Equal(t, int64(len(minimalDoc)), result.SourceSize)
}

func TestParseMalformedInput(t *testing.T) {
	_, err := New().ParseBytes([]byte("asyncapi: [unclosed"))
	require.Error(t, err)
	assert.ErrorIs(t, err, aaerrors.ErrParse)
}

func TestParseUnsupportedVersion(t *testing.T) {
	src := "asyncapi: 3.0.0\ninfo:\n  title: t\n  version: '1'\nchannels: {}\n"
	_, err := New().ParseBytes([]byte(src))
	require.Error(t, err)
	assert.ErrorIs(t, err, aaerrors.ErrParse)
	assert.ErrorContains(t, err, "unsupported AsyncAPI version: 3.0.0")
}

func TestParseWithOptionsFilePath(t *testing.T) {
	specPath := filepath.Join(t.TempDir(), "spec.json")
	require.NoError(t, os.WriteFile(specPath, []byte(minimalJSONDoc), 0o644))

	result, err := ParseWithOptions(WithFilePath(specPath))
	require.NoError(t, err)
	assert.Equal(t, specPath, result.SourcePath)
	assert.Equal(t, SourceFormatJSON, result.SourceFormat)
	assert.Equal(t, AsyncAPIVersion200, result.AsyncAPIVersion)
}

func TestParseWithOptionsSourceName(t *testing.T) {
	result, err := ParseWithOptions(
		WithBytes([]byte(minimalDoc)),
		WithSourceName("registry://accounts/v1"),
	)
	require.NoError(t, err)
	assert.Equal(t, "registry://accounts/v1", result.SourcePath)
}

func TestParseWithOptionsValidation(t *testing.T) {
	tests := []struct {
		name string
		opts []Option
	}{
		{name: "no source", opts: nil},
		{
			name: "two sources",
			opts: []Option{
				WithBytes([]byte(minimalDoc)),
				WithReader(strings.NewReader(minimalDoc)),
			},
		},
		{name: "nil reader", opts: []Option{WithReader(nil)}},
		{name: "nil bytes", opts: []Option{WithBytes(nil)}},
		{
			name: "empty source name",
			opts: []Option{WithBytes([]byte(minimalDoc)), WithSourceName("")},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseWithOptions(tt.opts...)
			require.Error(t, err)
			assert.ErrorIs(t, err, aaerrors.ErrConfig)
		})
	}
}

func TestDetectFormatFromPath(t *testing.T) {
	assert.Equal(t, SourceFormatJSON, detectFormatFromPath("spec.json"))
	assert.Equal(t, SourceFormatYAML, detectFormatFromPath("spec.yaml"))
	assert.Equal(t, SourceFormatYAML, detectFormatFromPath("spec.yml"))
	assert.Equal(t, SourceFormatUnknown, detectFormatFromPath("spec.txt"))
}

func TestDetectFormatFromContent(t *testing.T) {
	assert.Equal(t, SourceFormatJSON, detectFormatFromContent([]byte("  {\"a\": 1}")))
	assert.Equal(t, SourceFormatJSON, detectFormatFromContent([]byte("[1, 2]")))
	assert.Equal(t, SourceFormatYAML, detectFormatFromContent([]byte("asyncapi: 2.0.0")))
}

func TestParseResultMarshalJSON(t *testing.T) {
	result, err := New().ParseBytes([]byte(minimalDoc))
	require.NoError(t, err)

	data, err := result.MarshalJSON()
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(string(data), `{"asyncapi":"2.6.0"`))
}

func TestGetDocumentStats(t *testing.T) {
	src := `
asyncapi: 2.6.0
info:
  title: t
  version: '1'
servers:
  prod:
    url: broker.example.com
    protocol: kafka
  staging:
    url: staging.example.com
    protocol: kafka
channels:
  a:
    publish: {}
    subscribe: {}
  b:
    subscribe: {}
components:
  messages:
    one: {}
    two: {}
  schemas:
    User:
      type: object
`
	result, err := New().ParseBytes([]byte(src))
	require.NoError(t, err)

	assert.Equal(t, DocumentStats{
		ServerCount:    2,
		ChannelCount:   2,
		OperationCount: 3,
		MessageCount:   2,
		SchemaCount:    1,
	}, result.Stats)
}
