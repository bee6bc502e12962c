package parser

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCaptureExtensionAllocatesLazily(t *testing.T) {
	var ext *Extensions
	require.NoError(t, captureExtension(&ext, "x-first", yamlNode(t, "1"), ""))
	require.NotNil(t, ext)
	require.NoError(t, captureExtension(&ext, "x-second", yamlNode(t, "two"), ""))

	assert.Equal(t, []string{"x-first", "x-second"}, ext.Keys())
	v, _ := ext.Get("x-first")
	assert.Equal(t, 1, v)
	v, _ = ext.Get("x-second")
	assert.Equal(t, "two", v)
}

func TestExtensionsRoundTripPreservesOrder(t *testing.T) {
	src := `
name: example
x-zebra: last letter
x-alpha:
  nested: true
x-num: 7
`
	var tag Tag
	require.NoError(t, tag.decodeNode(yamlNode(t, src), ""))
	assert.Equal(t, []string{"x-zebra", "x-alpha", "x-num"}, tag.Extensions.Keys())

	n, err := tag.encodeNode()
	require.NoError(t, err)

	var keys []string
	for i := 0; i < len(n.Content); i += 2 {
		keys = append(keys, n.Content[i].Value)
	}
	assert.Equal(t, []string{"name", "x-zebra", "x-alpha", "x-num"}, keys)
}

func TestNonExtensionUnknownKeysAreCaptured(t *testing.T) {
	// Unknown keys without the x- prefix are kept too; dropping them would
	// break round-tripping of documents from newer minor versions.
	var tag Tag
	require.NoError(t, tag.decodeNode(yamlNode(t, "name: t\nfutureField: kept\n"), ""))
	v, ok := tag.Extensions.Get("futureField")
	require.True(t, ok)
	assert.Equal(t, "kept", v)
}
