package parser

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.yaml.in/yaml/v4"

	"github.com/erraggy/asyncapitools/aaerrors"
)

// yamlNode parses a YAML snippet and returns the document's content node.
func yamlNode(t *testing.T, src string) *yaml.Node {
	t.Helper()
	var root yaml.Node
	require.NoError(t, yaml.Unmarshal([]byte(src), &root))
	return docRoot(&root)
}

func TestNodeStringRejectsNonStrings(t *testing.T) {
	tests := []struct {
		name string
		src  string
	}{
		{name: "integer", src: "42"},
		{name: "boolean", src: "true"},
		{name: "sequence", src: "[a, b]"},
		{name: "mapping", src: "a: b"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := nodeString(yamlNode(t, tt.src), "field")
			require.Error(t, err)
			assert.ErrorIs(t, err, aaerrors.ErrSchemaMismatch)

			var sme *aaerrors.SchemaMismatchError
			require.True(t, errors.As(err, &sme))
			assert.Equal(t, "field", sme.Path)
		})
	}
}

func TestNodeFloatAcceptsIntegers(t *testing.T) {
	f, err := nodeFloat(yamlNode(t, "3"), "maximum")
	require.NoError(t, err)
	assert.Equal(t, 3.0, f)

	f, err = nodeFloat(yamlNode(t, "3.5"), "maximum")
	require.NoError(t, err)
	assert.Equal(t, 3.5, f)
}

func TestNodeIntRejectsFloats(t *testing.T) {
	_, err := nodeInt(yamlNode(t, "3.5"), "maxLength")
	require.Error(t, err)
	assert.ErrorIs(t, err, aaerrors.ErrSchemaMismatch)
}

func TestNodeAnyMappingPreservesOrder(t *testing.T) {
	v, err := nodeAny(yamlNode(t, "z: 1\na: 2\nm: 3\n"), "")
	require.NoError(t, err)

	ext, ok := v.(*Extensions)
	require.True(t, ok)
	assert.Equal(t, []string{"z", "a", "m"}, ext.Keys())
}

func TestNodeAnyScalarTypes(t *testing.T) {
	v, err := nodeAny(yamlNode(t, "42"), "")
	require.NoError(t, err)
	assert.Equal(t, 42, v)

	v, err = nodeAny(yamlNode(t, "4.5"), "")
	require.NoError(t, err)
	assert.Equal(t, 4.5, v)

	v, err = nodeAny(yamlNode(t, "true"), "")
	require.NoError(t, err)
	assert.Equal(t, true, v)

	v, err = nodeAny(yamlNode(t, "null"), "")
	require.NoError(t, err)
	assert.Nil(t, v)
}

func TestMappingEntriesRejectsScalars(t *testing.T) {
	_, err := mappingEntries(yamlNode(t, "just a string"), "info")
	require.Error(t, err)
	assert.ErrorIs(t, err, aaerrors.ErrSchemaMismatch)
}
