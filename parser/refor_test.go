package parser

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/erraggy/asyncapitools/aaerrors"
)

func TestDecodeRefOrReference(t *testing.T) {
	r, err := decodeRefOr[Schema](yamlNode(t, `$ref: '#/components/schemas/User'`), "")
	require.NoError(t, err)

	require.True(t, r.IsRef())
	assert.Equal(t, "#/components/schemas/User", r.Ref.Location)
	assert.Nil(t, r.Value)
}

func TestDecodeRefOrInlineValue(t *testing.T) {
	r, err := decodeRefOr[Schema](yamlNode(t, "type: string\nmaxLength: 10\n"), "")
	require.NoError(t, err)

	assert.False(t, r.IsRef())
	require.NotNil(t, r.Value)
	assert.Equal(t, "string", r.Value.Type)
	require.NotNil(t, r.Value.MaxLength)
	assert.Equal(t, 10, *r.Value.MaxLength)
}

func TestDecodeRefOrReferenceWinsOverSiblings(t *testing.T) {
	// A mapping with $ref plus sibling keys is still a Reference; the
	// siblings are dropped rather than decoded as an inline value.
	src := `
description: ignored per reference semantics
$ref: '#/components/messages/userSignedUp'
`
	r, err := decodeRefOr[Message](yamlNode(t, src), "")
	require.NoError(t, err)

	require.True(t, r.IsRef())
	assert.Equal(t, "#/components/messages/userSignedUp", r.Ref.Location)
	assert.Nil(t, r.Value)
}

func TestDecodeRefOrNonStringRefDecodesAsValue(t *testing.T) {
	// A non-string $ref value does not match the Reference shape, so the
	// mapping decodes as the inline variant and $ref lands in Extensions.
	r, err := decodeRefOr[Schema](yamlNode(t, "$ref: 42"), "")
	require.NoError(t, err)

	assert.False(t, r.IsRef())
	require.NotNil(t, r.Value)
	v, ok := r.Value.Extensions.Get("$ref")
	require.True(t, ok)
	assert.Equal(t, 42, v)
}

func TestDecodeRefOrScalarFails(t *testing.T) {
	_, err := decodeRefOr[Schema](yamlNode(t, "42"), "payload")
	require.Error(t, err)
	assert.ErrorIs(t, err, aaerrors.ErrSchemaMismatch)
}

func TestEncodeRefOrRoundTrip(t *testing.T) {
	ref := NewRef[Schema]("#/components/schemas/Pet")
	n, err := encodeRefOr[Schema](ref)
	require.NoError(t, err)

	decoded, err := decodeRefOr[Schema](n, "")
	require.NoError(t, err)
	require.True(t, decoded.IsRef())
	assert.Equal(t, "#/components/schemas/Pet", decoded.Ref.Location)
}

func TestNewValueWrapsInline(t *testing.T) {
	r := NewValue(Schema{Type: "integer"})
	assert.False(t, r.IsRef())
	require.NotNil(t, r.Value)
	assert.Equal(t, "integer", r.Value.Type)
}
