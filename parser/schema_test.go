package parser

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/erraggy/asyncapitools/aaerrors"
)

func TestSchemaDecodeNested(t *testing.T) {
	src := `
type: object
properties:
  id:
    type: integer
    minimum: 1
  tags:
    type: array
    items:
      type: string
  parent:
    $ref: '#/components/schemas/Node'
required: [id]
`
	var s Schema
	require.NoError(t, s.decodeNode(yamlNode(t, src), ""))

	assert.Equal(t, "object", s.Type)
	assert.Equal(t, []string{"id", "tags", "parent"}, s.Properties.Keys())
	assert.Equal(t, []string{"id"}, s.Required)

	id, _ := s.Properties.Get("id")
	require.False(t, id.IsRef())
	assert.Equal(t, "integer", id.Value.Type)
	require.NotNil(t, id.Value.Minimum)
	assert.Equal(t, 1.0, *id.Value.Minimum)

	tags, _ := s.Properties.Get("tags")
	require.NotNil(t, tags.Value.Items)
	assert.Equal(t, "string", tags.Value.Items.Value.Type)

	parent, _ := s.Properties.Get("parent")
	require.True(t, parent.IsRef())
	assert.Equal(t, "#/components/schemas/Node", parent.Ref.Location)
}

func TestSchemaAdditionalPropertiesBool(t *testing.T) {
	var s Schema
	require.NoError(t, s.decodeNode(yamlNode(t, "type: object\nadditionalProperties: false\n"), ""))
	assert.Equal(t, false, s.AdditionalProperties)

	n, err := s.encodeNode()
	require.NoError(t, err)
	var out Schema
	require.NoError(t, out.decodeNode(n, ""))
	assert.Equal(t, false, out.AdditionalProperties)
}

func TestSchemaAdditionalPropertiesSchema(t *testing.T) {
	var s Schema
	require.NoError(t, s.decodeNode(yamlNode(t, "additionalProperties:\n  type: string\n"), ""))
	r, ok := s.AdditionalProperties.(*RefOr[Schema])
	require.True(t, ok)
	assert.Equal(t, "string", r.Value.Type)
}

func TestSchemaCompositionKeywords(t *testing.T) {
	src := `
oneOf:
  - type: string
  - $ref: '#/components/schemas/Other'
not:
  type: "null"
`
	var s Schema
	require.NoError(t, s.decodeNode(yamlNode(t, src), ""))
	require.Len(t, s.OneOf, 2)
	assert.False(t, s.OneOf[0].IsRef())
	assert.True(t, s.OneOf[1].IsRef())
	require.NotNil(t, s.Not)
	assert.Equal(t, "null", s.Not.Value.Type)
}

func TestSchemaRoundTripPreservesExtensions(t *testing.T) {
	src := `
type: string
x-parser-id: abc
format: email
`
	var s Schema
	require.NoError(t, s.decodeNode(yamlNode(t, src), ""))

	n, err := s.encodeNode()
	require.NoError(t, err)
	var out Schema
	require.NoError(t, out.decodeNode(n, ""))

	assert.Equal(t, "string", out.Type)
	assert.Equal(t, "email", out.Format)
	v, ok := out.Extensions.Get("x-parser-id")
	require.True(t, ok)
	assert.Equal(t, "abc", v)
}

func TestDiscriminatorRequiresPropertyName(t *testing.T) {
	var d Discriminator
	err := d.decodeNode(yamlNode(t, "mapping:\n  dog: Dog\n"), "schema.discriminator")
	require.Error(t, err)
	assert.ErrorIs(t, err, aaerrors.ErrMissingField)

	var mfe *aaerrors.MissingFieldError
	require.True(t, errors.As(err, &mfe))
	assert.Equal(t, "propertyName", mfe.Field)
	assert.Equal(t, "schema.discriminator", mfe.Path)
}

func TestPayloadFallsBackToUntyped(t *testing.T) {
	// A mapping that fails Schema decoding is kept verbatim instead.
	var p Payload
	require.NoError(t, p.decodeNode(yamlNode(t, "type: 42"), ""))
	assert.Nil(t, p.Schema)
	ext, ok := p.Value.(*Extensions)
	require.True(t, ok)
	v, _ := ext.Get("type")
	assert.Equal(t, 42, v)
}

func TestPayloadPrefersSchema(t *testing.T) {
	var p Payload
	require.NoError(t, p.decodeNode(yamlNode(t, "type: object"), ""))
	require.NotNil(t, p.Schema)
	assert.Equal(t, "object", p.Schema.Type)
	assert.Nil(t, p.Value)
}
