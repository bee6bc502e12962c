package parser

import "go.yaml.in/yaml/v4"

// Schema is the AsyncAPI Schema Object: a JSON-Schema-draft-07-flavored
// description of payload and header shapes. Child schemas nest through
// RefOr, so a schema may reference itself only via a Reference, never as an
// inline cycle.
type Schema struct {
	Title       string
	Description string
	// Type is the JSON Schema type keyword ("object", "string", ...)
	Type   string
	Format string

	Default any
	Enum    []any
	Const   any
	// Example is the OAS-style singular example keyword
	Example any
	// Examples is the draft-07 plural form
	Examples []any

	// Numeric validation
	MultipleOf       *float64
	Maximum          *float64
	ExclusiveMaximum *float64
	Minimum          *float64
	ExclusiveMinimum *float64

	// String validation
	MaxLength *int
	MinLength *int
	Pattern   string

	// Array validation
	Items       *RefOr[Schema]
	MaxItems    *int
	MinItems    *int
	UniqueItems bool

	// Object validation
	Properties           *Map[*RefOr[Schema]]
	AdditionalProperties any // bool or *RefOr[Schema]
	Required             []string
	MaxProperties        *int
	MinProperties        *int

	// Composition
	AllOf []*RefOr[Schema]
	OneOf []*RefOr[Schema]
	AnyOf []*RefOr[Schema]
	Not   *RefOr[Schema]

	Discriminator *Discriminator
	ReadOnly      bool
	WriteOnly     bool
	Deprecated    bool
	ExternalDocs  *ExternalDocs

	// Extensions captures unrecognized sibling keys in document order
	Extensions *Extensions
}

func (s *Schema) decodeNode(n *yaml.Node, path string) error {
	entries, err := mappingEntries(n, path)
	if err != nil {
		return err
	}
	for _, e := range entries {
		kp := joinPath(path, e.key)
		switch e.key {
		case "title":
			err = setString(&s.Title, e.val, kp)
		case "description":
			err = setString(&s.Description, e.val, kp)
		case "type":
			err = setString(&s.Type, e.val, kp)
		case "format":
			err = setString(&s.Format, e.val, kp)
		case "default":
			err = setAny(&s.Default, e.val, kp)
		case "enum":
			err = setAnySlice(&s.Enum, e.val, kp)
		case "const":
			err = setAny(&s.Const, e.val, kp)
		case "example":
			err = setAny(&s.Example, e.val, kp)
		case "examples":
			err = setAnySlice(&s.Examples, e.val, kp)
		case "multipleOf":
			err = setFloatPtr(&s.MultipleOf, e.val, kp)
		case "maximum":
			err = setFloatPtr(&s.Maximum, e.val, kp)
		case "exclusiveMaximum":
			err = setFloatPtr(&s.ExclusiveMaximum, e.val, kp)
		case "minimum":
			err = setFloatPtr(&s.Minimum, e.val, kp)
		case "exclusiveMinimum":
			err = setFloatPtr(&s.ExclusiveMinimum, e.val, kp)
		case "maxLength":
			err = setIntPtr(&s.MaxLength, e.val, kp)
		case "minLength":
			err = setIntPtr(&s.MinLength, e.val, kp)
		case "pattern":
			err = setString(&s.Pattern, e.val, kp)
		case "items":
			s.Items, err = decodeRefOr[Schema](e.val, kp)
		case "maxItems":
			err = setIntPtr(&s.MaxItems, e.val, kp)
		case "minItems":
			err = setIntPtr(&s.MinItems, e.val, kp)
		case "uniqueItems":
			err = setBool(&s.UniqueItems, e.val, kp)
		case "properties":
			s.Properties, err = decodeRefOrMap[Schema](e.val, kp)
		case "additionalProperties":
			err = s.decodeAdditionalProperties(e.val, kp)
		case "required":
			err = setStringSlice(&s.Required, e.val, kp)
		case "maxProperties":
			err = setIntPtr(&s.MaxProperties, e.val, kp)
		case "minProperties":
			err = setIntPtr(&s.MinProperties, e.val, kp)
		case "allOf":
			s.AllOf, err = decodeRefOrSlice[Schema](e.val, kp)
		case "oneOf":
			s.OneOf, err = decodeRefOrSlice[Schema](e.val, kp)
		case "anyOf":
			s.AnyOf, err = decodeRefOrSlice[Schema](e.val, kp)
		case "not":
			s.Not, err = decodeRefOr[Schema](e.val, kp)
		case "discriminator":
			s.Discriminator, err = decodeObj[Discriminator](e.val, kp)
		case "readOnly":
			err = setBool(&s.ReadOnly, e.val, kp)
		case "writeOnly":
			err = setBool(&s.WriteOnly, e.val, kp)
		case "deprecated":
			err = setBool(&s.Deprecated, e.val, kp)
		case "externalDocs":
			s.ExternalDocs, err = decodeObj[ExternalDocs](e.val, kp)
		default:
			err = captureExtension(&s.Extensions, e.key, e.val, kp)
		}
		if err != nil {
			return err
		}
	}
	return nil
}

func (s *Schema) decodeAdditionalProperties(n *yaml.Node, path string) error {
	resolved := resolveAlias(n)
	if resolved != nil && resolved.Kind == yaml.ScalarNode && resolved.Tag == "!!bool" {
		b, err := nodeBool(resolved, path)
		if err != nil {
			return err
		}
		s.AdditionalProperties = b
		return nil
	}
	r, err := decodeRefOr[Schema](n, path)
	if err != nil {
		return err
	}
	s.AdditionalProperties = r
	return nil
}

func (s *Schema) encodeNode() (*yaml.Node, error) {
	m := newMapping()
	putStr(m, "title", s.Title)
	putStr(m, "description", s.Description)
	putStr(m, "type", s.Type)
	putStr(m, "format", s.Format)
	if err := putAny(m, "default", s.Default); err != nil {
		return nil, err
	}
	if err := putAnySlice(m, "enum", s.Enum); err != nil {
		return nil, err
	}
	if err := putAny(m, "const", s.Const); err != nil {
		return nil, err
	}
	if err := putAny(m, "example", s.Example); err != nil {
		return nil, err
	}
	if err := putAnySlice(m, "examples", s.Examples); err != nil {
		return nil, err
	}
	putFloatPtr(m, "multipleOf", s.MultipleOf)
	putFloatPtr(m, "maximum", s.Maximum)
	putFloatPtr(m, "exclusiveMaximum", s.ExclusiveMaximum)
	putFloatPtr(m, "minimum", s.Minimum)
	putFloatPtr(m, "exclusiveMinimum", s.ExclusiveMinimum)
	putIntPtr(m, "maxLength", s.MaxLength)
	putIntPtr(m, "minLength", s.MinLength)
	putStr(m, "pattern", s.Pattern)
	if err := putRefOr[Schema](m, "items", s.Items); err != nil {
		return nil, err
	}
	putIntPtr(m, "maxItems", s.MaxItems)
	putIntPtr(m, "minItems", s.MinItems)
	putBool(m, "uniqueItems", s.UniqueItems)
	if err := putRefOrMap[Schema](m, "properties", s.Properties); err != nil {
		return nil, err
	}
	switch t := s.AdditionalProperties.(type) {
	case nil:
	case bool:
		mapPut(m, "additionalProperties", boolNode(t))
	case *RefOr[Schema]:
		if err := putRefOr[Schema](m, "additionalProperties", t); err != nil {
			return nil, err
		}
	default:
		if err := putAny(m, "additionalProperties", t); err != nil {
			return nil, err
		}
	}
	putStrSlice(m, "required", s.Required)
	putIntPtr(m, "maxProperties", s.MaxProperties)
	putIntPtr(m, "minProperties", s.MinProperties)
	if err := putRefOrSlice[Schema](m, "allOf", s.AllOf); err != nil {
		return nil, err
	}
	if err := putRefOrSlice[Schema](m, "oneOf", s.OneOf); err != nil {
		return nil, err
	}
	if err := putRefOrSlice[Schema](m, "anyOf", s.AnyOf); err != nil {
		return nil, err
	}
	if err := putRefOr[Schema](m, "not", s.Not); err != nil {
		return nil, err
	}
	if err := putObj[Discriminator](m, "discriminator", s.Discriminator); err != nil {
		return nil, err
	}
	putBool(m, "readOnly", s.ReadOnly)
	putBool(m, "writeOnly", s.WriteOnly)
	putBool(m, "deprecated", s.Deprecated)
	if err := putObj[ExternalDocs](m, "externalDocs", s.ExternalDocs); err != nil {
		return nil, err
	}
	if err := putExtensions(m, s.Extensions); err != nil {
		return nil, err
	}
	return m, nil
}

// Discriminator informs consumers of an alternative schema based on the
// value of a named payload property.
type Discriminator struct {
	// PropertyName is required: the payload property holding the
	// discriminator value.
	PropertyName string
	// Mapping maps payload values to schema names or references.
	Mapping    *Map[string]
	Extensions *Extensions
}

func (d *Discriminator) decodeNode(n *yaml.Node, path string) error {
	entries, err := mappingEntries(n, path)
	if err != nil {
		return err
	}
	seen := false
	for _, e := range entries {
		kp := joinPath(path, e.key)
		switch e.key {
		case "propertyName":
			seen = true
			err = setString(&d.PropertyName, e.val, kp)
		case "mapping":
			d.Mapping, err = decodeStringMap(e.val, kp)
		default:
			err = captureExtension(&d.Extensions, e.key, e.val, kp)
		}
		if err != nil {
			return err
		}
	}
	if !seen {
		return missing(path, "propertyName")
	}
	return nil
}

func (d *Discriminator) encodeNode() (*yaml.Node, error) {
	m := newMapping()
	putStrAlways(m, "propertyName", d.PropertyName)
	putStringMap(m, "mapping", d.Mapping)
	if err := putExtensions(m, d.Extensions); err != nil {
		return nil, err
	}
	return m, nil
}

// Payload is a message body: either a Schema or, for payload formats
// outside the built-in schema dialect, an arbitrary structured value kept
// verbatim. The sibling schemaFormat field on Message signals the format;
// this type does not interpret it.
//
// Decoding tries the Schema shape first and falls back to an untyped
// capture, which cannot fail.
type Payload struct {
	Schema *Schema
	Value  any
}

func (p *Payload) decodeNode(n *yaml.Node, path string) error {
	resolved := resolveAlias(n)
	if resolved != nil && resolved.Kind == yaml.MappingNode {
		var s Schema
		if err := s.decodeNode(resolved, path); err == nil {
			p.Schema = &s
			return nil
		}
	}
	v, err := nodeAny(n, path)
	if err != nil {
		return err
	}
	p.Value = v
	return nil
}

func (p *Payload) encodeNode() (*yaml.Node, error) {
	if p.Schema != nil {
		return p.Schema.encodeNode()
	}
	return anyNode(p.Value)
}
