package parser

import "go.yaml.in/yaml/v4"

// Message describes a message received on a given channel and operation.
type Message struct {
	// Headers is a schema for the application headers; it must be an
	// object schema and must not describe protocol headers.
	Headers *RefOr[Schema]
	// Payload defaults to a Schema but may be any structured value when
	// SchemaFormat names a different payload language.
	Payload       *Payload
	CorrelationID *RefOr[CorrelationID]
	SchemaFormat  string
	ContentType   string
	Name          string
	Title         string
	Summary       string
	Description   string
	Tags          []*Tag
	ExternalDocs  *ExternalDocs
	Bindings      *RefOr[MessageBinding]
	// Examples maps example names to example message values.
	Examples *Extensions
	Traits   []*RefOr[MessageTrait]
	// Extensions captures unrecognized sibling keys in document order
	Extensions *Extensions
}

func (m *Message) decodeNode(n *yaml.Node, path string) error {
	entries, err := mappingEntries(n, path)
	if err != nil {
		return err
	}
	for _, e := range entries {
		kp := joinPath(path, e.key)
		switch e.key {
		case "headers":
			m.Headers, err = decodeRefOr[Schema](e.val, kp)
		case "payload":
			m.Payload, err = decodeObj[Payload](e.val, kp)
		case "correlationId":
			m.CorrelationID, err = decodeRefOr[CorrelationID](e.val, kp)
		case "schemaFormat":
			err = setString(&m.SchemaFormat, e.val, kp)
		case "contentType":
			err = setString(&m.ContentType, e.val, kp)
		case "name":
			err = setString(&m.Name, e.val, kp)
		case "title":
			err = setString(&m.Title, e.val, kp)
		case "summary":
			err = setString(&m.Summary, e.val, kp)
		case "description":
			err = setString(&m.Description, e.val, kp)
		case "tags":
			m.Tags, err = decodeSlice[Tag](e.val, kp)
		case "externalDocs":
			m.ExternalDocs, err = decodeObj[ExternalDocs](e.val, kp)
		case "bindings":
			m.Bindings, err = decodeRefOr[MessageBinding](e.val, kp)
		case "examples":
			m.Examples, err = decodeAnyMap(e.val, kp)
		case "traits":
			m.Traits, err = decodeRefOrSlice[MessageTrait](e.val, kp)
		default:
			err = captureExtension(&m.Extensions, e.key, e.val, kp)
		}
		if err != nil {
			return err
		}
	}
	return nil
}

func (m *Message) encodeNode() (*yaml.Node, error) {
	out := newMapping()
	if err := putRefOr[Schema](out, "headers", m.Headers); err != nil {
		return nil, err
	}
	if err := putObj[Payload](out, "payload", m.Payload); err != nil {
		return nil, err
	}
	if err := putRefOr[CorrelationID](out, "correlationId", m.CorrelationID); err != nil {
		return nil, err
	}
	putStr(out, "schemaFormat", m.SchemaFormat)
	putStr(out, "contentType", m.ContentType)
	putStr(out, "name", m.Name)
	putStr(out, "title", m.Title)
	putStr(out, "summary", m.Summary)
	putStr(out, "description", m.Description)
	if err := putObjSlice[Tag](out, "tags", m.Tags); err != nil {
		return nil, err
	}
	if err := putObj[ExternalDocs](out, "externalDocs", m.ExternalDocs); err != nil {
		return nil, err
	}
	if err := putRefOr[MessageBinding](out, "bindings", m.Bindings); err != nil {
		return nil, err
	}
	if err := putAnyMap(out, "examples", m.Examples); err != nil {
		return nil, err
	}
	if err := putRefOrSlice[MessageTrait](out, "traits", m.Traits); err != nil {
		return nil, err
	}
	if err := putExtensions(out, m.Extensions); err != nil {
		return nil, err
	}
	return out, nil
}

// MessageTrait is a partial Message applied to messages that reference it.
// It carries every Message field except payload and traits.
type MessageTrait struct {
	Headers       *RefOr[Schema]
	CorrelationID *RefOr[CorrelationID]
	SchemaFormat  string
	ContentType   string
	Name          string
	Title         string
	Summary       string
	Description   string
	Tags          []*Tag
	ExternalDocs  *ExternalDocs
	Bindings      *RefOr[MessageBinding]
	Examples      *Extensions
	Extensions    *Extensions
}

func (t *MessageTrait) decodeNode(n *yaml.Node, path string) error {
	entries, err := mappingEntries(n, path)
	if err != nil {
		return err
	}
	for _, e := range entries {
		kp := joinPath(path, e.key)
		switch e.key {
		case "headers":
			t.Headers, err = decodeRefOr[Schema](e.val, kp)
		case "correlationId":
			t.CorrelationID, err = decodeRefOr[CorrelationID](e.val, kp)
		case "schemaFormat":
			err = setString(&t.SchemaFormat, e.val, kp)
		case "contentType":
			err = setString(&t.ContentType, e.val, kp)
		case "name":
			err = setString(&t.Name, e.val, kp)
		case "title":
			err = setString(&t.Title, e.val, kp)
		case "summary":
			err = setString(&t.Summary, e.val, kp)
		case "description":
			err = setString(&t.Description, e.val, kp)
		case "tags":
			t.Tags, err = decodeSlice[Tag](e.val, kp)
		case "externalDocs":
			t.ExternalDocs, err = decodeObj[ExternalDocs](e.val, kp)
		case "bindings":
			t.Bindings, err = decodeRefOr[MessageBinding](e.val, kp)
		case "examples":
			t.Examples, err = decodeAnyMap(e.val, kp)
		default:
			err = captureExtension(&t.Extensions, e.key, e.val, kp)
		}
		if err != nil {
			return err
		}
	}
	return nil
}

func (t *MessageTrait) encodeNode() (*yaml.Node, error) {
	out := newMapping()
	if err := putRefOr[Schema](out, "headers", t.Headers); err != nil {
		return nil, err
	}
	if err := putRefOr[CorrelationID](out, "correlationId", t.CorrelationID); err != nil {
		return nil, err
	}
	putStr(out, "schemaFormat", t.SchemaFormat)
	putStr(out, "contentType", t.ContentType)
	putStr(out, "name", t.Name)
	putStr(out, "title", t.Title)
	putStr(out, "summary", t.Summary)
	putStr(out, "description", t.Description)
	if err := putObjSlice[Tag](out, "tags", t.Tags); err != nil {
		return nil, err
	}
	if err := putObj[ExternalDocs](out, "externalDocs", t.ExternalDocs); err != nil {
		return nil, err
	}
	if err := putRefOr[MessageBinding](out, "bindings", t.Bindings); err != nil {
		return nil, err
	}
	if err := putAnyMap(out, "examples", t.Examples); err != nil {
		return nil, err
	}
	if err := putExtensions(out, t.Extensions); err != nil {
		return nil, err
	}
	return out, nil
}
