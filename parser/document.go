package parser

import (
	"bytes"

	"go.yaml.in/yaml/v4"

	"github.com/erraggy/asyncapitools/aaerrors"
)

// Document is the root AsyncAPI object. It holds the typed tree for one
// AsyncAPI 2.x definition and round-trips unknown keys through the
// Extensions bags on each object.
type Document struct {
	// AsyncAPI is the required version string, e.g. "2.6.0".
	AsyncAPI string
	// ID is the identifier of the application the document describes.
	ID   string
	Info *Info
	// Servers maps server names to their definitions, in document order.
	Servers            *Map[*Server]
	DefaultContentType string
	// Channels is required; it maps channel addresses to their
	// definitions, in document order.
	Channels     *Map[*Channel]
	Components   *Components
	Tags         []*Tag
	ExternalDocs *ExternalDocs
	Extensions   *Extensions
}

func (d *Document) decodeNode(n *yaml.Node, path string) error {
	entries, err := mappingEntries(n, path)
	if err != nil {
		return err
	}
	for _, e := range entries {
		kp := joinPath(path, e.key)
		switch e.key {
		case "asyncapi":
			err = setString(&d.AsyncAPI, e.val, kp)
		case "id":
			err = setString(&d.ID, e.val, kp)
		case "info":
			d.Info, err = decodeObj[Info](e.val, kp)
		case "servers":
			d.Servers, err = decodeNamed[Server](e.val, kp)
		case "defaultContentType":
			err = setString(&d.DefaultContentType, e.val, kp)
		case "channels":
			d.Channels, err = decodeNamed[Channel](e.val, kp)
		case "components":
			d.Components, err = decodeObj[Components](e.val, kp)
		case "tags":
			d.Tags, err = decodeSlice[Tag](e.val, kp)
		case "externalDocs":
			d.ExternalDocs, err = decodeObj[ExternalDocs](e.val, kp)
		default:
			err = captureExtension(&d.Extensions, e.key, e.val, kp)
		}
		if err != nil {
			return err
		}
	}
	if d.AsyncAPI == "" {
		return missing(path, "asyncapi")
	}
	if d.Info == nil {
		return missing(path, "info")
	}
	if d.Channels == nil {
		return missing(path, "channels")
	}
	return nil
}

func (d *Document) encodeNode() (*yaml.Node, error) {
	m := newMapping()
	putStrAlways(m, "asyncapi", d.AsyncAPI)
	putStr(m, "id", d.ID)
	if err := putObj[Info](m, "info", d.Info); err != nil {
		return nil, err
	}
	if err := putNamed[Server](m, "servers", d.Servers); err != nil {
		return nil, err
	}
	putStr(m, "defaultContentType", d.DefaultContentType)
	if d.Channels != nil {
		channels := newMapping()
		for name, c := range d.Channels.All() {
			n, err := c.encodeNode()
			if err != nil {
				return nil, err
			}
			mapPut(channels, name, n)
		}
		mapPut(m, "channels", channels)
	}
	if err := putObj[Components](m, "components", d.Components); err != nil {
		return nil, err
	}
	if err := putObjSlice[Tag](m, "tags", d.Tags); err != nil {
		return nil, err
	}
	if err := putObj[ExternalDocs](m, "externalDocs", d.ExternalDocs); err != nil {
		return nil, err
	}
	if err := putExtensions(m, d.Extensions); err != nil {
		return nil, err
	}
	return m, nil
}

// UnmarshalYAML decodes a document from a YAML node. JSON input also works
// through this path since the yaml decoder accepts JSON.
func (d *Document) UnmarshalYAML(n *yaml.Node) error {
	return d.decodeNode(docRoot(n), "")
}

// MarshalYAML encodes the document as a YAML node, declared fields first and
// extensions last, with all map orders preserved.
func (d *Document) MarshalYAML() (any, error) {
	return d.encodeNode()
}

// UnmarshalJSON decodes a document from JSON bytes.
func (d *Document) UnmarshalJSON(data []byte) error {
	var n yaml.Node
	if err := yaml.Unmarshal(data, &n); err != nil {
		return &aaerrors.ParseError{Message: "invalid document syntax", Cause: err}
	}
	return d.decodeNode(docRoot(&n), "")
}

// MarshalJSON encodes the document as compact JSON with the same field and
// key ordering as MarshalYAML.
func (d *Document) MarshalJSON() ([]byte, error) {
	n, err := d.encodeNode()
	if err != nil {
		return nil, err
	}
	var buf bytes.Buffer
	if err := writeNodeJSON(&buf, n); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
