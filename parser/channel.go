package parser

import "go.yaml.in/yaml/v4"

// Channel describes one addressable channel and the operations available on
// it. The channel's address is the key under Document.Channels.
type Channel struct {
	Description string
	// Servers restricts the channel to a subset of Document.Servers by
	// name. Empty means available on all servers.
	Servers    []string
	Subscribe  *Operation
	Publish    *Operation
	Parameters *Map[*RefOr[Parameter]]
	Bindings   *RefOr[ChannelBinding]
	Extensions *Extensions
}

func (c *Channel) decodeNode(n *yaml.Node, path string) error {
	entries, err := mappingEntries(n, path)
	if err != nil {
		return err
	}
	for _, e := range entries {
		kp := joinPath(path, e.key)
		switch e.key {
		case "description":
			err = setString(&c.Description, e.val, kp)
		case "servers":
			err = setStringSlice(&c.Servers, e.val, kp)
		case "subscribe":
			c.Subscribe, err = decodeObj[Operation](e.val, kp)
		case "publish":
			c.Publish, err = decodeObj[Operation](e.val, kp)
		case "parameters":
			c.Parameters, err = decodeRefOrMap[Parameter](e.val, kp)
		case "bindings":
			c.Bindings, err = decodeRefOr[ChannelBinding](e.val, kp)
		default:
			err = captureExtension(&c.Extensions, e.key, e.val, kp)
		}
		if err != nil {
			return err
		}
	}
	return nil
}

func (c *Channel) encodeNode() (*yaml.Node, error) {
	m := newMapping()
	putStr(m, "description", c.Description)
	putStrSlice(m, "servers", c.Servers)
	if err := putObj[Operation](m, "subscribe", c.Subscribe); err != nil {
		return nil, err
	}
	if err := putObj[Operation](m, "publish", c.Publish); err != nil {
		return nil, err
	}
	if err := putRefOrMap[Parameter](m, "parameters", c.Parameters); err != nil {
		return nil, err
	}
	if err := putRefOr[ChannelBinding](m, "bindings", c.Bindings); err != nil {
		return nil, err
	}
	if err := putExtensions(m, c.Extensions); err != nil {
		return nil, err
	}
	return m, nil
}

// Operation describes a publish or subscribe operation on a channel.
type Operation struct {
	OperationID string
	Summary     string
	Description string
	// Security accepts a single requirement or a list on the wire.
	Security     []*SecurityRequirement
	Tags         []*Tag
	ExternalDocs *ExternalDocs
	Bindings     *RefOr[OperationBinding]
	Traits       []*RefOr[OperationTrait]
	Message      *OperationMessage
	Extensions   *Extensions
}

func (o *Operation) decodeNode(n *yaml.Node, path string) error {
	entries, err := mappingEntries(n, path)
	if err != nil {
		return err
	}
	for _, e := range entries {
		kp := joinPath(path, e.key)
		switch e.key {
		case "operationId":
			err = setString(&o.OperationID, e.val, kp)
		case "summary":
			err = setString(&o.Summary, e.val, kp)
		case "description":
			err = setString(&o.Description, e.val, kp)
		case "security":
			o.Security, err = decodeVecOrSingle[SecurityRequirement](e.val, kp)
		case "tags":
			o.Tags, err = decodeSlice[Tag](e.val, kp)
		case "externalDocs":
			o.ExternalDocs, err = decodeObj[ExternalDocs](e.val, kp)
		case "bindings":
			o.Bindings, err = decodeRefOr[OperationBinding](e.val, kp)
		case "traits":
			o.Traits, err = decodeRefOrSlice[OperationTrait](e.val, kp)
		case "message":
			o.Message, err = decodeObj[OperationMessage](e.val, kp)
		default:
			err = captureExtension(&o.Extensions, e.key, e.val, kp)
		}
		if err != nil {
			return err
		}
	}
	return nil
}

func (o *Operation) encodeNode() (*yaml.Node, error) {
	m := newMapping()
	putStr(m, "operationId", o.OperationID)
	putStr(m, "summary", o.Summary)
	putStr(m, "description", o.Description)
	if err := putVecOrSingle[SecurityRequirement](m, "security", o.Security); err != nil {
		return nil, err
	}
	if err := putObjSlice[Tag](m, "tags", o.Tags); err != nil {
		return nil, err
	}
	if err := putObj[ExternalDocs](m, "externalDocs", o.ExternalDocs); err != nil {
		return nil, err
	}
	if err := putRefOr[OperationBinding](m, "bindings", o.Bindings); err != nil {
		return nil, err
	}
	if err := putRefOrSlice[OperationTrait](m, "traits", o.Traits); err != nil {
		return nil, err
	}
	if err := putObj[OperationMessage](m, "message", o.Message); err != nil {
		return nil, err
	}
	if err := putExtensions(m, o.Extensions); err != nil {
		return nil, err
	}
	return m, nil
}

// OperationTrait is a partial Operation applied to operations that
// reference it. It carries every Operation field except message and traits.
type OperationTrait struct {
	OperationID  string
	Summary      string
	Description  string
	Security     []*SecurityRequirement
	Tags         []*Tag
	ExternalDocs *ExternalDocs
	Bindings     *RefOr[OperationBinding]
	Extensions   *Extensions
}

func (t *OperationTrait) decodeNode(n *yaml.Node, path string) error {
	entries, err := mappingEntries(n, path)
	if err != nil {
		return err
	}
	for _, e := range entries {
		kp := joinPath(path, e.key)
		switch e.key {
		case "operationId":
			err = setString(&t.OperationID, e.val, kp)
		case "summary":
			err = setString(&t.Summary, e.val, kp)
		case "description":
			err = setString(&t.Description, e.val, kp)
		case "security":
			t.Security, err = decodeVecOrSingle[SecurityRequirement](e.val, kp)
		case "tags":
			t.Tags, err = decodeSlice[Tag](e.val, kp)
		case "externalDocs":
			t.ExternalDocs, err = decodeObj[ExternalDocs](e.val, kp)
		case "bindings":
			t.Bindings, err = decodeRefOr[OperationBinding](e.val, kp)
		default:
			err = captureExtension(&t.Extensions, e.key, e.val, kp)
		}
		if err != nil {
			return err
		}
	}
	return nil
}

func (t *OperationTrait) encodeNode() (*yaml.Node, error) {
	m := newMapping()
	putStr(m, "operationId", t.OperationID)
	putStr(m, "summary", t.Summary)
	putStr(m, "description", t.Description)
	if err := putVecOrSingle[SecurityRequirement](m, "security", t.Security); err != nil {
		return nil, err
	}
	if err := putObjSlice[Tag](m, "tags", t.Tags); err != nil {
		return nil, err
	}
	if err := putObj[ExternalDocs](m, "externalDocs", t.ExternalDocs); err != nil {
		return nil, err
	}
	if err := putRefOr[OperationBinding](m, "bindings", t.Bindings); err != nil {
		return nil, err
	}
	if err := putExtensions(m, t.Extensions); err != nil {
		return nil, err
	}
	return m, nil
}

// OperationMessage is the message field of an Operation: either a single
// message (possibly a reference) or a oneOf group of alternatives. A mapping
// carrying a "oneOf" key decodes as the group form, anything else as a
// single message.
type OperationMessage struct {
	OneOf  []*RefOr[Message]
	Single *RefOr[Message]
}

func (om *OperationMessage) decodeNode(n *yaml.Node, path string) error {
	resolved := resolveAlias(n)
	if resolved != nil && resolved.Kind == yaml.MappingNode {
		for i := 0; i+1 < len(resolved.Content); i += 2 {
			if resolved.Content[i].Value != "oneOf" {
				continue
			}
			group, err := decodeRefOrSlice[Message](resolved.Content[i+1], joinPath(path, "oneOf"))
			if err != nil {
				return err
			}
			om.OneOf = group
			return nil
		}
	}
	single, err := decodeRefOr[Message](n, path)
	if err != nil {
		return err
	}
	om.Single = single
	return nil
}

func (om *OperationMessage) encodeNode() (*yaml.Node, error) {
	if om.OneOf != nil {
		m := newMapping()
		if err := putRefOrSlice[Message](m, "oneOf", om.OneOf); err != nil {
			return nil, err
		}
		return m, nil
	}
	if om.Single == nil {
		return nullNode(), nil
	}
	return encodeRefOr[Message](om.Single)
}
