package parser

import "go.yaml.in/yaml/v4"

// Components holds reusable objects addressed from the rest of the document
// via references. Each map preserves document order.
type Components struct {
	Schemas           *Map[*RefOr[Schema]]
	Messages          *Map[*RefOr[Message]]
	SecuritySchemes   *Map[*RefOr[SecurityScheme]]
	Parameters        *Map[*RefOr[Parameter]]
	CorrelationIDs    *Map[*RefOr[CorrelationID]]
	OperationTraits   *Map[*RefOr[OperationTrait]]
	MessageTraits     *Map[*RefOr[MessageTrait]]
	ServerBindings    *Map[*RefOr[ServerBinding]]
	ChannelBindings   *Map[*RefOr[ChannelBinding]]
	OperationBindings *Map[*RefOr[OperationBinding]]
	MessageBindings   *Map[*RefOr[MessageBinding]]
	Extensions        *Extensions
}

func (c *Components) decodeNode(n *yaml.Node, path string) error {
	entries, err := mappingEntries(n, path)
	if err != nil {
		return err
	}
	for _, e := range entries {
		kp := joinPath(path, e.key)
		switch e.key {
		case "schemas":
			c.Schemas, err = decodeRefOrMap[Schema](e.val, kp)
		case "messages":
			c.Messages, err = decodeRefOrMap[Message](e.val, kp)
		case "securitySchemes":
			c.SecuritySchemes, err = decodeRefOrMap[SecurityScheme](e.val, kp)
		case "parameters":
			c.Parameters, err = decodeRefOrMap[Parameter](e.val, kp)
		case "correlationIds":
			c.CorrelationIDs, err = decodeRefOrMap[CorrelationID](e.val, kp)
		case "operationTraits":
			c.OperationTraits, err = decodeRefOrMap[OperationTrait](e.val, kp)
		case "messageTraits":
			c.MessageTraits, err = decodeRefOrMap[MessageTrait](e.val, kp)
		case "serverBindings":
			c.ServerBindings, err = decodeRefOrMap[ServerBinding](e.val, kp)
		case "channelBindings":
			c.ChannelBindings, err = decodeRefOrMap[ChannelBinding](e.val, kp)
		case "operationBindings":
			c.OperationBindings, err = decodeRefOrMap[OperationBinding](e.val, kp)
		case "messageBindings":
			c.MessageBindings, err = decodeRefOrMap[MessageBinding](e.val, kp)
		default:
			err = captureExtension(&c.Extensions, e.key, e.val, kp)
		}
		if err != nil {
			return err
		}
	}
	return nil
}

func (c *Components) encodeNode() (*yaml.Node, error) {
	m := newMapping()
	if err := putRefOrMap[Schema](m, "schemas", c.Schemas); err != nil {
		return nil, err
	}
	if err := putRefOrMap[Message](m, "messages", c.Messages); err != nil {
		return nil, err
	}
	if err := putRefOrMap[SecurityScheme](m, "securitySchemes", c.SecuritySchemes); err != nil {
		return nil, err
	}
	if err := putRefOrMap[Parameter](m, "parameters", c.Parameters); err != nil {
		return nil, err
	}
	if err := putRefOrMap[CorrelationID](m, "correlationIds", c.CorrelationIDs); err != nil {
		return nil, err
	}
	if err := putRefOrMap[OperationTrait](m, "operationTraits", c.OperationTraits); err != nil {
		return nil, err
	}
	if err := putRefOrMap[MessageTrait](m, "messageTraits", c.MessageTraits); err != nil {
		return nil, err
	}
	if err := putRefOrMap[ServerBinding](m, "serverBindings", c.ServerBindings); err != nil {
		return nil, err
	}
	if err := putRefOrMap[ChannelBinding](m, "channelBindings", c.ChannelBindings); err != nil {
		return nil, err
	}
	if err := putRefOrMap[OperationBinding](m, "operationBindings", c.OperationBindings); err != nil {
		return nil, err
	}
	if err := putRefOrMap[MessageBinding](m, "messageBindings", c.MessageBindings); err != nil {
		return nil, err
	}
	if err := putExtensions(m, c.Extensions); err != nil {
		return nil, err
	}
	return m, nil
}
