package parser

import "go.yaml.in/yaml/v4"

// MessageBinding maps protocol names to protocol-specific message
// definitions. Unknown protocol keys land in Extensions untouched.
type MessageBinding struct {
	HTTP       *HTTPMessageBinding
	WS         *WebSocketsMessageBinding
	Kafka      *KafkaMessageBinding
	AMQP       *AMQPMessageBinding
	AMQP1      *ReservedBinding
	MQTT       *MQTTMessageBinding
	MQTT5      *ReservedBinding
	NATS       *ReservedBinding
	JMS        *ReservedBinding
	SNS        *ReservedBinding
	SQS        *ReservedBinding
	STOMP      *ReservedBinding
	Redis      *ReservedBinding
	Mercure    *ReservedBinding
	IBMMQ      *IBMMQMessageBinding
	Extensions *Extensions
}

func (b *MessageBinding) decodeNode(n *yaml.Node, path string) error {
	entries, err := mappingEntries(n, path)
	if err != nil {
		return err
	}
	for _, e := range entries {
		kp := joinPath(path, e.key)
		switch e.key {
		case "http":
			b.HTTP, err = decodeObj[HTTPMessageBinding](e.val, kp)
		case "ws":
			b.WS, err = decodeObj[WebSocketsMessageBinding](e.val, kp)
		case "kafka":
			b.Kafka, err = decodeObj[KafkaMessageBinding](e.val, kp)
		case "amqp":
			b.AMQP, err = decodeObj[AMQPMessageBinding](e.val, kp)
		case "amqp1":
			b.AMQP1, err = decodeObj[ReservedBinding](e.val, kp)
		case "mqtt":
			b.MQTT, err = decodeObj[MQTTMessageBinding](e.val, kp)
		case "mqtt5":
			b.MQTT5, err = decodeObj[ReservedBinding](e.val, kp)
		case "nats":
			b.NATS, err = decodeObj[ReservedBinding](e.val, kp)
		case "jms":
			b.JMS, err = decodeObj[ReservedBinding](e.val, kp)
		case "sns":
			b.SNS, err = decodeObj[ReservedBinding](e.val, kp)
		case "sqs":
			b.SQS, err = decodeObj[ReservedBinding](e.val, kp)
		case "stomp":
			b.STOMP, err = decodeObj[ReservedBinding](e.val, kp)
		case "redis":
			b.Redis, err = decodeObj[ReservedBinding](e.val, kp)
		case "mercure":
			b.Mercure, err = decodeObj[ReservedBinding](e.val, kp)
		case "ibmmq":
			b.IBMMQ, err = decodeObj[IBMMQMessageBinding](e.val, kp)
		default:
			err = captureExtension(&b.Extensions, e.key, e.val, kp)
		}
		if err != nil {
			return err
		}
	}
	return nil
}

func (b *MessageBinding) encodeNode() (*yaml.Node, error) {
	m := newMapping()
	if err := putObj[HTTPMessageBinding](m, "http", b.HTTP); err != nil {
		return nil, err
	}
	if err := putObj[WebSocketsMessageBinding](m, "ws", b.WS); err != nil {
		return nil, err
	}
	if err := putObj[KafkaMessageBinding](m, "kafka", b.Kafka); err != nil {
		return nil, err
	}
	if err := putObj[AMQPMessageBinding](m, "amqp", b.AMQP); err != nil {
		return nil, err
	}
	if err := putObj[ReservedBinding](m, "amqp1", b.AMQP1); err != nil {
		return nil, err
	}
	if err := putObj[MQTTMessageBinding](m, "mqtt", b.MQTT); err != nil {
		return nil, err
	}
	if err := putObj[ReservedBinding](m, "mqtt5", b.MQTT5); err != nil {
		return nil, err
	}
	if err := putObj[ReservedBinding](m, "nats", b.NATS); err != nil {
		return nil, err
	}
	if err := putObj[ReservedBinding](m, "jms", b.JMS); err != nil {
		return nil, err
	}
	if err := putObj[ReservedBinding](m, "sns", b.SNS); err != nil {
		return nil, err
	}
	if err := putObj[ReservedBinding](m, "sqs", b.SQS); err != nil {
		return nil, err
	}
	if err := putObj[ReservedBinding](m, "stomp", b.STOMP); err != nil {
		return nil, err
	}
	if err := putObj[ReservedBinding](m, "redis", b.Redis); err != nil {
		return nil, err
	}
	if err := putObj[ReservedBinding](m, "mercure", b.Mercure); err != nil {
		return nil, err
	}
	if err := putObj[IBMMQMessageBinding](m, "ibmmq", b.IBMMQ); err != nil {
		return nil, err
	}
	if err := putExtensions(m, b.Extensions); err != nil {
		return nil, err
	}
	return m, nil
}

// HTTPMessageBinding describes the message representation in HTTP.
type HTTPMessageBinding struct {
	// Headers must be an object schema with a properties key.
	Headers        *Schema
	BindingVersion string
	Extensions     *Extensions
}

func (b *HTTPMessageBinding) decodeNode(n *yaml.Node, path string) error {
	entries, err := mappingEntries(n, path)
	if err != nil {
		return err
	}
	for _, e := range entries {
		kp := joinPath(path, e.key)
		switch e.key {
		case "headers":
			b.Headers, err = decodeObj[Schema](e.val, kp)
		case "bindingVersion":
			err = setString(&b.BindingVersion, e.val, kp)
		default:
			err = captureExtension(&b.Extensions, e.key, e.val, kp)
		}
		if err != nil {
			return err
		}
	}
	return nil
}

func (b *HTTPMessageBinding) encodeNode() (*yaml.Node, error) {
	m := newMapping()
	if err := putObj[Schema](m, "headers", b.Headers); err != nil {
		return nil, err
	}
	putStr(m, "bindingVersion", b.BindingVersion)
	if err := putExtensions(m, b.Extensions); err != nil {
		return nil, err
	}
	return m, nil
}

// WebSocketsMessageBinding describes the message representation over a
// WebSocket connection, in terms of its HTTP handshake.
type WebSocketsMessageBinding struct {
	Method         string
	Query          *Schema
	Headers        *Schema
	BindingVersion string
	Extensions     *Extensions
}

func (b *WebSocketsMessageBinding) decodeNode(n *yaml.Node, path string) error {
	entries, err := mappingEntries(n, path)
	if err != nil {
		return err
	}
	for _, e := range entries {
		kp := joinPath(path, e.key)
		switch e.key {
		case "method":
			err = setString(&b.Method, e.val, kp)
		case "query":
			b.Query, err = decodeObj[Schema](e.val, kp)
		case "headers":
			b.Headers, err = decodeObj[Schema](e.val, kp)
		case "bindingVersion":
			err = setString(&b.BindingVersion, e.val, kp)
		default:
			err = captureExtension(&b.Extensions, e.key, e.val, kp)
		}
		if err != nil {
			return err
		}
	}
	return nil
}

func (b *WebSocketsMessageBinding) encodeNode() (*yaml.Node, error) {
	m := newMapping()
	putStr(m, "method", b.Method)
	if err := putObj[Schema](m, "query", b.Query); err != nil {
		return nil, err
	}
	if err := putObj[Schema](m, "headers", b.Headers); err != nil {
		return nil, err
	}
	putStr(m, "bindingVersion", b.BindingVersion)
	if err := putExtensions(m, b.Extensions); err != nil {
		return nil, err
	}
	return m, nil
}

// KafkaMessageBinding describes the message representation in Kafka.
type KafkaMessageBinding struct {
	// Key is a schema for the message key.
	Key            *Schema
	BindingVersion string
	Extensions     *Extensions
}

func (b *KafkaMessageBinding) decodeNode(n *yaml.Node, path string) error {
	entries, err := mappingEntries(n, path)
	if err != nil {
		return err
	}
	for _, e := range entries {
		kp := joinPath(path, e.key)
		switch e.key {
		case "key":
			b.Key, err = decodeObj[Schema](e.val, kp)
		case "bindingVersion":
			err = setString(&b.BindingVersion, e.val, kp)
		default:
			err = captureExtension(&b.Extensions, e.key, e.val, kp)
		}
		if err != nil {
			return err
		}
	}
	return nil
}

func (b *KafkaMessageBinding) encodeNode() (*yaml.Node, error) {
	m := newMapping()
	if err := putObj[Schema](m, "key", b.Key); err != nil {
		return nil, err
	}
	putStr(m, "bindingVersion", b.BindingVersion)
	if err := putExtensions(m, b.Extensions); err != nil {
		return nil, err
	}
	return m, nil
}

// AMQPMessageBinding describes the message representation in AMQP 0-9-1.
type AMQPMessageBinding struct {
	// ContentEncoding is a MIME encoding for the message content.
	ContentEncoding string
	// MessageType is the application-specific message type.
	MessageType    string
	BindingVersion string
	Extensions     *Extensions
}

func (b *AMQPMessageBinding) decodeNode(n *yaml.Node, path string) error {
	entries, err := mappingEntries(n, path)
	if err != nil {
		return err
	}
	for _, e := range entries {
		kp := joinPath(path, e.key)
		switch e.key {
		case "contentEncoding":
			err = setString(&b.ContentEncoding, e.val, kp)
		case "messageType":
			err = setString(&b.MessageType, e.val, kp)
		case "bindingVersion":
			err = setString(&b.BindingVersion, e.val, kp)
		default:
			err = captureExtension(&b.Extensions, e.key, e.val, kp)
		}
		if err != nil {
			return err
		}
	}
	return nil
}

func (b *AMQPMessageBinding) encodeNode() (*yaml.Node, error) {
	m := newMapping()
	putStr(m, "contentEncoding", b.ContentEncoding)
	putStr(m, "messageType", b.MessageType)
	putStr(m, "bindingVersion", b.BindingVersion)
	if err := putExtensions(m, b.Extensions); err != nil {
		return nil, err
	}
	return m, nil
}

// MQTTMessageBinding describes the message representation in MQTT. Only the
// binding version is defined so far.
type MQTTMessageBinding struct {
	BindingVersion string
	Extensions     *Extensions
}

func (b *MQTTMessageBinding) decodeNode(n *yaml.Node, path string) error {
	entries, err := mappingEntries(n, path)
	if err != nil {
		return err
	}
	for _, e := range entries {
		kp := joinPath(path, e.key)
		switch e.key {
		case "bindingVersion":
			err = setString(&b.BindingVersion, e.val, kp)
		default:
			err = captureExtension(&b.Extensions, e.key, e.val, kp)
		}
		if err != nil {
			return err
		}
	}
	return nil
}

func (b *MQTTMessageBinding) encodeNode() (*yaml.Node, error) {
	m := newMapping()
	putStr(m, "bindingVersion", b.BindingVersion)
	if err := putExtensions(m, b.Extensions); err != nil {
		return nil, err
	}
	return m, nil
}

// IBMMQMessageBinding describes the message representation in IBM MQ.
type IBMMQMessageBinding struct {
	// Type is "string", "jms", or "binary".
	Type       string
	Extensions *Extensions
}

func (b *IBMMQMessageBinding) decodeNode(n *yaml.Node, path string) error {
	entries, err := mappingEntries(n, path)
	if err != nil {
		return err
	}
	for _, e := range entries {
		kp := joinPath(path, e.key)
		switch e.key {
		case "type":
			err = setString(&b.Type, e.val, kp)
		default:
			err = captureExtension(&b.Extensions, e.key, e.val, kp)
		}
		if err != nil {
			return err
		}
	}
	return nil
}

func (b *IBMMQMessageBinding) encodeNode() (*yaml.Node, error) {
	m := newMapping()
	putStr(m, "type", b.Type)
	if err := putExtensions(m, b.Extensions); err != nil {
		return nil, err
	}
	return m, nil
}
