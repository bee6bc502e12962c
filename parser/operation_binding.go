package parser

import "go.yaml.in/yaml/v4"

// OperationBinding maps protocol names to protocol-specific operation
// definitions. Unknown protocol keys land in Extensions untouched.
type OperationBinding struct {
	HTTP       *HTTPOperationBinding
	WS         *ReservedBinding
	Kafka      *KafkaOperationBinding
	AnypointMQ *ReservedBinding
	AMQP       *AMQPOperationBinding
	AMQP1      *ReservedBinding
	MQTT       *MQTTOperationBinding
	MQTT5      *ReservedBinding
	NATS       *NATSOperationBinding
	JMS        *ReservedBinding
	SNS        *ReservedBinding
	SQS        *ReservedBinding
	STOMP      *ReservedBinding
	Redis      *ReservedBinding
	Mercure    *ReservedBinding
	Extensions *Extensions
}

func (b *OperationBinding) decodeNode(n *yaml.Node, path string) error {
	entries, err := mappingEntries(n, path)
	if err != nil {
		return err
	}
	for _, e := range entries {
		kp := joinPath(path, e.key)
		switch e.key {
		case "http":
			b.HTTP, err = decodeObj[HTTPOperationBinding](e.val, kp)
		case "ws":
			b.WS, err = decodeObj[ReservedBinding](e.val, kp)
		case "kafka":
			b.Kafka, err = decodeObj[KafkaOperationBinding](e.val, kp)
		case "anypointmq":
			b.AnypointMQ, err = decodeObj[ReservedBinding](e.val, kp)
		case "amqp":
			b.AMQP, err = decodeObj[AMQPOperationBinding](e.val, kp)
		case "amqp1":
			b.AMQP1, err = decodeObj[ReservedBinding](e.val, kp)
		case "mqtt":
			b.MQTT, err = decodeObj[MQTTOperationBinding](e.val, kp)
		case "mqtt5":
			b.MQTT5, err = decodeObj[ReservedBinding](e.val, kp)
		case "nats":
			b.NATS, err = decodeObj[NATSOperationBinding](e.val, kp)
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
		default:
			err = captureExtension(&b.Extensions, e.key, e.val, kp)
		}
		if err != nil {
			return err
		}
	}
	return nil
}

func (b *OperationBinding) encodeNode() (*yaml.Node, error) {
	m := newMapping()
	if err := putObj[HTTPOperationBinding](m, "http", b.HTTP); err != nil {
		return nil, err
	}
	if err := putObj[ReservedBinding](m, "ws", b.WS); err != nil {
		return nil, err
	}
	if err := putObj[KafkaOperationBinding](m, "kafka", b.Kafka); err != nil {
		return nil, err
	}
	if err := putObj[ReservedBinding](m, "anypointmq", b.AnypointMQ); err != nil {
		return nil, err
	}
	if err := putObj[AMQPOperationBinding](m, "amqp", b.AMQP); err != nil {
		return nil, err
	}
	if err := putObj[ReservedBinding](m, "amqp1", b.AMQP1); err != nil {
		return nil, err
	}
	if err := putObj[MQTTOperationBinding](m, "mqtt", b.MQTT); err != nil {
		return nil, err
	}
	if err := putObj[ReservedBinding](m, "mqtt5", b.MQTT5); err != nil {
		return nil, err
	}
	if err := putObj[NATSOperationBinding](m, "nats", b.NATS); err != nil {
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
	if err := putExtensions(m, b.Extensions); err != nil {
		return nil, err
	}
	return m, nil
}

// HTTPOperationBinding describes an HTTP request or response operation.
type HTTPOperationBinding struct {
	// Type is required: "request" or "response".
	Type string
	// Method applies when Type is "request".
	Method string
	// Query must be an object schema with a properties key.
	Query          *Schema
	BindingVersion string
	Extensions     *Extensions
}

func (b *HTTPOperationBinding) decodeNode(n *yaml.Node, path string) error {
	entries, err := mappingEntries(n, path)
	if err != nil {
		return err
	}
	for _, e := range entries {
		kp := joinPath(path, e.key)
		switch e.key {
		case "type":
			err = setString(&b.Type, e.val, kp)
		case "method":
			err = setString(&b.Method, e.val, kp)
		case "query":
			b.Query, err = decodeObj[Schema](e.val, kp)
		case "bindingVersion":
			err = setString(&b.BindingVersion, e.val, kp)
		default:
			err = captureExtension(&b.Extensions, e.key, e.val, kp)
		}
		if err != nil {
			return err
		}
	}
	if b.Type == "" {
		return missing(path, "type")
	}
	return nil
}

func (b *HTTPOperationBinding) encodeNode() (*yaml.Node, error) {
	m := newMapping()
	putStrAlways(m, "type", b.Type)
	putStr(m, "method", b.Method)
	if err := putObj[Schema](m, "query", b.Query); err != nil {
		return nil, err
	}
	putStr(m, "bindingVersion", b.BindingVersion)
	if err := putExtensions(m, b.Extensions); err != nil {
		return nil, err
	}
	return m, nil
}

// KafkaOperationBinding describes a Kafka consumer operation. GroupID and
// ClientID are schemas constraining the allowed identifiers, per the Kafka
// binding specification.
type KafkaOperationBinding struct {
	GroupID        *Schema
	ClientID       *Schema
	BindingVersion string
	Extensions     *Extensions
}

func (b *KafkaOperationBinding) decodeNode(n *yaml.Node, path string) error {
	entries, err := mappingEntries(n, path)
	if err != nil {
		return err
	}
	for _, e := range entries {
		kp := joinPath(path, e.key)
		switch e.key {
		case "groupId":
			b.GroupID, err = decodeObj[Schema](e.val, kp)
		case "clientId":
			b.ClientID, err = decodeObj[Schema](e.val, kp)
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

func (b *KafkaOperationBinding) encodeNode() (*yaml.Node, error) {
	m := newMapping()
	if err := putObj[Schema](m, "groupId", b.GroupID); err != nil {
		return nil, err
	}
	if err := putObj[Schema](m, "clientId", b.ClientID); err != nil {
		return nil, err
	}
	putStr(m, "bindingVersion", b.BindingVersion)
	if err := putExtensions(m, b.Extensions); err != nil {
		return nil, err
	}
	return m, nil
}

// AMQPOperationBinding describes an AMQP 0-9-1 operation.
type AMQPOperationBinding struct {
	// Expiration is the message TTL; must be zero or greater.
	Expiration *int
	UserID     string
	// CC lists the routing keys the message is routed to at publish time.
	CC       []string
	Priority *int
	// DeliveryMode is 1 (transient) or 2 (persistent).
	DeliveryMode *int
	Mandatory    *bool
	// BCC is like CC, but consumers do not receive this information.
	BCC            []string
	ReplyTo        string
	Timestamp      *bool
	Ack            *bool
	BindingVersion string
	Extensions     *Extensions
}

func (b *AMQPOperationBinding) decodeNode(n *yaml.Node, path string) error {
	entries, err := mappingEntries(n, path)
	if err != nil {
		return err
	}
	for _, e := range entries {
		kp := joinPath(path, e.key)
		switch e.key {
		case "expiration":
			err = setIntPtr(&b.Expiration, e.val, kp)
		case "userId":
			err = setString(&b.UserID, e.val, kp)
		case "cc":
			err = setStringSlice(&b.CC, e.val, kp)
		case "priority":
			err = setIntPtr(&b.Priority, e.val, kp)
		case "deliveryMode":
			err = setIntPtr(&b.DeliveryMode, e.val, kp)
		case "mandatory":
			err = setBoolPtr(&b.Mandatory, e.val, kp)
		case "bcc":
			err = setStringSlice(&b.BCC, e.val, kp)
		case "replyTo":
			err = setString(&b.ReplyTo, e.val, kp)
		case "timestamp":
			err = setBoolPtr(&b.Timestamp, e.val, kp)
		case "ack":
			err = setBoolPtr(&b.Ack, e.val, kp)
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

func (b *AMQPOperationBinding) encodeNode() (*yaml.Node, error) {
	m := newMapping()
	putIntPtr(m, "expiration", b.Expiration)
	putStr(m, "userId", b.UserID)
	putStrSlice(m, "cc", b.CC)
	putIntPtr(m, "priority", b.Priority)
	putIntPtr(m, "deliveryMode", b.DeliveryMode)
	putBoolPtr(m, "mandatory", b.Mandatory)
	putStrSlice(m, "bcc", b.BCC)
	putStr(m, "replyTo", b.ReplyTo)
	putBoolPtr(m, "timestamp", b.Timestamp)
	putBoolPtr(m, "ack", b.Ack)
	putStr(m, "bindingVersion", b.BindingVersion)
	if err := putExtensions(m, b.Extensions); err != nil {
		return nil, err
	}
	return m, nil
}

// MQTTOperationBinding describes an MQTT operation.
type MQTTOperationBinding struct {
	// QoS is 0 (at most once), 1 (at least once), or 2 (exactly once).
	QoS            *int
	Retain         *bool
	BindingVersion string
	Extensions     *Extensions
}

func (b *MQTTOperationBinding) decodeNode(n *yaml.Node, path string) error {
	entries, err := mappingEntries(n, path)
	if err != nil {
		return err
	}
	for _, e := range entries {
		kp := joinPath(path, e.key)
		switch e.key {
		case "qos":
			err = setIntPtr(&b.QoS, e.val, kp)
		case "retain":
			err = setBoolPtr(&b.Retain, e.val, kp)
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

func (b *MQTTOperationBinding) encodeNode() (*yaml.Node, error) {
	m := newMapping()
	putIntPtr(m, "qos", b.QoS)
	putBoolPtr(m, "retain", b.Retain)
	putStr(m, "bindingVersion", b.BindingVersion)
	if err := putExtensions(m, b.Extensions); err != nil {
		return nil, err
	}
	return m, nil
}

// NATSOperationBinding describes a NATS operation.
type NATSOperationBinding struct {
	// Queue names the queue group; at most 255 characters.
	Queue          string
	BindingVersion string
	Extensions     *Extensions
}

func (b *NATSOperationBinding) decodeNode(n *yaml.Node, path string) error {
	entries, err := mappingEntries(n, path)
	if err != nil {
		return err
	}
	for _, e := range entries {
		kp := joinPath(path, e.key)
		switch e.key {
		case "queue":
			err = setString(&b.Queue, e.val, kp)
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

func (b *NATSOperationBinding) encodeNode() (*yaml.Node, error) {
	m := newMapping()
	putStr(m, "queue", b.Queue)
	putStr(m, "bindingVersion", b.BindingVersion)
	if err := putExtensions(m, b.Extensions); err != nil {
		return nil, err
	}
	return m, nil
}
