package parser

import "go.yaml.in/yaml/v4"

// ChannelBinding maps protocol names to protocol-specific channel
// definitions. Unknown protocol keys land in Extensions untouched.
type ChannelBinding struct {
	HTTP       *ReservedBinding
	WS         *WebSocketsChannelBinding
	Kafka      *ReservedBinding
	AMQP       *AMQPChannelBinding
	AMQP1      *ReservedBinding
	MQTT       *ReservedBinding
	MQTT5      *ReservedBinding
	NATS       *ReservedBinding
	JMS        *ReservedBinding
	SNS        *ReservedBinding
	SQS        *ReservedBinding
	STOMP      *ReservedBinding
	Redis      *ReservedBinding
	Mercure    *ReservedBinding
	IBMMQ      *IBMMQChannelBinding
	Extensions *Extensions
}

func (b *ChannelBinding) decodeNode(n *yaml.Node, path string) error {
	entries, err := mappingEntries(n, path)
	if err != nil {
		return err
	}
	for _, e := range entries {
		kp := joinPath(path, e.key)
		switch e.key {
		case "http":
			b.HTTP, err = decodeObj[ReservedBinding](e.val, kp)
		case "ws":
			b.WS, err = decodeObj[WebSocketsChannelBinding](e.val, kp)
		case "kafka":
			b.Kafka, err = decodeObj[ReservedBinding](e.val, kp)
		case "amqp":
			b.AMQP, err = decodeObj[AMQPChannelBinding](e.val, kp)
		case "amqp1":
			b.AMQP1, err = decodeObj[ReservedBinding](e.val, kp)
		case "mqtt":
			b.MQTT, err = decodeObj[ReservedBinding](e.val, kp)
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
			b.IBMMQ, err = decodeObj[IBMMQChannelBinding](e.val, kp)
		default:
			err = captureExtension(&b.Extensions, e.key, e.val, kp)
		}
		if err != nil {
			return err
		}
	}
	return nil
}

func (b *ChannelBinding) encodeNode() (*yaml.Node, error) {
	m := newMapping()
	if err := putObj[ReservedBinding](m, "http", b.HTTP); err != nil {
		return nil, err
	}
	if err := putObj[WebSocketsChannelBinding](m, "ws", b.WS); err != nil {
		return nil, err
	}
	if err := putObj[ReservedBinding](m, "kafka", b.Kafka); err != nil {
		return nil, err
	}
	if err := putObj[AMQPChannelBinding](m, "amqp", b.AMQP); err != nil {
		return nil, err
	}
	if err := putObj[ReservedBinding](m, "amqp1", b.AMQP1); err != nil {
		return nil, err
	}
	if err := putObj[ReservedBinding](m, "mqtt", b.MQTT); err != nil {
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
	if err := putObj[IBMMQChannelBinding](m, "ibmmq", b.IBMMQ); err != nil {
		return nil, err
	}
	if err := putExtensions(m, b.Extensions); err != nil {
		return nil, err
	}
	return m, nil
}

// WebSocketsChannelBinding describes the single WebSocket connection channel
// in terms of its HTTP handshake.
type WebSocketsChannelBinding struct {
	// Method must be GET or POST.
	Method string
	// Query and Headers must be object schemas with a properties key.
	Query          *Schema
	Headers        *Schema
	BindingVersion string
	Extensions     *Extensions
}

func (b *WebSocketsChannelBinding) decodeNode(n *yaml.Node, path string) error {
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

func (b *WebSocketsChannelBinding) encodeNode() (*yaml.Node, error) {
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

// AMQPChannelBinding describes the AMQP 0-9-1 channel: either a routing key
// with exchange properties or a queue.
type AMQPChannelBinding struct {
	// Is selects the channel type: "queue" or "routingKey" (the default).
	Is             string
	Exchange       *AMQPExchange
	Queue          *AMQPQueue
	BindingVersion string
	Extensions     *Extensions
}

func (b *AMQPChannelBinding) decodeNode(n *yaml.Node, path string) error {
	entries, err := mappingEntries(n, path)
	if err != nil {
		return err
	}
	for _, e := range entries {
		kp := joinPath(path, e.key)
		switch e.key {
		case "is":
			err = setString(&b.Is, e.val, kp)
		case "exchange":
			b.Exchange, err = decodeObj[AMQPExchange](e.val, kp)
		case "queue":
			b.Queue, err = decodeObj[AMQPQueue](e.val, kp)
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

func (b *AMQPChannelBinding) encodeNode() (*yaml.Node, error) {
	m := newMapping()
	putStr(m, "is", b.Is)
	if err := putObj[AMQPExchange](m, "exchange", b.Exchange); err != nil {
		return nil, err
	}
	if err := putObj[AMQPQueue](m, "queue", b.Queue); err != nil {
		return nil, err
	}
	putStr(m, "bindingVersion", b.BindingVersion)
	if err := putExtensions(m, b.Extensions); err != nil {
		return nil, err
	}
	return m, nil
}

// AMQPExchange holds the exchange properties used when Is is "routingKey".
type AMQPExchange struct {
	Name string
	// Type is one of topic, direct, fanout, default, or headers.
	Type       string
	Durable    *bool
	AutoDelete *bool
	VHost      string
	Extensions *Extensions
}

func (x *AMQPExchange) decodeNode(n *yaml.Node, path string) error {
	entries, err := mappingEntries(n, path)
	if err != nil {
		return err
	}
	for _, e := range entries {
		kp := joinPath(path, e.key)
		switch e.key {
		case "name":
			err = setString(&x.Name, e.val, kp)
		case "type":
			err = setString(&x.Type, e.val, kp)
		case "durable":
			err = setBoolPtr(&x.Durable, e.val, kp)
		case "autoDelete":
			err = setBoolPtr(&x.AutoDelete, e.val, kp)
		case "vhost":
			err = setString(&x.VHost, e.val, kp)
		default:
			err = captureExtension(&x.Extensions, e.key, e.val, kp)
		}
		if err != nil {
			return err
		}
	}
	return nil
}

func (x *AMQPExchange) encodeNode() (*yaml.Node, error) {
	m := newMapping()
	putStr(m, "name", x.Name)
	putStr(m, "type", x.Type)
	putBoolPtr(m, "durable", x.Durable)
	putBoolPtr(m, "autoDelete", x.AutoDelete)
	putStr(m, "vhost", x.VHost)
	if err := putExtensions(m, x.Extensions); err != nil {
		return nil, err
	}
	return m, nil
}

// AMQPQueue holds the queue properties used when Is is "queue".
type AMQPQueue struct {
	Name       string
	Durable    *bool
	Exclusive  *bool
	AutoDelete *bool
	VHost      string
	Extensions *Extensions
}

func (q *AMQPQueue) decodeNode(n *yaml.Node, path string) error {
	entries, err := mappingEntries(n, path)
	if err != nil {
		return err
	}
	for _, e := range entries {
		kp := joinPath(path, e.key)
		switch e.key {
		case "name":
			err = setString(&q.Name, e.val, kp)
		case "durable":
			err = setBoolPtr(&q.Durable, e.val, kp)
		case "exclusive":
			err = setBoolPtr(&q.Exclusive, e.val, kp)
		case "autoDelete":
			err = setBoolPtr(&q.AutoDelete, e.val, kp)
		case "vhost":
			err = setString(&q.VHost, e.val, kp)
		default:
			err = captureExtension(&q.Extensions, e.key, e.val, kp)
		}
		if err != nil {
			return err
		}
	}
	return nil
}

func (q *AMQPQueue) encodeNode() (*yaml.Node, error) {
	m := newMapping()
	putStr(m, "name", q.Name)
	putBoolPtr(m, "durable", q.Durable)
	putBoolPtr(m, "exclusive", q.Exclusive)
	putBoolPtr(m, "autoDelete", q.AutoDelete)
	putStr(m, "vhost", q.VHost)
	if err := putExtensions(m, q.Extensions); err != nil {
		return nil, err
	}
	return m, nil
}

// IBMMQChannelBinding maps a channel to an IBM MQ queue or topic.
type IBMMQChannelBinding struct {
	// DestinationType is "topic" or "queue". Queue and Topic must not
	// coexist within one binding.
	DestinationType string
	Queue           *IBMMQQueue
	Topic           *IBMMQTopic
	// MaxMsgLength is the maximum physical message size in bytes accepted
	// by the destination, 0 to 104,857,600.
	MaxMsgLength   *int
	BindingVersion string
	Extensions     *Extensions
}

func (b *IBMMQChannelBinding) decodeNode(n *yaml.Node, path string) error {
	entries, err := mappingEntries(n, path)
	if err != nil {
		return err
	}
	for _, e := range entries {
		kp := joinPath(path, e.key)
		switch e.key {
		case "destinationType":
			err = setString(&b.DestinationType, e.val, kp)
		case "queue":
			b.Queue, err = decodeObj[IBMMQQueue](e.val, kp)
		case "topic":
			b.Topic, err = decodeObj[IBMMQTopic](e.val, kp)
		case "maxMsgLength":
			err = setIntPtr(&b.MaxMsgLength, e.val, kp)
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

func (b *IBMMQChannelBinding) encodeNode() (*yaml.Node, error) {
	m := newMapping()
	putStr(m, "destinationType", b.DestinationType)
	if err := putObj[IBMMQQueue](m, "queue", b.Queue); err != nil {
		return nil, err
	}
	if err := putObj[IBMMQTopic](m, "topic", b.Topic); err != nil {
		return nil, err
	}
	putIntPtr(m, "maxMsgLength", b.MaxMsgLength)
	putStr(m, "bindingVersion", b.BindingVersion)
	if err := putExtensions(m, b.Extensions); err != nil {
		return nil, err
	}
	return m, nil
}

// IBMMQQueue names the IBM MQ queue a channel maps to.
type IBMMQQueue struct {
	// ObjectName is required: a valid IBM MQ queue name, at most 48
	// characters.
	ObjectName    string
	IsPartitioned *bool
	Exclusive     *bool
	Extensions    *Extensions
}

func (q *IBMMQQueue) decodeNode(n *yaml.Node, path string) error {
	entries, err := mappingEntries(n, path)
	if err != nil {
		return err
	}
	for _, e := range entries {
		kp := joinPath(path, e.key)
		switch e.key {
		case "objectName":
			err = setString(&q.ObjectName, e.val, kp)
		case "isPartitioned":
			err = setBoolPtr(&q.IsPartitioned, e.val, kp)
		case "exclusive":
			err = setBoolPtr(&q.Exclusive, e.val, kp)
		default:
			err = captureExtension(&q.Extensions, e.key, e.val, kp)
		}
		if err != nil {
			return err
		}
	}
	if q.ObjectName == "" {
		return missing(path, "objectName")
	}
	return nil
}

func (q *IBMMQQueue) encodeNode() (*yaml.Node, error) {
	m := newMapping()
	putStrAlways(m, "objectName", q.ObjectName)
	putBoolPtr(m, "isPartitioned", q.IsPartitioned)
	putBoolPtr(m, "exclusive", q.Exclusive)
	if err := putExtensions(m, q.Extensions); err != nil {
		return nil, err
	}
	return m, nil
}

// IBMMQTopic names the IBM MQ topic a channel maps to. String and
// ObjectName may coexist; either overrides the channel name.
type IBMMQTopic struct {
	String           string
	ObjectName       string
	DurablePermitted *bool
	LastMsgRetained  *bool
	Extensions       *Extensions
}

func (t *IBMMQTopic) decodeNode(n *yaml.Node, path string) error {
	entries, err := mappingEntries(n, path)
	if err != nil {
		return err
	}
	for _, e := range entries {
		kp := joinPath(path, e.key)
		switch e.key {
		case "string":
			err = setString(&t.String, e.val, kp)
		case "objectName":
			err = setString(&t.ObjectName, e.val, kp)
		case "durablePermitted":
			err = setBoolPtr(&t.DurablePermitted, e.val, kp)
		case "lastMsgRetained":
			err = setBoolPtr(&t.LastMsgRetained, e.val, kp)
		default:
			err = captureExtension(&t.Extensions, e.key, e.val, kp)
		}
		if err != nil {
			return err
		}
	}
	return nil
}

func (t *IBMMQTopic) encodeNode() (*yaml.Node, error) {
	m := newMapping()
	putStr(m, "string", t.String)
	putStr(m, "objectName", t.ObjectName)
	putBoolPtr(m, "durablePermitted", t.DurablePermitted)
	putBoolPtr(m, "lastMsgRetained", t.LastMsgRetained)
	if err := putExtensions(m, t.Extensions); err != nil {
		return nil, err
	}
	return m, nil
}
