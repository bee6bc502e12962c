package parser

import "go.yaml.in/yaml/v4"

// ServerBinding maps protocol names to protocol-specific server
// definitions. Unknown protocol keys land in Extensions untouched.
type ServerBinding struct {
	HTTP       *ReservedBinding
	WS         *ReservedBinding
	Kafka      *ReservedBinding
	AMQP       *ReservedBinding
	AMQP1      *ReservedBinding
	MQTT       *MQTTServerBinding
	MQTT5      *ReservedBinding
	NATS       *ReservedBinding
	JMS        *ReservedBinding
	SNS        *ReservedBinding
	SQS        *ReservedBinding
	STOMP      *ReservedBinding
	Redis      *ReservedBinding
	Mercure    *ReservedBinding
	IBMMQ      *IBMMQServerBinding
	Extensions *Extensions
}

func (b *ServerBinding) decodeNode(n *yaml.Node, path string) error {
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
			b.WS, err = decodeObj[ReservedBinding](e.val, kp)
		case "kafka":
			b.Kafka, err = decodeObj[ReservedBinding](e.val, kp)
		case "amqp":
			b.AMQP, err = decodeObj[ReservedBinding](e.val, kp)
		case "amqp1":
			b.AMQP1, err = decodeObj[ReservedBinding](e.val, kp)
		case "mqtt":
			b.MQTT, err = decodeObj[MQTTServerBinding](e.val, kp)
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
			b.IBMMQ, err = decodeObj[IBMMQServerBinding](e.val, kp)
		default:
			err = captureExtension(&b.Extensions, e.key, e.val, kp)
		}
		if err != nil {
			return err
		}
	}
	return nil
}

func (b *ServerBinding) encodeNode() (*yaml.Node, error) {
	m := newMapping()
	if err := putObj[ReservedBinding](m, "http", b.HTTP); err != nil {
		return nil, err
	}
	if err := putObj[ReservedBinding](m, "ws", b.WS); err != nil {
		return nil, err
	}
	if err := putObj[ReservedBinding](m, "kafka", b.Kafka); err != nil {
		return nil, err
	}
	if err := putObj[ReservedBinding](m, "amqp", b.AMQP); err != nil {
		return nil, err
	}
	if err := putObj[ReservedBinding](m, "amqp1", b.AMQP1); err != nil {
		return nil, err
	}
	if err := putObj[MQTTServerBinding](m, "mqtt", b.MQTT); err != nil {
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
	if err := putObj[IBMMQServerBinding](m, "ibmmq", b.IBMMQ); err != nil {
		return nil, err
	}
	if err := putExtensions(m, b.Extensions); err != nil {
		return nil, err
	}
	return m, nil
}

// MQTTServerBinding describes the MQTT connection to the server.
type MQTTServerBinding struct {
	ClientID     string
	CleanSession *bool
	// LastWill is the message the broker publishes if the client
	// disconnects abnormally.
	LastWill *MQTTLastWill
	// KeepAlive is the interval in seconds between client pings.
	KeepAlive      *int
	BindingVersion string
	Extensions     *Extensions
}

func (b *MQTTServerBinding) decodeNode(n *yaml.Node, path string) error {
	entries, err := mappingEntries(n, path)
	if err != nil {
		return err
	}
	for _, e := range entries {
		kp := joinPath(path, e.key)
		switch e.key {
		case "clientId":
			err = setString(&b.ClientID, e.val, kp)
		case "cleanSession":
			err = setBoolPtr(&b.CleanSession, e.val, kp)
		case "lastWill":
			b.LastWill, err = decodeObj[MQTTLastWill](e.val, kp)
		case "keepAlive":
			err = setIntPtr(&b.KeepAlive, e.val, kp)
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

func (b *MQTTServerBinding) encodeNode() (*yaml.Node, error) {
	m := newMapping()
	putStr(m, "clientId", b.ClientID)
	putBoolPtr(m, "cleanSession", b.CleanSession)
	if err := putObj[MQTTLastWill](m, "lastWill", b.LastWill); err != nil {
		return nil, err
	}
	putIntPtr(m, "keepAlive", b.KeepAlive)
	putStr(m, "bindingVersion", b.BindingVersion)
	if err := putExtensions(m, b.Extensions); err != nil {
		return nil, err
	}
	return m, nil
}

// MQTTLastWill configures the MQTT last-will-and-testament message.
type MQTTLastWill struct {
	Topic      string
	QoS        *int
	Message    string
	Retain     *bool
	Extensions *Extensions
}

func (w *MQTTLastWill) decodeNode(n *yaml.Node, path string) error {
	entries, err := mappingEntries(n, path)
	if err != nil {
		return err
	}
	for _, e := range entries {
		kp := joinPath(path, e.key)
		switch e.key {
		case "topic":
			err = setString(&w.Topic, e.val, kp)
		case "qos":
			err = setIntPtr(&w.QoS, e.val, kp)
		case "message":
			err = setString(&w.Message, e.val, kp)
		case "retain":
			err = setBoolPtr(&w.Retain, e.val, kp)
		default:
			err = captureExtension(&w.Extensions, e.key, e.val, kp)
		}
		if err != nil {
			return err
		}
	}
	return nil
}

func (w *MQTTLastWill) encodeNode() (*yaml.Node, error) {
	m := newMapping()
	putStr(m, "topic", w.Topic)
	putIntPtr(m, "qos", w.QoS)
	putStr(m, "message", w.Message)
	putBoolPtr(m, "retain", w.Retain)
	if err := putExtensions(m, w.Extensions); err != nil {
		return nil, err
	}
	return m, nil
}

// IBMMQServerBinding describes the connection to an IBM MQ queue manager.
type IBMMQServerBinding struct {
	// GroupID identifies the queue manager group the client connects to.
	GroupID string
	// CCDTQueueManagerName is the queue manager name expected from the
	// client channel definition table; defaults to "*".
	CCDTQueueManagerName string
	// CipherSpec names the TLS cipher specification for the channel.
	CipherSpec string
	// MultiEndpointServer reports whether multiple connections can be
	// workload balanced.
	MultiEndpointServer *bool
	// HeartBeatInterval is the period in seconds between heartbeat flows,
	// 0 to 999999.
	HeartBeatInterval *int
	BindingVersion    string
	Extensions        *Extensions
}

func (b *IBMMQServerBinding) decodeNode(n *yaml.Node, path string) error {
	entries, err := mappingEntries(n, path)
	if err != nil {
		return err
	}
	for _, e := range entries {
		kp := joinPath(path, e.key)
		switch e.key {
		case "groupId":
			err = setString(&b.GroupID, e.val, kp)
		case "ccdtQueueManagerName":
			err = setString(&b.CCDTQueueManagerName, e.val, kp)
		case "cipherSpec":
			err = setString(&b.CipherSpec, e.val, kp)
		case "multiEndpointServer":
			err = setBoolPtr(&b.MultiEndpointServer, e.val, kp)
		case "heartBeatInterval":
			err = setIntPtr(&b.HeartBeatInterval, e.val, kp)
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

func (b *IBMMQServerBinding) encodeNode() (*yaml.Node, error) {
	m := newMapping()
	putStr(m, "groupId", b.GroupID)
	putStr(m, "ccdtQueueManagerName", b.CCDTQueueManagerName)
	putStr(m, "cipherSpec", b.CipherSpec)
	putBoolPtr(m, "multiEndpointServer", b.MultiEndpointServer)
	putIntPtr(m, "heartBeatInterval", b.HeartBeatInterval)
	putStr(m, "bindingVersion", b.BindingVersion)
	if err := putExtensions(m, b.Extensions); err != nil {
		return nil, err
	}
	return m, nil
}
