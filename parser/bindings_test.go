package parser

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOperationBindingKafka(t *testing.T) {
	src := `
kafka:
  groupId:
    type: string
    enum: [myGroupId]
  clientId:
    type: string
  bindingVersion: '0.1.0'
`
	var b OperationBinding
	require.NoError(t, b.decodeNode(yamlNode(t, src), "bindings"))

	require.NotNil(t, b.Kafka)
	require.NotNil(t, b.Kafka.GroupID)
	assert.Equal(t, "string", b.Kafka.GroupID.Type)
	assert.Equal(t, []any{"myGroupId"}, b.Kafka.GroupID.Enum)
	require.NotNil(t, b.Kafka.ClientID)
	assert.Equal(t, "0.1.0", b.Kafka.BindingVersion)
}

func TestChannelBindingAMQP(t *testing.T) {
	src := `
amqp:
  is: routingKey
  exchange:
    name: myExchange
    type: topic
    durable: true
    autoDelete: false
    vhost: /
  bindingVersion: 0.2.0
`
	var b ChannelBinding
	require.NoError(t, b.decodeNode(yamlNode(t, src), "bindings"))

	require.NotNil(t, b.AMQP)
	assert.Equal(t, "routingKey", b.AMQP.Is)
	require.NotNil(t, b.AMQP.Exchange)
	assert.Equal(t, "myExchange", b.AMQP.Exchange.Name)
	assert.Equal(t, "topic", b.AMQP.Exchange.Type)
	require.NotNil(t, b.AMQP.Exchange.Durable)
	assert.True(t, *b.AMQP.Exchange.Durable)
	require.NotNil(t, b.AMQP.Exchange.AutoDelete)
	assert.False(t, *b.AMQP.Exchange.AutoDelete)
	assert.Equal(t, "/", b.AMQP.Exchange.VHost)
}

func TestServerBindingMQTTLastWill(t *testing.T) {
	src := `
mqtt:
  clientId: guest
  cleanSession: true
  lastWill:
    topic: /last-wills
    qos: 2
    message: Guest gone offline.
    retain: false
  keepAlive: 60
`
	var b ServerBinding
	require.NoError(t, b.decodeNode(yamlNode(t, src), "bindings"))

	require.NotNil(t, b.MQTT)
	assert.Equal(t, "guest", b.MQTT.ClientID)
	require.NotNil(t, b.MQTT.LastWill)
	assert.Equal(t, "/last-wills", b.MQTT.LastWill.Topic)
	require.NotNil(t, b.MQTT.LastWill.QoS)
	assert.Equal(t, 2, *b.MQTT.LastWill.QoS)
	require.NotNil(t, b.MQTT.KeepAlive)
	assert.Equal(t, 60, *b.MQTT.KeepAlive)
}

func TestReservedBindingRoundTripsContents(t *testing.T) {
	// Protocols without a typed binding shape keep their keys so the
	// document still round-trips.
	src := `
nats:
  queue: messages
  bindingVersion: 0.1.0
`
	var b MessageBinding
	require.NoError(t, b.decodeNode(yamlNode(t, src), "bindings"))
	require.NotNil(t, b.NATS)
	v, ok := b.NATS.Extensions.Get("queue")
	require.True(t, ok)
	assert.Equal(t, "messages", v)

	n, err := b.encodeNode()
	require.NoError(t, err)
	var out MessageBinding
	require.NoError(t, out.decodeNode(n, "bindings"))
	v, ok = out.NATS.Extensions.Get("queue")
	require.True(t, ok)
	assert.Equal(t, "messages", v)
}

func TestBindingUnknownProtocolGoesToExtensions(t *testing.T) {
	src := `
pulsar:
  namespace: staging
x-internal: true
`
	var b ChannelBinding
	require.NoError(t, b.decodeNode(yamlNode(t, src), "bindings"))
	require.NotNil(t, b.Extensions)
	assert.Equal(t, []string{"pulsar", "x-internal"}, b.Extensions.Keys())
}

func TestIBMMQChannelBindingRequiresQueueObjectName(t *testing.T) {
	src := `
ibmmq:
  destinationType: queue
  queue:
    isPartitioned: false
`
	var b ChannelBinding
	err := b.decodeNode(yamlNode(t, src), "bindings")
	require.Error(t, err)
	assert.ErrorContains(t, err, "objectName")
}
