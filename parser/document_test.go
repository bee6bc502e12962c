package parser

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.yaml.in/yaml/v4"

	"github.com/erraggy/asyncapitools/aaerrors"
)

const minimalDoc = `
asyncapi: 2.6.0
info:
  title: Account Service
  version: 1.0.0
channels:
  user/signedup:
    subscribe:
      operationId: onUserSignedUp
      message:
        name: userSignedUp
        payload:
          type: object
          properties:
            displayName:
              type: string
`

func TestDocumentDecodeMinimal(t *testing.T) {
	var d Document
	require.NoError(t, yaml.Unmarshal([]byte(minimalDoc), &d))

	assert.Equal(t, "2.6.0", d.AsyncAPI)
	assert.Equal(t, "Account Service", d.Info.Title)
	assert.Equal(t, "1.0.0", d.Info.Version)

	ch, ok := d.Channels.Get("user/signedup")
	require.True(t, ok)
	require.NotNil(t, ch.Subscribe)
	assert.Equal(t, "onUserSignedUp", ch.Subscribe.OperationID)
	require.NotNil(t, ch.Subscribe.Message)
	require.NotNil(t, ch.Subscribe.Message.Single)
	msg := ch.Subscribe.Message.Single.Value
	require.NotNil(t, msg)
	assert.Equal(t, "userSignedUp", msg.Name)
	require.NotNil(t, msg.Payload)
	require.NotNil(t, msg.Payload.Schema)
	assert.Equal(t, []string{"displayName"}, msg.Payload.Schema.Properties.Keys())
}

func TestDocumentRequiredFields(t *testing.T) {
	tests := []struct {
		name  string
		src   string
		field string
	}{
		{
			name:  "missing asyncapi",
			src:   "info:\n  title: t\n  version: '1'\nchannels: {}\n",
			field: "asyncapi",
		},
		{
			name:  "missing info",
			src:   "asyncapi: 2.0.0\nchannels: {}\n",
			field: "info",
		},
		{
			name:  "missing channels",
			src:   "asyncapi: 2.0.0\ninfo:\n  title: t\n  version: '1'\n",
			field: "channels",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var d Document
			err := yaml.Unmarshal([]byte(tt.src), &d)
			require.Error(t, err)
			assert.ErrorIs(t, err, aaerrors.ErrMissingField)
			assert.ErrorContains(t, err, tt.field)
		})
	}
}

func TestDocumentChannelOrderSurvivesRoundTrip(t *testing.T) {
	src := `
asyncapi: 2.6.0
info:
  title: t
  version: '1'
channels:
  zebra/events: {}
  alpha/events: {}
  middle/events: {}
`
	var d Document
	require.NoError(t, yaml.Unmarshal([]byte(src), &d))
	assert.Equal(t, []string{"zebra/events", "alpha/events", "middle/events"}, d.Channels.Keys())

	data, err := d.MarshalJSON()
	require.NoError(t, err)
	var out Document
	require.NoError(t, out.UnmarshalJSON(data))
	assert.Equal(t, []string{"zebra/events", "alpha/events", "middle/events"}, out.Channels.Keys())
}

func TestDocumentJSONRoundTripEquality(t *testing.T) {
	src := `
asyncapi: 2.6.0
id: urn:example:account-service
info:
  title: Account Service
  version: 1.0.0
  x-audience: internal
defaultContentType: application/json
servers:
  production:
    url: broker.example.com
    protocol: kafka
    protocolVersion: '1.0'
channels:
  user/signedup:
    publish:
      message:
        contentType: application/json
        payload:
          type: object
          properties:
            id:
              type: integer
            ratio:
              type: number
              example: 1.0
components:
  schemas:
    User:
      type: object
  messages:
    userSignedUp:
      name: userSignedUp
tags:
  - name: accounts
x-linting: strict
`
	var d Document
	require.NoError(t, yaml.Unmarshal([]byte(src), &d))

	data, err := d.MarshalJSON()
	require.NoError(t, err)
	var out Document
	require.NoError(t, out.UnmarshalJSON(data))

	assert.Equal(t, &d, &out)
}

func TestDocumentMarshalJSONFloatsKeepDecimalPoint(t *testing.T) {
	src := `
asyncapi: 2.6.0
info:
  title: t
  version: '1'
channels: {}
x-ratio: 1.0
`
	var d Document
	require.NoError(t, yaml.Unmarshal([]byte(src), &d))
	data, err := d.MarshalJSON()
	require.NoError(t, err)
	assert.Contains(t, string(data), `"x-ratio":1.0`)
}

func TestDocumentMarshalYAML(t *testing.T) {
	var d Document
	require.NoError(t, yaml.Unmarshal([]byte(minimalDoc), &d))

	data, err := yaml.Marshal(&d)
	require.NoError(t, err)

	var out Document
	require.NoError(t, yaml.Unmarshal(data, &out))
	assert.Equal(t, d.Info.Title, out.Info.Title)
	assert.Equal(t, d.Channels.Keys(), out.Channels.Keys())
}

func TestDocumentUnmarshalJSONMalformed(t *testing.T) {
	var d Document
	err := d.UnmarshalJSON([]byte(`{"asyncapi": `))
	require.Error(t, err)
	assert.ErrorIs(t, err, aaerrors.ErrParse)
}
