package mcpserver

import (
	"context"
	"testing"

	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSpecYAML = `asyncapi: "2.6.0"
info:
  title: Streetlights API
  description: Manage city streetlights
  version: "1.0.0"
defaultContentType: application/json
servers:
  production:
    url: broker.example.com
    protocol: mqtt
tags:
  - name: lights
  - name: ops
channels:
  smartylighting/event/lighting/measured:
    publish:
      operationId: receiveLightMeasurement
      message:
        name: lightMeasured
        payload:
          type: object
          properties:
            lumens:
              type: integer
  smartylighting/action/turn/on:
    subscribe:
      operationId: turnOn
      message:
        name: turnOnOff
`

func TestParseTool_Summary(t *testing.T) {
	input := parseInput{
		Spec: specInput{Content: testSpecYAML},
	}
	_, output, err := handleParse(context.Background(), &mcp.CallToolRequest{}, input)
	require.NoError(t, err)

	assert.Equal(t, "2.6.0", output.Version)
	assert.Equal(t, "Streetlights API", output.Title)
	assert.Equal(t, "Manage city streetlights", output.Description)
	assert.Equal(t, "application/json", output.DefaultContentType)
	assert.Equal(t, "yaml", output.Format)
	assert.Equal(t, 2, output.ChannelCount)
	assert.Equal(t, 2, output.OperationCount)
	assert.Equal(t, []string{"lights", "ops"}, output.Tags)
	assert.Empty(t, output.FullDocument)

	require.Len(t, output.Servers, 1)
	assert.Equal(t, "production", output.Servers[0].Name)
	assert.Equal(t, "broker.example.com", output.Servers[0].URL)
	assert.Equal(t, "mqtt", output.Servers[0].Protocol)
}

func TestParseTool_Full(t *testing.T) {
	input := parseInput{
		Spec: specInput{Content: testSpecYAML},
		Full: true,
	}
	_, output, err := handleParse(context.Background(), &mcp.CallToolRequest{}, input)
	require.NoError(t, err)

	assert.Equal(t, "2.6.0", output.Version)
	assert.NotEmpty(t, output.FullDocument)
	assert.Contains(t, output.FullDocument, "Streetlights API")
	assert.Contains(t, output.FullDocument, "smartylighting/event/lighting/measured")
}

func TestParseTool_InvalidSpec(t *testing.T) {
	input := parseInput{
		Spec: specInput{Content: "not valid yaml: ["},
	}
	result, output, err := handleParse(context.Background(), &mcp.CallToolRequest{}, input)
	require.NoError(t, err)
	assert.NotNil(t, result)
	assert.True(t, result.IsError)
	assert.Empty(t, output.Version)
}

func TestParseTool_NoInput(t *testing.T) {
	result, _, err := handleParse(context.Background(), &mcp.CallToolRequest{}, parseInput{})
	require.NoError(t, err)
	require.NotNil(t, result)
	assert.True(t, result.IsError)
}
