package mcpserver

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConvertTool_YAMLToJSON(t *testing.T) {
	input := convertInput{
		Spec:   specInput{Content: testSpecYAML},
		Target: "json",
	}
	_, output, err := handleConvert(context.Background(), &mcp.CallToolRequest{}, input)
	require.NoError(t, err)

	assert.Equal(t, "yaml", output.SourceFormat)
	assert.Equal(t, "json", output.TargetFormat)
	assert.Empty(t, output.WrittenTo)
	assert.True(t, strings.HasPrefix(output.Document, "{"))
	assert.Contains(t, output.Document, `"asyncapi": "2.6.0"`)
}

func TestConvertTool_JSONToYAML(t *testing.T) {
	jsonSpec := `{"asyncapi": "2.0.0", "info": {"title": "t", "version": "1"}, "channels": {}}`
	input := convertInput{
		Spec:   specInput{Content: jsonSpec},
		Target: "yaml",
	}
	_, output, err := handleConvert(context.Background(), &mcp.CallToolRequest{}, input)
	require.NoError(t, err)

	assert.Equal(t, "json", output.SourceFormat)
	assert.Equal(t, "yaml", output.TargetFormat)
	assert.Contains(t, output.Document, "asyncapi: 2.0.0")
}

func TestConvertTool_WritesOutputFile(t *testing.T) {
	outPath := filepath.Join(t.TempDir(), "out.json")
	input := convertInput{
		Spec:   specInput{Content: testSpecYAML},
		Target: "json",
		Output: outPath,
	}
	_, output, err := handleConvert(context.Background(), &mcp.CallToolRequest{}, input)
	require.NoError(t, err)

	assert.Equal(t, outPath, output.WrittenTo)
	assert.Empty(t, output.Document)
	data, err := os.ReadFile(outPath)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"Streetlights API"`)
}

func TestConvertTool_InvalidTarget(t *testing.T) {
	input := convertInput{
		Spec:   specInput{Content: testSpecYAML},
		Target: "toml",
	}
	result, _, err := handleConvert(context.Background(), &mcp.CallToolRequest{}, input)
	require.NoError(t, err)
	require.NotNil(t, result)
	assert.True(t, result.IsError)
}
