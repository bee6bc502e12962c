package mcpserver

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/modelcontextprotocol/go-sdk/mcp"
)

type convertInput struct {
	Spec   specInput `json:"spec"             jsonschema:"The AsyncAPI document to convert"`
	Target string    `json:"target"           jsonschema:"Target format (json or yaml)"`
	Output string    `json:"output,omitempty" jsonschema:"File path to write the converted document. If omitted the document is returned inline."`
}

type convertOutput struct {
	SourceFormat string `json:"source_format"`
	TargetFormat string `json:"target_format"`
	WrittenTo    string `json:"written_to,omitempty"`
	Document     string `json:"document,omitempty"`
}

func handleConvert(_ context.Context, _ *mcp.CallToolRequest, input convertInput) (*mcp.CallToolResult, convertOutput, error) {
	target := strings.ToLower(input.Target)
	if target != "json" && target != "yaml" {
		return errResult(fmt.Errorf("target must be json or yaml (got %q)", input.Target)), convertOutput{}, nil
	}

	result, err := input.Spec.resolve()
	if err != nil {
		return errResult(err), convertOutput{}, nil
	}

	var data []byte
	if target == "json" {
		data, err = result.MarshalJSONIndent("", "  ")
	} else {
		data, err = result.MarshalYAML()
	}
	if err != nil {
		return errResult(err), convertOutput{}, nil
	}

	output := convertOutput{
		SourceFormat: string(result.SourceFormat),
		TargetFormat: target,
	}

	if input.Output != "" {
		if err := os.WriteFile(input.Output, data, 0o644); err != nil {
			return errResult(fmt.Errorf("failed to write output file: %w", err)), convertOutput{}, nil
		}
		output.WrittenTo = input.Output
	} else {
		output.Document = string(data)
	}

	return nil, output, nil
}
