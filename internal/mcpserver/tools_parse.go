package mcpserver

import (
	"context"

	"github.com/erraggy/asyncapitools/parser"
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

type parseInput struct {
	Spec specInput `json:"spec"           jsonschema:"The AsyncAPI document to parse"`
	Full bool      `json:"full,omitempty" jsonschema:"Return full parsed document instead of summary"`
}

type parseSummaryServer struct {
	Name     string `json:"name"`
	URL      string `json:"url"`
	Protocol string `json:"protocol"`
}

type parseOutput struct {
	Version            string               `json:"version"`
	Title              string               `json:"title"`
	Description        string               `json:"description,omitempty"`
	DefaultContentType string               `json:"default_content_type,omitempty"`
	ChannelCount       int                  `json:"channel_count"`
	OperationCount     int                  `json:"operation_count"`
	MessageCount       int                  `json:"message_count"`
	SchemaCount        int                  `json:"schema_count"`
	Servers            []parseSummaryServer `json:"servers,omitempty"`
	Tags               []string             `json:"tags,omitempty"`
	Format             string               `json:"format"`
	FullDocument       string               `json:"full_document,omitempty"`
}

func handleParse(_ context.Context, _ *mcp.CallToolRequest, input parseInput) (*mcp.CallToolResult, parseOutput, error) {
	result, err := input.Spec.resolve()
	if err != nil {
		return errResult(err), parseOutput{}, nil
	}

	output := parseOutput{
		Version:        result.Version,
		Format:         string(result.SourceFormat),
		ChannelCount:   result.Stats.ChannelCount,
		OperationCount: result.Stats.OperationCount,
		MessageCount:   result.Stats.MessageCount,
		SchemaCount:    result.Stats.SchemaCount,
	}

	doc := result.Document
	if doc.Info != nil {
		output.Title = doc.Info.Title
		output.Description = doc.Info.Description
	}
	output.DefaultContentType = doc.DefaultContentType
	for name, s := range doc.Servers.All() {
		output.Servers = append(output.Servers, parseSummaryServer{
			Name:     name,
			URL:      s.URL,
			Protocol: s.Protocol,
		})
	}
	for _, tag := range doc.Tags {
		if tag != nil {
			output.Tags = append(output.Tags, tag.Name)
		}
	}

	if input.Full {
		var data []byte
		switch result.SourceFormat {
		case parser.SourceFormatJSON:
			data, err = result.MarshalJSONIndent("", "  ")
		default:
			data, err = result.MarshalYAML()
		}
		if err != nil {
			return errResult(err), parseOutput{}, nil
		}
		output.FullDocument = string(data)
	}

	return nil, output, nil
}
