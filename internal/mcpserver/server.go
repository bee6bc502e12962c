// Package mcpserver implements an MCP (Model Context Protocol) server
// that exposes asyncapitools capabilities as MCP tools over stdio.
package mcpserver

import (
	"context"
	"regexp"

	"github.com/erraggy/asyncapitools"
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

const serverInstructions = `asyncapitools MCP server — parses and converts AsyncAPI 2.x documents.

Configuration: All defaults are configurable via ASYNCAPITOOLS_* environment variables set in your MCP client config. The Go MCP SDK does not support initializationOptions; use env vars instead.

Key settings:
- ASYNCAPITOOLS_CACHE_FILE_TTL (default: 15m) — cache TTL for local file documents
- ASYNCAPITOOLS_CACHE_CONTENT_TTL (default: 15m) — cache TTL for inline content
- ASYNCAPITOOLS_CACHE_ENABLED (default: true) — disable document caching entirely
- ASYNCAPITOOLS_MAX_INLINE_SIZE (default: 4194304) — inline content size cap in bytes

Caching: Parsed documents are cached per session. File entries use path+mtime as key (auto-invalidated on change). A background sweeper removes expired entries every 60s.`

// Run starts the MCP server over stdio and blocks until the client disconnects
// or the context is cancelled.
func Run(ctx context.Context) error {
	if cfg.CacheEnabled {
		specCache.startSweeper(ctx, cfg.CacheSweepInterval)
	}

	server := mcp.NewServer(
		&mcp.Implementation{Name: "asyncapitools", Version: asyncapitools.Version()},
		&mcp.ServerOptions{
			Instructions: serverInstructions,
		},
	)
	registerAllTools(server)
	return server.Run(ctx, &mcp.StdioTransport{})
}

func registerAllTools(server *mcp.Server) {
	mcp.AddTool(server, &mcp.Tool{
		Name:        "parse",
		Description: "Parse an AsyncAPI 2.x document. Returns a structural summary: title, version, channel/operation/message/schema counts, servers, and tags. Use full=true only for small documents. Unknown fields and mapping key order are preserved.",
	}, handleParse)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "convert",
		Description: "Convert an AsyncAPI 2.x document between JSON and YAML. The output preserves the source document's field and key order, including extension keys. Use output to write to a file instead of returning inline.",
	}, handleConvert)
}

// sanitizeError strips absolute filesystem paths from error messages
// to prevent leaking internal directory structure to MCP clients.
var pathPattern = regexp.MustCompile(`(?:/(?:home|tmp|var|Users|etc|opt|usr|private|root|mnt|srv|run|snap|nix)[a-zA-Z0-9._/-]*)`)

func sanitizeError(err error) string {
	if err == nil {
		return ""
	}
	return pathPattern.ReplaceAllString(err.Error(), "<path>")
}

// errResult creates an MCP error result from an error.
func errResult(err error) *mcp.CallToolResult {
	return &mcp.CallToolResult{
		IsError: true,
		Content: []mcp.Content{&mcp.TextContent{Text: sanitizeError(err)}},
	}
}
