package parser

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"time"

	"go.yaml.in/yaml/v4"

	"github.com/erraggy/asyncapitools/aaerrors"
)

// Parser handles AsyncAPI definition parsing
type Parser struct {
	// Logger is the structured logger for debug output
	// If nil, logging is disabled (default)
	Logger Logger
}

// New creates a new Parser instance with default settings
func New() *Parser {
	return &Parser{}
}

// log returns the configured logger, or a no-op logger if none is set.
func (p *Parser) log() Logger {
	if p.Logger != nil {
		return p.Logger
	}
	return NopLogger{}
}

// SourceFormat represents the format of the source AsyncAPI definition file
type SourceFormat string

const (
	// SourceFormatYAML indicates the source was in YAML format
	SourceFormatYAML SourceFormat = "yaml"
	// SourceFormatJSON indicates the source was in JSON format
	SourceFormatJSON SourceFormat = "json"
	// SourceFormatUnknown indicates the source format could not be determined
	SourceFormatUnknown SourceFormat = "unknown"
)

// ParseResult contains the parsed AsyncAPI definition and metadata.
//
// Callers should treat ParseResult as read-only after parsing. Modifying the
// returned document may lead to unexpected behavior if the document is cached
// or shared across multiple operations.
type ParseResult struct {
	// SourcePath is the document's input source path that it was read from.
	// Note: if the source was not a file path, this will be set to the name
	// of the method and end in '.yaml' or '.json' based on the detected format
	SourcePath string
	// SourceFormat is the format of the source file (JSON or YAML)
	SourceFormat SourceFormat
	// Version is the raw version string from the document (e.g., "2.6.0")
	Version string
	// AsyncAPIVersion is the enumerated version of the AsyncAPI specification
	AsyncAPIVersion AsyncAPIVersion
	// Document contains the parsed typed document
	Document *Document
	// LoadTime is the time taken to load the source data
	LoadTime time.Duration
	// SourceSize is the size of the source data in bytes
	SourceSize int64
	// Stats contains statistical information about the document
	Stats DocumentStats
}

// Parse parses an AsyncAPI definition from a local file.
func (p *Parser) Parse(specPath string) (*ParseResult, error) {
	loadStart := time.Now()
	data, err := os.ReadFile(specPath)
	loadTime := time.Since(loadStart)
	if err != nil {
		return nil, fmt.Errorf("parser: failed to read file: %w", err)
	}

	res, err := p.parseBytes(data)
	if err != nil {
		return nil, err
	}
	res.SourcePath = specPath
	res.LoadTime = loadTime
	res.SourceSize = int64(len(data))

	// Prefer the path extension; fall back to content sniffing
	if format := detectFormatFromPath(specPath); format != SourceFormatUnknown {
		res.SourceFormat = format
	}
	return res, nil
}

// ParseReader parses an AsyncAPI definition from an io.Reader
// Note: since there is no actual ParseResult.SourcePath, it will be set to: ParseReader.yaml or ParseReader.json
func (p *Parser) ParseReader(r io.Reader) (*ParseResult, error) {
	loadStart := time.Now()
	data, err := io.ReadAll(r)
	loadTime := time.Since(loadStart)
	if err != nil {
		return nil, fmt.Errorf("parser: failed to read data: %w", err)
	}
	res, err := p.parseBytes(data)
	if err != nil {
		return nil, err
	}
	res.LoadTime = loadTime
	res.SourceSize = int64(len(data))
	if res.SourceFormat == SourceFormatJSON {
		res.SourcePath = "ParseReader.json"
	} else {
		res.SourcePath = "ParseReader.yaml"
	}
	return res, nil
}

// ParseBytes parses an AsyncAPI definition from a byte slice
// Note: since there is no actual ParseResult.SourcePath, it will be set to: ParseBytes.yaml or ParseBytes.json
func (p *Parser) ParseBytes(data []byte) (*ParseResult, error) {
	res, err := p.parseBytes(data)
	if err != nil {
		return nil, err
	}
	res.SourceSize = int64(len(data))
	if res.SourceFormat == SourceFormatJSON {
		res.SourcePath = "ParseBytes.json"
	} else {
		res.SourcePath = "ParseBytes.yaml"
	}
	return res, nil
}

// parseBytes decodes the raw bytes into the typed document and fills in the
// format, version, and stats fields of the result.
func (p *Parser) parseBytes(data []byte) (*ParseResult, error) {
	result := &ParseResult{
		SourceFormat: detectFormatFromContent(data),
	}

	// The yaml decoder accepts both YAML and JSON input, and its node tree
	// preserves mapping key order for the typed decode.
	var root yaml.Node
	if err := yaml.Unmarshal(data, &root); err != nil {
		return nil, &aaerrors.ParseError{Message: "invalid document syntax", Cause: err}
	}

	var doc Document
	if err := doc.decodeNode(docRoot(&root), ""); err != nil {
		return nil, err
	}
	result.Document = &doc
	result.Version = doc.AsyncAPI

	v, ok := ParseVersion(doc.AsyncAPI)
	if !ok {
		return nil, &aaerrors.ParseError{
			Path:    "asyncapi",
			Message: fmt.Sprintf("unsupported AsyncAPI version: %s (only 2.x versions are supported)", doc.AsyncAPI),
		}
	}
	result.AsyncAPIVersion = v

	result.Stats = GetDocumentStats(&doc)
	p.log().Debug("parsed document",
		"version", result.Version,
		"channels", result.Stats.ChannelCount,
		"operations", result.Stats.OperationCount)

	return result, nil
}

// MarshalJSON encodes the parsed document as compact JSON, preserving the
// source document's key order.
func (pr *ParseResult) MarshalJSON() ([]byte, error) {
	if pr.Document == nil {
		return []byte("null"), nil
	}
	return pr.Document.MarshalJSON()
}

// MarshalJSONIndent encodes the parsed document as indented JSON, preserving
// the source document's key order.
func (pr *ParseResult) MarshalJSONIndent(prefix, indent string) ([]byte, error) {
	data, err := pr.MarshalJSON()
	if err != nil {
		return nil, err
	}
	var buf bytes.Buffer
	if err := json.Indent(&buf, data, prefix, indent); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// MarshalYAML encodes the parsed document as YAML, preserving the source
// document's key order.
func (pr *ParseResult) MarshalYAML() ([]byte, error) {
	if pr.Document == nil {
		return nil, fmt.Errorf("parser: no document to marshal")
	}
	return yaml.Marshal(pr.Document)
}
