// Package asyncapitools provides tools for working with AsyncAPI specification documents.
//
// asyncapitools parses AsyncAPI 2.x documents (2.0.0 through 2.6.0) into strongly
// typed Go structures and serializes them back to JSON or YAML while preserving
// specification extensions and document ordering.
//
// # Overview
//
// The library consists of two primary packages:
//
//   - parser: Parse AsyncAPI documents into a typed model and marshal them back
//   - aaerrors: Structured error types for programmatic error handling
//
// # Installation
//
// Install the library using go get:
//
//	go get github.com/erraggy/asyncapitools
//
// # Quick Start
//
// Parse an AsyncAPI specification:
//
//	import "github.com/erraggy/asyncapitools/parser"
//
//	p := parser.New()
//	result, err := p.Parse("asyncapi.yaml")
//	if err != nil {
//		log.Fatal(err)
//	}
//	fmt.Printf("Version: %s\n", result.Version)
//	fmt.Printf("Channels: %d\n", result.Stats.ChannelCount)
//
// Marshal the typed document back out:
//
//	data, err := result.Document.MarshalJSON()
//
// The typed model keeps every field it did not recognize: unknown keys land in
// an insertion-ordered extension bag on the owning struct and are re-emitted
// verbatim when the document is marshaled.
//
// # Command Line Tool
//
// A CLI is available in cmd/asyncapitools providing parse, convert, and mcp
// commands. Install it with:
//
//	go install github.com/erraggy/asyncapitools/cmd/asyncapitools@latest
package asyncapitools
