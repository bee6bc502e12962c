// Package parser provides parsing for AsyncAPI 2.x definition documents.
//
// The parser supports AsyncAPI 2.0.0 through 2.6.0 in YAML and JSON formats.
// Documents decode into a fully typed tree rooted at [Document], and unknown
// fields are preserved in per-object extension bags so that a decoded
// document re-serializes without losing data. References ($ref) are kept as
// typed [Ref] locations; they are never fetched or inlined.
//
// # Quick Start
//
// Parse a file using functional options:
//
//	result, err := parser.ParseWithOptions(
//		parser.WithFilePath("asyncapi.yaml"),
//	)
//	if err != nil {
//		log.Fatal(err)
//	}
//	fmt.Println(result.Document.Info.Title)
//
// Or create a reusable Parser instance:
//
//	p := parser.New()
//	result1, _ := p.Parse("streetlights.yaml")
//	result2, _ := p.ParseBytes(data)
//
// # Order Preservation
//
// Mapping key order from the source document survives a parse/serialize
// round trip: channels, servers, component maps, and extension keys are all
// stored in insertion-ordered maps ([Map]) and re-emitted in the same order.
// Fields that accept a single value or a list ([Server.Security],
// [Operation.Security]) always decode to a slice; a one-element slice
// serializes back to the bare form.
//
// # Error Taxonomy
//
// Decode failures return typed errors from the aaerrors package:
//
//   - [github.com/erraggy/asyncapitools/aaerrors.ParseError] for malformed YAML/JSON or unsupported versions
//   - [github.com/erraggy/asyncapitools/aaerrors.SchemaMismatchError] when a node has the wrong shape
//   - [github.com/erraggy/asyncapitools/aaerrors.MissingFieldError] when a required field is absent
//
// All of them carry the JSON path of the offending node and match their
// sentinel via errors.Is.
package parser
