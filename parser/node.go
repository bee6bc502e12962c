package parser

import (
	"fmt"

	"go.yaml.in/yaml/v4"

	"github.com/erraggy/asyncapitools/aaerrors"
)

// nodeDecoder is implemented by every model type that can populate itself
// from a yaml.Node. path is the JSON path used in error reporting.
type nodeDecoder interface {
	decodeNode(n *yaml.Node, path string) error
}

// nodeEncoder is implemented by every model type that can build its wire
// representation as a yaml.Node.
type nodeEncoder interface {
	encodeNode() (*yaml.Node, error)
}

// joinPath appends a key segment to a JSON path.
func joinPath(path, key string) string {
	if path == "" {
		return key
	}
	return path + "." + key
}

// indexPath appends a sequence index to a JSON path.
func indexPath(path string, i int) string {
	return fmt.Sprintf("%s[%d]", path, i)
}

// docRoot unwraps a parsed document node to its content node.
func docRoot(n *yaml.Node) *yaml.Node {
	if n != nil && n.Kind == yaml.DocumentNode && len(n.Content) > 0 {
		return n.Content[0]
	}
	return n
}

// resolveAlias follows a YAML alias to its anchor target.
func resolveAlias(n *yaml.Node) *yaml.Node {
	if n != nil && n.Kind == yaml.AliasNode && n.Alias != nil {
		return n.Alias
	}
	return n
}

// kindName describes a node for error messages, e.g. "mapping" or
// "!!int scalar".
func kindName(n *yaml.Node) string {
	if n == nil {
		return "nothing"
	}
	switch n.Kind {
	case yaml.DocumentNode:
		return "document"
	case yaml.MappingNode:
		return "mapping"
	case yaml.SequenceNode:
		return "sequence"
	case yaml.ScalarNode:
		return n.Tag + " scalar"
	case yaml.AliasNode:
		return "alias"
	}
	return "unknown node"
}

func mismatch(path, expected string, n *yaml.Node) error {
	return &aaerrors.SchemaMismatchError{Path: path, Expected: expected, Actual: kindName(n)}
}

func missing(path, field string) error {
	return &aaerrors.MissingFieldError{Path: path, Field: field}
}

// mapEntry is one key/value pair of a mapping node, in document order.
type mapEntry struct {
	key string
	val *yaml.Node
}

// mappingEntries returns the entries of a mapping node in document order,
// or a SchemaMismatchError if n is not a mapping.
func mappingEntries(n *yaml.Node, path string) ([]mapEntry, error) {
	n = resolveAlias(n)
	if n == nil || n.Kind != yaml.MappingNode {
		return nil, mismatch(path, "mapping", n)
	}
	entries := make([]mapEntry, 0, len(n.Content)/2)
	for i := 0; i+1 < len(n.Content); i += 2 {
		entries = append(entries, mapEntry{key: n.Content[i].Value, val: n.Content[i+1]})
	}
	return entries, nil
}

func nodeString(n *yaml.Node, path string) (string, error) {
	n = resolveAlias(n)
	if n == nil || n.Kind != yaml.ScalarNode || n.Tag != "!!str" {
		return "", mismatch(path, "string", n)
	}
	return n.Value, nil
}

func nodeBool(n *yaml.Node, path string) (bool, error) {
	n = resolveAlias(n)
	if n == nil || n.Kind != yaml.ScalarNode || n.Tag != "!!bool" {
		return false, mismatch(path, "boolean", n)
	}
	var v bool
	if err := n.Decode(&v); err != nil {
		return false, &aaerrors.SchemaMismatchError{Path: path, Expected: "boolean", Actual: kindName(n), Cause: err}
	}
	return v, nil
}

func nodeInt(n *yaml.Node, path string) (int, error) {
	n = resolveAlias(n)
	if n == nil || n.Kind != yaml.ScalarNode || n.Tag != "!!int" {
		return 0, mismatch(path, "integer", n)
	}
	var v int
	if err := n.Decode(&v); err != nil {
		return 0, &aaerrors.SchemaMismatchError{Path: path, Expected: "integer", Actual: kindName(n), Cause: err}
	}
	return v, nil
}

// nodeFloat accepts both !!float and !!int scalars, since YAML resolves
// whole numbers to integers regardless of the declared field type.
func nodeFloat(n *yaml.Node, path string) (float64, error) {
	n = resolveAlias(n)
	if n == nil || n.Kind != yaml.ScalarNode || (n.Tag != "!!float" && n.Tag != "!!int") {
		return 0, mismatch(path, "number", n)
	}
	var v float64
	if err := n.Decode(&v); err != nil {
		return 0, &aaerrors.SchemaMismatchError{Path: path, Expected: "number", Actual: kindName(n), Cause: err}
	}
	return v, nil
}

// nodeAny decodes a node into the untyped structured form: scalars become
// their resolved Go values, sequences become []any, and mappings become an
// insertion-ordered *Extensions so that key order survives a round trip.
func nodeAny(n *yaml.Node, path string) (any, error) {
	n = resolveAlias(n)
	if n == nil {
		return nil, mismatch(path, "value", n)
	}
	switch n.Kind {
	case yaml.ScalarNode:
		var v any
		if err := n.Decode(&v); err != nil {
			return nil, &aaerrors.SchemaMismatchError{Path: path, Expected: "scalar", Actual: kindName(n), Cause: err}
		}
		return v, nil
	case yaml.SequenceNode:
		out := make([]any, 0, len(n.Content))
		for i, c := range n.Content {
			v, err := nodeAny(c, indexPath(path, i))
			if err != nil {
				return nil, err
			}
			out = append(out, v)
		}
		return out, nil
	case yaml.MappingNode:
		m := NewExtensions()
		for i := 0; i+1 < len(n.Content); i += 2 {
			key := n.Content[i].Value
			v, err := nodeAny(n.Content[i+1], joinPath(path, key))
			if err != nil {
				return nil, err
			}
			m.Set(key, v)
		}
		return m, nil
	}
	return nil, mismatch(path, "value", n)
}

// Field setters used by the per-struct decode switches.

func setString(dst *string, n *yaml.Node, path string) error {
	s, err := nodeString(n, path)
	if err != nil {
		return err
	}
	*dst = s
	return nil
}

func setBool(dst *bool, n *yaml.Node, path string) error {
	b, err := nodeBool(n, path)
	if err != nil {
		return err
	}
	*dst = b
	return nil
}

func setBoolPtr(dst **bool, n *yaml.Node, path string) error {
	b, err := nodeBool(n, path)
	if err != nil {
		return err
	}
	*dst = &b
	return nil
}

func setIntPtr(dst **int, n *yaml.Node, path string) error {
	i, err := nodeInt(n, path)
	if err != nil {
		return err
	}
	*dst = &i
	return nil
}

func setFloatPtr(dst **float64, n *yaml.Node, path string) error {
	f, err := nodeFloat(n, path)
	if err != nil {
		return err
	}
	*dst = &f
	return nil
}

func setAny(dst *any, n *yaml.Node, path string) error {
	v, err := nodeAny(n, path)
	if err != nil {
		return err
	}
	*dst = v
	return nil
}

func setStringSlice(dst *[]string, n *yaml.Node, path string) error {
	n = resolveAlias(n)
	if n == nil || n.Kind != yaml.SequenceNode {
		return mismatch(path, "sequence of strings", n)
	}
	out := make([]string, 0, len(n.Content))
	for i, c := range n.Content {
		s, err := nodeString(c, indexPath(path, i))
		if err != nil {
			return err
		}
		out = append(out, s)
	}
	*dst = out
	return nil
}

// setAnySlice decodes a sequence into []any. It requires an actual
// sequence; fields that also accept a bare value go through
// decodeVecOrSingle instead.
func setAnySlice(dst *[]any, n *yaml.Node, path string) error {
	n = resolveAlias(n)
	if n == nil || n.Kind != yaml.SequenceNode {
		return mismatch(path, "sequence", n)
	}
	out := make([]any, 0, len(n.Content))
	for i, c := range n.Content {
		v, err := nodeAny(c, indexPath(path, i))
		if err != nil {
			return err
		}
		out = append(out, v)
	}
	*dst = out
	return nil
}

// Generic decode helpers over nodeDecoder implementations.

// decodeObj allocates a T and populates it from n.
func decodeObj[T any, PT interface {
	*T
	nodeDecoder
}](n *yaml.Node, path string) (*T, error) {
	v := new(T)
	if err := PT(v).decodeNode(n, path); err != nil {
		return nil, err
	}
	return v, nil
}

// decodeSlice decodes a sequence node into a slice of T.
func decodeSlice[T any, PT interface {
	*T
	nodeDecoder
}](n *yaml.Node, path string) ([]*T, error) {
	n = resolveAlias(n)
	if n == nil || n.Kind != yaml.SequenceNode {
		return nil, mismatch(path, "sequence", n)
	}
	out := make([]*T, 0, len(n.Content))
	for i, c := range n.Content {
		v, err := decodeObj[T, PT](c, indexPath(path, i))
		if err != nil {
			return nil, err
		}
		out = append(out, v)
	}
	return out, nil
}

// decodeNamed decodes a mapping of name to T, preserving name order.
func decodeNamed[T any, PT interface {
	*T
	nodeDecoder
}](n *yaml.Node, path string) (*Map[*T], error) {
	entries, err := mappingEntries(n, path)
	if err != nil {
		return nil, err
	}
	m := NewMap[*T]()
	for _, e := range entries {
		v, err := decodeObj[T, PT](e.val, joinPath(path, e.key))
		if err != nil {
			return nil, err
		}
		m.Set(e.key, v)
	}
	return m, nil
}

// decodeAnyMap decodes a mapping of name to untyped value, preserving order.
func decodeAnyMap(n *yaml.Node, path string) (*Extensions, error) {
	entries, err := mappingEntries(n, path)
	if err != nil {
		return nil, err
	}
	m := NewExtensions()
	for _, e := range entries {
		v, err := nodeAny(e.val, joinPath(path, e.key))
		if err != nil {
			return nil, err
		}
		m.Set(e.key, v)
	}
	return m, nil
}

// decodeStringMap decodes a mapping of name to string, preserving order.
func decodeStringMap(n *yaml.Node, path string) (*Map[string], error) {
	entries, err := mappingEntries(n, path)
	if err != nil {
		return nil, err
	}
	m := NewMap[string]()
	for _, e := range entries {
		s, err := nodeString(e.val, joinPath(path, e.key))
		if err != nil {
			return nil, err
		}
		m.Set(e.key, s)
	}
	return m, nil
}
