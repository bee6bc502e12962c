package parser

import "go.yaml.in/yaml/v4"

// Ref is a Reference Object: a single JSON-Reference-style pointer to a
// reusable component elsewhere in the document, e.g.
// "#/components/schemas/User". This library records the location only; it
// never fetches or inlines the target.
type Ref struct {
	// Location is the value of the "$ref" key.
	Location string
}

// RefOr holds either a Reference Object or an inline value of type T.
// Exactly one of Ref and Value is set.
//
// The wire form is untagged: a mapping that carries a string-valued "$ref"
// key decodes as the Reference variant, anything else decodes as T. The
// Reference check always runs first, so a T that could itself accept a
// "$ref"-named field never shadows a reference.
type RefOr[T any] struct {
	Ref   *Ref
	Value *T
}

// NewRef wraps a reference location in the Reference variant.
func NewRef[T any](location string) *RefOr[T] {
	return &RefOr[T]{Ref: &Ref{Location: location}}
}

// NewValue wraps an inline value in the Value variant.
func NewValue[T any](v T) *RefOr[T] {
	return &RefOr[T]{Value: &v}
}

// IsRef reports whether the Reference variant is populated.
func (r *RefOr[T]) IsRef() bool {
	return r != nil && r.Ref != nil
}

// refLocation reports whether n is a mapping carrying a string-valued
// "$ref" key, and returns the location when it is.
func refLocation(n *yaml.Node) (string, bool) {
	n = resolveAlias(n)
	if n == nil || n.Kind != yaml.MappingNode {
		return "", false
	}
	for i := 0; i+1 < len(n.Content); i += 2 {
		if n.Content[i].Value != "$ref" {
			continue
		}
		v := resolveAlias(n.Content[i+1])
		if v != nil && v.Kind == yaml.ScalarNode && v.Tag == "!!str" {
			return v.Value, true
		}
		return "", false
	}
	return "", false
}

// decodeRefOr decodes a node as RefOr[T], trying the Reference shape first
// and falling back to a full decode of T.
func decodeRefOr[T any, PT interface {
	*T
	nodeDecoder
}](n *yaml.Node, path string) (*RefOr[T], error) {
	if loc, ok := refLocation(n); ok {
		return NewRef[T](loc), nil
	}
	v, err := decodeObj[T, PT](n, path)
	if err != nil {
		return nil, err
	}
	return &RefOr[T]{Value: v}, nil
}

// encodeRefOr emits either the {"$ref": ...} object or T's own encoding; no
// wrapper is added beyond what each variant naturally produces.
func encodeRefOr[T any, PT interface {
	*T
	nodeEncoder
}](r *RefOr[T]) (*yaml.Node, error) {
	if r.Ref != nil {
		m := newMapping()
		mapPut(m, "$ref", strNode(r.Ref.Location))
		return m, nil
	}
	if r.Value == nil {
		return nullNode(), nil
	}
	return PT(r.Value).encodeNode()
}

// decodeRefOrSlice decodes a sequence of RefOr[T].
func decodeRefOrSlice[T any, PT interface {
	*T
	nodeDecoder
}](n *yaml.Node, path string) ([]*RefOr[T], error) {
	n = resolveAlias(n)
	if n == nil || n.Kind != yaml.SequenceNode {
		return nil, mismatch(path, "sequence", n)
	}
	out := make([]*RefOr[T], 0, len(n.Content))
	for i, c := range n.Content {
		v, err := decodeRefOr[T, PT](c, indexPath(path, i))
		if err != nil {
			return nil, err
		}
		out = append(out, v)
	}
	return out, nil
}

// decodeRefOrMap decodes a mapping of name to RefOr[T], preserving order.
func decodeRefOrMap[T any, PT interface {
	*T
	nodeDecoder
}](n *yaml.Node, path string) (*Map[*RefOr[T]], error) {
	entries, err := mappingEntries(n, path)
	if err != nil {
		return nil, err
	}
	m := NewMap[*RefOr[T]]()
	for _, e := range entries {
		v, err := decodeRefOr[T, PT](e.val, joinPath(path, e.key))
		if err != nil {
			return nil, err
		}
		m.Set(e.key, v)
	}
	return m, nil
}

// putRefOr emits an optional RefOr field, skipped when nil.
func putRefOr[T any, PT interface {
	*T
	nodeEncoder
}](m *yaml.Node, key string, r *RefOr[T]) error {
	if r == nil {
		return nil
	}
	n, err := encodeRefOr[T, PT](r)
	if err != nil {
		return err
	}
	mapPut(m, key, n)
	return nil
}

// putRefOrSlice emits a sequence of RefOr values, skipped when empty.
func putRefOrSlice[T any, PT interface {
	*T
	nodeEncoder
}](m *yaml.Node, key string, vals []*RefOr[T]) error {
	if len(vals) == 0 {
		return nil
	}
	seq := newSequence()
	for _, r := range vals {
		n, err := encodeRefOr[T, PT](r)
		if err != nil {
			return err
		}
		seq.Content = append(seq.Content, n)
	}
	mapPut(m, key, seq)
	return nil
}

// putRefOrMap emits a mapping of name to RefOr in insertion order, skipped
// when empty.
func putRefOrMap[T any, PT interface {
	*T
	nodeEncoder
}](m *yaml.Node, key string, named *Map[*RefOr[T]]) error {
	if named.Len() == 0 {
		return nil
	}
	out := newMapping()
	for name, r := range named.All() {
		n, err := encodeRefOr[T, PT](r)
		if err != nil {
			return err
		}
		mapPut(out, name, n)
	}
	mapPut(m, key, out)
	return nil
}
