package parser

import (
	"bytes"
	"encoding/json"
	"fmt"
	"math"
	"sort"
	"strconv"
	"strings"

	"go.yaml.in/yaml/v4"
)

// Node constructors. Scalar nodes carry explicit resolved tags so the
// JSON writer and the YAML emitter agree on the value's type.

func newMapping() *yaml.Node {
	return &yaml.Node{Kind: yaml.MappingNode, Tag: "!!map"}
}

func newSequence() *yaml.Node {
	return &yaml.Node{Kind: yaml.SequenceNode, Tag: "!!seq"}
}

func strNode(s string) *yaml.Node {
	return &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: s}
}

func boolNode(b bool) *yaml.Node {
	return &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!bool", Value: strconv.FormatBool(b)}
}

func intNode(i int64) *yaml.Node {
	return &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!int", Value: strconv.FormatInt(i, 10)}
}

func floatNode(f float64) *yaml.Node {
	var v string
	switch {
	case math.IsNaN(f):
		v = ".nan"
	case math.IsInf(f, 1):
		v = ".inf"
	case math.IsInf(f, -1):
		v = "-.inf"
	default:
		v = strconv.FormatFloat(f, 'g', -1, 64)
		// Keep whole floats float-shaped so they re-resolve as !!float.
		if !strings.ContainsAny(v, ".eE") {
			v += ".0"
		}
	}
	return &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!float", Value: v}
}

func nullNode() *yaml.Node {
	return &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!null", Value: "null"}
}

// mapPut appends a key/value pair to a mapping node.
func mapPut(m *yaml.Node, key string, v *yaml.Node) {
	m.Content = append(m.Content, strNode(key), v)
}

// anyNode builds a node from an untyped structured value, the inverse of
// nodeAny. Unrecognized Go types fall back to the yaml encoder.
func anyNode(v any) (*yaml.Node, error) {
	switch t := v.(type) {
	case nil:
		return nullNode(), nil
	case string:
		return strNode(t), nil
	case bool:
		return boolNode(t), nil
	case int:
		return intNode(int64(t)), nil
	case int64:
		return intNode(t), nil
	case uint64:
		return &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!int", Value: strconv.FormatUint(t, 10)}, nil
	case float64:
		return floatNode(t), nil
	case []any:
		seq := newSequence()
		for _, item := range t {
			n, err := anyNode(item)
			if err != nil {
				return nil, err
			}
			seq.Content = append(seq.Content, n)
		}
		return seq, nil
	case []string:
		seq := newSequence()
		for _, s := range t {
			seq.Content = append(seq.Content, strNode(s))
		}
		return seq, nil
	case *Extensions:
		m := newMapping()
		for key, item := range t.All() {
			n, err := anyNode(item)
			if err != nil {
				return nil, err
			}
			mapPut(m, key, n)
		}
		return m, nil
	case map[string]any:
		// Programmatically built values have no inherent order; sort for
		// deterministic output.
		keys := make([]string, 0, len(t))
		for k := range t {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		m := newMapping()
		for _, k := range keys {
			n, err := anyNode(t[k])
			if err != nil {
				return nil, err
			}
			mapPut(m, k, n)
		}
		return m, nil
	default:
		n := &yaml.Node{}
		if err := n.Encode(v); err != nil {
			return nil, fmt.Errorf("parser: cannot encode value of type %T: %w", v, err)
		}
		return n, nil
	}
}

// Field emitters used by the per-struct encode methods. Optional fields are
// skipped at their zero value, matching the decode side where the zero
// value means absent.

func putStr(m *yaml.Node, key, s string) {
	if s != "" {
		mapPut(m, key, strNode(s))
	}
}

// putStrAlways emits required string fields even when empty.
func putStrAlways(m *yaml.Node, key, s string) {
	mapPut(m, key, strNode(s))
}

func putBool(m *yaml.Node, key string, b bool) {
	if b {
		mapPut(m, key, boolNode(b))
	}
}

func putBoolPtr(m *yaml.Node, key string, b *bool) {
	if b != nil {
		mapPut(m, key, boolNode(*b))
	}
}

func putIntPtr(m *yaml.Node, key string, i *int) {
	if i != nil {
		mapPut(m, key, intNode(int64(*i)))
	}
}

func putFloatPtr(m *yaml.Node, key string, f *float64) {
	if f != nil {
		mapPut(m, key, floatNode(*f))
	}
}

func putStrSlice(m *yaml.Node, key string, vals []string) {
	if len(vals) == 0 {
		return
	}
	seq := newSequence()
	for _, s := range vals {
		seq.Content = append(seq.Content, strNode(s))
	}
	mapPut(m, key, seq)
}

func putAny(m *yaml.Node, key string, v any) error {
	if v == nil {
		return nil
	}
	n, err := anyNode(v)
	if err != nil {
		return err
	}
	mapPut(m, key, n)
	return nil
}

func putAnySlice(m *yaml.Node, key string, vals []any) error {
	if len(vals) == 0 {
		return nil
	}
	seq := newSequence()
	for _, v := range vals {
		n, err := anyNode(v)
		if err != nil {
			return err
		}
		seq.Content = append(seq.Content, n)
	}
	mapPut(m, key, seq)
	return nil
}

// putObj emits a nested object field, skipped when nil.
func putObj[T any, PT interface {
	*T
	nodeEncoder
}](m *yaml.Node, key string, v PT) error {
	if v == nil {
		return nil
	}
	n, err := v.encodeNode()
	if err != nil {
		return err
	}
	mapPut(m, key, n)
	return nil
}

// putObjSlice emits a sequence of objects, skipped when empty.
func putObjSlice[T any, PT interface {
	*T
	nodeEncoder
}](m *yaml.Node, key string, vals []*T) error {
	if len(vals) == 0 {
		return nil
	}
	seq := newSequence()
	for _, v := range vals {
		n, err := PT(v).encodeNode()
		if err != nil {
			return err
		}
		seq.Content = append(seq.Content, n)
	}
	mapPut(m, key, seq)
	return nil
}

// putNamed emits a mapping of name to object in insertion order, skipped
// when empty.
func putNamed[T any, PT interface {
	*T
	nodeEncoder
}](m *yaml.Node, key string, named *Map[*T]) error {
	if named.Len() == 0 {
		return nil
	}
	out := newMapping()
	for name, v := range named.All() {
		n, err := PT(v).encodeNode()
		if err != nil {
			return err
		}
		mapPut(out, name, n)
	}
	mapPut(m, key, out)
	return nil
}

// putAnyMap emits a mapping of name to untyped value in insertion order,
// skipped when empty.
func putAnyMap(m *yaml.Node, key string, vals *Extensions) error {
	if vals.Len() == 0 {
		return nil
	}
	out := newMapping()
	for name, v := range vals.All() {
		n, err := anyNode(v)
		if err != nil {
			return err
		}
		mapPut(out, name, n)
	}
	mapPut(m, key, out)
	return nil
}

func putStringMap(m *yaml.Node, key string, vals *Map[string]) {
	if vals.Len() == 0 {
		return
	}
	out := newMapping()
	for name, s := range vals.All() {
		mapPut(out, name, strNode(s))
	}
	mapPut(m, key, out)
}

// writeNodeJSON writes a node tree as compact JSON, preserving mapping key
// order. Scalars are re-resolved through the yaml decoder so quoting and
// escapes come out as canonical JSON literals; floats are formatted directly
// to keep whole floats float-shaped.
func writeNodeJSON(buf *bytes.Buffer, n *yaml.Node) error {
	n = resolveAlias(n)
	if n == nil {
		buf.WriteString("null")
		return nil
	}
	switch n.Kind {
	case yaml.DocumentNode:
		if len(n.Content) > 0 {
			return writeNodeJSON(buf, n.Content[0])
		}
		buf.WriteString("null")
		return nil

	case yaml.MappingNode:
		buf.WriteByte('{')
		for i := 0; i+1 < len(n.Content); i += 2 {
			if i > 0 {
				buf.WriteByte(',')
			}
			keyJSON, err := json.Marshal(n.Content[i].Value)
			if err != nil {
				return err
			}
			buf.Write(keyJSON)
			buf.WriteByte(':')
			if err := writeNodeJSON(buf, n.Content[i+1]); err != nil {
				return err
			}
		}
		buf.WriteByte('}')
		return nil

	case yaml.SequenceNode:
		buf.WriteByte('[')
		for i, c := range n.Content {
			if i > 0 {
				buf.WriteByte(',')
			}
			if err := writeNodeJSON(buf, c); err != nil {
				return err
			}
		}
		buf.WriteByte(']')
		return nil

	case yaml.ScalarNode:
		switch n.Tag {
		case "!!null":
			buf.WriteString("null")
			return nil
		case "!!float":
			// json.Marshal would print whole floats as integers; format
			// them ourselves so a float stays float-shaped on re-decode.
			f, err := strconv.ParseFloat(n.Value, 64)
			if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
				return fmt.Errorf("parser: cannot render float %q as JSON", n.Value)
			}
			v := strconv.FormatFloat(f, 'g', -1, 64)
			if !strings.ContainsAny(v, ".eE") {
				v += ".0"
			}
			buf.WriteString(v)
			return nil
		}
		var v any
		if err := n.Decode(&v); err != nil {
			return fmt.Errorf("parser: cannot render scalar %q as JSON: %w", n.Value, err)
		}
		b, err := json.Marshal(v)
		if err != nil {
			return fmt.Errorf("parser: cannot render scalar %q as JSON: %w", n.Value, err)
		}
		buf.Write(b)
		return nil
	}
	return fmt.Errorf("parser: cannot render node kind %d as JSON", n.Kind)
}
