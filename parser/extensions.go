package parser

import "go.yaml.in/yaml/v4"

// Extensions captures the fields of a document object that are not part of
// the declared AsyncAPI schema, in first-seen order. This covers
// specification extensions (keys starting with "x-") as well as any other
// unrecognized key, so that a document round-trips without losing data.
//
// Values are the untyped structured forms produced during decoding: nil,
// bool, int, float64, string, []any, or a nested *Extensions for mappings.
type Extensions = Map[any]

// NewExtensions creates an empty extension bag.
func NewExtensions() *Extensions {
	return NewMap[any]()
}

// captureExtension stores an unrecognized key in the owning struct's
// extension bag, allocating the bag on first use.
func captureExtension(ext **Extensions, key string, n *yaml.Node, path string) error {
	v, err := nodeAny(n, path)
	if err != nil {
		return err
	}
	if *ext == nil {
		*ext = NewExtensions()
	}
	(*ext).Set(key, v)
	return nil
}

// putExtensions re-emits every captured key at the same structural level as
// the owning struct's declared fields, in stored order.
func putExtensions(m *yaml.Node, ext *Extensions) error {
	if ext == nil {
		return nil
	}
	for key, v := range ext.All() {
		n, err := anyNode(v)
		if err != nil {
			return err
		}
		mapPut(m, key, n)
	}
	return nil
}
