package parser

import "go.yaml.in/yaml/v4"

// Some AsyncAPI fields accept either a single value or a list of values on
// the wire. In memory they are always a slice: a bare value decodes as a
// one-element slice. On the way out a one-element slice collapses back to
// the bare value, so decoding "[v]" and re-encoding yields "v". That is the
// one intentional round-trip asymmetry in this package.

// decodeVecOrSingle normalizes a bare-or-list field to a slice.
func decodeVecOrSingle[T any, PT interface {
	*T
	nodeDecoder
}](n *yaml.Node, path string) ([]*T, error) {
	resolved := resolveAlias(n)
	if resolved != nil && resolved.Kind == yaml.SequenceNode {
		return decodeSlice[T, PT](resolved, path)
	}
	v, err := decodeObj[T, PT](n, path)
	if err != nil {
		return nil, err
	}
	return []*T{v}, nil
}

// putVecOrSingle emits a bare-or-list field: one element is written bare,
// anything else as a sequence. The empty slice is skipped entirely per the
// struct-level skip-if-empty rule.
func putVecOrSingle[T any, PT interface {
	*T
	nodeEncoder
}](m *yaml.Node, key string, vals []*T) error {
	switch len(vals) {
	case 0:
		return nil
	case 1:
		return putObj[T, PT](m, key, vals[0])
	default:
		return putObjSlice[T, PT](m, key, vals)
	}
}
