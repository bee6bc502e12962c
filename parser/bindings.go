package parser

import "go.yaml.in/yaml/v4"

// ReservedBinding stands in for the protocol binding slots whose names are
// reserved but carry no defined properties yet. Any keys that do appear are
// kept verbatim so future binding versions round-trip.
type ReservedBinding struct {
	Extensions *Extensions
}

func (r *ReservedBinding) decodeNode(n *yaml.Node, path string) error {
	entries, err := mappingEntries(n, path)
	if err != nil {
		return err
	}
	for _, e := range entries {
		if err := captureExtension(&r.Extensions, e.key, e.val, joinPath(path, e.key)); err != nil {
			return err
		}
	}
	return nil
}

func (r *ReservedBinding) encodeNode() (*yaml.Node, error) {
	m := newMapping()
	if err := putExtensions(m, r.Extensions); err != nil {
		return nil, err
	}
	return m, nil
}
