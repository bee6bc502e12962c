package parser

import "go.yaml.in/yaml/v4"

// Server describes one message broker or server the API connects to.
type Server struct {
	URL             string
	Protocol        string
	ProtocolVersion string
	Description     string
	Variables       *Map[*ServerVariable]
	// Security accepts a single requirement or a list on the wire; in
	// memory it is always a slice.
	Security   []*SecurityRequirement
	Bindings   *RefOr[ServerBinding]
	Extensions *Extensions
}

func (s *Server) decodeNode(n *yaml.Node, path string) error {
	entries, err := mappingEntries(n, path)
	if err != nil {
		return err
	}
	for _, e := range entries {
		kp := joinPath(path, e.key)
		switch e.key {
		case "url":
			err = setString(&s.URL, e.val, kp)
		case "protocol":
			err = setString(&s.Protocol, e.val, kp)
		case "protocolVersion":
			err = setString(&s.ProtocolVersion, e.val, kp)
		case "description":
			err = setString(&s.Description, e.val, kp)
		case "variables":
			s.Variables, err = decodeNamed[ServerVariable](e.val, kp)
		case "security":
			s.Security, err = decodeVecOrSingle[SecurityRequirement](e.val, kp)
		case "bindings":
			s.Bindings, err = decodeRefOr[ServerBinding](e.val, kp)
		default:
			err = captureExtension(&s.Extensions, e.key, e.val, kp)
		}
		if err != nil {
			return err
		}
	}
	if s.URL == "" {
		return missing(path, "url")
	}
	if s.Protocol == "" {
		return missing(path, "protocol")
	}
	return nil
}

func (s *Server) encodeNode() (*yaml.Node, error) {
	m := newMapping()
	putStrAlways(m, "url", s.URL)
	putStrAlways(m, "protocol", s.Protocol)
	putStr(m, "protocolVersion", s.ProtocolVersion)
	putStr(m, "description", s.Description)
	if err := putNamed[ServerVariable](m, "variables", s.Variables); err != nil {
		return nil, err
	}
	if err := putVecOrSingle[SecurityRequirement](m, "security", s.Security); err != nil {
		return nil, err
	}
	if err := putRefOr[ServerBinding](m, "bindings", s.Bindings); err != nil {
		return nil, err
	}
	if err := putExtensions(m, s.Extensions); err != nil {
		return nil, err
	}
	return m, nil
}

// ServerVariable describes one substitutable portion of a server URL
// template.
type ServerVariable struct {
	Enum        []string
	Default     string
	Description string
	Examples    []string
	Extensions  *Extensions
}

func (v *ServerVariable) decodeNode(n *yaml.Node, path string) error {
	entries, err := mappingEntries(n, path)
	if err != nil {
		return err
	}
	for _, e := range entries {
		kp := joinPath(path, e.key)
		switch e.key {
		case "enum":
			err = setStringSlice(&v.Enum, e.val, kp)
		case "default":
			err = setString(&v.Default, e.val, kp)
		case "description":
			err = setString(&v.Description, e.val, kp)
		case "examples":
			err = setStringSlice(&v.Examples, e.val, kp)
		default:
			err = captureExtension(&v.Extensions, e.key, e.val, kp)
		}
		if err != nil {
			return err
		}
	}
	return nil
}

func (v *ServerVariable) encodeNode() (*yaml.Node, error) {
	m := newMapping()
	putStrSlice(m, "enum", v.Enum)
	putStr(m, "default", v.Default)
	putStr(m, "description", v.Description)
	putStrSlice(m, "examples", v.Examples)
	if err := putExtensions(m, v.Extensions); err != nil {
		return nil, err
	}
	return m, nil
}
