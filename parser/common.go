package parser

import "go.yaml.in/yaml/v4"

// Info provides metadata about the API.
type Info struct {
	Title          string
	Version        string
	Description    string
	TermsOfService string
	Contact        *Contact
	License        *License
	Extensions     *Extensions
}

func (i *Info) decodeNode(n *yaml.Node, path string) error {
	entries, err := mappingEntries(n, path)
	if err != nil {
		return err
	}
	for _, e := range entries {
		kp := joinPath(path, e.key)
		switch e.key {
		case "title":
			err = setString(&i.Title, e.val, kp)
		case "version":
			err = setString(&i.Version, e.val, kp)
		case "description":
			err = setString(&i.Description, e.val, kp)
		case "termsOfService":
			err = setString(&i.TermsOfService, e.val, kp)
		case "contact":
			i.Contact, err = decodeObj[Contact](e.val, kp)
		case "license":
			i.License, err = decodeObj[License](e.val, kp)
		default:
			err = captureExtension(&i.Extensions, e.key, e.val, kp)
		}
		if err != nil {
			return err
		}
	}
	if i.Title == "" {
		return missing(path, "title")
	}
	if i.Version == "" {
		return missing(path, "version")
	}
	return nil
}

func (i *Info) encodeNode() (*yaml.Node, error) {
	m := newMapping()
	putStrAlways(m, "title", i.Title)
	putStrAlways(m, "version", i.Version)
	putStr(m, "description", i.Description)
	putStr(m, "termsOfService", i.TermsOfService)
	if err := putObj[Contact](m, "contact", i.Contact); err != nil {
		return nil, err
	}
	if err := putObj[License](m, "license", i.License); err != nil {
		return nil, err
	}
	if err := putExtensions(m, i.Extensions); err != nil {
		return nil, err
	}
	return m, nil
}

// Contact information for the exposed API.
type Contact struct {
	Name       string
	URL        string
	Email      string
	Extensions *Extensions
}

func (c *Contact) decodeNode(n *yaml.Node, path string) error {
	entries, err := mappingEntries(n, path)
	if err != nil {
		return err
	}
	for _, e := range entries {
		kp := joinPath(path, e.key)
		switch e.key {
		case "name":
			err = setString(&c.Name, e.val, kp)
		case "url":
			err = setString(&c.URL, e.val, kp)
		case "email":
			err = setString(&c.Email, e.val, kp)
		default:
			err = captureExtension(&c.Extensions, e.key, e.val, kp)
		}
		if err != nil {
			return err
		}
	}
	return nil
}

func (c *Contact) encodeNode() (*yaml.Node, error) {
	m := newMapping()
	putStr(m, "name", c.Name)
	putStr(m, "url", c.URL)
	putStr(m, "email", c.Email)
	if err := putExtensions(m, c.Extensions); err != nil {
		return nil, err
	}
	return m, nil
}

// License information for the exposed API.
type License struct {
	Name       string
	URL        string
	Extensions *Extensions
}

func (l *License) decodeNode(n *yaml.Node, path string) error {
	entries, err := mappingEntries(n, path)
	if err != nil {
		return err
	}
	for _, e := range entries {
		kp := joinPath(path, e.key)
		switch e.key {
		case "name":
			err = setString(&l.Name, e.val, kp)
		case "url":
			err = setString(&l.URL, e.val, kp)
		default:
			err = captureExtension(&l.Extensions, e.key, e.val, kp)
		}
		if err != nil {
			return err
		}
	}
	if l.Name == "" {
		return missing(path, "name")
	}
	return nil
}

func (l *License) encodeNode() (*yaml.Node, error) {
	m := newMapping()
	putStrAlways(m, "name", l.Name)
	putStr(m, "url", l.URL)
	if err := putExtensions(m, l.Extensions); err != nil {
		return nil, err
	}
	return m, nil
}

// Tag adds metadata for logical grouping of channels, operations, and
// messages.
type Tag struct {
	Name         string
	Description  string
	ExternalDocs *ExternalDocs
	Extensions   *Extensions
}

func (t *Tag) decodeNode(n *yaml.Node, path string) error {
	entries, err := mappingEntries(n, path)
	if err != nil {
		return err
	}
	for _, e := range entries {
		kp := joinPath(path, e.key)
		switch e.key {
		case "name":
			err = setString(&t.Name, e.val, kp)
		case "description":
			err = setString(&t.Description, e.val, kp)
		case "externalDocs":
			t.ExternalDocs, err = decodeObj[ExternalDocs](e.val, kp)
		default:
			err = captureExtension(&t.Extensions, e.key, e.val, kp)
		}
		if err != nil {
			return err
		}
	}
	if t.Name == "" {
		return missing(path, "name")
	}
	return nil
}

func (t *Tag) encodeNode() (*yaml.Node, error) {
	m := newMapping()
	putStrAlways(m, "name", t.Name)
	putStr(m, "description", t.Description)
	if err := putObj[ExternalDocs](m, "externalDocs", t.ExternalDocs); err != nil {
		return nil, err
	}
	if err := putExtensions(m, t.Extensions); err != nil {
		return nil, err
	}
	return m, nil
}

// ExternalDocs references external documentation.
type ExternalDocs struct {
	Description string
	URL         string
	Extensions  *Extensions
}

func (x *ExternalDocs) decodeNode(n *yaml.Node, path string) error {
	entries, err := mappingEntries(n, path)
	if err != nil {
		return err
	}
	for _, e := range entries {
		kp := joinPath(path, e.key)
		switch e.key {
		case "description":
			err = setString(&x.Description, e.val, kp)
		case "url":
			err = setString(&x.URL, e.val, kp)
		default:
			err = captureExtension(&x.Extensions, e.key, e.val, kp)
		}
		if err != nil {
			return err
		}
	}
	if x.URL == "" {
		return missing(path, "url")
	}
	return nil
}

func (x *ExternalDocs) encodeNode() (*yaml.Node, error) {
	m := newMapping()
	putStr(m, "description", x.Description)
	putStrAlways(m, "url", x.URL)
	if err := putExtensions(m, x.Extensions); err != nil {
		return nil, err
	}
	return m, nil
}

// CorrelationID defines the ID used for message tracing and matching.
type CorrelationID struct {
	Description string
	// Location is required: a runtime expression locating the correlation
	// ID, e.g. "$message.header#/correlationId".
	Location   string
	Extensions *Extensions
}

func (c *CorrelationID) decodeNode(n *yaml.Node, path string) error {
	entries, err := mappingEntries(n, path)
	if err != nil {
		return err
	}
	for _, e := range entries {
		kp := joinPath(path, e.key)
		switch e.key {
		case "description":
			err = setString(&c.Description, e.val, kp)
		case "location":
			err = setString(&c.Location, e.val, kp)
		default:
			err = captureExtension(&c.Extensions, e.key, e.val, kp)
		}
		if err != nil {
			return err
		}
	}
	if c.Location == "" {
		return missing(path, "location")
	}
	return nil
}

func (c *CorrelationID) encodeNode() (*yaml.Node, error) {
	m := newMapping()
	putStr(m, "description", c.Description)
	putStrAlways(m, "location", c.Location)
	if err := putExtensions(m, c.Extensions); err != nil {
		return nil, err
	}
	return m, nil
}

// Parameter describes one parameter of a parameterized channel name.
type Parameter struct {
	Description string
	Schema      *RefOr[Schema]
	// Location is a runtime expression for the parameter value, e.g.
	// "$message.payload#/user/id".
	Location   string
	Extensions *Extensions
}

func (p *Parameter) decodeNode(n *yaml.Node, path string) error {
	entries, err := mappingEntries(n, path)
	if err != nil {
		return err
	}
	for _, e := range entries {
		kp := joinPath(path, e.key)
		switch e.key {
		case "description":
			err = setString(&p.Description, e.val, kp)
		case "schema":
			p.Schema, err = decodeRefOr[Schema](e.val, kp)
		case "location":
			err = setString(&p.Location, e.val, kp)
		default:
			err = captureExtension(&p.Extensions, e.key, e.val, kp)
		}
		if err != nil {
			return err
		}
	}
	return nil
}

func (p *Parameter) encodeNode() (*yaml.Node, error) {
	m := newMapping()
	putStr(m, "description", p.Description)
	if err := putRefOr[Schema](m, "schema", p.Schema); err != nil {
		return nil, err
	}
	putStr(m, "location", p.Location)
	if err := putExtensions(m, p.Extensions); err != nil {
		return nil, err
	}
	return m, nil
}
