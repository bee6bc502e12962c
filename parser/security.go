package parser

import "go.yaml.in/yaml/v4"

// SecurityRequirement maps security scheme names to the scopes required for
// execution. Scheme order is preserved.
type SecurityRequirement struct {
	Schemes *Map[[]string]
}

func (s *SecurityRequirement) decodeNode(n *yaml.Node, path string) error {
	entries, err := mappingEntries(n, path)
	if err != nil {
		return err
	}
	s.Schemes = NewMap[[]string]()
	for _, e := range entries {
		var scopes []string
		if err := setStringSlice(&scopes, e.val, joinPath(path, e.key)); err != nil {
			return err
		}
		s.Schemes.Set(e.key, scopes)
	}
	return nil
}

func (s *SecurityRequirement) encodeNode() (*yaml.Node, error) {
	m := newMapping()
	for name, scopes := range s.Schemes.All() {
		seq := newSequence()
		for _, sc := range scopes {
			seq.Content = append(seq.Content, strNode(sc))
		}
		mapPut(m, name, seq)
	}
	return m, nil
}

// SecurityScheme defines one mechanism the API uses for authentication or
// authorization.
type SecurityScheme struct {
	// Type is required, e.g. "apiKey", "http", "oauth2", "userPassword".
	Type        string
	Description string
	// Name and In apply to the httpApiKey and apiKey types.
	Name string
	In   string
	// Scheme and BearerFormat apply to the http type.
	Scheme       string
	BearerFormat string
	// Flows applies to the oauth2 type.
	Flows *OAuthFlows
	// OpenIDConnectURL applies to the openIdConnect type.
	OpenIDConnectURL string
	Extensions       *Extensions
}

func (s *SecurityScheme) decodeNode(n *yaml.Node, path string) error {
	entries, err := mappingEntries(n, path)
	if err != nil {
		return err
	}
	for _, e := range entries {
		kp := joinPath(path, e.key)
		switch e.key {
		case "type":
			err = setString(&s.Type, e.val, kp)
		case "description":
			err = setString(&s.Description, e.val, kp)
		case "name":
			err = setString(&s.Name, e.val, kp)
		case "in":
			err = setString(&s.In, e.val, kp)
		case "scheme":
			err = setString(&s.Scheme, e.val, kp)
		case "bearerFormat":
			err = setString(&s.BearerFormat, e.val, kp)
		case "flows":
			s.Flows, err = decodeObj[OAuthFlows](e.val, kp)
		case "openIdConnectUrl":
			err = setString(&s.OpenIDConnectURL, e.val, kp)
		default:
			err = captureExtension(&s.Extensions, e.key, e.val, kp)
		}
		if err != nil {
			return err
		}
	}
	if s.Type == "" {
		return missing(path, "type")
	}
	return nil
}

func (s *SecurityScheme) encodeNode() (*yaml.Node, error) {
	m := newMapping()
	putStrAlways(m, "type", s.Type)
	putStr(m, "description", s.Description)
	putStr(m, "name", s.Name)
	putStr(m, "in", s.In)
	putStr(m, "scheme", s.Scheme)
	putStr(m, "bearerFormat", s.BearerFormat)
	if err := putObj[OAuthFlows](m, "flows", s.Flows); err != nil {
		return nil, err
	}
	putStr(m, "openIdConnectUrl", s.OpenIDConnectURL)
	if err := putExtensions(m, s.Extensions); err != nil {
		return nil, err
	}
	return m, nil
}

// OAuthFlows groups the configured OAuth 2.0 flows.
type OAuthFlows struct {
	Implicit          *OAuthFlow
	Password          *OAuthFlow
	ClientCredentials *OAuthFlow
	AuthorizationCode *OAuthFlow
	Extensions        *Extensions
}

func (f *OAuthFlows) decodeNode(n *yaml.Node, path string) error {
	entries, err := mappingEntries(n, path)
	if err != nil {
		return err
	}
	for _, e := range entries {
		kp := joinPath(path, e.key)
		switch e.key {
		case "implicit":
			f.Implicit, err = decodeObj[OAuthFlow](e.val, kp)
		case "password":
			f.Password, err = decodeObj[OAuthFlow](e.val, kp)
		case "clientCredentials":
			f.ClientCredentials, err = decodeObj[OAuthFlow](e.val, kp)
		case "authorizationCode":
			f.AuthorizationCode, err = decodeObj[OAuthFlow](e.val, kp)
		default:
			err = captureExtension(&f.Extensions, e.key, e.val, kp)
		}
		if err != nil {
			return err
		}
	}
	return nil
}

func (f *OAuthFlows) encodeNode() (*yaml.Node, error) {
	m := newMapping()
	if err := putObj[OAuthFlow](m, "implicit", f.Implicit); err != nil {
		return nil, err
	}
	if err := putObj[OAuthFlow](m, "password", f.Password); err != nil {
		return nil, err
	}
	if err := putObj[OAuthFlow](m, "clientCredentials", f.ClientCredentials); err != nil {
		return nil, err
	}
	if err := putObj[OAuthFlow](m, "authorizationCode", f.AuthorizationCode); err != nil {
		return nil, err
	}
	if err := putExtensions(m, f.Extensions); err != nil {
		return nil, err
	}
	return m, nil
}

// OAuthFlow configures one supported OAuth 2.0 flow.
type OAuthFlow struct {
	AuthorizationURL string
	TokenURL         string
	RefreshURL       string
	// Scopes maps scope names to their descriptions, in document order.
	Scopes     *Map[string]
	Extensions *Extensions
}

func (f *OAuthFlow) decodeNode(n *yaml.Node, path string) error {
	entries, err := mappingEntries(n, path)
	if err != nil {
		return err
	}
	for _, e := range entries {
		kp := joinPath(path, e.key)
		switch e.key {
		case "authorizationUrl":
			err = setString(&f.AuthorizationURL, e.val, kp)
		case "tokenUrl":
			err = setString(&f.TokenURL, e.val, kp)
		case "refreshUrl":
			err = setString(&f.RefreshURL, e.val, kp)
		case "scopes":
			f.Scopes, err = decodeStringMap(e.val, kp)
		default:
			err = captureExtension(&f.Extensions, e.key, e.val, kp)
		}
		if err != nil {
			return err
		}
	}
	return nil
}

func (f *OAuthFlow) encodeNode() (*yaml.Node, error) {
	m := newMapping()
	putStr(m, "authorizationUrl", f.AuthorizationURL)
	putStr(m, "tokenUrl", f.TokenURL)
	putStr(m, "refreshUrl", f.RefreshURL)
	putStringMap(m, "scopes", f.Scopes)
	if err := putExtensions(m, f.Extensions); err != nil {
		return nil, err
	}
	return m, nil
}
