package transport

import (
	"fmt"
	"net/url"
	"strconv"
	"strings"
)

// URL describes a request destination. Implementations are plain value
// carriers; nothing is validated at this layer. Scheme is expected to be
// "http" or "https" but is not enforced.
type URL interface {
	Scheme() string
	Hostname() string
	// Port returns the explicit port, or nil when the scheme default applies.
	Port() *int
	Path() string
	// Query returns the query parameters in order, duplicates included.
	Query() []Param
}

// URI is the default URL implementation.
type URI struct {
	scheme   string
	hostname string
	port     *int
	path     string
	query    []Param
}

// URIOption configures a URI under construction.
type URIOption func(*URI)

// WithPort sets an explicit port.
func WithPort(port int) URIOption {
	return func(u *URI) { u.port = &port }
}

// WithPath sets the request path.
func WithPath(path string) URIOption {
	return func(u *URI) { u.path = path }
}

// WithQuery appends query parameters, preserving the order given.
func WithQuery(params ...Param) URIOption {
	return func(u *URI) { u.query = append(u.query, params...) }
}

// NewURI builds a URI for the given scheme and hostname.
func NewURI(scheme, hostname string, opts ...URIOption) *URI {
	u := &URI{scheme: scheme, hostname: hostname}
	for _, opt := range opts {
		opt(u)
	}
	return u
}

// ParseURI parses an absolute URL string into a URI. Query parameter order
// and duplicates survive the parse.
func ParseURI(raw string) (*URI, error) {
	parsed, err := url.Parse(raw)
	if err != nil {
		return nil, &TransportError{Op: "parse uri", Err: err}
	}
	if parsed.Scheme == "" || parsed.Hostname() == "" {
		return nil, &TransportError{Op: "parse uri", Err: fmt.Errorf("missing scheme or host in %q", raw)}
	}

	u := &URI{
		scheme:   parsed.Scheme,
		hostname: parsed.Hostname(),
		path:     parsed.Path,
	}
	if p := parsed.Port(); p != "" {
		port, err := strconv.Atoi(p)
		if err != nil {
			return nil, &TransportError{Op: "parse uri", Err: fmt.Errorf("invalid port %q", p)}
		}
		u.port = &port
	}
	u.query, err = parseQuery(parsed.RawQuery)
	if err != nil {
		return nil, &TransportError{Op: "parse uri", Err: err}
	}
	return u, nil
}

// parseQuery is an order-preserving replacement for url.ParseQuery, which
// collapses parameters into a map.
func parseQuery(rawQuery string) ([]Param, error) {
	if rawQuery == "" {
		return nil, nil
	}
	var params []Param
	for _, pair := range strings.Split(rawQuery, "&") {
		if pair == "" {
			continue
		}
		name, value, _ := strings.Cut(pair, "=")
		decodedName, err := url.QueryUnescape(name)
		if err != nil {
			return nil, fmt.Errorf("invalid query parameter %q", pair)
		}
		decodedValue, err := url.QueryUnescape(value)
		if err != nil {
			return nil, fmt.Errorf("invalid query parameter %q", pair)
		}
		params = append(params, Param{Name: decodedName, Value: decodedValue})
	}
	return params, nil
}

// Scheme returns the URL scheme, e.g. "https".
func (u *URI) Scheme() string { return u.scheme }

// Hostname returns the host without any port.
func (u *URI) Hostname() string { return u.hostname }

// Port returns the explicit port, or nil when none was set.
func (u *URI) Port() *int { return u.port }

// Path returns the request path.
func (u *URI) Path() string { return u.path }

// Query returns the query parameters in order.
func (u *URI) Query() []Param {
	params := make([]Param, len(u.query))
	copy(params, u.query)
	return params
}

// String renders the URI as an absolute URL.
func (u *URI) String() string {
	var b strings.Builder
	b.WriteString(u.scheme)
	b.WriteString("://")
	b.WriteString(u.hostname)
	if u.port != nil {
		b.WriteByte(':')
		b.WriteString(strconv.Itoa(*u.port))
	}
	if u.path != "" && !strings.HasPrefix(u.path, "/") {
		b.WriteByte('/')
	}
	b.WriteString(u.path)
	for i, p := range u.query {
		if i == 0 {
			b.WriteByte('?')
		} else {
			b.WriteByte('&')
		}
		b.WriteString(url.QueryEscape(p.Name))
		b.WriteByte('=')
		b.WriteString(url.QueryEscape(p.Value))
	}
	return b.String()
}
