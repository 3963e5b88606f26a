package transport

import "strings"

// Param is a single name/value string pair. It backs both header entries and
// URL query parameters.
type Param struct {
	Name  string
	Value string
}

// Headers is an ordered sequence of name/value pairs.
//
// Headers is deliberately a list rather than a map: duplicate names are legal
// in HTTP, and for headers like Set-Cookie their order matters. Every
// operation preserves insertion order end-to-end.
type Headers []Param

// NewHeaders creates a Headers from the given entries, preserving their order.
func NewHeaders(entries ...Param) Headers {
	h := make(Headers, len(entries))
	copy(h, entries)
	return h
}

// Add appends a header entry, keeping any existing entries with the same name.
func (h *Headers) Add(name, value string) {
	*h = append(*h, Param{Name: name, Value: value})
}

// Get returns the first value for name. Name matching is case-insensitive,
// matching HTTP field-name semantics.
func (h Headers) Get(name string) (string, bool) {
	for _, p := range h {
		if strings.EqualFold(p.Name, name) {
			return p.Value, true
		}
	}
	return "", false
}

// Values returns every value for name, in insertion order.
func (h Headers) Values(name string) []string {
	var values []string
	for _, p := range h {
		if strings.EqualFold(p.Name, name) {
			values = append(values, p.Value)
		}
	}
	return values
}

// Len returns the number of entries, counting duplicates.
func (h Headers) Len() int {
	return len(h)
}

// Entries returns an ordered copy of all entries.
func (h Headers) Entries() []Param {
	entries := make([]Param, len(h))
	copy(entries, h)
	return entries
}

// Clone returns an independent copy. Mutating the clone never affects the
// original.
func (h Headers) Clone() Headers {
	if h == nil {
		return nil
	}
	clone := make(Headers, len(h))
	copy(clone, h)
	return clone
}
