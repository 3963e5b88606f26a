package transport

import "io"

// Request represents an HTTP request to be sent by a Client.
type Request struct {
	URL     URL
	Method  string // GET, PUT, etc
	Headers Headers
	Body    io.Reader // opaque payload; nil means no body
}

// NewRequest creates a request with empty headers and no body.
func NewRequest(method string, url URL) *Request {
	return &Request{
		URL:     url,
		Method:  method,
		Headers: Headers{},
	}
}

// Response represents an HTTP response as delivered by the underlying
// transport.
type Response struct {
	StatusCode int
	Headers    Headers
	Body       []byte // opaque payload
}
