package transport

import (
	"context"
	"fmt"
)

// Endpoint is a resolved network destination: the URL to send requests to plus
// default headers every request to that destination carries.
type Endpoint struct {
	URL     URL
	Headers Headers
}

// Apply points req at the endpoint and appends the endpoint's default headers
// after the request's own. Both orders are preserved; nothing is deduplicated.
func (e Endpoint) Apply(req *Request) {
	if e.URL != nil {
		req.URL = e.URL
	}
	for _, p := range e.Headers {
		req.Headers.Add(p.Name, p.Value)
	}
}

// EndpointResolver resolves an operation's endpoint from caller-supplied
// parameters. P is the operation-specific parameter shape, defined by the
// generated client.
//
// A resolver accepting a less specific parameter shape is substitutable
// wherever one accepting a more specific shape is expected. Go generics
// cannot state that variance, so adapters converting between parameter
// shapes have to bridge resolvers of different P.
//
// Resolution may block on external lookup; implementations must respect ctx
// and eventually return an Endpoint or an error.
type EndpointResolver[P any] interface {
	ResolveEndpoint(ctx context.Context, params P) (Endpoint, error)
}

// UnimplementedEndpointResolver is the base for concrete resolvers to embed.
// Calling it directly fails with ErrNotImplemented.
type UnimplementedEndpointResolver[P any] struct{}

// ResolveEndpoint always fails; concrete resolvers must override it.
func (UnimplementedEndpointResolver[P]) ResolveEndpoint(context.Context, P) (Endpoint, error) {
	return Endpoint{}, fmt.Errorf("resolve endpoint: %w", ErrNotImplemented)
}
