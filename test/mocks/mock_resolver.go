package mocks

import (
	"context"

	"github.com/kevin07696/httpkit/pkg/transport"
)

// MockResolver is a mock implementation of transport.EndpointResolver for testing
type MockResolver[P any] struct {
	ResolveFunc func(ctx context.Context, params P) (transport.Endpoint, error)
	Calls       []P
}

// ResolveEndpoint executes the mock function and captures the call
func (m *MockResolver[P]) ResolveEndpoint(ctx context.Context, params P) (transport.Endpoint, error) {
	m.Calls = append(m.Calls, params)
	if m.ResolveFunc != nil {
		return m.ResolveFunc(ctx, params)
	}
	return transport.Endpoint{}, nil
}

// Reset clears captured calls
func (m *MockResolver[P]) Reset() {
	m.Calls = nil
}
