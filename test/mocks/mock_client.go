package mocks

import (
	"context"

	"github.com/kevin07696/httpkit/pkg/transport"
)

// MockClient is a mock implementation of transport.Client for testing
type MockClient struct {
	SendFunc func(ctx context.Context, req *transport.Request, cfg *transport.RequestConfig) (*transport.Response, error)
	Calls    []*transport.Request
}

// NewMockClient creates a new mock client
func NewMockClient(sendFunc func(ctx context.Context, req *transport.Request, cfg *transport.RequestConfig) (*transport.Response, error)) *MockClient {
	return &MockClient{
		SendFunc: sendFunc,
		Calls:    []*transport.Request{},
	}
}

// Send executes the mock function and captures the call
func (m *MockClient) Send(ctx context.Context, req *transport.Request, cfg *transport.RequestConfig) (*transport.Response, error) {
	m.Calls = append(m.Calls, req)
	if m.SendFunc != nil {
		return m.SendFunc(ctx, req, cfg)
	}
	// Default success response
	return &transport.Response{
		StatusCode: 200,
		Headers:    transport.Headers{},
		Body:       []byte(`{"status":"ok"}`),
	}, nil
}

// Reset clears captured calls
func (m *MockClient) Reset() {
	m.Calls = []*transport.Request{}
}
