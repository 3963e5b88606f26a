package transport_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kevin07696/httpkit/pkg/transport"
	"github.com/kevin07696/httpkit/test/mocks"
)

func TestEndpoint_Apply(t *testing.T) {
	endpointURL := transport.NewURI("https", "service.us-west-2.example.com")
	endpoint := transport.Endpoint{
		URL: endpointURL,
		Headers: transport.NewHeaders(
			transport.Param{Name: "x-service-tier", Value: "standard"},
			transport.Param{Name: "x-trace", Value: "on"},
		),
	}

	req := transport.NewRequest("POST", transport.NewURI("https", "placeholder.example.com"))
	req.Headers.Add("content-type", "application/json")

	endpoint.Apply(req)

	assert.Same(t, transport.URL(endpointURL), req.URL, "request must be pointed at the endpoint")
	assert.Equal(t, []transport.Param{
		{Name: "content-type", Value: "application/json"},
		{Name: "x-service-tier", Value: "standard"},
		{Name: "x-trace", Value: "on"},
	}, req.Headers.Entries(), "endpoint headers follow request headers, both in order")
}

func TestEndpoint_ApplyWithoutURLKeepsRequestURL(t *testing.T) {
	requestURL := transport.NewURI("https", "api.example.com")
	req := transport.NewRequest("GET", requestURL)

	transport.Endpoint{Headers: transport.NewHeaders(transport.Param{Name: "x", Value: "y"})}.Apply(req)

	assert.Same(t, transport.URL(requestURL), req.URL)
	assert.Equal(t, 1, req.Headers.Len())
}

type listParams struct {
	Region string
}

type listResolver struct {
	transport.UnimplementedEndpointResolver[listParams]
}

func TestUnimplementedEndpointResolver(t *testing.T) {
	var resolver transport.EndpointResolver[listParams] = listResolver{}

	_, err := resolver.ResolveEndpoint(context.Background(), listParams{Region: "us-west-2"})
	require.Error(t, err)
	assert.ErrorIs(t, err, transport.ErrNotImplemented)
}

func TestMockResolver_ResolvesEndpoint(t *testing.T) {
	want := transport.Endpoint{URL: transport.NewURI("https", "service.eu-central-1.example.com")}
	resolver := &mocks.MockResolver[listParams]{
		ResolveFunc: func(ctx context.Context, params listParams) (transport.Endpoint, error) {
			return want, nil
		},
	}

	got, err := resolver.ResolveEndpoint(context.Background(), listParams{Region: "eu-central-1"})
	require.NoError(t, err)
	assert.Equal(t, want, got)
	require.Len(t, resolver.Calls, 1)
	assert.Equal(t, "eu-central-1", resolver.Calls[0].Region)
}
