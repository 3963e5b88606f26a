package middleware

import (
	"context"

	"github.com/google/uuid"

	"github.com/kevin07696/httpkit/pkg/transport"
)

// DefaultRequestIDHeader is the invocation id header stamped on outgoing
// requests when the caller has not chosen one.
const DefaultRequestIDHeader = "X-Request-Id"

// RequestID stamps each outgoing request with a unique invocation id unless
// the caller already set one. An empty header name selects
// DefaultRequestIDHeader.
func RequestID(header string) Middleware {
	if header == "" {
		header = DefaultRequestIDHeader
	}
	return func(next transport.Client) transport.Client {
		return &requestIDClient{next: next, header: header}
	}
}

type requestIDClient struct {
	next   transport.Client
	header string
}

func (c *requestIDClient) Send(ctx context.Context, req *transport.Request, cfg *transport.RequestConfig) (*transport.Response, error) {
	if _, ok := req.Headers.Get(c.header); !ok {
		req.Headers.Add(c.header, uuid.NewString())
	}
	return c.next.Send(ctx, req, cfg)
}
