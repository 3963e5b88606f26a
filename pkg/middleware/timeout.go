package middleware

import (
	"context"
	"errors"
	"time"

	"github.com/kevin07696/httpkit/pkg/transport"
)

// Timeout enforces the per-request read timeout as a context deadline around
// the wrapped client. Requests that set no timeout of their own use fallback;
// a fallback <= 0 disables the deadline for such requests.
func Timeout(fallback time.Duration) Middleware {
	return func(next transport.Client) transport.Client {
		return &timeoutClient{next: next, fallback: fallback}
	}
}

type timeoutClient struct {
	next     transport.Client
	fallback time.Duration
}

func (c *timeoutClient) Send(ctx context.Context, req *transport.Request, cfg *transport.RequestConfig) (*transport.Response, error) {
	timeout := cfg.ReadTimeoutOrDefault(c.fallback)
	if timeout <= 0 {
		return c.next.Send(ctx, req, cfg)
	}

	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	resp, err := c.next.Send(ctx, req, cfg)
	if err != nil && errors.Is(err, context.DeadlineExceeded) && ctx.Err() != nil {
		return nil, &transport.TimeoutError{Op: "send " + req.Method, Timeout: timeout}
	}
	return resp, err
}
