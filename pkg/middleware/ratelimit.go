package middleware

import (
	"context"

	"golang.org/x/time/rate"

	"github.com/kevin07696/httpkit/pkg/transport"
)

// RateLimit paces sends through a shared token bucket. A send waits until the
// limiter admits it or its context is done.
// requestsPerSecond: sustained send rate
// burst: max burst size
func RateLimit(requestsPerSecond float64, burst int) Middleware {
	limiter := rate.NewLimiter(rate.Limit(requestsPerSecond), burst)
	return func(next transport.Client) transport.Client {
		return &rateLimitClient{next: next, limiter: limiter}
	}
}

type rateLimitClient struct {
	next    transport.Client
	limiter *rate.Limiter
}

func (c *rateLimitClient) Send(ctx context.Context, req *transport.Request, cfg *transport.RequestConfig) (*transport.Response, error) {
	if err := c.limiter.Wait(ctx); err != nil {
		return nil, &transport.TransportError{Op: "rate limit", Err: err}
	}
	return c.next.Send(ctx, req, cfg)
}
