package middleware

import (
	"context"
	"time"

	"github.com/kevin07696/httpkit/pkg/logging"
	"github.com/kevin07696/httpkit/pkg/transport"
)

// Logging logs every send with its outcome and duration.
func Logging(logger logging.Logger) Middleware {
	if logger == nil {
		logger = logging.Nop()
	}
	return func(next transport.Client) transport.Client {
		return &loggingClient{next: next, logger: logger}
	}
}

type loggingClient struct {
	next   transport.Client
	logger logging.Logger
}

func (c *loggingClient) Send(ctx context.Context, req *transport.Request, cfg *transport.RequestConfig) (*transport.Response, error) {
	start := time.Now()
	resp, err := c.next.Send(ctx, req, cfg)

	fields := []logging.Field{
		logging.String("method", req.Method),
		logging.Duration("duration", time.Since(start)),
	}
	if req.URL != nil {
		fields = append(fields,
			logging.String("host", req.URL.Hostname()),
			logging.String("path", req.URL.Path()),
		)
	}

	if err != nil {
		c.logger.Error("http send failed", append(fields, logging.Err(err))...)
		return nil, err
	}
	c.logger.Info("http send completed", append(fields, logging.Int("status", resp.StatusCode))...)
	return resp, nil
}
