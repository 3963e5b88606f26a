package middleware

import (
	"context"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/kevin07696/httpkit/pkg/transport"
)

var (
	sendsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "httpkit_client_sends_total",
			Help: "Total number of client sends",
		},
		[]string{"method", "status"},
	)

	sendDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "httpkit_client_send_duration_seconds",
			Help:    "Duration of client sends in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method"},
	)

	sendsInFlight = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "httpkit_client_sends_in_flight",
			Help: "Number of client sends currently in flight",
		},
	)
)

// Metrics records Prometheus metrics for every send
func Metrics() Middleware {
	return func(next transport.Client) transport.Client {
		return &metricsClient{next: next}
	}
}

type metricsClient struct {
	next transport.Client
}

func (c *metricsClient) Send(ctx context.Context, req *transport.Request, cfg *transport.RequestConfig) (*transport.Response, error) {
	start := time.Now()
	sendsInFlight.Inc()
	defer sendsInFlight.Dec()

	resp, err := c.next.Send(ctx, req, cfg)

	sendDuration.WithLabelValues(req.Method).Observe(time.Since(start).Seconds())

	status := "error"
	if err == nil {
		status = strconv.Itoa(resp.StatusCode)
	}
	sendsTotal.WithLabelValues(req.Method, status).Inc()

	return resp, err
}
