package transport

import "time"

// RequestConfig carries per-request options. The zero value (and a nil
// pointer) means every option takes its implementation default.
type RequestConfig struct {
	// ReadTimeout is how long the client waits for the first response byte
	// over an established, open connection before failing with a timeout.
	// Nil means the implementation default applies.
	ReadTimeout *time.Duration
}

// WithReadTimeout returns a RequestConfig with the given read timeout set.
func WithReadTimeout(d time.Duration) *RequestConfig {
	return &RequestConfig{ReadTimeout: &d}
}

// ReadTimeoutOrDefault returns the configured read timeout, or fallback when
// unset. Safe to call on a nil receiver.
func (c *RequestConfig) ReadTimeoutOrDefault(fallback time.Duration) time.Duration {
	if c == nil || c.ReadTimeout == nil {
		return fallback
	}
	return *c.ReadTimeout
}
