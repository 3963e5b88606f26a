package transport

import (
	"context"
	"errors"
	"fmt"
	"time"
)

// ErrNotImplemented reports that a contract method was invoked on its
// embeddable base rather than on a concrete implementation.
var ErrNotImplemented = errors.New("not implemented")

// TimeoutError reports that the first response byte did not arrive within the
// configured read timeout.
type TimeoutError struct {
	Op      string
	Timeout time.Duration
}

func (e *TimeoutError) Error() string {
	return fmt.Sprintf("%s: no response within %s", e.Op, e.Timeout)
}

// Is matches context.DeadlineExceeded so callers can treat read-timeout
// expiry like any other exceeded deadline.
func (e *TimeoutError) Is(target error) bool {
	return target == context.DeadlineExceeded
}

// TransportError annotates a failure with the operation that produced it.
type TransportError struct {
	Op  string
	Err error
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("%s: %v", e.Op, e.Err)
}

func (e *TransportError) Unwrap() error {
	return e.Err
}
