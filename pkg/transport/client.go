package transport

import "context"

// Client is a synchronous HTTP client: Send blocks the calling goroutine
// until the response is available or the exchange fails.
//
// Implementations must honor cfg's read timeout. A nil cfg means all defaults
// apply. This interface is what adapters mock in tests and what concrete
// transports implement.
type Client interface {
	Send(ctx context.Context, req *Request, cfg *RequestConfig) (*Response, error)
}

// AsyncClient is the non-blocking variant: SendAsync returns immediately and
// the exchange completes in the background. The caller observes completion
// through the returned Call.
type AsyncClient interface {
	SendAsync(ctx context.Context, req *Request, cfg *RequestConfig) *Call
}

// Call is a single in-flight exchange started by an AsyncClient.
type Call struct {
	done chan struct{}
	resp *Response
	err  error
}

func newCall() *Call {
	return &Call{done: make(chan struct{})}
}

// complete records the outcome. Must be called exactly once.
func (c *Call) complete(resp *Response, err error) {
	c.resp = resp
	c.err = err
	close(c.done)
}

// Done returns a channel that is closed once the exchange has finished.
func (c *Call) Done() <-chan struct{} {
	return c.done
}

// Response blocks until the exchange finishes and returns its outcome.
func (c *Call) Response() (*Response, error) {
	<-c.done
	return c.resp, c.err
}

type asyncAdapter struct {
	next Client
}

// NewAsyncAdapter lifts a blocking Client into an AsyncClient by running each
// send on its own goroutine.
func NewAsyncAdapter(next Client) AsyncClient {
	return &asyncAdapter{next: next}
}

func (a *asyncAdapter) SendAsync(ctx context.Context, req *Request, cfg *RequestConfig) *Call {
	call := newCall()
	go func() {
		resp, err := a.next.Send(ctx, req, cfg)
		call.complete(resp, err)
	}()
	return call
}

type blockingAdapter struct {
	next AsyncClient
}

// NewBlockingAdapter turns an AsyncClient back into a blocking Client.
func NewBlockingAdapter(next AsyncClient) Client {
	return &blockingAdapter{next: next}
}

func (b *blockingAdapter) Send(ctx context.Context, req *Request, cfg *RequestConfig) (*Response, error) {
	call := b.next.SendAsync(ctx, req, cfg)
	select {
	case <-call.Done():
		return call.Response()
	case <-ctx.Done():
		// The underlying exchange keeps running; an implementation honoring
		// ctx will finish it shortly.
		return nil, &TransportError{Op: "send", Err: ctx.Err()}
	}
}
