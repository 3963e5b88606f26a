package middleware

import "github.com/kevin07696/httpkit/pkg/transport"

// Middleware wraps a transport.Client with additional behavior while
// preserving its contract.
type Middleware func(transport.Client) transport.Client

// Chain applies middlewares so that the first one listed is outermost.
func Chain(client transport.Client, mws ...Middleware) transport.Client {
	for i := len(mws) - 1; i >= 0; i-- {
		client = mws[i](client)
	}
	return client
}
