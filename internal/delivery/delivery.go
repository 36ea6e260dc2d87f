// Package delivery defines the contract every transport entrypoint
// implements so the application can start them uniformly.
package delivery

import "context"

// Delivery is a long-running transport (an HTTP server, a consumer)
// that serves until the context is cancelled or a fatal error occurs.
type Delivery interface {
	Serve(ctx context.Context) error
}
