// Package delivery defines the contract every transport (HTTP API, worker)
// satisfies so cmd mains can start them uniformly.
package delivery

import "context"

// Delivery is a servable transport. Serve blocks until the server stops.
type Delivery interface {
	Serve(ctx context.Context) error
}
