// Package delivery defines the contract every inbound adapter implements.
package delivery

import "context"

// Delivery is a long-running inbound adapter such as an HTTP server or a
// scheduler loop. Serve blocks until the adapter stops or fails.
type Delivery interface {
	Serve(ctx context.Context) error
}
