// Package delivery defines the contract every transport shares, no
// matter whether it serves HTTP or runs a background loop.
package delivery

import "context"

// Delivery is one runnable transport of the gateway. Serve blocks until
// the transport stops or fails; graceful shutdown is driven by the fx
// lifecycle hooks each implementation registers in its constructor.
type Delivery interface {
	Serve(ctx context.Context) error
}
