// Package delivery defines the contract every transport-facing server in the
// application fulfils.
package delivery

import "context"

// Delivery is a long-running server (HTTP today, workers later) started by
// the application entrypoint and stopped through the fx lifecycle.
type Delivery interface {
	Serve(ctx context.Context) error
}
