// Package delivery defines the transport-facing surface of the application.
package delivery

import "context"

// Delivery is a transport (HTTP today) that serves the application until its
// context is cancelled or its lifecycle hook shuts it down.
type Delivery interface {
	Serve(ctx context.Context) error
}
