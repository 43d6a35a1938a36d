package delivery

import "context"

// Delivery is a long-running inbound transport started by the fx graph.
type Delivery interface {
	Serve(ctx context.Context) error
}
