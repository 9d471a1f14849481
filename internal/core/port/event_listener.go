package port

import "context"

// EventListenerPort is a component that listens for external events
// (queue deliveries) and drives core logic in response.
type EventListenerPort interface {
	// Start runs the listener until the context is cancelled.
	Start(ctx context.Context) error

	// Close stops the listener, waiting for in-flight handlers to finish.
	Close() error
}
