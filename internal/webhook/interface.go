package webhook

import (
	"context"
)

// Service processes GitHub webhook deliveries. Implementations are safe for
// concurrent use.
type Service interface {
	// Process dispatches a validated webhook payload and returns a short
	// human-readable result message for the delivery log.
	Process(ctx context.Context, payload *Payload) (string, error)
}
