// Package notify delivers rendered order messages through a messaging provider.
package notify

import "context"

// Sender relays one message to one destination and returns the provider's message id.
type Sender interface {
	Send(ctx context.Context, message, destination string) (string, error)
}
