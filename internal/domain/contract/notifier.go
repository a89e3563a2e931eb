package contract

import "context"

// Notifier delivers a formatted report text to the messaging platform.
// This allows mocking in tests while keeping the real implementation simple
type Notifier interface {
	// Send pushes a single text message to the destination group/channel,
	// authenticating with the given credential.
	Send(ctx context.Context, credential, destination, text string) error
}
