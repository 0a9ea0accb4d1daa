package delivery

import (
	"context"

	"github.com/marcelsud/release-notify/message"
)

// Result is what the webhook answered to a delivered payload
type Result struct {
	StatusCode int
	Body       string
}

// Sender performs the outbound webhook call
type Sender interface {
	Send(ctx context.Context, webhookURL string, payload message.Payload) (Result, error)
}

// SenderFunc adapts an ordinary function to the Sender interface
type SenderFunc func(ctx context.Context, webhookURL string, payload message.Payload) (Result, error)

// Send calls f(ctx, webhookURL, payload)
func (f SenderFunc) Send(ctx context.Context, webhookURL string, payload message.Payload) (Result, error) {
	return f(ctx, webhookURL, payload)
}
