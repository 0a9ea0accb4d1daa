package delivery

import (
	"context"
	"errors"
	"time"

	"github.com/marcelsud/release-notify/errdefs"
	"github.com/marcelsud/release-notify/message"
	"github.com/rs/zerolog"
)

// DefaultTimeout bounds a single delivery attempt.
const DefaultTimeout = 5 * time.Second

// UseCase delivers one payload to one webhook
type UseCase interface {
	Send(ctx context.Context, payload message.Payload, webhookURL string) (Result, error)
}

/* Notifier represents the delivery layer
 * Uses pointer semantics as it's an API, not data
 * One attempt per call: no retries, no backoff
 */
type Notifier struct {
	sender  Sender
	timeout time.Duration
	logger  zerolog.Logger
}

// Option configures a Notifier
type Option func(*Notifier)

// WithTimeout overrides DefaultTimeout. Non-positive values are ignored.
func WithTimeout(d time.Duration) Option {
	return func(n *Notifier) {
		if d > 0 {
			n.timeout = d
		}
	}
}

// WithLogger sets the notifier logger
func WithLogger(logger zerolog.Logger) Option {
	return func(n *Notifier) {
		n.logger = logger
	}
}

// NewNotifier creates a notifier delivering through sender
func NewNotifier(sender Sender, opts ...Option) *Notifier {
	n := &Notifier{
		sender:  sender,
		timeout: DefaultTimeout,
		logger:  zerolog.Nop(),
	}
	for _, opt := range opts {
		opt(n)
	}
	return n
}

// Timeout returns the bound applied to each delivery
func (n *Notifier) Timeout() time.Duration {
	return n.timeout
}

// Send delivers payload to webhookURL with exactly one call to the sender.
// Failures are *errdefs.Error values of kind InvalidPayload, Timeout or DeliveryFailed.
func (n *Notifier) Send(ctx context.Context, payload message.Payload, webhookURL string) (Result, error) {
	if err := payload.Validate(); err != nil {
		return Result{}, errdefs.New(errdefs.InvalidPayload, nil)
	}

	result, err := race(ctx, n.timeout, func(callCtx context.Context) (Result, error) {
		return n.sender.Send(callCtx, webhookURL, payload)
	})
	switch {
	case errors.Is(err, errDeadline):
		n.logger.Warn().Dur("timeout", n.timeout).Msg("webhook request timed out")
		return Result{}, errdefs.New(errdefs.Timeout, nil)
	case err != nil:
		return Result{}, errdefs.New(errdefs.DeliveryFailed, err)
	}

	n.logger.Debug().Int("status", result.StatusCode).Msg("webhook delivered")
	return result, nil
}
