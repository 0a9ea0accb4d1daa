package metrics

import (
	"context"
	"time"

	"github.com/marcelsud/release-notify/delivery"
)

// Recorder records the outcome of release notification deliveries.
type Recorder interface {
	// RecordDelivery counts one delivery attempt and observes how long it took
	RecordDelivery(ctx context.Context, outcome delivery.Outcome, duration time.Duration)
}

// Noop is the Recorder used when metrics are disabled.
type Noop struct{}

func (Noop) RecordDelivery(context.Context, delivery.Outcome, time.Duration) {}
