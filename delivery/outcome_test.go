package delivery_test

import (
	"errors"
	"testing"

	"github.com/marcelsud/release-notify/delivery"
	"github.com/marcelsud/release-notify/errdefs"
	"github.com/stretchr/testify/assert"
)

func TestOutcomeOf(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		expected delivery.Outcome
	}{
		{"no error", nil, delivery.Delivered},
		{"invalid payload", errdefs.New(errdefs.InvalidPayload, nil), delivery.Rejected},
		{"timeout", errdefs.New(errdefs.Timeout, nil), delivery.TimedOut},
		{"delivery failed", errdefs.New(errdefs.DeliveryFailed, errors.New("x")), delivery.Failed},
		{"file read failed", errdefs.New(errdefs.FileReadFailed, errors.New("x")), delivery.Failed},
		{"untyped error", errors.New("x"), delivery.Failed},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, delivery.OutcomeOf(tc.err))
		})
	}
}

func TestOutcome_String(t *testing.T) {
	for _, o := range []delivery.Outcome{delivery.Delivered, delivery.Skipped, delivery.Rejected, delivery.TimedOut, delivery.Failed} {
		assert.Equal(t, o, delivery.NewOutcome(o.String()))
		assert.NoError(t, o.Validate())
	}
	assert.Error(t, delivery.Outcome(99).Validate())
	assert.True(t, delivery.TimedOut.IsFailure())
	assert.False(t, delivery.Skipped.IsFailure())
}
