package delivery

import (
	"fmt"

	"github.com/marcelsud/release-notify/errdefs"
)

/* Outcome represents how a release notification ended
 * Skipped means no message was configured for the release result
 */
type Outcome int

const (
	Delivered Outcome = iota + 1
	Skipped
	Rejected
	TimedOut
	Failed
)

// String returns the string representation of the outcome
func (o Outcome) String() string {
	switch o {
	case Delivered:
		return "delivered"
	case Skipped:
		return "skipped"
	case Rejected:
		return "rejected"
	case TimedOut:
		return "timed_out"
	case Failed:
		return "failed"
	default:
		return "unknown"
	}
}

// NewOutcome creates an Outcome from a string
func NewOutcome(s string) Outcome {
	switch s {
	case "delivered":
		return Delivered
	case "skipped":
		return Skipped
	case "rejected":
		return Rejected
	case "timed_out":
		return TimedOut
	default:
		return Failed
	}
}

// Validate checks if the outcome is valid
func (o Outcome) Validate() error {
	if o < Delivered || o > Failed {
		return fmt.Errorf("invalid outcome: %d", o)
	}
	return nil
}

// IsFailure returns true if the outcome should fail the release hook
func (o Outcome) IsFailure() bool {
	return o == Rejected || o == TimedOut || o == Failed
}

// OutcomeOf classifies the error returned by a notification attempt
func OutcomeOf(err error) Outcome {
	if err == nil {
		return Delivered
	}
	switch errdefs.KindOf(err) {
	case errdefs.InvalidPayload:
		return Rejected
	case errdefs.Timeout:
		return TimedOut
	default:
		return Failed
	}
}
