package errdefs

import (
	"errors"
	"fmt"
)

/* Kind classifies why a notification could not be delivered
 * Every failure reported to the release lifecycle carries exactly one kind
 */
type Kind int

const (
	InvalidPayload Kind = iota + 1
	Timeout
	DeliveryFailed
	FileReadFailed
)

// String returns the string representation of the kind
func (k Kind) String() string {
	switch k {
	case InvalidPayload:
		return "invalid_payload"
	case Timeout:
		return "timeout"
	case DeliveryFailed:
		return "delivery_failed"
	case FileReadFailed:
		return "file_read_failed"
	default:
		return "unknown"
	}
}

// Validate checks if the kind is valid
func (k Kind) Validate() error {
	if k < InvalidPayload || k > FileReadFailed {
		return fmt.Errorf("invalid error kind: %d", k)
	}
	return nil
}

func (k Kind) message() string {
	switch k {
	case InvalidPayload:
		return "provide a valid webhook message payload"
	case Timeout:
		return "webhook request timed out"
	case DeliveryFailed:
		return "webhook delivery failed"
	case FileReadFailed:
		return "reading message file"
	default:
		return "unknown failure"
	}
}

// Error is the typed error returned by the resolver and the notifier
type Error struct {
	Kind Kind
	Err  error
}

// New wraps err with the given kind. err may be nil.
func New(kind Kind, err error) error {
	return &Error{Kind: kind, Err: err}
}

func (e *Error) Error() string {
	if e.Err == nil {
		return e.Kind.message()
	}
	return fmt.Sprintf("%s: %v", e.Kind.message(), e.Err)
}

func (e *Error) Unwrap() error {
	return e.Err
}

// KindOf returns the kind of the first *Error in err's chain, or 0 when there is none.
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return 0
}

// Is reports whether err carries the given kind.
func Is(err error, kind Kind) bool {
	return err != nil && KindOf(err) == kind
}
