package delivery

import (
	"context"
	"errors"
	"time"
)

var errDeadline = errors.New("deadline reached before the call settled")

type settled[T any] struct {
	value T
	err   error
}

// race runs call and returns whichever settles first: the call or a timer of d.
// The call's context is cancelled once race returns; a late result is dropped
// into a buffered channel nobody reads.
func race[T any](ctx context.Context, d time.Duration, call func(context.Context) (T, error)) (T, error) {
	callCtx, cancel := context.WithCancel(ctx)
	defer cancel()

	done := make(chan settled[T], 1)
	go func() {
		value, err := call(callCtx)
		done <- settled[T]{value: value, err: err}
	}()

	timer := time.NewTimer(d)
	defer timer.Stop()

	select {
	case s := <-done:
		return s.value, s.err
	case <-timer.C:
		var zero T
		return zero, errDeadline
	}
}
