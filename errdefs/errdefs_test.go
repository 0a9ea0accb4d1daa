package errdefs_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/marcelsud/release-notify/errdefs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestError(t *testing.T) {
	t.Run("message without cause", func(t *testing.T) {
		err := errdefs.New(errdefs.InvalidPayload, nil)
		assert.Equal(t, "provide a valid webhook message payload", err.Error())
	})

	t.Run("message with cause", func(t *testing.T) {
		err := errdefs.New(errdefs.DeliveryFailed, errors.New("connection refused"))
		assert.Equal(t, "webhook delivery failed: connection refused", err.Error())
	})

	t.Run("unwraps cause", func(t *testing.T) {
		cause := errors.New("boom")
		err := errdefs.New(errdefs.FileReadFailed, cause)
		assert.ErrorIs(t, err, cause)
	})
}

func TestKindOf(t *testing.T) {
	t.Run("finds kind through wrapping", func(t *testing.T) {
		err := fmt.Errorf("sending notification: %w", errdefs.New(errdefs.Timeout, nil))
		assert.Equal(t, errdefs.Timeout, errdefs.KindOf(err))
		assert.True(t, errdefs.Is(err, errdefs.Timeout))
		assert.False(t, errdefs.Is(err, errdefs.DeliveryFailed))
	})

	t.Run("plain error has no kind", func(t *testing.T) {
		assert.Equal(t, errdefs.Kind(0), errdefs.KindOf(errors.New("plain")))
		assert.False(t, errdefs.Is(nil, errdefs.Timeout))
	})
}

func TestKind(t *testing.T) {
	assert.Equal(t, "timeout", errdefs.Timeout.String())
	assert.Equal(t, "unknown", errdefs.Kind(42).String())
	require.NoError(t, errdefs.FileReadFailed.Validate())
	require.Error(t, errdefs.Kind(0).Validate())
}
