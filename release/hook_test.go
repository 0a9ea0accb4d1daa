package release_test

import (
	"context"
	"testing"

	"github.com/marcelsud/release-notify/delivery"
	"github.com/marcelsud/release-notify/release"
	"github.com/marcelsud/release-notify/release/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHook(t *testing.T) {
	ctx := context.Background()

	t.Run("success - released lifecycle", func(t *testing.T) {
		uc := mocks.NewUseCase(t)
		hook := release.NewHook(uc)

		hook.Bump("2.0.0")
		hook.Release()

		uc.On("Notify", ctx, release.Context{Version: "2.0.0", Released: true}).
			Return(release.Report{Version: "2.0.0", Released: true, Outcome: delivery.Delivered}, nil)

		report, err := hook.AfterRelease(ctx)

		require.NoError(t, err)
		assert.Equal(t, delivery.Delivered, report.Outcome)
	})

	t.Run("success - release never marked", func(t *testing.T) {
		uc := mocks.NewUseCase(t)
		hook := release.NewHook(uc)

		hook.Bump("2.0.1")

		uc.On("Notify", ctx, release.Context{Version: "2.0.1"}).
			Return(release.Report{Version: "2.0.1", Outcome: delivery.Skipped}, nil)

		report, err := hook.AfterRelease(ctx)

		require.NoError(t, err)
		assert.Equal(t, delivery.Skipped, report.Outcome)
		assert.False(t, hook.Context().Released)
	})
}
