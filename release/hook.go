package release

import "context"

/* Hook follows a release tool's lifecycle
 * The version is set on bump, the released flag on release,
 * and the notification goes out after release
 */
type Hook struct {
	uc  UseCase
	ctx Context
}

// NewHook creates a lifecycle hook around a UseCase
func NewHook(uc UseCase) *Hook {
	return &Hook{uc: uc}
}

// Bump records the version being released
func (h *Hook) Bump(version string) {
	h.ctx.Version = version
}

// Release marks the release as successful
func (h *Hook) Release() {
	h.ctx.Released = true
}

// Context returns the release state collected so far
func (h *Hook) Context() Context {
	return h.ctx
}

// AfterRelease sends the success message if Release was called, the error message otherwise
func (h *Hook) AfterRelease(ctx context.Context) (Report, error) {
	return h.uc.Notify(ctx, h.ctx)
}
