package release

import (
	"time"

	"github.com/marcelsud/release-notify/delivery"
)

/* Context describes the release being announced
 * Uses value semantics as it represents data, not behavior
 */
type Context struct {
	Version  string `json:"version"`
	Released bool   `json:"released"`
}

// Report summarizes one Notify call
type Report struct {
	ID         string
	Version    string
	Released   bool
	Outcome    delivery.Outcome
	StatusCode int
	Duration   time.Duration
}
