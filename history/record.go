package history

import (
	"time"

	"github.com/marcelsud/release-notify/delivery"
)

/* Record represents one release notification attempt
 * Uses value semantics as it represents data, not behavior
 */
type Record struct {
	ID         string
	Version    string
	Released   bool
	Outcome    delivery.Outcome
	StatusCode int
	Error      string
	Payload    []byte
	Duration   time.Duration
	CreatedAt  time.Time
}
