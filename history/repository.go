package history

import (
	"context"
	"errors"
)

/* Small, focused interfaces
 * The release service only writes, the HTTP API only reads
 */

// Reader provides read operations for delivery records
type Reader interface {
	Get(ctx context.Context, id string) (Record, error)
	/* List returns the most recent records first
	 * limit <= 0 falls back to DefaultListLimit
	 */
	List(ctx context.Context, limit int) ([]Record, error)
}

// Writer provides write operations for delivery records
type Writer interface {
	Store(ctx context.Context, record Record) (string, error)
}

// DefaultListLimit bounds List when no limit is given.
const DefaultListLimit = 20

type Repository interface {
	Reader
	Writer
	Close(ctx context.Context) error
}

// ErrNotFound is returned by Get when no record has the given ID.
var ErrNotFound = errors.New("delivery record not found")
