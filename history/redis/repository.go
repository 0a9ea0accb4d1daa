package redis

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/google/uuid"
	"github.com/marcelsud/release-notify/delivery"
	"github.com/marcelsud/release-notify/history"
	"github.com/redis/go-redis/v9"
)

/* Redis implementation of history.Repository
 * Uses Redis Hashes for record storage
 * Uses a Sorted Set scored by creation time as the listing index
 */

const (
	hashPrefix = "release-notify:delivery" // Hash naming: release-notify:delivery:{id}
	indexKey   = "release-notify:deliveries"
)

type Repository struct {
	client *redis.Client
	ttl    time.Duration
}

// NewRepository creates a new Redis repository. A ttl of zero keeps records forever.
func NewRepository(addr, password string, db int, ttl time.Duration) (*Repository, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
		DB:       db,
	})

	// Test connection
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		client.Close()
		return nil, fmt.Errorf("connecting to Redis: %w", err)
	}

	return &Repository{
		client: client,
		ttl:    ttl,
	}, nil
}

// Store writes the record hash and indexes it. Records without an ID get a new UUID.
func (r *Repository) Store(ctx context.Context, rec history.Record) (string, error) {
	if rec.ID == "" {
		rec.ID = uuid.New().String()
	}
	if rec.CreatedAt.IsZero() {
		rec.CreatedAt = time.Now()
	}

	hashKey := recordKey(rec.ID)

	pipe := r.client.TxPipeline()
	pipe.HSet(ctx, hashKey, map[string]interface{}{
		"id":          rec.ID,
		"version":     rec.Version,
		"released":    strconv.FormatBool(rec.Released),
		"outcome":     rec.Outcome.String(),
		"status_code": rec.StatusCode,
		"error":       rec.Error,
		"payload":     rec.Payload,
		"duration_ms": rec.Duration.Milliseconds(),
		"created_at":  rec.CreatedAt.UnixMilli(),
	})
	if r.ttl > 0 {
		pipe.Expire(ctx, hashKey, r.ttl)
	}
	pipe.ZAdd(ctx, indexKey, redis.Z{
		Score:  float64(rec.CreatedAt.UnixMilli()),
		Member: rec.ID,
	})

	if _, err := pipe.Exec(ctx); err != nil {
		return "", fmt.Errorf("storing delivery record: %w", err)
	}

	return rec.ID, nil
}

// Get retrieves a record by ID from its Redis hash
func (r *Repository) Get(ctx context.Context, id string) (history.Record, error) {
	data, err := r.client.HGetAll(ctx, recordKey(id)).Result()
	if err != nil {
		return history.Record{}, fmt.Errorf("getting delivery record: %w", err)
	}
	if len(data) == 0 {
		return history.Record{}, fmt.Errorf("%w: %s", history.ErrNotFound, id)
	}

	return parseRecord(data), nil
}

// List returns the most recent records. Index entries whose hash expired are pruned.
func (r *Repository) List(ctx context.Context, limit int) ([]history.Record, error) {
	if limit <= 0 {
		limit = history.DefaultListLimit
	}

	records := make([]history.Record, 0, limit)
	var stale []interface{}
	var start int64
	for len(records) < limit {
		ids, err := r.client.ZRevRange(ctx, indexKey, start, start+int64(limit)-1).Result()
		if err != nil {
			return nil, fmt.Errorf("listing delivery records: %w", err)
		}
		if len(ids) == 0 {
			break
		}
		start += int64(len(ids))

		for _, id := range ids {
			rec, err := r.Get(ctx, id)
			if errors.Is(err, history.ErrNotFound) {
				stale = append(stale, id)
				continue
			}
			if err != nil {
				return nil, err
			}
			records = append(records, rec)
			if len(records) == limit {
				break
			}
		}
	}

	if len(stale) > 0 {
		// Best effort, a failed prune is retried on the next listing
		r.client.ZRem(ctx, indexKey, stale...)
	}

	return records, nil
}

// Close closes the Redis connection
func (r *Repository) Close(ctx context.Context) error {
	return r.client.Close()
}

func recordKey(id string) string {
	return fmt.Sprintf("%s:%s", hashPrefix, id)
}

func parseRecord(data map[string]string) history.Record {
	released, _ := strconv.ParseBool(data["released"])

	return history.Record{
		ID:         data["id"],
		Version:    data["version"],
		Released:   released,
		Outcome:    delivery.NewOutcome(data["outcome"]),
		StatusCode: int(parseInt64(data["status_code"])),
		Error:      data["error"],
		Payload:    []byte(data["payload"]),
		Duration:   time.Duration(parseInt64(data["duration_ms"])) * time.Millisecond,
		CreatedAt:  time.UnixMilli(parseInt64(data["created_at"])),
	}
}

// parseInt64 parses a string to int64, returns 0 on error
func parseInt64(s string) int64 {
	i, _ := strconv.ParseInt(s, 10, 64)
	return i
}
