// Package pagecache holds rendered public pages keyed by request path.
// Entries carry a TTL as a backstop; mutations purge them explicitly.
package pagecache

import (
	"context"
	"time"
)

const (
	DriverMemory = "memory"
	DriverRedis  = "redis"
)

// Entry is a cached response body with its content type
type Entry struct {
	ContentType string `json:"content_type"`
	Body        []byte `json:"body"`
}

type Store interface {
	Get(ctx context.Context, key string) (*Entry, bool, error)
	Set(ctx context.Context, key string, entry *Entry, ttl time.Duration) error
	Delete(ctx context.Context, keys ...string) error
	Flush(ctx context.Context) error
}
