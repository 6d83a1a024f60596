// Package cache implements the key-value store abstraction and the
// best-effort cache adapter used by the lookup path. Store trouble is
// the adapter's problem, never the caller's: reads degrade to misses
// and writes degrade to no-ops, with a warning logged either way.
package cache

import (
	"context"
	"errors"
	"time"
)

var (
	// ErrNotFound is returned by Store.Get when the key does not exist
	// or has expired.
	ErrNotFound = errors.New("cache: key not found")

	// ErrConnection is returned when the store cannot be reached.
	ErrConnection = errors.New("cache: connection failed")
)

// Store is the key-value capability the adapter runs on. Implementations
// must provide per-key atomicity for Get and Set; nothing more is
// assumed.
type Store interface {
	// Get fetches the raw text stored under key, or ErrNotFound.
	Get(ctx context.Context, key string) (string, error)

	// Set stores value under key with an explicit expiry.
	Set(ctx context.Context, key, value string, ttl time.Duration) error

	// Keys lists all keys matching a glob pattern such as "proftafla:*".
	Keys(ctx context.Context, pattern string) ([]string, error)

	// Del removes the given keys. Missing keys are not an error.
	Del(ctx context.Context, keys ...string) error

	// Close releases the underlying connection.
	Close() error
}
