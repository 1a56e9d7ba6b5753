// Package cache provides the byte-oriented cache used for shape catalog
// data. Backends share one small interface so the CLI can run against a
// local file cache, a shared Redis instance, or nothing at all.
package cache

import (
	"context"
	"errors"
	"time"
)

// ErrCacheMiss is returned by helpers that require a hit.
var ErrCacheMiss = errors.New("cache miss")

// Cache stores opaque byte blobs under string keys with optional expiry.
// A zero ttl means the entry never expires.
type Cache interface {
	// Get retrieves a value. The boolean reports whether the key was
	// present; an absent key is not an error.
	Get(ctx context.Context, key string) ([]byte, bool, error)

	// Set stores a value with the given ttl.
	Set(ctx context.Context, key string, data []byte, ttl time.Duration) error

	// Delete removes a value. Deleting an absent key is not an error.
	Delete(ctx context.Context, key string) error

	// Close releases backend resources.
	Close() error
}
