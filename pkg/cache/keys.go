package cache

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"time"
)

// Hash computes the SHA-256 of data as a 64-character hex string. Cache
// keys derived from URLs or payloads go through this so backends never see
// unbounded or unsafe key material.
func Hash(data []byte) string {
	sum := sha256.Sum256(data)
	return hex.EncodeToString(sum[:])
}

// CatalogKey is the cache key for a shape catalog fetched from url.
func CatalogKey(url string) string {
	return "catalog:" + Hash([]byte(url))
}

// Scoped wraps a Cache with a key prefix so independent consumers can
// share one backend without colliding.
type Scoped struct {
	inner  Cache
	prefix string
}

// NewScoped creates a prefix-scoped view of inner.
func NewScoped(inner Cache, prefix string) Cache {
	return &Scoped{inner: inner, prefix: prefix}
}

func (s *Scoped) Get(ctx context.Context, key string) ([]byte, bool, error) {
	return s.inner.Get(ctx, s.prefix+key)
}

func (s *Scoped) Set(ctx context.Context, key string, data []byte, ttl time.Duration) error {
	return s.inner.Set(ctx, s.prefix+key, data, ttl)
}

func (s *Scoped) Delete(ctx context.Context, key string) error {
	return s.inner.Delete(ctx, s.prefix+key)
}

// Close closes the underlying cache. Scoped views sharing one backend
// should close it exactly once.
func (s *Scoped) Close() error {
	return s.inner.Close()
}

var _ Cache = (*Scoped)(nil)
