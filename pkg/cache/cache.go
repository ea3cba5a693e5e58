// Package cache provides the read-cache abstraction used in front of the
// remote list store. Implementations must be safe for concurrent use.
// Invalidation is driven by write operations, not time alone; the TTL is a
// backstop against stale entries surviving missed invalidations.
package cache

import (
	"context"
	"time"
)

// Cache is a byte-value cache with TTL and prefix invalidation.
type Cache interface {
	// Get returns the cached value and true, or nil and false on a miss.
	// Entries older than their TTL are misses.
	Get(ctx context.Context, key string) ([]byte, bool)

	// Set stores a value under key for at most ttl.
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error

	// InvalidatePrefix drops every entry whose key starts with prefix.
	InvalidatePrefix(ctx context.Context, prefix string) error
}

// Noop is a Cache that stores nothing. Used in tests and when caching is
// disabled by configuration.
type Noop struct{}

var _ Cache = Noop{}

func (Noop) Get(ctx context.Context, key string) ([]byte, bool) { return nil, false }

func (Noop) Set(ctx context.Context, key string, value []byte, ttl time.Duration) error { return nil }

func (Noop) InvalidatePrefix(ctx context.Context, prefix string) error { return nil }
