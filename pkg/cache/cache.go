// Package cache provides byte-level caching for solver results.
//
// Solving a large puzzle can take seconds; identical requests (same problem,
// same algorithm) always produce the same answer, so results are cached by a
// hash of the request. Three backends implement [Cache]:
//
//   - [FileCache]: one JSON file per entry under a directory (CLI default)
//   - [RedisCache]: shared cache for the API server and benchmark runs
//   - [NullCache]: disables caching
//
// Keys are produced by a [Keyer] so that every consumer derives the same key
// for the same request.
package cache

import (
	"context"
	"time"
)

// Default TTLs.
const (
	ResultTTL = 7 * 24 * time.Hour
	BenchTTL  = 24 * time.Hour
)

// Cache stores opaque values by key.
//
// Get reports a miss as (nil, false, nil); errors are reserved for backend
// failures. A zero TTL in Set means the entry never expires.
type Cache interface {
	Get(ctx context.Context, key string) ([]byte, bool, error)
	Set(ctx context.Context, key string, data []byte, ttl time.Duration) error
	Delete(ctx context.Context, key string) error
	Close() error
}
