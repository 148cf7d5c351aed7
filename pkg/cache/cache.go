// Package cache stores computed layouts keyed by a hash of the input
// document and the engine configuration.
//
// All backends implement [Cache]:
//   - [NullCache]: never stores anything, used when caching is disabled
//   - [FileCache]: one JSON file per entry, used by the CLI
//   - [RedisCache]: shared cache for server deployments
//   - [MongoCache]: shared cache backed by a MongoDB collection with a TTL
//     index
//
// Keys come from [LayoutKey]; values are opaque bytes, in practice the
// JSON-encoded node positions and link points of a laid-out document.
package cache

import (
	"context"
	"time"
)

// DefaultTTL is how long layout entries are kept when the caller does not
// choose a TTL.
const DefaultTTL = 7 * 24 * time.Hour

// Cache is a byte-oriented key-value store with expiration.
type Cache interface {
	// Get returns the value stored under key. A missing or expired entry
	// is reported as hit == false with a nil error.
	Get(ctx context.Context, key string) (data []byte, hit bool, err error)

	// Set stores data under key. A ttl of zero keeps the entry until it is
	// deleted.
	Set(ctx context.Context, key string, data []byte, ttl time.Duration) error

	// Delete removes key. Deleting a missing key is not an error.
	Delete(ctx context.Context, key string) error

	// Close releases the backend's resources.
	Close() error
}
