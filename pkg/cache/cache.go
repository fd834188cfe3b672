// Package cache provides caching for serialized construction graphs.
//
// Graph construction is pure and deterministic, so a serialized graph is
// fully determined by its target spec. Batch runs over a mostly-unchanged
// target set can therefore skip regeneration entirely: the pipeline hashes
// each spec into a key and stores the exported graph bytes.
//
// Backends:
//   - FileCache: XDG cache directory, the CLI default
//   - RedisCache: shared cache for fleets of batch workers
//   - NullCache: disables caching (--no-cache)
package cache

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"time"
)

// DefaultTTL is how long cached graphs stay valid. Generation is cheap
// enough that a conservative TTL beats serving a graph produced by an older
// gmtgen with a different serialization.
const DefaultTTL = 7 * 24 * time.Hour

// Cache stores serialized graphs keyed by spec hash.
type Cache interface {
	// Get retrieves a value. The second result reports whether the key was
	// present and unexpired.
	Get(ctx context.Context, key string) ([]byte, bool, error)
	// Set stores a value with the given TTL. A zero TTL means no expiry.
	Set(ctx context.Context, key string, data []byte, ttl time.Duration) error
	// Delete removes a value. Deleting an absent key is not an error.
	Delete(ctx context.Context, key string) error
	// Close releases backend resources.
	Close() error
}

// GraphKey builds the cache key for a target spec. Any field that changes
// the generated graph must participate in the hash; the version component
// invalidates old entries when the serialization schema changes.
func GraphKey(version string, spec any) string {
	return hashKey("graph:"+version, spec)
}

// hashKey generates a cache key by hashing the components.
// The key format is: prefix:hash(parts...)
func hashKey(prefix string, parts ...any) string {
	data, _ := json.Marshal(parts)
	hash := sha256.Sum256(data)
	return fmt.Sprintf("%s:%s", prefix, hex.EncodeToString(hash[:]))
}

// Hash computes a SHA-256 hash of the input data.
// Returns the full 64-character hex string.
func Hash(data []byte) string {
	hash := sha256.Sum256(data)
	return hex.EncodeToString(hash[:])
}
