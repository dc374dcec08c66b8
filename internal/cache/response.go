// response.go provides a Valkey-backed cache for public GET payloads.
// The encoded JSON for the profile and the entity lists is stored under a
// short TTL; admin writes invalidate the affected key so fresh content
// appears immediately. All methods are safe on a nil receiver, which is
// how the cache is disabled under the memory storage profile.
package cache

import (
	"context"
	"log/slog"
	"time"

	"github.com/redis/go-redis/v9"
)

const (
	// respKeyPrefix namespaces cached API payloads in Valkey.
	respKeyPrefix = "api:"

	// DefaultResponseTTL is how long a cached payload stays valid.
	DefaultResponseTTL = 5 * time.Minute
)

// Cache keys for the public endpoints.
const (
	KeyProfile  = "profile"
	KeyBooks    = "books"
	KeyEvents   = "events"
	KeyBlogs    = "blogs"
	KeyProjects = "projects"
)

// ResponseCache stores encoded JSON payloads for public GET endpoints.
type ResponseCache struct {
	client *redis.Client
	ttl    time.Duration
}

// NewResponseCache creates a response cache backed by the given Valkey client.
func NewResponseCache(client *redis.Client, ttl time.Duration) *ResponseCache {
	if ttl == 0 {
		ttl = DefaultResponseTTL
	}
	return &ResponseCache{client: client, ttl: ttl}
}

// Get retrieves a cached payload. Returns false on miss, on error, or
// when the cache is disabled.
func (rc *ResponseCache) Get(ctx context.Context, key string) ([]byte, bool) {
	if rc == nil {
		return nil, false
	}
	val, err := rc.client.Get(ctx, respKeyPrefix+key).Bytes()
	if err == redis.Nil {
		return nil, false
	}
	if err != nil {
		slog.Warn("response cache get error", "key", key, "error", err)
		return nil, false
	}
	return val, true
}

// Set stores an encoded payload with the configured TTL.
func (rc *ResponseCache) Set(ctx context.Context, key string, payload []byte) {
	if rc == nil {
		return
	}
	if err := rc.client.Set(ctx, respKeyPrefix+key, payload, rc.ttl).Err(); err != nil {
		slog.Warn("response cache set error", "key", key, "error", err)
	}
}

// Invalidate removes the given keys, called after admin writes.
func (rc *ResponseCache) Invalidate(ctx context.Context, keys ...string) {
	if rc == nil || len(keys) == 0 {
		return
	}
	prefixed := make([]string, len(keys))
	for i, k := range keys {
		prefixed[i] = respKeyPrefix + k
	}
	if err := rc.client.Del(ctx, prefixed...).Err(); err != nil {
		slog.Warn("response cache invalidate error", "keys", keys, "error", err)
	}
}
