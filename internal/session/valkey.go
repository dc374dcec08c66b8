package session

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/redis/go-redis/v9"
)

// keyPrefix namespaces session keys in Valkey to avoid collisions.
const keyPrefix = "session:"

// ValkeyStore keeps session payloads in Valkey as JSON with a TTL, so
// sessions survive server restarts and expiry is handled by the store.
type ValkeyStore struct {
	client *redis.Client
	ttl    time.Duration
	secure bool
}

// NewValkeyStore creates a session store backed by the given Valkey
// client. secure marks the cookie HTTPS-only.
func NewValkeyStore(client *redis.Client, secure bool) *ValkeyStore {
	return &ValkeyStore{
		client: client,
		ttl:    DefaultTTL,
		secure: secure,
	}
}

var _ Store = (*ValkeyStore)(nil)

// Create generates a new session, stores it in Valkey, and sets the
// session cookie on the response. Returns the session ID.
func (s *ValkeyStore) Create(ctx context.Context, w http.ResponseWriter, data *Data) (string, error) {
	id, err := generateID()
	if err != nil {
		return "", fmt.Errorf("session create: %w", err)
	}

	data.CreatedAt = time.Now()

	payload, err := json.Marshal(data)
	if err != nil {
		return "", fmt.Errorf("session marshal: %w", err)
	}

	if err := s.client.Set(ctx, keyPrefix+id, payload, s.ttl).Err(); err != nil {
		return "", fmt.Errorf("session store: %w", err)
	}

	setCookie(w, id, s.ttl, s.secure)
	return id, nil
}

// Get retrieves session data using the session ID from the request
// cookie. Returns nil if no valid session exists.
func (s *ValkeyStore) Get(ctx context.Context, r *http.Request) (*Data, error) {
	cookie, err := r.Cookie(CookieName)
	if err != nil {
		return nil, nil // no cookie = no session
	}

	payload, err := s.client.Get(ctx, keyPrefix+cookie.Value).Bytes()
	if err == redis.Nil {
		return nil, nil // expired or never existed
	}
	if err != nil {
		return nil, fmt.Errorf("session get: %w", err)
	}

	var data Data
	if err := json.Unmarshal(payload, &data); err != nil {
		return nil, fmt.Errorf("session unmarshal: %w", err)
	}
	return &data, nil
}

// Destroy removes the session from Valkey and clears the cookie.
func (s *ValkeyStore) Destroy(ctx context.Context, w http.ResponseWriter, r *http.Request) error {
	cookie, err := r.Cookie(CookieName)
	if err != nil {
		return nil // nothing to destroy
	}

	s.client.Del(ctx, keyPrefix+cookie.Value)
	clearCookie(w)
	return nil
}
