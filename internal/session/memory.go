package session

import (
	"context"
	"fmt"
	"net/http"
	"time"

	gocache "github.com/patrickmn/go-cache"
)

// MemoryStore keeps sessions in an in-process expiring cache. It pairs
// with the memory storage backend for development and tests, where no
// Valkey is running. Sessions do not survive a restart.
type MemoryStore struct {
	cache  *gocache.Cache
	ttl    time.Duration
	secure bool
}

// NewMemoryStore creates an in-process session store.
func NewMemoryStore(secure bool) *MemoryStore {
	return &MemoryStore{
		cache:  gocache.New(DefaultTTL, 10*time.Minute),
		ttl:    DefaultTTL,
		secure: secure,
	}
}

var _ Store = (*MemoryStore)(nil)

// Create generates a new session and sets the session cookie.
func (s *MemoryStore) Create(_ context.Context, w http.ResponseWriter, data *Data) (string, error) {
	id, err := generateID()
	if err != nil {
		return "", fmt.Errorf("session create: %w", err)
	}

	data.CreatedAt = time.Now()
	copied := *data
	s.cache.Set(id, &copied, s.ttl)

	setCookie(w, id, s.ttl, s.secure)
	return id, nil
}

// Get retrieves session data from the cache. Returns nil when the
// request carries no cookie or the session has expired.
func (s *MemoryStore) Get(_ context.Context, r *http.Request) (*Data, error) {
	cookie, err := r.Cookie(CookieName)
	if err != nil {
		return nil, nil
	}

	v, ok := s.cache.Get(cookie.Value)
	if !ok {
		return nil, nil
	}
	data := *v.(*Data)
	return &data, nil
}

// Destroy removes the session and clears the cookie.
func (s *MemoryStore) Destroy(_ context.Context, w http.ResponseWriter, r *http.Request) error {
	cookie, err := r.Cookie(CookieName)
	if err != nil {
		return nil
	}

	s.cache.Delete(cookie.Value)
	clearCookie(w)
	return nil
}
