// session_test.go covers the session lifecycle through the in-process
// store, plus Valkey-backed tests that skip when Valkey is unreachable.
package session

import (
	"context"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"
	"time"

	"github.com/redis/go-redis/v9"
)

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

// testValkey returns a Valkey client on DB 15, or skips the test when
// Valkey is not reachable.
func testValkey(t *testing.T) *redis.Client {
	t.Helper()

	client := redis.NewClient(&redis.Options{
		Addr: envOr("VALKEY_HOST", "localhost") + ":" + envOr("VALKEY_PORT", "6379"),
		DB:   15,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		client.Close()
		t.Skipf("skipping: valkey not reachable: %v", err)
	}

	t.Cleanup(func() {
		client.FlushDB(context.Background())
		client.Close()
	})
	return client
}

// requestWithCookies copies the session cookie from a recorded response
// onto a fresh request, imitating a browser follow-up call.
func requestWithCookies(t *testing.T, rec *httptest.ResponseRecorder) *http.Request {
	t.Helper()

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	for _, c := range rec.Result().Cookies() {
		req.AddCookie(c)
	}
	return req
}

// runStoreLifecycle exercises the full create/get/destroy cycle against
// any Store implementation.
func runStoreLifecycle(t *testing.T, store Store) {
	t.Helper()
	ctx := context.Background()

	rec := httptest.NewRecorder()
	id, err := store.Create(ctx, rec, &Data{UserID: 1, Username: "admin"})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if len(id) != 64 {
		t.Errorf("session id length: got %d, want 64 hex chars", len(id))
	}

	cookies := rec.Result().Cookies()
	if len(cookies) != 1 || cookies[0].Name != CookieName {
		t.Fatalf("cookies: got %v", cookies)
	}
	c := cookies[0]
	if c.Value != id {
		t.Errorf("cookie value: got %q, want session id", c.Value)
	}
	if !c.HttpOnly {
		t.Error("cookie not HttpOnly")
	}
	if c.SameSite != http.SameSiteLaxMode {
		t.Errorf("SameSite: got %v, want Lax", c.SameSite)
	}

	req := requestWithCookies(t, rec)
	data, err := store.Get(ctx, req)
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if data == nil || data.UserID != 1 || data.Username != "admin" {
		t.Fatalf("session data: got %+v", data)
	}
	if data.CreatedAt.IsZero() {
		t.Error("createdAt not set")
	}

	destroyRec := httptest.NewRecorder()
	if err := store.Destroy(ctx, destroyRec, req); err != nil {
		t.Fatalf("Destroy: %v", err)
	}

	cleared := destroyRec.Result().Cookies()
	if len(cleared) != 1 || cleared[0].MaxAge != -1 {
		t.Errorf("clear cookie: got %v", cleared)
	}

	data, err = store.Get(ctx, req)
	if err != nil || data != nil {
		t.Errorf("after destroy: got (%v, %v), want (nil, nil)", data, err)
	}
}

// TestMemoryStore_Lifecycle covers create, get, and destroy in-process.
func TestMemoryStore_Lifecycle(t *testing.T) {
	runStoreLifecycle(t, NewMemoryStore(false))
}

// TestValkeyStore_Lifecycle covers the same cycle against real Valkey.
func TestValkeyStore_Lifecycle(t *testing.T) {
	runStoreLifecycle(t, NewValkeyStore(testValkey(t), false))
}

// TestGet_NoCookie verifies that a request without a session cookie
// resolves to (nil, nil), not an error.
func TestGet_NoCookie(t *testing.T) {
	store := NewMemoryStore(false)

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	data, err := store.Get(context.Background(), req)
	if err != nil || data != nil {
		t.Errorf("got (%v, %v), want (nil, nil)", data, err)
	}
}

// TestGet_UnknownID verifies that a cookie naming a session that was
// never created resolves to (nil, nil).
func TestGet_UnknownID(t *testing.T) {
	store := NewMemoryStore(false)

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.AddCookie(&http.Cookie{Name: CookieName, Value: "deadbeef"})

	data, err := store.Get(context.Background(), req)
	if err != nil || data != nil {
		t.Errorf("got (%v, %v), want (nil, nil)", data, err)
	}
}

// TestSecureFlag verifies that the secure setting reaches the cookie.
func TestSecureFlag(t *testing.T) {
	store := NewMemoryStore(true)

	rec := httptest.NewRecorder()
	if _, err := store.Create(context.Background(), rec, &Data{UserID: 1, Username: "admin"}); err != nil {
		t.Fatalf("Create: %v", err)
	}

	cookies := rec.Result().Cookies()
	if len(cookies) != 1 || !cookies[0].Secure {
		t.Errorf("cookie not Secure: %v", cookies)
	}
}

// TestSessionIDsAreUnique verifies that consecutive sessions never share
// an id.
func TestSessionIDsAreUnique(t *testing.T) {
	store := NewMemoryStore(false)
	seen := make(map[string]bool)

	for i := 0; i < 50; i++ {
		rec := httptest.NewRecorder()
		id, err := store.Create(context.Background(), rec, &Data{UserID: i, Username: "u"})
		if err != nil {
			t.Fatalf("Create: %v", err)
		}
		if seen[id] {
			t.Fatalf("duplicate session id %q", id)
		}
		seen[id] = true
	}
}
