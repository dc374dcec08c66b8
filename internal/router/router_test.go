package router

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"portfolio/internal/handlers"
	"portfolio/internal/session"
	"portfolio/internal/storage/memory"
)

// newRouter builds the route tree over fresh in-memory backends.
func newRouter() http.Handler {
	store := memory.New()
	sessions := session.NewMemoryStore(false)
	return New(
		sessions,
		handlers.NewPublic(store, nil),
		handlers.NewAdmin(store, nil),
		handlers.NewAuth(store, sessions),
		[]string{"http://localhost:5173"},
	)
}

// TestCORSPreflight verifies that a preflight from an allowed origin is
// answered with the CORS grant headers, including credentials support.
func TestCORSPreflight(t *testing.T) {
	r := newRouter()

	req := httptest.NewRequest(http.MethodOptions, "/api/books", nil)
	req.Header.Set("Origin", "http://localhost:5173")
	req.Header.Set("Access-Control-Request-Method", http.MethodGet)
	rec := httptest.NewRecorder()

	r.ServeHTTP(rec, req)

	if got := rec.Header().Get("Access-Control-Allow-Origin"); got != "http://localhost:5173" {
		t.Errorf("Allow-Origin: got %q", got)
	}
	if got := rec.Header().Get("Access-Control-Allow-Credentials"); got != "true" {
		t.Errorf("Allow-Credentials: got %q", got)
	}
}

// TestCORSUnknownOrigin verifies that an origin outside the allow list
// gets no grant.
func TestCORSUnknownOrigin(t *testing.T) {
	r := newRouter()

	req := httptest.NewRequest(http.MethodOptions, "/api/books", nil)
	req.Header.Set("Origin", "https://evil.example.com")
	req.Header.Set("Access-Control-Request-Method", http.MethodGet)
	rec := httptest.NewRecorder()

	r.ServeHTTP(rec, req)

	if got := rec.Header().Get("Access-Control-Allow-Origin"); got != "" {
		t.Errorf("Allow-Origin for unknown origin: got %q, want empty", got)
	}
}

// TestUnknownRoute verifies the 404 for unrouted paths.
func TestUnknownRoute(t *testing.T) {
	r := newRouter()

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/nonsense", nil))

	if rec.Code != http.StatusNotFound {
		t.Errorf("status: got %d, want 404", rec.Code)
	}
}

// TestMethodNotAllowed verifies that writing to a read-only route fails.
func TestMethodNotAllowed(t *testing.T) {
	r := newRouter()

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodDelete, "/api/books", nil))

	if rec.Code != http.StatusMethodNotAllowed {
		t.Errorf("status: got %d, want 405", rec.Code)
	}
}

// TestSecurityHeadersApplied verifies the global middleware reaches every
// route.
func TestSecurityHeadersApplied(t *testing.T) {
	r := newRouter()

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/health", nil))

	if got := rec.Header().Get("X-Content-Type-Options"); got != "nosniff" {
		t.Errorf("X-Content-Type-Options: got %q", got)
	}
}
