// handler_test.go provides shared test infrastructure for the handler
// tests. The full route tree runs against the in-memory backend, so these
// tests need no external services. The tests live in an external package
// because they exercise the handlers through the assembled router.
package handlers_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"portfolio/internal/cache"
	"portfolio/internal/handlers"
	"portfolio/internal/router"
	"portfolio/internal/session"
	"portfolio/internal/storage/memory"
)

// testEnv bundles everything a handler test needs: the backing store for
// state assertions and the fully wired router for requests.
type testEnv struct {
	Store   *memory.Store
	Handler http.Handler
}

// newTestEnv wires the complete route tree over a fresh in-memory store
// and an in-process session store, with the response cache disabled.
func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	store := memory.New()
	sessions := session.NewMemoryStore(false)

	var respCache *cache.ResponseCache // nil disables caching

	public := handlers.NewPublic(store, respCache)
	admin := handlers.NewAdmin(store, respCache)
	auth := handlers.NewAuth(store, sessions)

	r := router.New(sessions, public, admin, auth, []string{"http://localhost:5173"})

	return &testEnv{Store: store, Handler: r}
}

// do sends a request through the router. body is JSON-encoded when
// non-nil; cookies are attached as-is.
func (e *testEnv) do(t *testing.T, method, path string, body any, cookies []*http.Cookie) *httptest.ResponseRecorder {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		if err := json.NewEncoder(&buf).Encode(body); err != nil {
			t.Fatalf("encode body: %v", err)
		}
	}

	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	for _, c := range cookies {
		req.AddCookie(c)
	}

	rec := httptest.NewRecorder()
	e.Handler.ServeHTTP(rec, req)
	return rec
}

// login registers an admin account and returns the session cookies for
// authenticated follow-up requests.
func (e *testEnv) login(t *testing.T) []*http.Cookie {
	t.Helper()

	rec := e.do(t, http.MethodPost, "/api/register", map[string]string{
		"username": "admin",
		"password": "secret",
	}, nil)
	if rec.Code != http.StatusCreated {
		t.Fatalf("register: got %d, body %s", rec.Code, rec.Body.String())
	}

	cookies := rec.Result().Cookies()
	if len(cookies) == 0 {
		t.Fatal("register set no session cookie")
	}
	return cookies
}

// decodeBody unmarshals a recorded JSON response into dst.
func decodeBody(t *testing.T, rec *httptest.ResponseRecorder, dst any) {
	t.Helper()
	if err := json.Unmarshal(rec.Body.Bytes(), dst); err != nil {
		t.Fatalf("decode response %q: %v", rec.Body.String(), err)
	}
}

// errorBody is the decoded shape of an error response.
type errorBody struct {
	Message string `json:"message"`
	Errors  []struct {
		Field   string `json:"field"`
		Message string `json:"message"`
	} `json:"errors"`
}
