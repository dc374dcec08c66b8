// Package session provides cookie-based HTTP session management for the
// admin dashboard. Sessions are identified by a random token in a secure
// cookie; the payload lives server-side with automatic TTL expiry, backed
// by either Valkey or an in-process cache.
package session

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"net/http"
	"time"
)

const (
	// CookieName is the name of the session cookie sent to the browser.
	CookieName = "portfolio_session"

	// DefaultTTL is how long a session lives before automatic expiry.
	DefaultTTL = 24 * time.Hour

	// idLength is the byte length of the random session ID (32 bytes = 64 hex chars).
	idLength = 32
)

// Data is the session payload: the authenticated admin's identity.
type Data struct {
	UserID    int       `json:"user_id"`
	Username  string    `json:"username"`
	CreatedAt time.Time `json:"created_at"`
}

// Store manages session lifecycle. Get returns (nil, nil) when the
// request carries no valid session; absence is not an error.
type Store interface {
	Create(ctx context.Context, w http.ResponseWriter, data *Data) (string, error)
	Get(ctx context.Context, r *http.Request) (*Data, error)
	Destroy(ctx context.Context, w http.ResponseWriter, r *http.Request) error
}

// generateID creates a cryptographically random session identifier.
func generateID() (string, error) {
	b := make([]byte, idLength)
	if _, err := rand.Read(b); err != nil {
		return "", err
	}
	return hex.EncodeToString(b), nil
}

// setCookie attaches the session cookie to the response.
func setCookie(w http.ResponseWriter, id string, ttl time.Duration, secure bool) {
	http.SetCookie(w, &http.Cookie{
		Name:     CookieName,
		Value:    id,
		Path:     "/",
		HttpOnly: true,
		Secure:   secure,
		SameSite: http.SameSiteLaxMode,
		MaxAge:   int(ttl.Seconds()),
	})
}

// clearCookie expires the session cookie immediately.
func clearCookie(w http.ResponseWriter) {
	http.SetCookie(w, &http.Cookie{
		Name:     CookieName,
		Value:    "",
		Path:     "/",
		HttpOnly: true,
		MaxAge:   -1,
	})
}
