package handlers

import (
	"log/slog"
	"net/http"

	"golang.org/x/crypto/bcrypt"

	"portfolio/internal/apperror"
	"portfolio/internal/middleware"
	"portfolio/internal/models"
	"portfolio/internal/session"
	"portfolio/internal/storage"
	"portfolio/internal/validate"
)

// invalidCredentials is the single message for every login failure.
// Unknown username and wrong password are indistinguishable from the
// outside.
const invalidCredentials = "Invalid username or password"

// Auth groups the authentication handlers: register, login, logout, and
// the current-user lookup used by the admin dashboard.
type Auth struct {
	store    storage.Store
	sessions session.Store
}

// NewAuth creates an Auth handler group.
func NewAuth(store storage.Store, sessions session.Store) *Auth {
	return &Auth{store: store, sessions: sessions}
}

// userPayload is the identity shape returned by auth endpoints. The
// password hash never leaves the server.
type userPayload struct {
	ID       int    `json:"id"`
	Username string `json:"username"`
}

// Register creates an admin account and immediately establishes a
// session for it. A taken username is a 409 and leaves the existing
// account untouched.
func (a *Auth) Register(w http.ResponseWriter, r *http.Request) {
	var creds models.Credentials
	if !decodeJSON(w, r, &creds) {
		return
	}

	if errs := validate.Credentials(&creds); len(errs) > 0 {
		writeError(w, apperror.Validation(errs))
		return
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(creds.Password), bcrypt.DefaultCost)
	if err != nil {
		writeError(w, err)
		return
	}

	user, err := a.store.CreateUser(creds.Username, string(hash))
	if err == storage.ErrUsernameTaken {
		writeError(w, apperror.Conflict("Username already taken"))
		return
	}
	if err != nil {
		writeError(w, apperror.Unavailable(err))
		return
	}

	if _, err := a.sessions.Create(r.Context(), w, &session.Data{UserID: user.ID, Username: user.Username}); err != nil {
		slog.Error("session create failed", "error", err)
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, userPayload{ID: user.ID, Username: user.Username})
}

// Login verifies credentials and establishes a session. The bcrypt
// comparison is constant-time; the failure response is identical whether
// the username or the password was wrong.
func (a *Auth) Login(w http.ResponseWriter, r *http.Request) {
	var creds models.Credentials
	if !decodeJSON(w, r, &creds) {
		return
	}

	user, err := a.store.GetUserByUsername(creds.Username)
	if err != nil {
		writeError(w, apperror.Unavailable(err))
		return
	}
	if user == nil || bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(creds.Password)) != nil {
		writeError(w, apperror.Unauthorized(invalidCredentials))
		return
	}

	if _, err := a.sessions.Create(r.Context(), w, &session.Data{UserID: user.ID, Username: user.Username}); err != nil {
		slog.Error("session create failed", "error", err)
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, userPayload{ID: user.ID, Username: user.Username})
}

// Logout destroys the session, if any, and clears the cookie.
func (a *Auth) Logout(w http.ResponseWriter, r *http.Request) {
	if err := a.sessions.Destroy(r.Context(), w, r); err != nil {
		slog.Error("session destroy failed", "error", err)
	}
	writeJSON(w, http.StatusOK, map[string]string{"message": "Logged out"})
}

// CurrentUser returns the identity attached to the request's session,
// or 401 when there is none. The admin dashboard calls this on load.
func (a *Auth) CurrentUser(w http.ResponseWriter, r *http.Request) {
	sess := middleware.SessionFromCtx(r.Context())
	if sess == nil {
		writeError(w, apperror.Unauthorized("Unauthorized"))
		return
	}
	writeJSON(w, http.StatusOK, userPayload{ID: sess.UserID, Username: sess.Username})
}
