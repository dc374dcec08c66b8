// Package router sets up the HTTP route tree: the public API, the
// session-guarded admin group, and the auth endpoints, with the shared
// middleware stack applied globally.
package router

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/rs/cors"

	"portfolio/internal/handlers"
	"portfolio/internal/middleware"
	"portfolio/internal/session"
)

// Rate limits for the unauthenticated write surfaces.
const (
	contactLimit  = 5
	authLimit     = 10
	limiterWindow = time.Minute
)

// New creates the configured chi router with all middleware and routes
// wired up. corsOrigins lists the browser origins allowed to call the
// API with credentials.
func New(sessions session.Store, public *handlers.Public, admin *handlers.Admin, auth *handlers.Auth, corsOrigins []string) chi.Router {
	r := chi.NewRouter()

	// Global middleware, applied to every request.
	r.Use(middleware.Recoverer)
	r.Use(middleware.Logger)
	r.Use(middleware.SecureHeaders)
	r.Use(cors.New(cors.Options{
		AllowedOrigins:   corsOrigins,
		AllowedMethods:   []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodOptions},
		AllowedHeaders:   []string{"Accept", "Content-Type"},
		AllowCredentials: true,
	}).Handler)
	r.Use(middleware.LoadSession(sessions))

	contactLimiter := middleware.NewRateLimiter(contactLimit, limiterWindow)
	authLimiter := middleware.NewRateLimiter(authLimit, limiterWindow)

	// Health check.
	r.Get("/health", healthHandler)

	r.Route("/api", func(r chi.Router) {
		// Public reads.
		r.Get("/profile", public.Profile)
		r.Route("/books", func(r chi.Router) {
			r.Get("/", public.Books)
			r.Get("/{id}", public.Book)
		})
		r.Route("/events", func(r chi.Router) {
			r.Get("/", public.Events)
			r.Get("/{id}", public.Event)
		})
		r.Route("/blogs", func(r chi.Router) {
			r.Get("/", public.Blogs)
			r.Get("/{id}", public.Blog)
		})
		r.Route("/projects", func(r chi.Router) {
			r.Get("/", public.Projects)
			r.Get("/{id}", public.Project)
		})

		// Contact form, throttled per IP.
		r.With(contactLimiter.Middleware).Post("/contact", public.Contact)

		// Session management.
		r.Group(func(r chi.Router) {
			r.Use(authLimiter.Middleware)
			r.Post("/register", auth.Register)
			r.Post("/login", auth.Login)
		})
		r.Post("/logout", auth.Logout)
		r.Get("/user", auth.CurrentUser)

		// Admin writes require an authenticated session.
		r.Route("/admin", func(r chi.Router) {
			r.Use(middleware.RequireAuth)
			r.Put("/profile", admin.UpdateProfile)
			r.Post("/books", admin.CreateBook)
			r.Post("/events", admin.CreateEvent)
			r.Post("/blogs", admin.CreateBlog)
			r.Post("/projects", admin.CreateProject)
		})
	})

	return r
}

// healthHandler returns a simple JSON health check response.
func healthHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(`{"status":"ok"}`))
}
