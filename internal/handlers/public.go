package handlers

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"portfolio/internal/apperror"
	"portfolio/internal/cache"
	"portfolio/internal/markdown"
	"portfolio/internal/models"
	"portfolio/internal/storage"
	"portfolio/internal/validate"
)

// Public groups the handlers for the public site: profile and content
// reads plus the contact form. List and profile payloads are served from
// the Valkey response cache when one is configured.
type Public struct {
	store     storage.Store
	respCache *cache.ResponseCache
}

// NewPublic creates a Public handler group. respCache may be nil to
// disable caching.
func NewPublic(store storage.Store, respCache *cache.ResponseCache) *Public {
	return &Public{store: store, respCache: respCache}
}

// blogPayload is a blog post as served by the public API: the stored
// fields plus the content rendered to HTML.
type blogPayload struct {
	models.Blog
	ContentHTML string `json:"contentHtml"`
}

// renderBlog attaches the rendered HTML to a blog post. A render failure
// falls back to the raw content rather than failing the request.
func renderBlog(b models.Blog) blogPayload {
	html, err := markdown.ToHTML(b.Content)
	if err != nil {
		slog.Warn("blog render failed", "id", b.ID, "error", err)
		html = b.Content
	}
	return blogPayload{Blog: b, ContentHTML: html}
}

// parseID reads a numeric path parameter. A non-numeric value is a 400,
// never a 404.
func parseID(r *http.Request) (int, bool) {
	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		return 0, false
	}
	return id, true
}

// serveCached writes data as JSON and records it in the response cache
// under key. Cached bytes from a previous request short-circuit the
// storage call in the caller.
func (p *Public) serveCached(w http.ResponseWriter, r *http.Request, key string, data any) {
	payload, err := json.Marshal(data)
	if err != nil {
		writeError(w, err)
		return
	}
	p.respCache.Set(r.Context(), key, payload)
	writeRawJSON(w, http.StatusOK, payload)
}

// Profile returns the site owner's profile.
func (p *Public) Profile(w http.ResponseWriter, r *http.Request) {
	if payload, ok := p.respCache.Get(r.Context(), cache.KeyProfile); ok {
		writeRawJSON(w, http.StatusOK, payload)
		return
	}

	profile, err := p.store.GetProfile()
	if err != nil {
		writeError(w, apperror.Unavailable(err))
		return
	}
	if profile == nil {
		writeError(w, apperror.NotFound("Profile"))
		return
	}
	p.serveCached(w, r, cache.KeyProfile, profile)
}

// Books returns all books.
func (p *Public) Books(w http.ResponseWriter, r *http.Request) {
	if payload, ok := p.respCache.Get(r.Context(), cache.KeyBooks); ok {
		writeRawJSON(w, http.StatusOK, payload)
		return
	}

	books, err := p.store.ListBooks()
	if err != nil {
		writeError(w, apperror.Unavailable(err))
		return
	}
	if books == nil {
		books = []models.Book{}
	}
	p.serveCached(w, r, cache.KeyBooks, books)
}

// Book returns a single book by id.
func (p *Public) Book(w http.ResponseWriter, r *http.Request) {
	id, ok := parseID(r)
	if !ok {
		writeJSON(w, http.StatusBadRequest, errorResponse{Message: "Invalid book ID"})
		return
	}

	book, err := p.store.GetBook(id)
	if err != nil {
		writeError(w, apperror.Unavailable(err))
		return
	}
	if book == nil {
		writeError(w, apperror.NotFound("Book"))
		return
	}
	writeJSON(w, http.StatusOK, book)
}

// Events returns all events.
func (p *Public) Events(w http.ResponseWriter, r *http.Request) {
	if payload, ok := p.respCache.Get(r.Context(), cache.KeyEvents); ok {
		writeRawJSON(w, http.StatusOK, payload)
		return
	}

	events, err := p.store.ListEvents()
	if err != nil {
		writeError(w, apperror.Unavailable(err))
		return
	}
	if events == nil {
		events = []models.Event{}
	}
	p.serveCached(w, r, cache.KeyEvents, events)
}

// Event returns a single event by id.
func (p *Public) Event(w http.ResponseWriter, r *http.Request) {
	id, ok := parseID(r)
	if !ok {
		writeJSON(w, http.StatusBadRequest, errorResponse{Message: "Invalid event ID"})
		return
	}

	event, err := p.store.GetEvent(id)
	if err != nil {
		writeError(w, apperror.Unavailable(err))
		return
	}
	if event == nil {
		writeError(w, apperror.NotFound("Event"))
		return
	}
	writeJSON(w, http.StatusOK, event)
}

// Blogs returns all blog posts with rendered content.
func (p *Public) Blogs(w http.ResponseWriter, r *http.Request) {
	if payload, ok := p.respCache.Get(r.Context(), cache.KeyBlogs); ok {
		writeRawJSON(w, http.StatusOK, payload)
		return
	}

	blogs, err := p.store.ListBlogs()
	if err != nil {
		writeError(w, apperror.Unavailable(err))
		return
	}
	payload := make([]blogPayload, 0, len(blogs))
	for _, b := range blogs {
		payload = append(payload, renderBlog(b))
	}
	p.serveCached(w, r, cache.KeyBlogs, payload)
}

// Blog returns a single blog post by id with rendered content.
func (p *Public) Blog(w http.ResponseWriter, r *http.Request) {
	id, ok := parseID(r)
	if !ok {
		writeJSON(w, http.StatusBadRequest, errorResponse{Message: "Invalid blog ID"})
		return
	}

	blog, err := p.store.GetBlog(id)
	if err != nil {
		writeError(w, apperror.Unavailable(err))
		return
	}
	if blog == nil {
		writeError(w, apperror.NotFound("Blog"))
		return
	}
	writeJSON(w, http.StatusOK, renderBlog(*blog))
}

// Projects returns all projects.
func (p *Public) Projects(w http.ResponseWriter, r *http.Request) {
	if payload, ok := p.respCache.Get(r.Context(), cache.KeyProjects); ok {
		writeRawJSON(w, http.StatusOK, payload)
		return
	}

	projects, err := p.store.ListProjects()
	if err != nil {
		writeError(w, apperror.Unavailable(err))
		return
	}
	if projects == nil {
		projects = []models.Project{}
	}
	p.serveCached(w, r, cache.KeyProjects, projects)
}

// Project returns a single project by id.
func (p *Public) Project(w http.ResponseWriter, r *http.Request) {
	id, ok := parseID(r)
	if !ok {
		writeJSON(w, http.StatusBadRequest, errorResponse{Message: "Invalid project ID"})
		return
	}

	project, err := p.store.GetProject(id)
	if err != nil {
		writeError(w, apperror.Unavailable(err))
		return
	}
	if project == nil {
		writeError(w, apperror.NotFound("Project"))
		return
	}
	writeJSON(w, http.StatusOK, project)
}

// Contact accepts a contact form submission. Validation failures list
// every failing field; nothing is stored on failure.
func (p *Public) Contact(w http.ResponseWriter, r *http.Request) {
	var in models.ContactInput
	if !decodeJSON(w, r, &in) {
		return
	}

	if errs := validate.Contact(&in); len(errs) > 0 {
		writeError(w, apperror.Validation(errs))
		return
	}

	msg, err := p.store.CreateContactMessage(&in)
	if err != nil {
		writeError(w, apperror.Unavailable(err))
		return
	}

	writeJSON(w, http.StatusCreated, map[string]any{
		"message": "Thank you for your message! I'll get back to you soon.",
		"id":      msg.ID,
	})
}
