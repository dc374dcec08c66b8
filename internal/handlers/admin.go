package handlers

import (
	"net/http"

	"portfolio/internal/apperror"
	"portfolio/internal/cache"
	"portfolio/internal/models"
	"portfolio/internal/storage"
	"portfolio/internal/validate"
)

// Admin groups the authenticated content-management handlers. The
// RequireAuth middleware guarantees a session exists before any of these
// run. Each write invalidates the matching public cache key.
type Admin struct {
	store     storage.Store
	respCache *cache.ResponseCache
}

// NewAdmin creates an Admin handler group. respCache may be nil.
func NewAdmin(store storage.Store, respCache *cache.ResponseCache) *Admin {
	return &Admin{store: store, respCache: respCache}
}

// UpdateProfile upserts the site profile.
func (a *Admin) UpdateProfile(w http.ResponseWriter, r *http.Request) {
	var in models.ProfileInput
	if !decodeJSON(w, r, &in) {
		return
	}

	if errs := validate.Profile(&in); len(errs) > 0 {
		writeError(w, apperror.Validation(errs))
		return
	}

	profile, err := a.store.UpdateProfile(&in)
	if err != nil {
		writeError(w, apperror.Unavailable(err))
		return
	}

	a.respCache.Invalidate(r.Context(), cache.KeyProfile)
	writeJSON(w, http.StatusOK, profile)
}

// CreateBook adds a new book.
func (a *Admin) CreateBook(w http.ResponseWriter, r *http.Request) {
	var in models.BookInput
	if !decodeJSON(w, r, &in) {
		return
	}
	in.Tags = validate.NormalizeTags(in.Tags, in.TagsInput)

	if errs := validate.Book(&in); len(errs) > 0 {
		writeError(w, apperror.Validation(errs))
		return
	}

	book, err := a.store.CreateBook(&in)
	if err != nil {
		writeError(w, apperror.Unavailable(err))
		return
	}

	a.respCache.Invalidate(r.Context(), cache.KeyBooks)
	writeJSON(w, http.StatusCreated, book)
}

// CreateEvent adds a new event.
func (a *Admin) CreateEvent(w http.ResponseWriter, r *http.Request) {
	var in models.EventInput
	if !decodeJSON(w, r, &in) {
		return
	}
	in.Tags = validate.NormalizeTags(in.Tags, in.TagsInput)

	if errs := validate.Event(&in); len(errs) > 0 {
		writeError(w, apperror.Validation(errs))
		return
	}

	event, err := a.store.CreateEvent(&in)
	if err != nil {
		writeError(w, apperror.Unavailable(err))
		return
	}

	a.respCache.Invalidate(r.Context(), cache.KeyEvents)
	writeJSON(w, http.StatusCreated, event)
}

// CreateBlog adds a new blog post. Blogs carry no tags; a tagsInput
// field from the admin form is accepted and discarded.
func (a *Admin) CreateBlog(w http.ResponseWriter, r *http.Request) {
	var in models.BlogInput
	if !decodeJSON(w, r, &in) {
		return
	}

	if errs := validate.Blog(&in); len(errs) > 0 {
		writeError(w, apperror.Validation(errs))
		return
	}

	blog, err := a.store.CreateBlog(&in)
	if err != nil {
		writeError(w, apperror.Unavailable(err))
		return
	}

	a.respCache.Invalidate(r.Context(), cache.KeyBlogs)
	writeJSON(w, http.StatusCreated, blog)
}

// CreateProject adds a new project.
func (a *Admin) CreateProject(w http.ResponseWriter, r *http.Request) {
	var in models.ProjectInput
	if !decodeJSON(w, r, &in) {
		return
	}
	in.Tags = validate.NormalizeTags(in.Tags, in.TagsInput)

	if errs := validate.Project(&in); len(errs) > 0 {
		writeError(w, apperror.Validation(errs))
		return
	}

	project, err := a.store.CreateProject(&in)
	if err != nil {
		writeError(w, apperror.Unavailable(err))
		return
	}

	a.respCache.Invalidate(r.Context(), cache.KeyProjects)
	writeJSON(w, http.StatusCreated, project)
}
