// Package storage declares the persistence contract for the portfolio.
// It is the only layer permitted to touch the backing store. Two backends
// implement it: postgres (the real one) and memory (for development and
// tests), selected once at process start.
package storage

import (
	"errors"

	"portfolio/internal/models"
)

// ErrUsernameTaken is returned by CreateUser when the username already
// exists. Backends must enforce this atomically; the postgres backend
// relies on the unique constraint, not a check-then-insert.
var ErrUsernameTaken = errors.New("username already taken")

// Store is the full persistence interface. Get-by-id methods return
// (nil, nil) when the row does not exist; a non-nil error always means a
// backend failure, never a merely-missing row.
type Store interface {
	// Users. CreateUser expects an already-hashed password.
	GetUser(id int) (*models.User, error)
	GetUserByUsername(username string) (*models.User, error)
	CreateUser(username, passwordHash string) (*models.User, error)

	// Profile is a singleton: GetProfile returns nil when none exists,
	// UpdateProfile creates it on first call and updates in place after.
	GetProfile() (*models.Profile, error)
	UpdateProfile(in *models.ProfileInput) (*models.Profile, error)

	// Books
	ListBooks() ([]models.Book, error)
	GetBook(id int) (*models.Book, error)
	CreateBook(in *models.BookInput) (*models.Book, error)

	// Events
	ListEvents() ([]models.Event, error)
	GetEvent(id int) (*models.Event, error)
	CreateEvent(in *models.EventInput) (*models.Event, error)

	// Blogs
	ListBlogs() ([]models.Blog, error)
	GetBlog(id int) (*models.Blog, error)
	CreateBlog(in *models.BlogInput) (*models.Blog, error)

	// Projects
	ListProjects() ([]models.Project, error)
	GetProject(id int) (*models.Project, error)
	CreateProject(in *models.ProjectInput) (*models.Project, error)

	// Contact messages are write-only.
	CreateContactMessage(in *models.ContactInput) (*models.ContactMessage, error)
}
