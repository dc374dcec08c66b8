package memory

import (
	"sync"
	"time"

	"portfolio/internal/models"
)

// Store holds all tables behind one mutex. Requests are short,
// independent reads or writes, so a single lock is plenty.
type Store struct {
	mu sync.Mutex

	userID    int
	bookID    int
	eventID   int
	blogID    int
	projectID int
	messageID int

	users    map[int]*models.User
	profile  *models.Profile
	books    map[int]*models.Book
	events   map[int]*models.Event
	blogs    map[int]*models.Blog
	projects map[int]*models.Project
	messages map[int]*models.ContactMessage

	bookOrder    []int
	eventOrder   []int
	blogOrder    []int
	projectOrder []int
}

// ListBooks returns all books in insertion order.
func (s *Store) ListBooks() ([]models.Book, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	books := make([]models.Book, 0, len(s.bookOrder))
	for _, id := range s.bookOrder {
		b := *s.books[id]
		b.Tags = copyTags(b.Tags)
		books = append(books, b)
	}
	return books, nil
}

// GetBook retrieves a book by id. Returns nil if not found.
func (s *Store) GetBook(id int) (*models.Book, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	b, ok := s.books[id]
	if !ok {
		return nil, nil
	}
	copied := *b
	copied.Tags = copyTags(b.Tags)
	return &copied, nil
}

// CreateBook inserts a new book with a fresh id and createdAt.
func (s *Store) CreateBook(in *models.BookInput) (*models.Book, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.bookID++
	b := &models.Book{
		ID:            s.bookID,
		Title:         in.Title,
		Author:        in.Author,
		Description:   in.Description,
		CoverImage:    in.CoverImage,
		SummaryLink:   in.SummaryLink,
		PublishedYear: in.PublishedYear,
		Tags:          copyTags(in.Tags),
		CreatedAt:     time.Now(),
	}
	s.books[b.ID] = b
	s.bookOrder = append(s.bookOrder, b.ID)
	copied := *b
	copied.Tags = copyTags(b.Tags)
	return &copied, nil
}

// ListEvents returns all events in insertion order.
func (s *Store) ListEvents() ([]models.Event, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	events := make([]models.Event, 0, len(s.eventOrder))
	for _, id := range s.eventOrder {
		e := *s.events[id]
		e.Tags = copyTags(e.Tags)
		events = append(events, e)
	}
	return events, nil
}

// GetEvent retrieves an event by id. Returns nil if not found.
func (s *Store) GetEvent(id int) (*models.Event, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	e, ok := s.events[id]
	if !ok {
		return nil, nil
	}
	copied := *e
	copied.Tags = copyTags(e.Tags)
	return &copied, nil
}

// CreateEvent inserts a new event.
func (s *Store) CreateEvent(in *models.EventInput) (*models.Event, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.eventID++
	e := &models.Event{
		ID:          s.eventID,
		Title:       in.Title,
		Description: in.Description,
		Date:        in.Date,
		Location:    in.Location,
		Tags:        copyTags(in.Tags),
		Link:        in.Link,
		CreatedAt:   time.Now(),
	}
	s.events[e.ID] = e
	s.eventOrder = append(s.eventOrder, e.ID)
	copied := *e
	copied.Tags = copyTags(e.Tags)
	return &copied, nil
}

// ListBlogs returns all blog posts in insertion order.
func (s *Store) ListBlogs() ([]models.Blog, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	blogs := make([]models.Blog, 0, len(s.blogOrder))
	for _, id := range s.blogOrder {
		blogs = append(blogs, *s.blogs[id])
	}
	return blogs, nil
}

// GetBlog retrieves a blog post by id. Returns nil if not found.
func (s *Store) GetBlog(id int) (*models.Blog, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	b, ok := s.blogs[id]
	if !ok {
		return nil, nil
	}
	copied := *b
	return &copied, nil
}

// CreateBlog inserts a new blog post.
func (s *Store) CreateBlog(in *models.BlogInput) (*models.Blog, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.blogID++
	b := &models.Blog{
		ID:         s.blogID,
		Title:      in.Title,
		Excerpt:    in.Excerpt,
		Content:    in.Content,
		CoverImage: in.CoverImage,
		Category:   in.Category,
		Date:       in.Date,
		Link:       in.Link,
		CreatedAt:  time.Now(),
	}
	s.blogs[b.ID] = b
	s.blogOrder = append(s.blogOrder, b.ID)
	copied := *b
	return &copied, nil
}

// ListProjects returns all projects in insertion order.
func (s *Store) ListProjects() ([]models.Project, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	projects := make([]models.Project, 0, len(s.projectOrder))
	for _, id := range s.projectOrder {
		p := *s.projects[id]
		p.Tags = copyTags(p.Tags)
		projects = append(projects, p)
	}
	return projects, nil
}

// GetProject retrieves a project by id. Returns nil if not found.
func (s *Store) GetProject(id int) (*models.Project, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	p, ok := s.projects[id]
	if !ok {
		return nil, nil
	}
	copied := *p
	copied.Tags = copyTags(p.Tags)
	return &copied, nil
}

// CreateProject inserts a new project.
func (s *Store) CreateProject(in *models.ProjectInput) (*models.Project, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.projectID++
	p := &models.Project{
		ID:          s.projectID,
		Title:       in.Title,
		Description: in.Description,
		CoverImage:  in.CoverImage,
		Tags:        copyTags(in.Tags),
		DemoLink:    in.DemoLink,
		CodeLink:    in.CodeLink,
		Featured:    in.Featured,
		CreatedAt:   time.Now(),
	}
	s.projects[p.ID] = p
	s.projectOrder = append(s.projectOrder, p.ID)
	copied := *p
	copied.Tags = copyTags(p.Tags)
	return &copied, nil
}
