// Package memory implements storage.Store with mutex-guarded in-process
// maps. It backs local development and the handler tests, where spinning
// up PostgreSQL would be overkill. Semantics mirror the postgres backend:
// serial ids, server-assigned createdAt, singleton profile, atomic
// username uniqueness (one mutex covers check and insert).
package memory

import (
	"time"

	"portfolio/internal/models"
	"portfolio/internal/storage"
)

// New creates an empty in-memory store.
func New() *Store {
	return &Store{
		users:    make(map[int]*models.User),
		books:    make(map[int]*models.Book),
		events:   make(map[int]*models.Event),
		blogs:    make(map[int]*models.Blog),
		projects: make(map[int]*models.Project),
		messages: make(map[int]*models.ContactMessage),
	}
}

var _ storage.Store = (*Store)(nil)

// GetUser retrieves a user by id. Returns nil if not found.
func (s *Store) GetUser(id int) (*models.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	u, ok := s.users[id]
	if !ok {
		return nil, nil
	}
	copied := *u
	return &copied, nil
}

// GetUserByUsername retrieves a user by exact, case-sensitive username.
func (s *Store) GetUserByUsername(username string) (*models.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, u := range s.users {
		if u.Username == username {
			copied := *u
			return &copied, nil
		}
	}
	return nil, nil
}

// CreateUser inserts a new user. The uniqueness check and the insert
// happen under the same lock, so concurrent creates cannot race.
func (s *Store) CreateUser(username, passwordHash string) (*models.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, u := range s.users {
		if u.Username == username {
			return nil, storage.ErrUsernameTaken
		}
	}

	s.userID++
	u := &models.User{ID: s.userID, Username: username, Password: passwordHash}
	s.users[u.ID] = u
	copied := *u
	return &copied, nil
}

// GetProfile returns the singleton profile, or nil if none exists.
func (s *Store) GetProfile() (*models.Profile, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.profile == nil {
		return nil, nil
	}
	copied := *s.profile
	return &copied, nil
}

// UpdateProfile upserts the singleton profile, keeping its id stable
// across updates.
func (s *Store) UpdateProfile(in *models.ProfileInput) (*models.Profile, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	id := 1
	if s.profile != nil {
		id = s.profile.ID
	}
	s.profile = &models.Profile{
		ID:           id,
		Name:         in.Name,
		Title:        in.Title,
		Bio:          in.Bio,
		Avatar:       in.Avatar,
		Email:        in.Email,
		Location:     in.Location,
		WorkingHours: in.WorkingHours,
		SocialLinks:  in.SocialLinks,
	}
	copied := *s.profile
	return &copied, nil
}

// CreateContactMessage records a contact form submission.
func (s *Store) CreateContactMessage(in *models.ContactInput) (*models.ContactMessage, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.messageID++
	m := &models.ContactMessage{
		ID:        s.messageID,
		Name:      in.Name,
		Email:     in.Email,
		Subject:   in.Subject,
		Message:   in.Message,
		CreatedAt: time.Now(),
	}
	s.messages[m.ID] = m
	copied := *m
	return &copied, nil
}

// ContactMessageCount reports how many messages have been stored. Only
// used by tests; the public API has no read path for messages.
func (s *Store) ContactMessageCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.messages)
}

// copyTags clones a tag slice, mapping nil to an empty list.
func copyTags(tags []string) []string {
	out := []string{}
	return append(out, tags...)
}
