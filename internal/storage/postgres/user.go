package postgres

import (
	"database/sql"
	"fmt"

	"portfolio/internal/models"
	"portfolio/internal/storage"
)

// GetUser retrieves a user by id. Returns nil if not found.
func (s *Store) GetUser(id int) (*models.User, error) {
	u := &models.User{}
	err := s.db.QueryRow(`
		SELECT id, username, password FROM users WHERE id = $1
	`, id).Scan(&u.ID, &u.Username, &u.Password)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get user: %w", err)
	}
	return u, nil
}

// GetUserByUsername retrieves a user by exact, case-sensitive username.
// Returns nil if not found.
func (s *Store) GetUserByUsername(username string) (*models.User, error) {
	u := &models.User{}
	err := s.db.QueryRow(`
		SELECT id, username, password FROM users WHERE username = $1
	`, username).Scan(&u.ID, &u.Username, &u.Password)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get user by username: %w", err)
	}
	return u, nil
}

// CreateUser inserts a new user row. Username uniqueness is enforced by
// the table's unique constraint; a violation surfaces as
// storage.ErrUsernameTaken.
func (s *Store) CreateUser(username, passwordHash string) (*models.User, error) {
	u := &models.User{}
	err := s.db.QueryRow(`
		INSERT INTO users (username, password)
		VALUES ($1, $2)
		RETURNING id, username, password
	`, username, passwordHash).Scan(&u.ID, &u.Username, &u.Password)
	if err != nil {
		if isUniqueViolation(err) {
			return nil, storage.ErrUsernameTaken
		}
		return nil, fmt.Errorf("create user: %w", err)
	}
	return u, nil
}
