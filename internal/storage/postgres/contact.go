package postgres

import (
	"fmt"

	"portfolio/internal/models"
)

// CreateContactMessage inserts a contact form submission. There is no
// read path: messages are only ever written by the public endpoint.
func (s *Store) CreateContactMessage(in *models.ContactInput) (*models.ContactMessage, error) {
	m := &models.ContactMessage{}
	err := s.db.QueryRow(`
		INSERT INTO contact_messages (name, email, subject, message)
		VALUES ($1, $2, $3, $4)
		RETURNING id, name, email, subject, message, created_at
	`, in.Name, in.Email, in.Subject, in.Message).Scan(
		&m.ID, &m.Name, &m.Email, &m.Subject, &m.Message, &m.CreatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("create contact message: %w", err)
	}
	return m, nil
}
