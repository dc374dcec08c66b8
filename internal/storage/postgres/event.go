package postgres

import (
	"database/sql"
	"fmt"

	"portfolio/internal/models"
)

// ListEvents returns all events in insertion order.
func (s *Store) ListEvents() ([]models.Event, error) {
	rows, err := s.db.Query(`
		SELECT id, title, description, date, location, tags, link, created_at
		FROM events
		ORDER BY id
	`)
	if err != nil {
		return nil, fmt.Errorf("list events: %w", err)
	}
	defer rows.Close()

	var events []models.Event
	for rows.Next() {
		e, err := scanEvent(rows.Scan)
		if err != nil {
			return nil, err
		}
		events = append(events, *e)
	}
	return events, rows.Err()
}

// GetEvent retrieves an event by id. Returns nil if not found.
func (s *Store) GetEvent(id int) (*models.Event, error) {
	row := s.db.QueryRow(`
		SELECT id, title, description, date, location, tags, link, created_at
		FROM events WHERE id = $1
	`, id)
	e, err := scanEvent(row.Scan)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get event: %w", err)
	}
	return e, nil
}

// CreateEvent inserts a new event and returns the full row.
func (s *Store) CreateEvent(in *models.EventInput) (*models.Event, error) {
	tags, err := tagsJSON(in.Tags)
	if err != nil {
		return nil, err
	}

	row := s.db.QueryRow(`
		INSERT INTO events (title, description, date, location, tags, link)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id, title, description, date, location, tags, link, created_at
	`, in.Title, in.Description, in.Date, in.Location, tags, in.Link)
	e, err := scanEvent(row.Scan)
	if err != nil {
		return nil, fmt.Errorf("create event: %w", err)
	}
	return e, nil
}

func scanEvent(scan func(...any) error) (*models.Event, error) {
	e := &models.Event{}
	var rawTags []byte
	if err := scan(
		&e.ID, &e.Title, &e.Description, &e.Date, &e.Location,
		&rawTags, &e.Link, &e.CreatedAt,
	); err != nil {
		return nil, err
	}
	tags, err := scanTags(rawTags)
	if err != nil {
		return nil, err
	}
	e.Tags = tags
	return e, nil
}
