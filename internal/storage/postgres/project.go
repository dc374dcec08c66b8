package postgres

import (
	"database/sql"
	"fmt"

	"portfolio/internal/models"
)

// ListProjects returns all projects in insertion order.
func (s *Store) ListProjects() ([]models.Project, error) {
	rows, err := s.db.Query(`
		SELECT id, title, description, cover_image, tags, demo_link, code_link, featured, created_at
		FROM projects
		ORDER BY id
	`)
	if err != nil {
		return nil, fmt.Errorf("list projects: %w", err)
	}
	defer rows.Close()

	var projects []models.Project
	for rows.Next() {
		p, err := scanProject(rows.Scan)
		if err != nil {
			return nil, err
		}
		projects = append(projects, *p)
	}
	return projects, rows.Err()
}

// GetProject retrieves a project by id. Returns nil if not found.
func (s *Store) GetProject(id int) (*models.Project, error) {
	row := s.db.QueryRow(`
		SELECT id, title, description, cover_image, tags, demo_link, code_link, featured, created_at
		FROM projects WHERE id = $1
	`, id)
	p, err := scanProject(row.Scan)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get project: %w", err)
	}
	return p, nil
}

// CreateProject inserts a new project and returns the full row.
func (s *Store) CreateProject(in *models.ProjectInput) (*models.Project, error) {
	tags, err := tagsJSON(in.Tags)
	if err != nil {
		return nil, err
	}

	row := s.db.QueryRow(`
		INSERT INTO projects (title, description, cover_image, tags, demo_link, code_link, featured)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id, title, description, cover_image, tags, demo_link, code_link, featured, created_at
	`, in.Title, in.Description, in.CoverImage, tags, in.DemoLink, in.CodeLink, in.Featured)
	p, err := scanProject(row.Scan)
	if err != nil {
		return nil, fmt.Errorf("create project: %w", err)
	}
	return p, nil
}

func scanProject(scan func(...any) error) (*models.Project, error) {
	p := &models.Project{}
	var rawTags []byte
	if err := scan(
		&p.ID, &p.Title, &p.Description, &p.CoverImage, &rawTags,
		&p.DemoLink, &p.CodeLink, &p.Featured, &p.CreatedAt,
	); err != nil {
		return nil, err
	}
	tags, err := scanTags(rawTags)
	if err != nil {
		return nil, err
	}
	p.Tags = tags
	return p, nil
}
