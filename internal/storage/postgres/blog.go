package postgres

import (
	"database/sql"
	"fmt"

	"portfolio/internal/models"
)

// ListBlogs returns all blog posts in insertion order.
func (s *Store) ListBlogs() ([]models.Blog, error) {
	rows, err := s.db.Query(`
		SELECT id, title, excerpt, content, cover_image, category, date, link, created_at
		FROM blogs
		ORDER BY id
	`)
	if err != nil {
		return nil, fmt.Errorf("list blogs: %w", err)
	}
	defer rows.Close()

	var blogs []models.Blog
	for rows.Next() {
		var b models.Blog
		if err := rows.Scan(
			&b.ID, &b.Title, &b.Excerpt, &b.Content, &b.CoverImage,
			&b.Category, &b.Date, &b.Link, &b.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan blog: %w", err)
		}
		blogs = append(blogs, b)
	}
	return blogs, rows.Err()
}

// GetBlog retrieves a blog post by id. Returns nil if not found.
func (s *Store) GetBlog(id int) (*models.Blog, error) {
	b := &models.Blog{}
	err := s.db.QueryRow(`
		SELECT id, title, excerpt, content, cover_image, category, date, link, created_at
		FROM blogs WHERE id = $1
	`, id).Scan(
		&b.ID, &b.Title, &b.Excerpt, &b.Content, &b.CoverImage,
		&b.Category, &b.Date, &b.Link, &b.CreatedAt,
	)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get blog: %w", err)
	}
	return b, nil
}

// CreateBlog inserts a new blog post and returns the full row.
func (s *Store) CreateBlog(in *models.BlogInput) (*models.Blog, error) {
	b := &models.Blog{}
	err := s.db.QueryRow(`
		INSERT INTO blogs (title, excerpt, content, cover_image, category, date, link)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id, title, excerpt, content, cover_image, category, date, link, created_at
	`, in.Title, in.Excerpt, in.Content, in.CoverImage, in.Category, in.Date, in.Link).Scan(
		&b.ID, &b.Title, &b.Excerpt, &b.Content, &b.CoverImage,
		&b.Category, &b.Date, &b.Link, &b.CreatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("create blog: %w", err)
	}
	return b, nil
}
