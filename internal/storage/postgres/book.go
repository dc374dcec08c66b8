package postgres

import (
	"database/sql"
	"fmt"

	"portfolio/internal/models"
)

// ListBooks returns all books in insertion order.
func (s *Store) ListBooks() ([]models.Book, error) {
	rows, err := s.db.Query(`
		SELECT id, title, author, description, cover_image, summary_link,
		       published_year, tags, created_at
		FROM books
		ORDER BY id
	`)
	if err != nil {
		return nil, fmt.Errorf("list books: %w", err)
	}
	defer rows.Close()

	var books []models.Book
	for rows.Next() {
		b, err := scanBook(rows.Scan)
		if err != nil {
			return nil, err
		}
		books = append(books, *b)
	}
	return books, rows.Err()
}

// GetBook retrieves a book by id. Returns nil if not found.
func (s *Store) GetBook(id int) (*models.Book, error) {
	row := s.db.QueryRow(`
		SELECT id, title, author, description, cover_image, summary_link,
		       published_year, tags, created_at
		FROM books WHERE id = $1
	`, id)
	b, err := scanBook(row.Scan)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get book: %w", err)
	}
	return b, nil
}

// CreateBook inserts a new book and returns it with the generated id and
// server-assigned createdAt.
func (s *Store) CreateBook(in *models.BookInput) (*models.Book, error) {
	tags, err := tagsJSON(in.Tags)
	if err != nil {
		return nil, err
	}

	row := s.db.QueryRow(`
		INSERT INTO books (title, author, description, cover_image, summary_link, published_year, tags)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id, title, author, description, cover_image, summary_link,
		          published_year, tags, created_at
	`, in.Title, in.Author, in.Description, in.CoverImage, in.SummaryLink, in.PublishedYear, tags)
	b, err := scanBook(row.Scan)
	if err != nil {
		return nil, fmt.Errorf("create book: %w", err)
	}
	return b, nil
}

// scanBook reads a book row from either a *sql.Row or *sql.Rows scan func.
func scanBook(scan func(...any) error) (*models.Book, error) {
	b := &models.Book{}
	var rawTags []byte
	if err := scan(
		&b.ID, &b.Title, &b.Author, &b.Description, &b.CoverImage,
		&b.SummaryLink, &b.PublishedYear, &rawTags, &b.CreatedAt,
	); err != nil {
		return nil, err
	}
	tags, err := scanTags(rawTags)
	if err != nil {
		return nil, err
	}
	b.Tags = tags
	return b, nil
}
