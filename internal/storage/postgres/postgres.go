// Package postgres implements storage.Store on PostgreSQL. Each entity
// gets its own file with typed query methods over a shared *sql.DB pool.
// Tags and social links are persisted as JSONB.
package postgres

import (
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5/pgconn"

	"portfolio/internal/storage"
)

// pgUniqueViolation is the PostgreSQL error code for unique_violation.
const pgUniqueViolation = "23505"

// Store implements storage.Store over a PostgreSQL connection pool.
type Store struct {
	db *sql.DB
}

// New creates a Store with the given database connection.
func New(db *sql.DB) *Store {
	return &Store{db: db}
}

var _ storage.Store = (*Store)(nil)

// isUniqueViolation reports whether err is a unique-constraint violation.
func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == pgUniqueViolation
}

// tagsJSON marshals a tag list for a JSONB column, mapping nil to [].
func tagsJSON(tags []string) ([]byte, error) {
	if tags == nil {
		tags = []string{}
	}
	raw, err := json.Marshal(tags)
	if err != nil {
		return nil, fmt.Errorf("marshal tags: %w", err)
	}
	return raw, nil
}

// scanTags unmarshals a JSONB tag column, never returning nil.
func scanTags(raw []byte) ([]string, error) {
	tags := []string{}
	if len(raw) > 0 {
		if err := json.Unmarshal(raw, &tags); err != nil {
			return nil, fmt.Errorf("unmarshal tags: %w", err)
		}
	}
	if tags == nil {
		tags = []string{}
	}
	return tags, nil
}
