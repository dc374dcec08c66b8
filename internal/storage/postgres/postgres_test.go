// postgres_test.go provides a shared test database helper for the
// postgres store integration tests. Tests are skipped when PostgreSQL is
// not available.
package postgres

import (
	"database/sql"
	"os"
	"testing"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/pressly/goose/v3"

	"portfolio/internal/database"
)

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

// testDSN returns the PostgreSQL connection string for testing.
// Uses environment variables with defaults matching docker-compose.yml.
func testDSN() string {
	host := envOr("POSTGRES_HOST", "localhost")
	port := envOr("POSTGRES_PORT", "5432")
	user := envOr("POSTGRES_USER", "portfolio")
	pass := envOr("POSTGRES_PASSWORD", "changeme")
	name := envOr("POSTGRES_DB", "portfolio")
	return "postgres://" + user + ":" + pass + "@" + host + ":" + port + "/" + name + "?sslmode=disable"
}

// testStore opens a connection to the test database, runs migrations, and
// wipes all tables so each test starts from a known-empty state. If the
// database is unavailable, the test is skipped.
func testStore(t *testing.T) *Store {
	t.Helper()

	db, err := sql.Open("pgx", testDSN())
	if err != nil {
		t.Skipf("skipping integration test: cannot open DB: %v", err)
	}
	if err := db.Ping(); err != nil {
		db.Close()
		t.Skipf("skipping integration test: DB not reachable: %v", err)
	}

	if err := database.Migrate(db); err != nil {
		db.Close()
		t.Fatalf("migrate: %v", err)
	}
	goose.SetBaseFS(nil)

	if _, err := db.Exec(`
		TRUNCATE users, profile, books, events, blogs, projects, contact_messages
		RESTART IDENTITY
	`); err != nil {
		db.Close()
		t.Fatalf("truncate: %v", err)
	}

	t.Cleanup(func() { db.Close() })
	return New(db)
}
