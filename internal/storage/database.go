package storage

import (
	"database/sql"
	"time"

	_ "github.com/mattn/go-sqlite3"
)

// New opens a SQLite database connection at the given path.
// It enables foreign keys and sets connection pool settings.
func New(path string) (*sql.DB, error) {
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, err
	}

	// Enable foreign keys (disabled by default in SQLite)
	if _, err := db.Exec("PRAGMA foreign_keys = ON;"); err != nil {
		_ = db.Close()
		return nil, err
	}

	// Set connection pool settings
	db.SetMaxOpenConns(25)
	db.SetMaxIdleConns(5)
	db.SetConnMaxLifetime(5 * time.Minute)

	// Verify connection
	if err := db.Ping(); err != nil {
		_ = db.Close()
		return nil, err
	}

	return db, nil
}

// Migrate runs database migrations to create the required tables.
// It is idempotent and can be run multiple times safely.
//
// Snippets reference books by id but deliberately carry no foreign key:
// a snippet whose book was never persisted is a valid, if degenerate,
// state, and creation must not pay for an existence check.
func Migrate(db *sql.DB) error {
	schema := []string{
		`CREATE TABLE IF NOT EXISTS folders (
			id TEXT PRIMARY KEY,
			owner_id TEXT NOT NULL,
			name TEXT NOT NULL,
			created_at TEXT NOT NULL
		);`,
		`CREATE TABLE IF NOT EXISTS books (
			id TEXT PRIMARY KEY,
			owner_id TEXT NOT NULL,
			title TEXT NOT NULL,
			author TEXT NOT NULL,
			isbn TEXT,
			cover_url TEXT,
			folder_id TEXT NOT NULL DEFAULT 'default',
			created_at TEXT NOT NULL
		);`,
		`CREATE TABLE IF NOT EXISTS snippets (
			id TEXT PRIMARY KEY,
			owner_id TEXT NOT NULL,
			book_id TEXT NOT NULL,
			text TEXT NOT NULL,
			page_number INTEGER,
			created_at TEXT NOT NULL
		);`,
		`CREATE INDEX IF NOT EXISTS idx_folders_owner ON folders(owner_id, created_at);`,
		`CREATE INDEX IF NOT EXISTS idx_books_owner ON books(owner_id, created_at);`,
		`CREATE INDEX IF NOT EXISTS idx_snippets_owner ON snippets(owner_id, created_at);`,
		`CREATE INDEX IF NOT EXISTS idx_snippets_book ON snippets(owner_id, book_id);`,
	}

	for _, stmt := range schema {
		if _, err := db.Exec(stmt); err != nil {
			return err
		}
	}

	return nil
}
