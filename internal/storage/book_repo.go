package storage

//go:generate go run go.uber.org/mock/mockgen@latest -destination=mocks/mock_book_store.go -package=mocks lumen/internal/storage BookStore

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
)

// BookStore defines the interface for book storage operations.
type BookStore interface {
	// Insert persists a new book.
	Insert(ctx context.Context, b *Book) error
	// GetByID returns the book with the given id owned by ownerID.
	// Returns ErrNotFound for absent and foreign ids alike.
	GetByID(ctx context.Context, ownerID, id string) (*Book, error)
	// GetByIDs returns the owner's books among the given ids.
	// Missing and foreign ids are silently dropped.
	GetByIDs(ctx context.Context, ownerID string, ids []string) ([]Book, error)
	// ListByOwner returns all of the owner's books ordered by creation time descending.
	ListByOwner(ctx context.Context, ownerID string) ([]Book, error)
}

// BookRepo provides methods for book operations.
// It implements the BookStore interface.
type BookRepo struct {
	db *sql.DB
}

// NewBookRepo creates a new BookRepo.
func NewBookRepo(db *sql.DB) *BookRepo {
	return &BookRepo{db: db}
}

// Insert persists a new book. FolderID falls back to the default
// pseudo-folder so that it is never empty in storage.
func (r *BookRepo) Insert(ctx context.Context, b *Book) error {
	folderID := b.FolderID
	if folderID == "" {
		folderID = DefaultFolderID
	}
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO books (id, owner_id, title, author, isbn, cover_url, folder_id, created_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		b.ID, b.OwnerID, b.Title, b.Author, b.ISBN, b.CoverURL, folderID, formatTime(b.CreatedAt),
	)
	if err != nil {
		return fmt.Errorf("failed to insert book: %w", err)
	}
	return nil
}

// GetByID returns the book with the given id owned by ownerID.
func (r *BookRepo) GetByID(ctx context.Context, ownerID, id string) (*Book, error) {
	row := r.db.QueryRowContext(ctx,
		`SELECT id, owner_id, title, author, isbn, cover_url, folder_id, created_at
		 FROM books WHERE id = ? AND owner_id = ?`,
		id, ownerID,
	)
	b, err := scanBook(row)
	if err == sql.ErrNoRows {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to query book: %w", err)
	}
	return b, nil
}

// GetByIDs returns the owner's books among the given ids.
func (r *BookRepo) GetByIDs(ctx context.Context, ownerID string, ids []string) ([]Book, error) {
	if len(ids) == 0 {
		return []Book{}, nil
	}

	placeholders := strings.Repeat("?,", len(ids))
	placeholders = placeholders[:len(placeholders)-1]
	args := make([]any, 0, len(ids)+1)
	for _, id := range ids {
		args = append(args, id)
	}
	args = append(args, ownerID)

	rows, err := r.db.QueryContext(ctx,
		`SELECT id, owner_id, title, author, isbn, cover_url, folder_id, created_at
		 FROM books WHERE id IN (`+placeholders+`) AND owner_id = ?`,
		args...,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to query books: %w", err)
	}
	defer func() {
		_ = rows.Close()
	}()

	books := []Book{}
	for rows.Next() {
		b, err := scanBook(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan book: %w", err)
		}
		books = append(books, *b)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read books: %w", err)
	}
	return books, nil
}

// ListByOwner returns all of the owner's books ordered by creation time descending.
func (r *BookRepo) ListByOwner(ctx context.Context, ownerID string) ([]Book, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT id, owner_id, title, author, isbn, cover_url, folder_id, created_at
		 FROM books WHERE owner_id = ? ORDER BY created_at DESC`,
		ownerID,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list books: %w", err)
	}
	defer func() {
		_ = rows.Close()
	}()

	books := []Book{}
	for rows.Next() {
		b, err := scanBook(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan book: %w", err)
		}
		books = append(books, *b)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read books: %w", err)
	}
	return books, nil
}

func scanBook(row rowScanner) (*Book, error) {
	var b Book
	var isbn, coverURL sql.NullString
	var createdAt string
	if err := row.Scan(&b.ID, &b.OwnerID, &b.Title, &b.Author, &isbn, &coverURL, &b.FolderID, &createdAt); err != nil {
		return nil, err
	}
	b.ISBN = isbn.String
	b.CoverURL = coverURL.String
	t, err := parseTime(createdAt)
	if err != nil {
		return nil, fmt.Errorf("failed to parse created_at timestamp: %w", err)
	}
	b.CreatedAt = t
	return &b, nil
}
