package storage

//go:generate go run go.uber.org/mock/mockgen@latest -destination=mocks/mock_snippet_store.go -package=mocks lumen/internal/storage SnippetStore

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"
)

var (
	// ErrNotFound is returned when a record is not found.
	ErrNotFound = errors.New("record not found")
)

// timeLayout is a fixed-width RFC 3339 layout so that lexicographic order of
// stored values matches chronological order.
const timeLayout = "2006-01-02T15:04:05.000000000Z07:00"

func formatTime(t time.Time) string {
	return t.UTC().Format(timeLayout)
}

func parseTime(s string) (time.Time, error) {
	return time.Parse(time.RFC3339Nano, s)
}

// SnippetStore defines the interface for snippet storage operations.
// Reads are owner-scoped: a snippet owned by a different owner behaves
// identically to one that does not exist.
type SnippetStore interface {
	// Insert persists a new snippet.
	Insert(ctx context.Context, s *Snippet) error
	// GetByID returns the snippet with the given id owned by ownerID.
	// Returns ErrNotFound for absent and foreign ids alike.
	GetByID(ctx context.Context, ownerID, id string) (*Snippet, error)
	// GetByIDs returns the owner's snippets among the given ids, in no
	// particular order. Missing and foreign ids are silently dropped.
	GetByIDs(ctx context.Context, ownerID string, ids []string) ([]Snippet, error)
	// ListByOwner returns the owner's snippets ordered by creation time
	// descending, optionally filtered by book id.
	ListByOwner(ctx context.Context, ownerID, bookID string) ([]Snippet, error)
	// ListRecent returns up to limit of the owner's most recently created snippets.
	ListRecent(ctx context.Context, ownerID string, limit int) ([]Snippet, error)
	// UpdateText replaces the text of the snippet with the given id.
	UpdateText(ctx context.Context, id, text string) error
	// Delete removes the snippet with the given id.
	Delete(ctx context.Context, id string) error
}

// SnippetRepo provides methods for snippet operations.
// It implements the SnippetStore interface.
type SnippetRepo struct {
	db *sql.DB
}

// NewSnippetRepo creates a new SnippetRepo.
func NewSnippetRepo(db *sql.DB) *SnippetRepo {
	return &SnippetRepo{db: db}
}

// Insert persists a new snippet.
func (r *SnippetRepo) Insert(ctx context.Context, s *Snippet) error {
	var page any
	if s.PageNumber != nil {
		page = *s.PageNumber
	}
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO snippets (id, owner_id, book_id, text, page_number, created_at)
		 VALUES (?, ?, ?, ?, ?, ?)`,
		s.ID, s.OwnerID, s.BookID, s.Text, page, formatTime(s.CreatedAt),
	)
	if err != nil {
		return fmt.Errorf("failed to insert snippet: %w", err)
	}
	return nil
}

// GetByID returns the snippet with the given id owned by ownerID.
func (r *SnippetRepo) GetByID(ctx context.Context, ownerID, id string) (*Snippet, error) {
	row := r.db.QueryRowContext(ctx,
		`SELECT id, owner_id, book_id, text, page_number, created_at
		 FROM snippets WHERE id = ? AND owner_id = ?`,
		id, ownerID,
	)
	s, err := scanSnippet(row)
	if err == sql.ErrNoRows {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to query snippet: %w", err)
	}
	return s, nil
}

// GetByIDs returns the owner's snippets among the given ids.
func (r *SnippetRepo) GetByIDs(ctx context.Context, ownerID string, ids []string) ([]Snippet, error) {
	if len(ids) == 0 {
		return []Snippet{}, nil
	}

	placeholders := strings.Repeat("?,", len(ids))
	placeholders = placeholders[:len(placeholders)-1]
	args := make([]any, 0, len(ids)+1)
	for _, id := range ids {
		args = append(args, id)
	}
	args = append(args, ownerID)

	rows, err := r.db.QueryContext(ctx,
		`SELECT id, owner_id, book_id, text, page_number, created_at
		 FROM snippets WHERE id IN (`+placeholders+`) AND owner_id = ?`,
		args...,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to query snippets: %w", err)
	}
	defer func() {
		_ = rows.Close()
	}()

	return collectSnippets(rows)
}

// ListByOwner returns the owner's snippets ordered by creation time descending.
func (r *SnippetRepo) ListByOwner(ctx context.Context, ownerID, bookID string) ([]Snippet, error) {
	query := `SELECT id, owner_id, book_id, text, page_number, created_at
		 FROM snippets WHERE owner_id = ?`
	args := []any{ownerID}
	if bookID != "" {
		query += ` AND book_id = ?`
		args = append(args, bookID)
	}
	query += ` ORDER BY created_at DESC`

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list snippets: %w", err)
	}
	defer func() {
		_ = rows.Close()
	}()

	return collectSnippets(rows)
}

// ListRecent returns up to limit of the owner's most recently created snippets.
func (r *SnippetRepo) ListRecent(ctx context.Context, ownerID string, limit int) ([]Snippet, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT id, owner_id, book_id, text, page_number, created_at
		 FROM snippets WHERE owner_id = ? ORDER BY created_at DESC LIMIT ?`,
		ownerID, limit,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list recent snippets: %w", err)
	}
	defer func() {
		_ = rows.Close()
	}()

	return collectSnippets(rows)
}

// UpdateText replaces the text of the snippet with the given id.
func (r *SnippetRepo) UpdateText(ctx context.Context, id, text string) error {
	_, err := r.db.ExecContext(ctx, `UPDATE snippets SET text = ? WHERE id = ?`, text, id)
	if err != nil {
		return fmt.Errorf("failed to update snippet: %w", err)
	}
	return nil
}

// Delete removes the snippet with the given id.
func (r *SnippetRepo) Delete(ctx context.Context, id string) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM snippets WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("failed to delete snippet: %w", err)
	}
	return nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanSnippet(row rowScanner) (*Snippet, error) {
	var s Snippet
	var page sql.NullInt64
	var createdAt string
	if err := row.Scan(&s.ID, &s.OwnerID, &s.BookID, &s.Text, &page, &createdAt); err != nil {
		return nil, err
	}
	if page.Valid {
		n := int(page.Int64)
		s.PageNumber = &n
	}
	t, err := parseTime(createdAt)
	if err != nil {
		return nil, fmt.Errorf("failed to parse created_at timestamp: %w", err)
	}
	s.CreatedAt = t
	return &s, nil
}

func collectSnippets(rows *sql.Rows) ([]Snippet, error) {
	snippets := []Snippet{}
	for rows.Next() {
		s, err := scanSnippet(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan snippet: %w", err)
		}
		snippets = append(snippets, *s)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read snippets: %w", err)
	}
	return snippets, nil
}
