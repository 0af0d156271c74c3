package storage

//go:generate go run go.uber.org/mock/mockgen@latest -destination=mocks/mock_folder_store.go -package=mocks lumen/internal/storage FolderStore

import (
	"context"
	"database/sql"
	"fmt"
)

// FolderStore defines the interface for folder storage operations.
type FolderStore interface {
	// Insert persists a new folder.
	Insert(ctx context.Context, f *Folder) error
	// GetByID returns the folder with the given id owned by ownerID.
	// Returns ErrNotFound for absent and foreign ids alike.
	GetByID(ctx context.Context, ownerID, id string) (*Folder, error)
	// ListByOwner returns the owner's folders ordered by creation time descending.
	ListByOwner(ctx context.Context, ownerID string) ([]Folder, error)
}

// FolderRepo provides methods for folder operations.
// It implements the FolderStore interface.
type FolderRepo struct {
	db *sql.DB
}

// NewFolderRepo creates a new FolderRepo.
func NewFolderRepo(db *sql.DB) *FolderRepo {
	return &FolderRepo{db: db}
}

// Insert persists a new folder.
func (r *FolderRepo) Insert(ctx context.Context, f *Folder) error {
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO folders (id, owner_id, name, created_at) VALUES (?, ?, ?, ?)`,
		f.ID, f.OwnerID, f.Name, formatTime(f.CreatedAt),
	)
	if err != nil {
		return fmt.Errorf("failed to insert folder: %w", err)
	}
	return nil
}

// GetByID returns the folder with the given id owned by ownerID.
func (r *FolderRepo) GetByID(ctx context.Context, ownerID, id string) (*Folder, error) {
	var f Folder
	var createdAt string
	err := r.db.QueryRowContext(ctx,
		`SELECT id, owner_id, name, created_at FROM folders WHERE id = ? AND owner_id = ?`,
		id, ownerID,
	).Scan(&f.ID, &f.OwnerID, &f.Name, &createdAt)
	if err == sql.ErrNoRows {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to query folder: %w", err)
	}
	t, err := parseTime(createdAt)
	if err != nil {
		return nil, fmt.Errorf("failed to parse created_at timestamp: %w", err)
	}
	f.CreatedAt = t
	return &f, nil
}

// ListByOwner returns the owner's folders ordered by creation time descending.
func (r *FolderRepo) ListByOwner(ctx context.Context, ownerID string) ([]Folder, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT id, owner_id, name, created_at FROM folders WHERE owner_id = ? ORDER BY created_at DESC`,
		ownerID,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list folders: %w", err)
	}
	defer func() {
		_ = rows.Close()
	}()

	folders := []Folder{}
	for rows.Next() {
		var f Folder
		var createdAt string
		if err := rows.Scan(&f.ID, &f.OwnerID, &f.Name, &createdAt); err != nil {
			return nil, fmt.Errorf("failed to scan folder: %w", err)
		}
		t, err := parseTime(createdAt)
		if err != nil {
			return nil, fmt.Errorf("failed to parse created_at timestamp: %w", err)
		}
		f.CreatedAt = t
		folders = append(folders, f)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read folders: %w", err)
	}
	return folders, nil
}
