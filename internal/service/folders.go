package service

//go:generate go run go.uber.org/mock/mockgen@latest -destination=mocks/mock_folder_service.go -package=mocks -mock_names=FolderService=MockFolderService lumen/internal/service FolderService

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"

	"lumen/internal/contextutil"
	"lumen/internal/storage"
)

// FolderService manages the owner's folders. Folders are append-only: they
// are never mutated after creation and deletion is not supported.
type FolderService interface {
	// Create persists a folder. A blank name defaults to "Default".
	Create(ctx context.Context, ownerID, name string) (*storage.Folder, error)
	// List returns the owner's folders, newest first.
	List(ctx context.Context, ownerID string) ([]storage.Folder, error)
	// GetByID returns one owned folder.
	GetByID(ctx context.Context, ownerID, id string) (*storage.Folder, error)
}

// folderService implements FolderService.
type folderService struct {
	folders storage.FolderStore
}

// NewFolderService creates a new FolderService.
func NewFolderService(folders storage.FolderStore) FolderService {
	return &folderService{folders: folders}
}

// Create persists a folder.
func (s *folderService) Create(ctx context.Context, ownerID, name string) (*storage.Folder, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		name = "Default"
	}

	folder := &storage.Folder{
		ID:        uuid.New().String(),
		OwnerID:   ownerID,
		Name:      name,
		CreatedAt: time.Now(),
	}
	if err := s.folders.Insert(ctx, folder); err != nil {
		return nil, WrapError(err, "failed to create folder")
	}

	contextutil.LoggerFromContext(ctx).InfoContext(ctx, "folder created", "folder_id", folder.ID)
	return folder, nil
}

// List returns the owner's folders, newest first.
func (s *folderService) List(ctx context.Context, ownerID string) ([]storage.Folder, error) {
	folders, err := s.folders.ListByOwner(ctx, ownerID)
	if err != nil {
		return nil, WrapError(err, "failed to list folders")
	}
	return folders, nil
}

// GetByID returns one owned folder.
func (s *folderService) GetByID(ctx context.Context, ownerID, id string) (*storage.Folder, error) {
	folder, err := s.folders.GetByID(ctx, ownerID, id)
	if err == storage.ErrNotFound {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, WrapError(err, "failed to fetch folder")
	}
	return folder, nil
}
