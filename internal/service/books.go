package service

//go:generate go run go.uber.org/mock/mockgen@latest -destination=mocks/mock_book_service.go -package=mocks -mock_names=BookService=MockBookService lumen/internal/service BookService

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"

	"lumen/internal/blobstore"
	"lumen/internal/bookmeta"
	"lumen/internal/contextutil"
	"lumen/internal/storage"
)

// coverURLTTL is the validity window of signed cover image URLs.
const coverURLTTL = 7 * 24 * time.Hour

// CreateBookParams are the inputs for explicit book creation.
type CreateBookParams struct {
	Title    string
	Author   string
	ISBN     string
	CoverURL string
	FolderID string
}

// BookService manages the owner's books.
type BookService interface {
	// Create persists a book. An unset or "default" folder id normalizes to
	// the default pseudo-folder.
	Create(ctx context.Context, ownerID string, params CreateBookParams) (*storage.Book, error)
	// CreateFromCover stores the cover image, attempts a metadata lookup,
	// and persists a book, falling back to placeholder metadata.
	CreateFromCover(ctx context.Context, ownerID string, image []byte, folderID string) (*storage.Book, error)
	// LookupAndCreate resolves metadata by ISBN or title/author and
	// persists a book. Returns ErrNotFound when the catalog has no match.
	LookupAndCreate(ctx context.Context, ownerID string, params LookupBookParams) (*storage.Book, error)
	// List returns the owner's books. folderID: nil lists all books;
	// "default" lists unassigned books; any other value filters exactly.
	List(ctx context.Context, ownerID string, folderID *string) ([]storage.Book, error)
	// GetByID returns one owned book.
	GetByID(ctx context.Context, ownerID, id string) (*storage.Book, error)
}

// LookupBookParams identify a book for catalog lookup.
type LookupBookParams struct {
	ISBN     string
	Title    string
	Author   string
	FolderID string
}

// bookService implements BookService.
type bookService struct {
	books    storage.BookStore
	metadata MetadataClient
	blobs    blobstore.Store
	ocr      TextExtractor
	logger   *slog.Logger
}

// NewBookService creates a new BookService.
func NewBookService(books storage.BookStore, metadata MetadataClient, blobs blobstore.Store, ocr TextExtractor) BookService {
	return &bookService{
		books:    books,
		metadata: metadata,
		blobs:    blobs,
		ocr:      ocr,
		logger:   slog.Default(),
	}
}

// Create persists a book.
func (s *bookService) Create(ctx context.Context, ownerID string, params CreateBookParams) (*storage.Book, error) {
	if params.Title == "" {
		return nil, invalidInput("title required")
	}

	folderID := params.FolderID
	if folderID == "" || folderID == storage.DefaultFolderID {
		folderID = storage.DefaultFolderID
	}

	book := &storage.Book{
		ID:        uuid.New().String(),
		OwnerID:   ownerID,
		Title:     params.Title,
		Author:    params.Author,
		ISBN:      params.ISBN,
		CoverURL:  params.CoverURL,
		FolderID:  folderID,
		CreatedAt: time.Now(),
	}
	if err := s.books.Insert(ctx, book); err != nil {
		return nil, WrapError(err, "failed to create book")
	}

	contextutil.LoggerFromContext(ctx).InfoContext(ctx, "book created", "book_id", book.ID, "folder_id", book.FolderID)
	return book, nil
}

// CreateFromCover stores the cover image under a signed URL and tries to
// resolve metadata by reading the cover text. Lookup failures fall back to
// placeholder metadata; only the blob write and the record write are fatal.
func (s *bookService) CreateFromCover(ctx context.Context, ownerID string, image []byte, folderID string) (*storage.Book, error) {
	logger := contextutil.LoggerFromContext(ctx)

	if len(image) == 0 {
		return nil, invalidInput("cover image required")
	}

	path := fmt.Sprintf("covers/%s/%d.jpg", ownerID, time.Now().UnixMilli())
	signedURL, err := s.blobs.Put(ctx, path, image, "image/jpeg", coverURLTTL)
	if err != nil {
		return nil, WrapError(err, "failed to store cover image")
	}

	meta := s.lookupFromCover(ctx, image)
	if meta == nil {
		logger.InfoContext(ctx, "cover metadata lookup failed, using placeholder")
		meta = &bookmeta.Metadata{Title: "Unknown Book", Author: "Unknown Author"}
	}
	if meta.CoverURL == "" {
		meta.CoverURL = signedURL
	}

	return s.Create(ctx, ownerID, CreateBookParams{
		Title:    meta.Title,
		Author:   meta.Author,
		ISBN:     meta.ISBN,
		CoverURL: meta.CoverURL,
		FolderID: folderID,
	})
}

// lookupFromCover OCRs the cover and queries the catalog with the first
// legible line. Best-effort: any failure returns nil.
func (s *bookService) lookupFromCover(ctx context.Context, image []byte) *bookmeta.Metadata {
	logger := contextutil.LoggerFromContext(ctx)

	text, err := s.ocr.ExtractText(ctx, image)
	if err != nil {
		logger.WarnContext(ctx, "cover ocr failed", "error", err)
		return nil
	}
	lines := strings.Split(strings.TrimSpace(text), "\n")
	if len(lines) == 0 || strings.TrimSpace(lines[0]) == "" {
		return nil
	}

	meta, err := s.metadata.Lookup(ctx, bookmeta.LookupParams{Title: strings.TrimSpace(lines[0])})
	if err != nil {
		logger.WarnContext(ctx, "cover metadata lookup failed", "error", err)
		return nil
	}
	return meta
}

// LookupAndCreate resolves metadata from the catalog and persists a book.
func (s *bookService) LookupAndCreate(ctx context.Context, ownerID string, params LookupBookParams) (*storage.Book, error) {
	if params.ISBN == "" && params.Title == "" && params.Author == "" {
		return nil, invalidInput("isbn or title/author required")
	}

	meta, err := s.metadata.Lookup(ctx, bookmeta.LookupParams{
		ISBN:   params.ISBN,
		Title:  params.Title,
		Author: params.Author,
	})
	if err != nil {
		return nil, WrapError(err, "failed to look up book")
	}
	if meta == nil {
		return nil, ErrNotFound
	}

	return s.Create(ctx, ownerID, CreateBookParams{
		Title:    meta.Title,
		Author:   meta.Author,
		ISBN:     meta.ISBN,
		CoverURL: meta.CoverURL,
		FolderID: params.FolderID,
	})
}

// List returns the owner's books with folder filtering.
func (s *bookService) List(ctx context.Context, ownerID string, folderID *string) ([]storage.Book, error) {
	books, err := s.books.ListByOwner(ctx, ownerID)
	if err != nil {
		return nil, WrapError(err, "failed to list books")
	}
	if folderID == nil {
		return books, nil
	}

	filtered := make([]storage.Book, 0, len(books))
	for _, b := range books {
		if *folderID == storage.DefaultFolderID {
			if b.FolderID == "" || b.FolderID == storage.DefaultFolderID {
				filtered = append(filtered, b)
			}
		} else if b.FolderID == *folderID {
			filtered = append(filtered, b)
		}
	}
	return filtered, nil
}

// GetByID returns one owned book.
func (s *bookService) GetByID(ctx context.Context, ownerID, id string) (*storage.Book, error) {
	book, err := s.books.GetByID(ctx, ownerID, id)
	if err == storage.ErrNotFound {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, WrapError(err, "failed to fetch book")
	}
	return book, nil
}
