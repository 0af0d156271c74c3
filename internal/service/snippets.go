package service

//go:generate go run go.uber.org/mock/mockgen@latest -destination=mocks/mock_snippet_service.go -package=mocks -mock_names=SnippetService=MockSnippetService lumen/internal/service SnippetService

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"lumen/internal/contextutil"
	"lumen/internal/storage"
	"lumen/internal/vectorstore"
)

// maxPreviewLen bounds the cached text preview stored alongside a vector.
// The preview is never served to callers; search always re-resolves text
// against the record store.
const maxPreviewLen = 1000

// getManyLimit is the batch-fetch collaborator limit on id lookups.
const getManyLimit = 10

// CreateSnippetParams are the inputs for snippet creation. Exactly one of
// Text or Image must yield non-empty text.
type CreateSnippetParams struct {
	BookID     string
	Text       string
	Image      []byte
	PageNumber *int
}

// SnippetService provides snippet ingestion and retrieval.
//
// Writes follow a two-store protocol: the record store write is synchronous
// and authoritative, the vector index write is fire-and-forget. Read-your-own-
// write holds for the record store only; a search issued immediately after a
// mutation may not reflect it in the semantic index.
type SnippetService interface {
	// Create persists a new snippet from literal text or an OCR'd image.
	Create(ctx context.Context, ownerID string, params CreateSnippetParams) (*storage.Snippet, error)
	// List returns the owner's snippets, optionally filtered by book.
	List(ctx context.Context, ownerID, bookID string) ([]storage.Snippet, error)
	// GetMany returns the owner's snippets among the first 10 of the given ids.
	GetMany(ctx context.Context, ownerID string, ids []string) ([]storage.Snippet, error)
	// Update replaces a snippet's text and re-indexes it.
	Update(ctx context.Context, ownerID, id, text string) (*storage.Snippet, error)
	// Delete removes a snippet. Returns false when the id does not resolve
	// to a snippet owned by the caller.
	Delete(ctx context.Context, ownerID, id string) (bool, error)
}

// snippetService implements SnippetService.
type snippetService struct {
	snippets   storage.SnippetStore
	ocr        TextExtractor
	embedder   Embedder
	vectors    vectorstore.VectorStore
	collection string
	logger     *slog.Logger
}

// NewSnippetService creates a new SnippetService.
func NewSnippetService(
	snippets storage.SnippetStore,
	ocr TextExtractor,
	embedder Embedder,
	vectors vectorstore.VectorStore,
	collection string,
) SnippetService {
	return &snippetService{
		snippets:   snippets,
		ocr:        ocr,
		embedder:   embedder,
		vectors:    vectors,
		collection: collection,
		logger:     slog.Default(),
	}
}

// Create persists a new snippet from literal text or an OCR'd image.
func (s *snippetService) Create(ctx context.Context, ownerID string, params CreateSnippetParams) (*storage.Snippet, error) {
	logger := contextutil.LoggerFromContext(ctx)

	if params.BookID == "" {
		return nil, invalidInput("bookId required")
	}

	text := params.Text
	if text == "" && len(params.Image) > 0 {
		extracted, err := s.ocr.ExtractText(ctx, params.Image)
		if err != nil {
			logger.ErrorContext(ctx, "ocr failed", "error", err)
			return nil, WrapError(err, "failed to extract text")
		}
		text = extracted
	}
	// Covers both "no input given" and "OCR produced nothing".
	if text == "" {
		return nil, invalidInput("could not extract or receive text")
	}

	// The id is assigned before persistence so the indexing step needs no
	// read-after-write.
	snippet := &storage.Snippet{
		ID:         uuid.New().String(),
		OwnerID:    ownerID,
		BookID:     params.BookID,
		Text:       text,
		PageNumber: params.PageNumber,
		CreatedAt:  time.Now(),
	}

	if err := s.snippets.Insert(ctx, snippet); err != nil {
		return nil, WrapError(err, "failed to create snippet")
	}

	s.indexAsync(snippet.ID, ownerID, text)

	logger.InfoContext(ctx, "snippet created", "snippet_id", snippet.ID, "book_id", snippet.BookID, "text_length", len(text))
	return snippet, nil
}

// List returns the owner's snippets, optionally filtered by book.
func (s *snippetService) List(ctx context.Context, ownerID, bookID string) ([]storage.Snippet, error) {
	snippets, err := s.snippets.ListByOwner(ctx, ownerID, bookID)
	if err != nil {
		return nil, WrapError(err, "failed to list snippets")
	}
	return snippets, nil
}

// GetMany returns the owner's snippets among the first 10 of the given ids.
func (s *snippetService) GetMany(ctx context.Context, ownerID string, ids []string) ([]storage.Snippet, error) {
	if len(ids) == 0 {
		return []storage.Snippet{}, nil
	}
	if len(ids) > getManyLimit {
		ids = ids[:getManyLimit]
	}
	snippets, err := s.snippets.GetByIDs(ctx, ownerID, ids)
	if err != nil {
		return nil, WrapError(err, "failed to fetch snippets")
	}
	return snippets, nil
}

// Update replaces a snippet's text and re-indexes it.
// Ownership check precedes mutation; concurrent updates to the same id are
// last-write-wins.
func (s *snippetService) Update(ctx context.Context, ownerID, id, text string) (*storage.Snippet, error) {
	if text == "" {
		return nil, invalidInput("text required")
	}

	snippet, err := s.snippets.GetByID(ctx, ownerID, id)
	if err == storage.ErrNotFound {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, WrapError(err, "failed to fetch snippet")
	}

	if err := s.snippets.UpdateText(ctx, id, text); err != nil {
		return nil, WrapError(err, "failed to update snippet")
	}
	snippet.Text = text

	s.indexAsync(id, ownerID, text)

	contextutil.LoggerFromContext(ctx).InfoContext(ctx, "snippet updated", "snippet_id", id)
	return snippet, nil
}

// Delete removes a snippet and issues a fire-and-forget delete against the
// vector index.
func (s *snippetService) Delete(ctx context.Context, ownerID, id string) (bool, error) {
	_, err := s.snippets.GetByID(ctx, ownerID, id)
	if err == storage.ErrNotFound {
		return false, nil
	}
	if err != nil {
		return false, WrapError(err, "failed to fetch snippet")
	}

	if err := s.snippets.Delete(ctx, id); err != nil {
		return false, WrapError(err, "failed to delete snippet")
	}

	go func() {
		ctx := context.Background()
		if err := s.vectors.Delete(ctx, s.collection, []string{id}); err != nil {
			s.logger.Error("failed to delete snippet vector", "snippet_id", id, "error", err)
		}
	}()

	contextutil.LoggerFromContext(ctx).InfoContext(ctx, "snippet deleted", "snippet_id", id)
	return true, nil
}

// indexAsync embeds and upserts the snippet vector without awaiting
// completion. The goroutine runs on a fresh background context: index writes
// are detached from the request lifecycle and must not be cancelled by
// caller-scoped timeouts. Failures are logged and swallowed; they degrade
// semantic recall, never the triggering operation.
func (s *snippetService) indexAsync(id, ownerID, text string) {
	go func() {
		ctx := context.Background()

		vec, err := s.embedder.Embed(ctx, text)
		if err != nil {
			s.logger.Error("failed to embed snippet", "snippet_id", id, "error", err)
			return
		}

		preview := text
		if len(preview) > maxPreviewLen {
			preview = preview[:maxPreviewLen]
		}

		err = s.vectors.Upsert(ctx, s.collection, []vectorstore.Point{{
			ID:  id,
			Vec: vec,
			Meta: map[string]any{
				"owner_id": ownerID,
				"text":     preview,
			},
		}})
		if err != nil {
			s.logger.Error("failed to index snippet", "snippet_id", id, "error", err)
			return
		}

		s.logger.Debug("snippet indexed", "snippet_id", id)
	}()
}
