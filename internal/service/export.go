package service

//go:generate go run go.uber.org/mock/mockgen@latest -destination=mocks/mock_export_service.go -package=mocks -mock_names=ExportService=MockExportService lumen/internal/service ExportService

import (
	"context"
	"fmt"
	"strings"

	"lumen/internal/contextutil"
	"lumen/internal/storage"
)

// Dialect selects an export text format.
type Dialect string

const (
	DialectMarkdown Dialect = "markdown"
	DialectNotion   Dialect = "notion"
	DialectObsidian Dialect = "obsidian"
)

// emptyExportText is the placeholder for an export with no snippets, so
// callers can distinguish "nothing to export" from a transport error.
const emptyExportText = "(No snippets to export)"

// ValidDialect reports whether d is a supported export dialect.
func ValidDialect(d Dialect) bool {
	switch d {
	case DialectMarkdown, DialectNotion, DialectObsidian:
		return true
	}
	return false
}

// ExportResult is a rendered export document.
type ExportResult struct {
	Content string `json:"content"`
	Format  string `json:"format"`
}

// ExportService renders the owner's snippets into second-brain text formats.
type ExportService interface {
	Export(ctx context.Context, ownerID string, dialect Dialect, bookID string) (*ExportResult, error)
}

// exportService implements ExportService.
type exportService struct {
	snippets SnippetService
	books    storage.BookStore
}

// NewExportService creates a new ExportService.
func NewExportService(snippets SnippetService, books storage.BookStore) ExportService {
	return &exportService{snippets: snippets, books: books}
}

// Export fetches the owner's snippets (optionally one book's) and formats them.
func (s *exportService) Export(ctx context.Context, ownerID string, dialect Dialect, bookID string) (*ExportResult, error) {
	if !ValidDialect(dialect) {
		return nil, invalidInput("format must be one of: markdown, notion, obsidian")
	}

	snippets, err := s.snippets.List(ctx, ownerID, bookID)
	if err != nil {
		return nil, WrapError(err, "failed to list snippets")
	}

	seen := make(map[string]bool)
	ids := make([]string, 0)
	for _, snippet := range snippets {
		if !seen[snippet.BookID] {
			seen[snippet.BookID] = true
			ids = append(ids, snippet.BookID)
		}
	}
	books, err := s.books.GetByIDs(ctx, ownerID, ids)
	if err != nil {
		return nil, WrapError(err, "failed to fetch books")
	}
	byID := make(map[string]storage.Book, len(books))
	for _, b := range books {
		byID[b.ID] = b
	}

	content := FormatSnippets(snippets, byID, dialect)
	contextutil.LoggerFromContext(ctx).InfoContext(ctx, "export rendered", "format", string(dialect), "snippets", len(snippets), "bytes", len(content))
	return &ExportResult{Content: content, Format: string(dialect)}, nil
}

// FormatSnippets renders snippets in caller-supplied order into the given
// dialect. Pure and deterministic: the same input always produces
// byte-identical output.
func FormatSnippets(snippets []storage.Snippet, books map[string]storage.Book, dialect Dialect) string {
	lines := make([]string, 0, len(snippets)*3)
	for _, s := range snippets {
		meta := s.BookID
		if book, ok := books[s.BookID]; ok {
			meta = fmt.Sprintf("%s — %s", book.Title, book.Author)
		}
		page := ""
		if s.PageNumber != nil {
			page = fmt.Sprintf(" (p. %d)", *s.PageNumber)
		}

		switch dialect {
		case DialectMarkdown, DialectObsidian:
			lines = append(lines,
				fmt.Sprintf("> %s", s.Text),
				fmt.Sprintf("> — *%s%s*", meta, page),
				"",
			)
		case DialectNotion:
			lines = append(lines,
				fmt.Sprintf("\"%s\" — %s%s", s.Text, meta, page),
				"",
			)
		}
	}

	out := strings.TrimSpace(strings.Join(lines, "\n"))
	if out == "" {
		return emptyExportText
	}
	return out
}
