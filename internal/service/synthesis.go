package service

//go:generate go run go.uber.org/mock/mockgen@latest -destination=mocks/mock_synthesis_service.go -package=mocks -mock_names=SynthesisService=MockSynthesisService lumen/internal/service SynthesisService

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"strings"

	"lumen/internal/contextutil"
	"lumen/internal/storage"
)

// contextDelimiter separates snippet blocks in the synthesis prompt.
const contextDelimiter = "\n\n---\n\n"

// emptySummaryText is returned when the owner has no snippets to summarize.
const emptySummaryText = "No snippets available to summarize."

// fallbackSummaryText is returned when the model reply yields no parseable summary.
const fallbackSummaryText = "Unable to generate summary."

// Connection links a snippet to a related passage in a different book.
type Connection struct {
	Snippet      string `json:"snippet"`
	RelatedBook  string `json:"relatedBook"`
	RelatedQuote string `json:"relatedQuote"`
}

// Summary is the synthesized cross-book result. It is never persisted; every
// call recomputes from current snippet state.
type Summary struct {
	ExecutiveSummary     []string     `json:"executiveSummary"`
	CognitiveConnections []Connection `json:"cognitiveConnections"`
}

// SummarizeParams narrow the snippet set fed to the model.
// When both are given, BookID is applied as a post-filter over the
// SnippetIDs result.
type SummarizeParams struct {
	BookID     string
	SnippetIDs []string
}

// SynthesisService aggregates snippet text and synthesizes cross-book
// insights through a generative model.
type SynthesisService interface {
	Summarize(ctx context.Context, ownerID string, params SummarizeParams) (*Summary, error)
}

// synthesisService implements SynthesisService.
type synthesisService struct {
	snippets  SnippetService
	books     storage.BookStore
	completer Completer
	logger    *slog.Logger
}

// NewSynthesisService creates a new SynthesisService.
func NewSynthesisService(snippets SnippetService, books storage.BookStore, completer Completer) SynthesisService {
	return &synthesisService{
		snippets:  snippets,
		books:     books,
		completer: completer,
		logger:    slog.Default(),
	}
}

// Summarize fetches the requested snippets, builds a prompt context, and
// parses the model's reply into the result contract. Malformed model output
// degrades to placeholder fields; it never fails the call.
func (s *synthesisService) Summarize(ctx context.Context, ownerID string, params SummarizeParams) (*Summary, error) {
	logger := contextutil.LoggerFromContext(ctx)

	var snippets []storage.Snippet
	var err error
	if len(params.SnippetIDs) > 0 {
		snippets, err = s.snippets.GetMany(ctx, ownerID, params.SnippetIDs)
	} else {
		snippets, err = s.snippets.List(ctx, ownerID, params.BookID)
	}
	if err != nil {
		return nil, WrapError(err, "failed to fetch snippets")
	}

	if params.BookID != "" {
		filtered := snippets[:0]
		for _, snippet := range snippets {
			if snippet.BookID == params.BookID {
				filtered = append(filtered, snippet)
			}
		}
		snippets = filtered
	}

	if len(snippets) == 0 {
		return &Summary{
			ExecutiveSummary:     []string{emptySummaryText},
			CognitiveConnections: []Connection{},
		}, nil
	}

	books, err := s.bookMap(ctx, ownerID, snippets)
	if err != nil {
		return nil, WrapError(err, "failed to fetch books")
	}

	prompt := buildSynthesisPrompt(snippets, books)
	logger.DebugContext(ctx, "synthesis prompt built", "snippets", len(snippets), "prompt_length", len(prompt))

	reply, err := s.completer.Complete(ctx, prompt)
	if err != nil {
		return nil, WrapError(err, "failed to generate summary")
	}

	summary := parseSummaryReply(reply)
	if len(summary.ExecutiveSummary) == 1 && summary.ExecutiveSummary[0] == fallbackSummaryText {
		logger.WarnContext(ctx, "model reply yielded no parseable summary", "reply_length", len(reply))
	}

	logger.InfoContext(ctx, "synthesis completed",
		"snippets", len(snippets),
		"summary_points", len(summary.ExecutiveSummary),
		"connections", len(summary.CognitiveConnections),
	)
	return summary, nil
}

// bookMap resolves the distinct book ids referenced by the snippets.
// Unresolvable books are simply absent from the map; synthesis falls back to
// the raw id.
func (s *synthesisService) bookMap(ctx context.Context, ownerID string, snippets []storage.Snippet) (map[string]storage.Book, error) {
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
		return nil, err
	}
	byID := make(map[string]storage.Book, len(books))
	for _, b := range books {
		byID[b.ID] = b
	}
	return byID, nil
}

// buildSynthesisPrompt concatenates "[source]\n{text}" blocks and wraps them
// in the fixed instruction template.
func buildSynthesisPrompt(snippets []storage.Snippet, books map[string]storage.Book) string {
	blocks := make([]string, 0, len(snippets))
	for _, snippet := range snippets {
		src := snippet.BookID
		if book, ok := books[snippet.BookID]; ok {
			src = fmt.Sprintf("%s by %s", book.Title, book.Author)
		}
		blocks = append(blocks, fmt.Sprintf("[%s]\n%s", src, snippet.Text))
	}
	context := strings.Join(blocks, contextDelimiter)

	return `You are Lumen's "Mirror" synthesis engine. The user has captured the following snippets from their physical books. Provide:

1. **3-Point Executive Summary**: Three bullet points synthesizing the key themes from the user's specific captured content. Focus on what resonated with them based on what they chose to save.

2. **Cognitive Connections**: For each snippet, identify if it relates to another snippet from a different book. Format as: "This quote from [Book A] connects to [Book B]: [brief connection]". If no clear cross-book connection exists, omit it.

User's captured snippets:
---
` + context + `
---

Respond in JSON:
{
  "executiveSummary": ["point1", "point2", "point3"],
  "cognitiveConnections": [
    { "snippet": "excerpt from snippet", "relatedBook": "Book Title", "relatedQuote": "excerpt" }
  ]
}`
}

// parseSummaryReply extracts the first brace-delimited JSON object from the
// model's free-form reply. Model output may wrap the object in prose or code
// fences; a reply with no parseable object degrades to placeholder fields.
func parseSummaryReply(reply string) *Summary {
	summary := &Summary{
		ExecutiveSummary:     []string{fallbackSummaryText},
		CognitiveConnections: []Connection{},
	}

	start := strings.Index(reply, "{")
	end := strings.LastIndex(reply, "}")
	if start == -1 || end <= start {
		return summary
	}

	var parsed Summary
	if err := json.Unmarshal([]byte(reply[start:end+1]), &parsed); err != nil {
		return summary
	}

	if len(parsed.ExecutiveSummary) > 0 {
		summary.ExecutiveSummary = parsed.ExecutiveSummary
	}
	if parsed.CognitiveConnections != nil {
		summary.CognitiveConnections = parsed.CognitiveConnections
	}
	return summary
}
