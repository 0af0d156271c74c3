package service

//go:generate go run go.uber.org/mock/mockgen@latest -destination=mocks/mock_search_service.go -package=mocks -mock_names=SearchService=MockSearchService lumen/internal/service SearchService

import (
	"context"
	"log/slog"
	"sort"
	"strings"
	"sync"

	"lumen/internal/contextutil"
	"lumen/internal/storage"
	"lumen/internal/vectorstore"
)

const (
	defaultSearchLimit = 20
	maxSearchLimit     = 100

	// keywordScanLimit bounds the keyword path to the owner's most recent
	// snippets. A deliberate scale limit: this path is not meant to be
	// exhaustive over arbitrarily large libraries.
	keywordScanLimit = 200
)

// RankedHit is one scored snippet in a search result list.
type RankedHit struct {
	ID     string  `json:"id"`
	Text   string  `json:"text"`
	BookID string  `json:"bookId"`
	Score  float64 `json:"score"`
}

// SearchResults holds the two independently-ranked result lists.
//
// The lists use incomparable score scales (substring-match count vs. cosine
// similarity) and are intentionally not fused into one ranking; a
// presentation layer can weight them contextually.
type SearchResults struct {
	Keyword  []RankedHit `json:"keyword"`
	Semantic []RankedHit `json:"semantic"`
}

// SearchService runs hybrid keyword + semantic search over the owner's snippets.
type SearchService interface {
	Search(ctx context.Context, ownerID, query string, limit int) (*SearchResults, error)
}

// searchService implements SearchService.
type searchService struct {
	snippets   storage.SnippetStore
	embedder   Embedder
	vectors    vectorstore.VectorStore
	collection string
	logger     *slog.Logger
}

// NewSearchService creates a new SearchService.
func NewSearchService(
	snippets storage.SnippetStore,
	embedder Embedder,
	vectors vectorstore.VectorStore,
	collection string,
) SearchService {
	return &searchService{
		snippets:   snippets,
		embedder:   embedder,
		vectors:    vectors,
		collection: collection,
		logger:     slog.Default(),
	}
}

// Search runs the keyword and semantic sub-searches concurrently and joins
// both before returning. limit defaults to 20 and is clamped to [1,100].
func (s *searchService) Search(ctx context.Context, ownerID, query string, limit int) (*SearchResults, error) {
	logger := contextutil.LoggerFromContext(ctx)

	query = strings.TrimSpace(query)
	if query == "" {
		return nil, invalidInput("query required")
	}

	if limit == 0 {
		limit = defaultSearchLimit
	}
	if limit < 1 {
		limit = 1
	}
	if limit > maxSearchLimit {
		limit = maxSearchLimit
	}

	var (
		wg          sync.WaitGroup
		keyword     []RankedHit
		semantic    []RankedHit
		keywordErr  error
		semanticErr error
	)

	wg.Add(2)
	go func() {
		defer wg.Done()
		keyword, keywordErr = s.keywordSearch(ctx, ownerID, query, limit)
	}()
	go func() {
		defer wg.Done()
		semantic, semanticErr = s.semanticSearch(ctx, ownerID, query, limit)
	}()
	wg.Wait()

	if keywordErr != nil {
		return nil, WrapError(keywordErr, "keyword search failed")
	}
	if semanticErr != nil {
		return nil, WrapError(semanticErr, "semantic search failed")
	}

	logger.InfoContext(ctx, "hybrid search completed",
		"query_length", len(query),
		"limit", limit,
		"keyword_hits", len(keyword),
		"semantic_hits", len(semantic),
	)
	return &SearchResults{Keyword: keyword, Semantic: semantic}, nil
}

// keywordSearch scans the owner's recent snippets and scores each by the
// number of distinct query tokens occurring as a case-insensitive substring.
func (s *searchService) keywordSearch(ctx context.Context, ownerID, query string, limit int) ([]RankedHit, error) {
	candidates, err := s.snippets.ListRecent(ctx, ownerID, keywordScanLimit)
	if err != nil {
		return nil, err
	}

	tokens := distinctTokens(query)

	hits := make([]RankedHit, 0, len(candidates))
	for _, snippet := range candidates {
		lower := strings.ToLower(snippet.Text)
		score := 0
		for _, tok := range tokens {
			if strings.Contains(lower, tok) {
				score++
			}
		}
		if score == 0 {
			continue
		}
		hits = append(hits, RankedHit{
			ID:     snippet.ID,
			Text:   snippet.Text,
			BookID: snippet.BookID,
			Score:  float64(score),
		})
	}

	// Stable: ties keep the store's recency order.
	sort.SliceStable(hits, func(i, j int) bool {
		return hits[i].Score > hits[j].Score
	})

	if len(hits) > limit {
		hits = hits[:limit]
	}
	return hits, nil
}

// semanticSearch embeds the query, asks the vector index for the nearest
// neighbors, then re-resolves matches against the record store. The index's
// cached text preview is never returned; matches whose id no longer resolves
// to an owned snippet are silently dropped.
func (s *searchService) semanticSearch(ctx context.Context, ownerID, query string, limit int) ([]RankedHit, error) {
	vec, err := s.embedder.Embed(ctx, query)
	if err != nil {
		return nil, err
	}

	matches, err := s.vectors.Search(ctx, s.collection, vec, limit, ownerID)
	if err != nil {
		return nil, err
	}
	if len(matches) == 0 {
		return []RankedHit{}, nil
	}

	ids := make([]string, 0, len(matches))
	for _, m := range matches {
		ids = append(ids, m.PointID)
	}

	snippets, err := s.snippets.GetByIDs(ctx, ownerID, ids)
	if err != nil {
		return nil, err
	}
	byID := make(map[string]storage.Snippet, len(snippets))
	for _, snippet := range snippets {
		byID[snippet.ID] = snippet
	}

	hits := make([]RankedHit, 0, len(matches))
	for _, m := range matches {
		snippet, ok := byID[m.PointID]
		if !ok {
			continue // deleted or reassigned since indexing
		}
		hits = append(hits, RankedHit{
			ID:     snippet.ID,
			Text:   snippet.Text,
			BookID: snippet.BookID,
			Score:  float64(m.Score),
		})
	}
	return hits, nil
}

// distinctTokens lower-cases and splits the query on whitespace, dropping
// duplicates while preserving first-seen order.
func distinctTokens(query string) []string {
	fields := strings.Fields(strings.ToLower(query))
	seen := make(map[string]bool, len(fields))
	tokens := make([]string, 0, len(fields))
	for _, f := range fields {
		if seen[f] {
			continue
		}
		seen[f] = true
		tokens = append(tokens, f)
	}
	return tokens
}
