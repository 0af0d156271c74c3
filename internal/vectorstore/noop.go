package vectorstore

import (
	"context"

	"lumen/internal/contextutil"
)

// Noop is the degraded-mode VectorStore used when no vector index is
// configured. Writes are dropped and searches return no results; callers see
// reduced semantic recall rather than errors.
type Noop struct{}

// NewNoop creates a no-op vector store.
func NewNoop() *Noop {
	return &Noop{}
}

// Upsert drops the points.
func (n *Noop) Upsert(ctx context.Context, collection string, points []Point) error {
	contextutil.LoggerFromContext(ctx).DebugContext(ctx, "vector index not configured, dropping upsert", "count", len(points))
	return nil
}

// Search returns no results.
func (n *Noop) Search(ctx context.Context, collection string, query []float32, k int, ownerID string) ([]SearchResult, error) {
	return []SearchResult{}, nil
}

// Delete drops the ids.
func (n *Noop) Delete(ctx context.Context, collection string, ids []string) error {
	return nil
}

// EnsureCollection does nothing.
func (n *Noop) EnsureCollection(ctx context.Context, collection string, vectorSize int) error {
	return nil
}
