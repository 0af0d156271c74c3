package vectorstore

//go:generate go run go.uber.org/mock/mockgen@latest -destination=mocks/mock_vector_store.go -package=mocks lumen/internal/vectorstore VectorStore

import "context"

// Point represents a vector point with metadata.
// For snippet points the id is the snippet id, so the index entry is always
// re-derivable from the authoritative record.
type Point struct {
	ID   string
	Vec  []float32
	Meta map[string]any
}

// SearchResult represents a search result from vector search.
type SearchResult struct {
	PointID string
	Score   float32
	Meta    map[string]any
}

// VectorStore defines the interface for vector storage operations.
// The index is a derived, eventually-consistent mirror of the record store;
// it has no independent authority over snippet content.
type VectorStore interface {
	// Upsert inserts or updates points in the collection.
	Upsert(ctx context.Context, collection string, points []Point) error

	// Search returns the k nearest neighbors restricted to the given owner.
	Search(ctx context.Context, collection string, query []float32, k int, ownerID string) ([]SearchResult, error)

	// Delete removes points by their IDs.
	Delete(ctx context.Context, collection string, ids []string) error

	// EnsureCollection creates the collection if it does not exist and
	// validates the vector size if it does.
	EnsureCollection(ctx context.Context, collection string, vectorSize int) error
}
