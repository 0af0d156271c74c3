package llm

import (
	"context"
	"fmt"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"
)

// EmbeddingsClient is a client for the Gemini embeddings API.
//
// When constructed without an API key it operates in degraded mode: Embed
// returns an all-zero vector of the configured dimension instead of an
// error, so snippet ingestion and search keep working with zero semantic
// recall.
type EmbeddingsClient struct {
	client    *genai.Client
	model     string
	dimension int
}

// NewEmbeddingsClient creates a new embeddings client.
// dimension is the expected output vector size (EMBEDDING_DIM config) and is
// validated against every embedding returned by the API.
func NewEmbeddingsClient(ctx context.Context, apiKey, model string, dimension int) (*EmbeddingsClient, error) {
	c := &EmbeddingsClient{model: model, dimension: dimension}
	if apiKey == "" {
		return c, nil
	}
	client, err := genai.NewClient(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("failed to create genai client: %w", err)
	}
	c.client = client
	return c, nil
}

// Embed generates an embedding vector for the given text.
func (c *EmbeddingsClient) Embed(ctx context.Context, text string) ([]float32, error) {
	if c.client == nil {
		return make([]float32, c.dimension), nil
	}

	em := c.client.EmbeddingModel(c.model)
	res, err := em.EmbedContent(ctx, genai.Text(text))
	if err != nil {
		return nil, fmt.Errorf("failed to embed text: %w", err)
	}
	if res.Embedding == nil {
		return nil, fmt.Errorf("no embedding returned")
	}
	if len(res.Embedding.Values) != c.dimension {
		return nil, fmt.Errorf("embedding has size %d, expected %d", len(res.Embedding.Values), c.dimension)
	}
	return res.Embedding.Values, nil
}

// Dimension returns the configured vector size.
func (c *EmbeddingsClient) Dimension() int {
	return c.dimension
}

// Close releases the underlying connection.
func (c *EmbeddingsClient) Close() error {
	if c.client == nil {
		return nil
	}
	return c.client.Close()
}
