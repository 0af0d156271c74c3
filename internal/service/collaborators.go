package service

//go:generate go run go.uber.org/mock/mockgen@latest -destination=mocks/mock_collaborators.go -package=mocks lumen/internal/service Embedder,Completer,TextExtractor,SpeechSynthesizer,MetadataClient

import (
	"context"

	"lumen/internal/bookmeta"
	"lumen/internal/tts"
)

// Collaborator interfaces are defined from the service layer's perspective
// (consumer-first) so each external dependency is independently substitutable
// in tests.

// Embedder produces a fixed-length dense vector for a text string.
// Degraded mode (no credential) returns an all-zero vector, not an error.
type Embedder interface {
	Embed(ctx context.Context, text string) ([]float32, error)
}

// Completer sends a prompt to a generative model and returns the free-form
// reply. The reply is not guaranteed to be well-formed JSON.
type Completer interface {
	Complete(ctx context.Context, prompt string) (string, error)
}

// TextExtractor runs OCR over an image. "No text found" is an empty string,
// never an error.
type TextExtractor interface {
	ExtractText(ctx context.Context, image []byte) (string, error)
}

// SpeechSynthesizer converts text to audio bytes.
type SpeechSynthesizer interface {
	Synthesize(ctx context.Context, text string, voice tts.Voice) ([]byte, error)
}

// MetadataClient resolves book metadata from an external catalog.
// A nil result with nil error means no match.
type MetadataClient interface {
	Lookup(ctx context.Context, params bookmeta.LookupParams) (*bookmeta.Metadata, error)
}
