package llm

import (
	"context"
	"testing"
)

func TestEmbedUnconfiguredReturnsZeroVector(t *testing.T) {
	client, err := NewEmbeddingsClient(context.Background(), "", "text-embedding-004", 768)
	if err != nil {
		t.Fatalf("NewEmbeddingsClient() error = %v", err)
	}

	vec, err := client.Embed(context.Background(), "some snippet text")
	if err != nil {
		t.Fatalf("Embed() error = %v", err)
	}
	if len(vec) != 768 {
		t.Fatalf("Embed() returned %d values, want 768", len(vec))
	}
	for i, v := range vec {
		if v != 0 {
			t.Fatalf("Embed() value at %d = %f, want 0 in degraded mode", i, v)
		}
	}
}

func TestCompleteUnconfiguredFails(t *testing.T) {
	client, err := NewClient(context.Background(), "", "gemini-2.5-flash")
	if err != nil {
		t.Fatalf("NewClient() error = %v", err)
	}

	if _, err := client.Complete(context.Background(), "hello"); err == nil {
		t.Fatal("Complete() expected error when unconfigured")
	}
	if _, err := client.ExtractText(context.Background(), []byte{0xff}); err == nil {
		t.Fatal("ExtractText() expected error when unconfigured")
	}
}

func TestEmbeddingsClientDimension(t *testing.T) {
	client, err := NewEmbeddingsClient(context.Background(), "", "text-embedding-004", 512)
	if err != nil {
		t.Fatalf("NewEmbeddingsClient() error = %v", err)
	}
	if got := client.Dimension(); got != 512 {
		t.Errorf("Dimension() = %d, want 512", got)
	}
}
