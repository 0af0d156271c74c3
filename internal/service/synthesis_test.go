package service_test

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"go.uber.org/mock/gomock"

	"lumen/internal/service"
	"lumen/internal/service/mocks"
	"lumen/internal/storage"
)

func TestSynthesisService_Summarize(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	snippets := mocks.NewMockSnippetService(ctrl)
	completer := mocks.NewMockCompleter(ctrl)
	books := storage.NewBookRepo(newTestDB(t))

	err := books.Insert(context.Background(), &storage.Book{
		ID: "book-1", OwnerID: "owner-a", Title: "Antifragile", Author: "Nassim Taleb", CreatedAt: time.Now(),
	})
	if err != nil {
		t.Fatalf("Insert() error = %v", err)
	}

	snippets.EXPECT().
		List(gomock.Any(), "owner-a", "").
		Return([]storage.Snippet{
			{ID: "snip-1", OwnerID: "owner-a", BookID: "book-1", Text: "Wind extinguishes a candle and energizes fire."},
			{ID: "snip-2", OwnerID: "owner-a", BookID: "book-unknown", Text: "Unattributed wisdom."},
		}, nil)

	var prompt string
	completer.EXPECT().
		Complete(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, p string) (string, error) {
			prompt = p
			return `Here is the summary you asked for:
{"executiveSummary": ["a", "b", "c"], "cognitiveConnections": [{"snippet": "Wind...", "relatedBook": "Other", "relatedQuote": "..."}]}
Hope that helps!`, nil
		})

	svc := service.NewSynthesisService(snippets, books, completer)

	got, err := svc.Summarize(context.Background(), "owner-a", service.SummarizeParams{})
	if err != nil {
		t.Fatalf("Summarize() error = %v", err)
	}

	// Prose around the JSON object is tolerated.
	if len(got.ExecutiveSummary) != 3 || got.ExecutiveSummary[0] != "a" {
		t.Errorf("Summarize() ExecutiveSummary = %v", got.ExecutiveSummary)
	}
	if len(got.CognitiveConnections) != 1 || got.CognitiveConnections[0].RelatedBook != "Other" {
		t.Errorf("Summarize() CognitiveConnections = %v", got.CognitiveConnections)
	}

	// Resolvable books appear as "Title by Author"; the rest keep the raw id.
	if !strings.Contains(prompt, "[Antifragile by Nassim Taleb]") {
		t.Errorf("prompt missing resolved attribution:\n%s", prompt)
	}
	if !strings.Contains(prompt, "[book-unknown]") {
		t.Errorf("prompt missing raw-id attribution:\n%s", prompt)
	}
}

func TestSynthesisService_Summarize_NoSnippets(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	snippets := mocks.NewMockSnippetService(ctrl)
	completer := mocks.NewMockCompleter(ctrl)
	books := storage.NewBookRepo(newTestDB(t))

	snippets.EXPECT().
		List(gomock.Any(), "owner-a", "").
		Return([]storage.Snippet{}, nil)

	// No model call happens for an empty snippet set.
	svc := service.NewSynthesisService(snippets, books, completer)

	got, err := svc.Summarize(context.Background(), "owner-a", service.SummarizeParams{})
	if err != nil {
		t.Fatalf("Summarize() error = %v", err)
	}
	if len(got.ExecutiveSummary) != 1 || got.ExecutiveSummary[0] != "No snippets available to summarize." {
		t.Errorf("Summarize() = %v, want placeholder summary", got.ExecutiveSummary)
	}
	if len(got.CognitiveConnections) != 0 {
		t.Errorf("Summarize() CognitiveConnections = %v, want empty", got.CognitiveConnections)
	}
}

func TestSynthesisService_Summarize_MalformedReply(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	snippets := mocks.NewMockSnippetService(ctrl)
	completer := mocks.NewMockCompleter(ctrl)
	books := storage.NewBookRepo(newTestDB(t))

	tests := []struct {
		name  string
		reply string
	}{
		{name: "no braces at all", reply: "I cannot produce JSON today."},
		{name: "broken json", reply: `{"executiveSummary": [unquoted]}`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			snippets.EXPECT().
				List(gomock.Any(), "owner-a", "").
				Return([]storage.Snippet{
					{ID: "snip-1", OwnerID: "owner-a", BookID: "book-1", Text: "something"},
				}, nil)
			completer.EXPECT().
				Complete(gomock.Any(), gomock.Any()).
				Return(tt.reply, nil)

			svc := service.NewSynthesisService(snippets, books, completer)

			// Malformed model output degrades, it never errors.
			got, err := svc.Summarize(context.Background(), "owner-a", service.SummarizeParams{})
			if err != nil {
				t.Fatalf("Summarize() error = %v", err)
			}
			if len(got.ExecutiveSummary) != 1 || got.ExecutiveSummary[0] != "Unable to generate summary." {
				t.Errorf("Summarize() = %v, want fallback summary", got.ExecutiveSummary)
			}
		})
	}
}

func TestSynthesisService_Summarize_BookFilterOverIDs(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	snippets := mocks.NewMockSnippetService(ctrl)
	completer := mocks.NewMockCompleter(ctrl)
	books := storage.NewBookRepo(newTestDB(t))

	// Ids win for fetching; the book id still post-filters the result.
	snippets.EXPECT().
		GetMany(gomock.Any(), "owner-a", []string{"snip-1", "snip-2"}).
		Return([]storage.Snippet{
			{ID: "snip-1", OwnerID: "owner-a", BookID: "book-1", Text: "kept"},
			{ID: "snip-2", OwnerID: "owner-a", BookID: "book-2", Text: "filtered out"},
		}, nil)

	var prompt string
	completer.EXPECT().
		Complete(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, p string) (string, error) {
			prompt = p
			return `{"executiveSummary": ["x"]}`, nil
		})

	svc := service.NewSynthesisService(snippets, books, completer)

	_, err := svc.Summarize(context.Background(), "owner-a", service.SummarizeParams{
		BookID:     "book-1",
		SnippetIDs: []string{"snip-1", "snip-2"},
	})
	if err != nil {
		t.Fatalf("Summarize() error = %v", err)
	}
	if !strings.Contains(prompt, "kept") || strings.Contains(prompt, "filtered out") {
		t.Errorf("prompt did not respect the book filter:\n%s", prompt)
	}
}

func TestSynthesisService_Summarize_ModelFailure(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	snippets := mocks.NewMockSnippetService(ctrl)
	completer := mocks.NewMockCompleter(ctrl)
	books := storage.NewBookRepo(newTestDB(t))

	snippets.EXPECT().
		List(gomock.Any(), "owner-a", "").
		Return([]storage.Snippet{
			{ID: "snip-1", OwnerID: "owner-a", BookID: "book-1", Text: "something"},
		}, nil)
	completer.EXPECT().
		Complete(gomock.Any(), gomock.Any()).
		Return("", errors.New("model unavailable"))

	svc := service.NewSynthesisService(snippets, books, completer)

	if _, err := svc.Summarize(context.Background(), "owner-a", service.SummarizeParams{}); err == nil {
		t.Error("Summarize() error = nil, want error when the model call fails")
	}
}
