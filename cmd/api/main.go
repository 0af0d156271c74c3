package main

import (
	"context"
	"log"
	"log/slog"
	nethttp "net/http"
	"os"

	"lumen/internal/auth"
	"lumen/internal/blobstore"
	"lumen/internal/bookmeta"
	"lumen/internal/config"
	"lumen/internal/http"
	"lumen/internal/llm"
	"lumen/internal/service"
	"lumen/internal/storage"
	"lumen/internal/tts"
	"lumen/internal/vectorstore"
)

func main() {
	// Load configuration first (needed for log level)
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Configure structured logging with configurable level and format
	opts := &slog.HandlerOptions{
		Level: cfg.LogLevel,
	}
	var handler slog.Handler
	if cfg.LogFormat == "json" {
		handler = slog.NewJSONHandler(os.Stdout, opts)
	} else {
		handler = slog.NewTextHandler(os.Stdout, opts)
	}
	logger := slog.New(handler)
	slog.SetDefault(logger)
	slog.Debug("Logging configured", "level", cfg.LogLevel.String(), "format", cfg.LogFormat)

	// Initialize database
	db, err := storage.New(cfg.DBPath)
	if err != nil {
		log.Fatalf("Failed to open database: %v", err)
	}
	defer func() {
		_ = db.Close()
	}()

	if err := storage.Migrate(db); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}
	slog.Info("Database initialized", "path", cfg.DBPath)

	// Create repository instances
	folderRepo := storage.NewFolderRepo(db)
	bookRepo := storage.NewBookRepo(db)
	snippetRepo := storage.NewSnippetRepo(db)

	ctx := context.Background()

	// Initialize the vector store. Without QDRANT_URL the semantic path runs
	// degraded: index writes become no-ops and semantic results stay empty.
	var vectorStore vectorstore.VectorStore
	semanticAvailable := cfg.QdrantURL != ""
	if semanticAvailable {
		qdrantStore, err := vectorstore.NewQdrantStore(cfg.QdrantURL)
		if err != nil {
			log.Fatalf("Failed to create Qdrant client: %v", err)
		}
		if err := qdrantStore.EnsureCollection(ctx, cfg.QdrantCollection, cfg.EmbeddingDim); err != nil {
			log.Fatalf("Failed to ensure Qdrant collection: %v", err)
		}
		slog.Info("Qdrant collection ready", "collection", cfg.QdrantCollection, "vector_size", cfg.EmbeddingDim)
		vectorStore = qdrantStore
	} else {
		slog.Warn("QDRANT_URL not set, semantic search disabled")
		vectorStore = vectorstore.NewNoop()
	}

	// Create Gemini clients (external service layer). Both tolerate a
	// missing API key and degrade instead of failing at startup.
	llmClient, err := llm.NewClient(ctx, cfg.GeminiAPIKey, cfg.GeminiModel)
	if err != nil {
		log.Fatalf("Failed to create Gemini client: %v", err)
	}
	embedder, err := llm.NewEmbeddingsClient(ctx, cfg.GeminiAPIKey, cfg.GeminiEmbeddingModel, cfg.EmbeddingDim)
	if err != nil {
		log.Fatalf("Failed to create embeddings client: %v", err)
	}
	if cfg.GeminiAPIKey == "" {
		slog.Warn("GEMINI_API_KEY not set, OCR, synthesis and embeddings degraded")
	}

	metadataClient := bookmeta.NewClient("")
	ttsClient := tts.NewClient("", cfg.TTSAPIKey)

	// Local blob store behind HMAC-signed URLs
	blobs := blobstore.NewLocal(cfg.BlobDir, cfg.BlobBaseURL, cfg.BlobSigningKey)
	slog.Info("Blob store initialized", "dir", cfg.BlobDir, "base_url", cfg.BlobBaseURL)

	// Token verification
	var verifier auth.Verifier
	if cfg.AuthDisabled {
		slog.Warn("Auth disabled, all requests run as the dev owner", "owner", cfg.DevOwnerID)
		verifier = &auth.Static{OwnerID: cfg.DevOwnerID}
	} else {
		verifier = auth.NewRemote(cfg.AuthVerifyURL)
	}

	// Create services
	folderService := service.NewFolderService(folderRepo)
	bookService := service.NewBookService(bookRepo, metadataClient, blobs, llmClient)
	snippetService := service.NewSnippetService(snippetRepo, llmClient, embedder, vectorStore, cfg.QdrantCollection)
	searchService := service.NewSearchService(snippetRepo, embedder, vectorStore, cfg.QdrantCollection)
	synthesisService := service.NewSynthesisService(snippetService, bookRepo, llmClient)
	speechService := service.NewSpeechService(snippetService, synthesisService, ttsClient, blobs)
	exportService := service.NewExportService(snippetService, bookRepo)

	// Create router with dependencies
	deps := &http.Deps{
		DB:                db,
		Verifier:          verifier,
		Folders:           folderService,
		Books:             bookService,
		Snippets:          snippetService,
		Search:            searchService,
		Synthesis:         synthesisService,
		Speech:            speechService,
		Export:            exportService,
		BlobHandler:       blobs.Handler(),
		SemanticAvailable: semanticAvailable,
	}
	router := http.NewRouter(deps)

	// Start API server
	addr := ":" + cfg.APIPort
	slog.Info("Starting API server", "addr", addr)
	if err := nethttp.ListenAndServe(addr, router); err != nil {
		log.Fatalf("API server failed to start: %v", err)
	}
}
