package config

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

// Config holds all configuration for the application.
type Config struct {
	APIPort   string
	DBPath    string
	LogLevel  slog.Level
	LogFormat string

	// QdrantURL is optional. When empty the semantic search path runs in
	// degraded mode (empty results, no-op index writes) instead of failing.
	QdrantURL        string
	QdrantCollection string

	// EmbeddingDim must match the output vector size of the embedding model.
	// Defaults to 768 (text-embedding-004). If the model changes, the Qdrant
	// collection must be recreated.
	EmbeddingDim int

	// GeminiAPIKey is optional. When absent, embeddings degrade to zero
	// vectors; synthesis and OCR report a collaborator error.
	GeminiAPIKey         string
	GeminiModel          string
	GeminiEmbeddingModel string

	TTSAPIKey string

	BlobDir        string
	BlobSigningKey string
	BlobBaseURL    string

	AuthDisabled  bool
	AuthVerifyURL string
	DevOwnerID    string
}

// Load reads configuration from environment variables and returns a Config struct.
// It applies defaults for optional fields and validates required fields.
// If a .env file exists in the current directory or project root, it will be loaded automatically.
// Environment variables already set take precedence over .env file values.
func Load() (*Config, error) {
	// Try to load .env file (ignore error if it doesn't exist)
	_ = godotenv.Load() // Try current directory

	// Try to find project root by looking for a .env up the tree
	wd, err := os.Getwd()
	if err == nil {
		dir := wd
		for i := 0; i < 5; i++ { // Limit search depth
			envPath := filepath.Join(dir, ".env")
			if _, err := os.Stat(envPath); err == nil {
				_ = godotenv.Load(envPath)
				break
			}
			parent := filepath.Dir(dir)
			if parent == dir {
				break // Reached filesystem root
			}
			dir = parent
		}
	}

	cfg := &Config{
		APIPort:              getEnv("API_PORT", "9000"),
		DBPath:               getEnv("DB_PATH", "./data/lumen.db"),
		LogFormat:            getEnv("LOG_FORMAT", "text"),
		QdrantURL:            getEnv("QDRANT_URL", ""),
		QdrantCollection:     getEnv("QDRANT_COLLECTION", "snippets"),
		GeminiAPIKey:         getEnv("GEMINI_API_KEY", ""),
		GeminiModel:          getEnv("GEMINI_MODEL", "gemini-2.5-flash"),
		GeminiEmbeddingModel: getEnv("GEMINI_EMBEDDING_MODEL", "text-embedding-004"),
		TTSAPIKey:            getEnv("TTS_API_KEY", ""),
		BlobDir:              getEnv("BLOB_DIR", "./data/blobs"),
		BlobSigningKey:       getEnv("BLOB_SIGNING_KEY", ""),
		BlobBaseURL:          getEnv("BLOB_BASE_URL", "http://localhost:9000/blobs"),
		AuthVerifyURL:        getEnv("AUTH_VERIFY_URL", ""),
		DevOwnerID:           getEnv("DEV_OWNER_ID", "dev-user"),
	}

	level, err := parseLogLevel(getEnv("LOG_LEVEL", "info"))
	if err != nil {
		return nil, err
	}
	cfg.LogLevel = level

	dimStr := getEnv("EMBEDDING_DIM", "768")
	dim, err := strconv.Atoi(dimStr)
	if err != nil {
		return nil, fmt.Errorf("EMBEDDING_DIM must be a valid integer: %w", err)
	}
	if dim <= 0 {
		return nil, fmt.Errorf("EMBEDDING_DIM must be greater than 0")
	}
	cfg.EmbeddingDim = dim

	cfg.AuthDisabled = getEnv("AUTH_DISABLED", "false") == "true"

	// Validate required fields
	if !cfg.AuthDisabled && cfg.AuthVerifyURL == "" {
		return nil, fmt.Errorf("AUTH_VERIFY_URL is required unless AUTH_DISABLED=true")
	}
	if cfg.BlobSigningKey == "" {
		return nil, fmt.Errorf("BLOB_SIGNING_KEY is required")
	}

	// Create data directories if they don't exist
	if err := os.MkdirAll(filepath.Dir(cfg.DBPath), 0755); err != nil {
		return nil, fmt.Errorf("failed to create data directory: %w", err)
	}
	if err := os.MkdirAll(cfg.BlobDir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create blob directory: %w", err)
	}

	return cfg, nil
}

// parseLogLevel converts a level name to a slog.Level.
func parseLogLevel(s string) (slog.Level, error) {
	switch strings.ToLower(s) {
	case "debug":
		return slog.LevelDebug, nil
	case "info":
		return slog.LevelInfo, nil
	case "warn", "warning":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	default:
		return 0, fmt.Errorf("invalid LOG_LEVEL %q", s)
	}
}

// getEnv gets an environment variable or returns a default value.
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
