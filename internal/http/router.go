package http

import (
	"database/sql"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"lumen/internal/auth"
	"lumen/internal/handlers"
	"lumen/internal/service"
)

// Deps holds dependencies for the HTTP router.
type Deps struct {
	DB       *sql.DB
	Verifier auth.Verifier

	Folders   service.FolderService
	Books     service.BookService
	Snippets  service.SnippetService
	Search    service.SearchService
	Synthesis service.SynthesisService
	Speech    service.SpeechService
	Export    service.ExportService

	// BlobHandler serves signed blob URLs (covers, audio).
	BlobHandler http.Handler

	// SemanticAvailable reflects whether a real vector index is configured.
	SemanticAvailable bool
}

// NewRouter creates a new HTTP router with the provided dependencies.
func NewRouter(deps *Deps) http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.Recoverer)
	r.Use(LoggerMiddleware)
	r.Use(CORS)

	folderHandler := handlers.NewFolderHandler(deps.Folders)
	bookHandler := handlers.NewBookHandler(deps.Books)
	snippetHandler := handlers.NewSnippetHandler(deps.Snippets)
	searchHandler := handlers.NewSearchHandler(deps.Search)
	aiHandler := handlers.NewAIHandler(deps.Synthesis, deps.Speech)
	exportHandler := handlers.NewExportHandler(deps.Export)

	r.Method(http.MethodGet, "/health", handlers.NewHealthHandler(deps.DB, deps.SemanticAvailable))

	// Signed URLs carry their own authorization; no bearer token needed.
	r.Mount("/blobs", http.StripPrefix("/blobs", deps.BlobHandler))

	r.Route("/api", func(r chi.Router) {
		r.Use(Auth(deps.Verifier))

		r.Route("/folders", func(r chi.Router) {
			r.Post("/", folderHandler.Create)
			r.Get("/", folderHandler.List)
			r.Get("/{id}", folderHandler.Get)
		})

		r.Route("/books", func(r chi.Router) {
			r.Post("/", bookHandler.Create)
			r.Post("/cover", bookHandler.CreateFromCover)
			r.Post("/lookup", bookHandler.Lookup)
			r.Get("/", bookHandler.List)
			r.Get("/{id}", bookHandler.Get)
		})

		r.Route("/snippets", func(r chi.Router) {
			r.Post("/", snippetHandler.Create)
			r.Get("/", snippetHandler.List)
			r.Patch("/{id}", snippetHandler.Update)
			r.Delete("/{id}", snippetHandler.Delete)
		})

		r.Get("/search", searchHandler.Search)
		r.Get("/export", exportHandler.Export)

		r.Route("/ai", func(r chi.Router) {
			r.Post("/summarize", aiHandler.Summarize)
			r.Post("/tts", aiHandler.Speech)
		})
	})

	return r
}
