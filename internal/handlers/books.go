package handlers

import (
	"encoding/json"
	"io"
	"net/http"

	"github.com/go-chi/chi/v5"

	"lumen/internal/contextutil"
	"lumen/internal/service"
)

// maxUploadSize bounds multipart uploads (10 MiB).
const maxUploadSize = 10 << 20

// BookHandler handles HTTP requests for books.
type BookHandler struct {
	books service.BookService
}

// NewBookHandler creates a new BookHandler.
func NewBookHandler(books service.BookService) *BookHandler {
	return &BookHandler{books: books}
}

// CreateBookRequest represents the HTTP request payload for book creation.
type CreateBookRequest struct {
	Title    string `json:"title"`
	Author   string `json:"author"`
	ISBN     string `json:"isbn"`
	CoverURL string `json:"coverUrl"`
	FolderID string `json:"folderId"`
}

// LookupBookRequest represents the HTTP request payload for catalog lookup.
type LookupBookRequest struct {
	ISBN     string `json:"isbn"`
	Title    string `json:"title"`
	Author   string `json:"author"`
	FolderID string `json:"folderId"`
}

// Create handles POST /api/books.
func (h *BookHandler) Create(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req CreateBookRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	book, err := h.books.Create(ctx, contextutil.OwnerFromContext(ctx), service.CreateBookParams{
		Title:    req.Title,
		Author:   req.Author,
		ISBN:     req.ISBN,
		CoverURL: req.CoverURL,
		FolderID: req.FolderID,
	})
	if err != nil {
		handleServiceError(w, ctx, err, "Failed to create book")
		return
	}
	writeJSON(w, http.StatusCreated, book)
}

// CreateFromCover handles POST /api/books/cover. The cover image arrives as
// the multipart field "cover".
func (h *BookHandler) CreateFromCover(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	if err := r.ParseMultipartForm(maxUploadSize); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid multipart form")
		return
	}
	file, _, err := r.FormFile("cover")
	if err != nil {
		writeError(w, http.StatusBadRequest, "Missing cover image")
		return
	}
	defer func() {
		_ = file.Close()
	}()

	image, err := io.ReadAll(io.LimitReader(file, maxUploadSize))
	if err != nil {
		writeError(w, http.StatusBadRequest, "Failed to read cover image")
		return
	}

	book, err := h.books.CreateFromCover(ctx, contextutil.OwnerFromContext(ctx), image, r.FormValue("folderId"))
	if err != nil {
		handleServiceError(w, ctx, err, "Failed to create book from cover")
		return
	}
	writeJSON(w, http.StatusCreated, book)
}

// Lookup handles POST /api/books/lookup.
func (h *BookHandler) Lookup(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req LookupBookRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	book, err := h.books.LookupAndCreate(ctx, contextutil.OwnerFromContext(ctx), service.LookupBookParams{
		ISBN:     req.ISBN,
		Title:    req.Title,
		Author:   req.Author,
		FolderID: req.FolderID,
	})
	if err != nil {
		handleServiceError(w, ctx, err, "Failed to look up book")
		return
	}
	writeJSON(w, http.StatusCreated, book)
}

// List handles GET /api/books. An absent folderId query parameter lists all
// of the owner's books.
func (h *BookHandler) List(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var folderID *string
	if v := r.URL.Query().Get("folderId"); v != "" {
		folderID = &v
	}

	books, err := h.books.List(ctx, contextutil.OwnerFromContext(ctx), folderID)
	if err != nil {
		handleServiceError(w, ctx, err, "Failed to list books")
		return
	}
	writeJSON(w, http.StatusOK, books)
}

// Get handles GET /api/books/{id}.
func (h *BookHandler) Get(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	book, err := h.books.GetByID(ctx, contextutil.OwnerFromContext(ctx), chi.URLParam(r, "id"))
	if err != nil {
		handleServiceError(w, ctx, err, "Failed to fetch book")
		return
	}
	writeJSON(w, http.StatusOK, book)
}
