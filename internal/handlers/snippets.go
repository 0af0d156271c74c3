package handlers

import (
	"encoding/json"
	"io"
	"net/http"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"

	"lumen/internal/contextutil"
	"lumen/internal/service"
)

// SnippetHandler handles HTTP requests for snippets.
type SnippetHandler struct {
	snippets service.SnippetService
}

// NewSnippetHandler creates a new SnippetHandler.
func NewSnippetHandler(snippets service.SnippetService) *SnippetHandler {
	return &SnippetHandler{snippets: snippets}
}

// CreateSnippetRequest represents the JSON request payload for snippet creation.
type CreateSnippetRequest struct {
	BookID     string `json:"bookId"`
	Text       string `json:"text"`
	PageNumber *int   `json:"pageNumber"`
}

// UpdateSnippetRequest represents the request payload for snippet updates.
type UpdateSnippetRequest struct {
	Text string `json:"text"`
}

// Create handles POST /api/snippets. Accepts either a JSON body with literal
// text or a multipart form with an "image" field for OCR capture.
func (h *SnippetHandler) Create(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var params service.CreateSnippetParams
	contentType := r.Header.Get("Content-Type")

	if strings.HasPrefix(contentType, "multipart/form-data") {
		if err := r.ParseMultipartForm(maxUploadSize); err != nil {
			writeError(w, http.StatusBadRequest, "Invalid multipart form")
			return
		}
		params.BookID = r.FormValue("bookId")
		params.Text = r.FormValue("text")
		if pageStr := r.FormValue("pageNumber"); pageStr != "" {
			page, err := strconv.Atoi(pageStr)
			if err != nil {
				writeError(w, http.StatusBadRequest, "pageNumber must be an integer")
				return
			}
			params.PageNumber = &page
		}

		if file, _, err := r.FormFile("image"); err == nil {
			defer func() {
				_ = file.Close()
			}()
			image, err := io.ReadAll(io.LimitReader(file, maxUploadSize))
			if err != nil {
				writeError(w, http.StatusBadRequest, "Failed to read image")
				return
			}
			params.Image = image
		}
	} else {
		var req CreateSnippetRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeError(w, http.StatusBadRequest, "Invalid request body")
			return
		}
		params.BookID = req.BookID
		params.Text = req.Text
		params.PageNumber = req.PageNumber
	}

	snippet, err := h.snippets.Create(ctx, contextutil.OwnerFromContext(ctx), params)
	if err != nil {
		handleServiceError(w, ctx, err, "Failed to create snippet")
		return
	}
	writeJSON(w, http.StatusCreated, snippet)
}

// List handles GET /api/snippets with an optional bookId filter.
func (h *SnippetHandler) List(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	snippets, err := h.snippets.List(ctx, contextutil.OwnerFromContext(ctx), r.URL.Query().Get("bookId"))
	if err != nil {
		handleServiceError(w, ctx, err, "Failed to list snippets")
		return
	}
	writeJSON(w, http.StatusOK, snippets)
}

// Update handles PATCH /api/snippets/{id}.
func (h *SnippetHandler) Update(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req UpdateSnippetRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	snippet, err := h.snippets.Update(ctx, contextutil.OwnerFromContext(ctx), chi.URLParam(r, "id"), req.Text)
	if err != nil {
		handleServiceError(w, ctx, err, "Failed to update snippet")
		return
	}
	writeJSON(w, http.StatusOK, snippet)
}

// Delete handles DELETE /api/snippets/{id}. Deleting an absent snippet
// returns 404; a successful delete returns 204.
func (h *SnippetHandler) Delete(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	deleted, err := h.snippets.Delete(ctx, contextutil.OwnerFromContext(ctx), chi.URLParam(r, "id"))
	if err != nil {
		handleServiceError(w, ctx, err, "Failed to delete snippet")
		return
	}
	if !deleted {
		writeError(w, http.StatusNotFound, "Resource not found")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
