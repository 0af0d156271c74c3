package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"lumen/internal/contextutil"
	"lumen/internal/service"
)

// FolderHandler handles HTTP requests for folders.
type FolderHandler struct {
	folders service.FolderService
}

// NewFolderHandler creates a new FolderHandler.
func NewFolderHandler(folders service.FolderService) *FolderHandler {
	return &FolderHandler{folders: folders}
}

// CreateFolderRequest represents the HTTP request payload for folder creation.
type CreateFolderRequest struct {
	Name string `json:"name"`
}

// Create handles POST /api/folders.
func (h *FolderHandler) Create(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req CreateFolderRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	folder, err := h.folders.Create(ctx, contextutil.OwnerFromContext(ctx), req.Name)
	if err != nil {
		handleServiceError(w, ctx, err, "Failed to create folder")
		return
	}
	writeJSON(w, http.StatusCreated, folder)
}

// List handles GET /api/folders.
func (h *FolderHandler) List(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	folders, err := h.folders.List(ctx, contextutil.OwnerFromContext(ctx))
	if err != nil {
		handleServiceError(w, ctx, err, "Failed to list folders")
		return
	}
	writeJSON(w, http.StatusOK, folders)
}

// Get handles GET /api/folders/{id}.
func (h *FolderHandler) Get(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	folder, err := h.folders.GetByID(ctx, contextutil.OwnerFromContext(ctx), chi.URLParam(r, "id"))
	if err != nil {
		handleServiceError(w, ctx, err, "Failed to fetch folder")
		return
	}
	writeJSON(w, http.StatusOK, folder)
}
