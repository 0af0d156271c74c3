package handlers

import (
	"net/http"
	"strconv"

	"lumen/internal/contextutil"
	"lumen/internal/service"
)

// SearchHandler handles HTTP requests for hybrid search.
type SearchHandler struct {
	search service.SearchService
}

// NewSearchHandler creates a new SearchHandler.
func NewSearchHandler(search service.SearchService) *SearchHandler {
	return &SearchHandler{search: search}
}

// Search handles GET /api/search?q=...&limit=N.
func (h *SearchHandler) Search(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	limit := 0
	if limitStr := r.URL.Query().Get("limit"); limitStr != "" {
		n, err := strconv.Atoi(limitStr)
		if err != nil {
			writeError(w, http.StatusBadRequest, "limit must be an integer")
			return
		}
		limit = n
	}

	results, err := h.search.Search(ctx, contextutil.OwnerFromContext(ctx), r.URL.Query().Get("q"), limit)
	if err != nil {
		handleServiceError(w, ctx, err, "Failed to search snippets")
		return
	}
	writeJSON(w, http.StatusOK, results)
}
