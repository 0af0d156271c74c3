package handlers

import (
	"net/http"

	"lumen/internal/contextutil"
	"lumen/internal/service"
)

// ExportHandler handles HTTP requests for snippet exports.
type ExportHandler struct {
	export service.ExportService
}

// NewExportHandler creates a new ExportHandler.
func NewExportHandler(export service.ExportService) *ExportHandler {
	return &ExportHandler{export: export}
}

// Export handles GET /api/export?format=...&bookId=...
func (h *ExportHandler) Export(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	result, err := h.export.Export(ctx,
		contextutil.OwnerFromContext(ctx),
		service.Dialect(r.URL.Query().Get("format")),
		r.URL.Query().Get("bookId"),
	)
	if err != nil {
		handleServiceError(w, ctx, err, "Failed to export snippets")
		return
	}
	writeJSON(w, http.StatusOK, result)
}
