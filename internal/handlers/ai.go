package handlers

import (
	"encoding/json"
	"net/http"

	"lumen/internal/contextutil"
	"lumen/internal/service"
)

// AIHandler handles HTTP requests for synthesis and speech.
type AIHandler struct {
	synthesis service.SynthesisService
	speech    service.SpeechService
}

// NewAIHandler creates a new AIHandler.
func NewAIHandler(synthesis service.SynthesisService, speech service.SpeechService) *AIHandler {
	return &AIHandler{synthesis: synthesis, speech: speech}
}

// SummarizeRequest represents the HTTP request payload for summarization.
type SummarizeRequest struct {
	BookID     string   `json:"bookId"`
	SnippetIDs []string `json:"snippetIds"`
}

// SpeechRequest represents the HTTP request payload for speech synthesis.
type SpeechRequest struct {
	Text       string   `json:"text"`
	Source     string   `json:"source"`
	BookID     string   `json:"bookId"`
	SnippetIDs []string `json:"snippetIds"`
	Voice      string   `json:"voice"`
}

// Summarize handles POST /api/ai/summarize.
func (h *AIHandler) Summarize(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req SummarizeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	summary, err := h.synthesis.Summarize(ctx, contextutil.OwnerFromContext(ctx), service.SummarizeParams{
		BookID:     req.BookID,
		SnippetIDs: req.SnippetIDs,
	})
	if err != nil {
		handleServiceError(w, ctx, err, "Failed to generate summary")
		return
	}
	writeJSON(w, http.StatusOK, summary)
}

// Speech handles POST /api/ai/tts.
func (h *AIHandler) Speech(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req SpeechRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	result, err := h.speech.Synthesize(ctx, contextutil.OwnerFromContext(ctx), service.SynthesizeSpeechParams{
		Text:       req.Text,
		Source:     req.Source,
		BookID:     req.BookID,
		SnippetIDs: req.SnippetIDs,
		Voice:      req.Voice,
	})
	if err != nil {
		handleServiceError(w, ctx, err, "Failed to synthesize speech")
		return
	}
	writeJSON(w, http.StatusOK, result)
}
