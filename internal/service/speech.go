package service

//go:generate go run go.uber.org/mock/mockgen@latest -destination=mocks/mock_speech_service.go -package=mocks -mock_names=SpeechService=MockSpeechService lumen/internal/service SpeechService

import (
	"context"
	"fmt"
	"strings"
	"time"

	"lumen/internal/blobstore"
	"lumen/internal/contextutil"
	"lumen/internal/tts"
)

// maxSpeechChars bounds the text sent to the speech collaborator.
const maxSpeechChars = 5000

// audioURLTTL is the validity window of signed audio URLs.
const audioURLTTL = 24 * time.Hour

// voiceMap maps narrator names to synthesis voices.
var voiceMap = map[string]tts.Voice{
	"academic":       {Name: "en-US-Neural2-D", LanguageCode: "en-US"},
	"conversational": {Name: "en-US-Neural2-J", LanguageCode: "en-US"},
	"calming":        {Name: "en-US-Neural2-F", LanguageCode: "en-US"},
}

// SynthesizeSpeechParams select the text and voice for audio synthesis.
type SynthesizeSpeechParams struct {
	// Text takes precedence when set.
	Text string
	// Source is "summary" or "snippets"; empty means all owner snippets.
	Source string
	// BookID narrows the snippet set.
	BookID string
	// SnippetIDs narrows the snippet set (first 10 used).
	SnippetIDs []string
	// Voice is "academic", "conversational", or "calming".
	Voice string
}

// SpeechResult is a synthesized audio artifact.
type SpeechResult struct {
	AudioURL string `json:"audioUrl"`
}

// SpeechService converts summaries or snippets to narrated audio.
type SpeechService interface {
	Synthesize(ctx context.Context, ownerID string, params SynthesizeSpeechParams) (*SpeechResult, error)
}

// speechService implements SpeechService.
type speechService struct {
	snippets    SnippetService
	synthesis   SynthesisService
	synthesizer SpeechSynthesizer
	blobs       blobstore.Store
}

// NewSpeechService creates a new SpeechService.
func NewSpeechService(snippets SnippetService, synthesis SynthesisService, synthesizer SpeechSynthesizer, blobs blobstore.Store) SpeechService {
	return &speechService{
		snippets:    snippets,
		synthesis:   synthesis,
		synthesizer: synthesizer,
		blobs:       blobs,
	}
}

// Synthesize resolves the narration text, synthesizes MP3 audio, and stores
// it behind a 24-hour signed URL.
func (s *speechService) Synthesize(ctx context.Context, ownerID string, params SynthesizeSpeechParams) (*SpeechResult, error) {
	logger := contextutil.LoggerFromContext(ctx)

	text, err := s.resolveText(ctx, ownerID, params)
	if err != nil {
		return nil, err
	}
	if strings.TrimSpace(text) == "" {
		return nil, invalidInput("no text available to synthesize")
	}
	if len(text) > maxSpeechChars {
		text = text[:maxSpeechChars]
	}

	voice, ok := voiceMap[params.Voice]
	if !ok {
		voice = voiceMap["conversational"]
	}

	audio, err := s.synthesizer.Synthesize(ctx, text, voice)
	if err != nil {
		return nil, WrapError(err, "speech synthesis failed")
	}

	path := fmt.Sprintf("audio/%s/%d.mp3", ownerID, time.Now().UnixMilli())
	signedURL, err := s.blobs.Put(ctx, path, audio, "audio/mpeg", audioURLTTL)
	if err != nil {
		return nil, WrapError(err, "failed to store audio")
	}

	logger.InfoContext(ctx, "speech synthesized", "text_length", len(text), "audio_bytes", len(audio), "voice", voice.Name)
	return &SpeechResult{AudioURL: signedURL}, nil
}

// resolveText picks the narration source: literal text, the synthesized
// summary, selected snippets, or all of the owner's snippets.
func (s *speechService) resolveText(ctx context.Context, ownerID string, params SynthesizeSpeechParams) (string, error) {
	if params.Text != "" {
		return params.Text, nil
	}

	switch {
	case params.Source == "summary":
		summary, err := s.synthesis.Summarize(ctx, ownerID, SummarizeParams{
			BookID:     params.BookID,
			SnippetIDs: params.SnippetIDs,
		})
		if err != nil {
			return "", WrapError(err, "failed to summarize")
		}
		parts := make([]string, 0, len(summary.ExecutiveSummary)+len(summary.CognitiveConnections))
		parts = append(parts, summary.ExecutiveSummary...)
		for _, c := range summary.CognitiveConnections {
			parts = append(parts, fmt.Sprintf("%s relates to %s: %s", c.Snippet, c.RelatedBook, c.RelatedQuote))
		}
		return strings.Join(parts, ". "), nil

	case params.Source == "snippets" && len(params.SnippetIDs) > 0:
		snippets, err := s.snippets.GetMany(ctx, ownerID, params.SnippetIDs)
		if err != nil {
			return "", WrapError(err, "failed to fetch snippets")
		}
		texts := make([]string, 0, len(snippets))
		for _, snippet := range snippets {
			texts = append(texts, snippet.Text)
		}
		return strings.Join(texts, ". "), nil

	default:
		snippets, err := s.snippets.List(ctx, ownerID, params.BookID)
		if err != nil {
			return "", WrapError(err, "failed to list snippets")
		}
		texts := make([]string, 0, len(snippets))
		for _, snippet := range snippets {
			texts = append(texts, snippet.Text)
		}
		return strings.Join(texts, ". "), nil
	}
}
