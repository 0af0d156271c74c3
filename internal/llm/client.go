package llm

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"
)

// Client is a client for the Gemini text generation API.
type Client struct {
	client *genai.Client
	model  string
}

// NewClient creates a new Gemini client. When apiKey is empty the client is
// unconfigured: Complete and ExtractText return errors until a key is set.
func NewClient(ctx context.Context, apiKey, model string) (*Client, error) {
	c := &Client{model: model}
	if apiKey == "" {
		return c, nil
	}
	client, err := genai.NewClient(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("failed to create genai client: %w", err)
	}
	c.client = client
	return c, nil
}

// Complete sends a prompt to the model and returns the free-form reply.
// The reply is not guaranteed to be well-formed JSON even when the prompt
// demands it; callers must parse defensively.
func (c *Client) Complete(ctx context.Context, prompt string) (string, error) {
	if c.client == nil {
		return "", fmt.Errorf("gemini client not configured")
	}

	model := c.client.GenerativeModel(c.model)
	resp, err := model.GenerateContent(ctx, genai.Text(prompt))
	if err != nil {
		return "", fmt.Errorf("failed to generate content: %w", err)
	}

	return responseText(resp), nil
}

// ExtractText runs OCR over an image using the multimodal model.
// "No text found" is an empty string, never an error.
func (c *Client) ExtractText(ctx context.Context, image []byte) (string, error) {
	if c.client == nil {
		return "", fmt.Errorf("gemini client not configured")
	}

	model := c.client.GenerativeModel(c.model)
	resp, err := model.GenerateContent(ctx,
		genai.ImageData("jpeg", image),
		genai.Text("Transcribe all printed text visible in this image, exactly as written. "+
			"Respond with the transcribed text only, no commentary. "+
			"If the image contains no readable text, respond with an empty string."),
	)
	if err != nil {
		return "", fmt.Errorf("failed to extract text: %w", err)
	}

	return strings.TrimSpace(responseText(resp)), nil
}

// Close releases the underlying connection.
func (c *Client) Close() error {
	if c.client == nil {
		return nil
	}
	return c.client.Close()
}

// responseText concatenates the text parts of the first candidate.
func responseText(resp *genai.GenerateContentResponse) string {
	if resp == nil || len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil {
		return ""
	}
	var sb strings.Builder
	for _, part := range resp.Candidates[0].Content.Parts {
		if txt, ok := part.(genai.Text); ok {
			sb.WriteString(string(txt))
		}
	}
	return sb.String()
}
