package tts

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
)

// DefaultBaseURL is the Google Cloud Text-to-Speech REST endpoint.
const DefaultBaseURL = "https://texttospeech.googleapis.com/v1"

// Voice identifies a synthesis voice.
type Voice struct {
	Name         string
	LanguageCode string
}

// Client is a client for the Google Cloud Text-to-Speech API.
type Client struct {
	BaseURL string
	APIKey  string
	client  *http.Client
}

// NewClient creates a new text-to-speech client.
func NewClient(baseURL, apiKey string) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	return &Client{
		BaseURL: baseURL,
		APIKey:  apiKey,
		client:  http.DefaultClient,
	}
}

type synthesizeRequest struct {
	Input struct {
		Text string `json:"text"`
	} `json:"input"`
	Voice struct {
		LanguageCode string `json:"languageCode"`
		Name         string `json:"name"`
	} `json:"voice"`
	AudioConfig struct {
		AudioEncoding   string `json:"audioEncoding"`
		SampleRateHertz int    `json:"sampleRateHertz"`
	} `json:"audioConfig"`
}

type synthesizeResponse struct {
	AudioContent string `json:"audioContent"`
}

// Synthesize converts text to MP3 audio (24 kHz) using the given voice.
func (c *Client) Synthesize(ctx context.Context, text string, voice Voice) ([]byte, error) {
	if c.APIKey == "" {
		return nil, fmt.Errorf("tts client not configured")
	}

	var payload synthesizeRequest
	payload.Input.Text = text
	payload.Voice.LanguageCode = voice.LanguageCode
	payload.Voice.Name = voice.Name
	payload.AudioConfig.AudioEncoding = "MP3"
	payload.AudioConfig.SampleRateHertz = 24000

	body, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal request: %w", err)
	}

	url := fmt.Sprintf("%s/text:synthesize?key=%s", c.BaseURL, c.APIKey)
	req, err := http.NewRequestWithContext(ctx, "POST", url, bytes.NewBuffer(body))
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to send request: %w", err)
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	if resp.StatusCode != http.StatusOK {
		raw, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("bad status %d: %s", resp.StatusCode, string(raw))
	}

	var synthResp synthesizeResponse
	if err := json.NewDecoder(resp.Body).Decode(&synthResp); err != nil {
		return nil, fmt.Errorf("failed to decode response: %w", err)
	}
	if synthResp.AudioContent == "" {
		return nil, fmt.Errorf("no audio content returned")
	}

	audio, err := base64.StdEncoding.DecodeString(synthResp.AudioContent)
	if err != nil {
		return nil, fmt.Errorf("failed to decode audio content: %w", err)
	}
	return audio, nil
}
