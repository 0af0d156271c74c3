package bookmeta

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
)

// DefaultBaseURL is the Google Books volumes API endpoint.
const DefaultBaseURL = "https://www.googleapis.com/books/v1"

// Metadata holds book metadata resolved from an external catalog.
type Metadata struct {
	Title    string
	Author   string
	ISBN     string
	CoverURL string
}

// LookupParams identifies a book by ISBN or by title/author query.
type LookupParams struct {
	ISBN   string
	Title  string
	Author string
}

// Client is a client for the Google Books volume lookup API.
type Client struct {
	BaseURL string
	client  *http.Client
}

// NewClient creates a new book metadata client.
func NewClient(baseURL string) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	return &Client{
		BaseURL: baseURL,
		client:  http.DefaultClient,
	}
}

// Lookup resolves book metadata by ISBN when given, otherwise by a
// title/author query. Returns nil (not an error) when nothing matches or
// when no usable parameters were supplied.
func (c *Client) Lookup(ctx context.Context, params LookupParams) (*Metadata, error) {
	if params.ISBN != "" {
		return c.query(ctx, "isbn:"+params.ISBN)
	}
	if params.Title != "" || params.Author != "" {
		parts := []string{}
		if params.Title != "" {
			parts = append(parts, params.Title)
		}
		if params.Author != "" {
			parts = append(parts, params.Author)
		}
		return c.query(ctx, strings.Join(parts, " "))
	}
	return nil, nil
}

type volumeInfo struct {
	Title      string   `json:"title"`
	Authors    []string `json:"authors"`
	ImageLinks struct {
		Thumbnail string `json:"thumbnail"`
	} `json:"imageLinks"`
	IndustryIdentifiers []struct {
		Type       string `json:"type"`
		Identifier string `json:"identifier"`
	} `json:"industryIdentifiers"`
}

type volumesResponse struct {
	Items []struct {
		VolumeInfo volumeInfo `json:"volumeInfo"`
	} `json:"items"`
}

func (c *Client) query(ctx context.Context, q string) (*Metadata, error) {
	reqURL := fmt.Sprintf("%s/volumes?q=%s&maxResults=1", c.BaseURL, url.QueryEscape(q))

	req, err := http.NewRequestWithContext(ctx, "GET", reqURL, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

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

	var volumes volumesResponse
	if err := json.NewDecoder(resp.Body).Decode(&volumes); err != nil {
		return nil, fmt.Errorf("failed to decode response: %w", err)
	}

	if len(volumes.Items) == 0 {
		return nil, nil
	}
	return mapVolume(volumes.Items[0].VolumeInfo), nil
}

// mapVolume converts a volume record into Metadata.
func mapVolume(v volumeInfo) *Metadata {
	meta := &Metadata{
		Title:  v.Title,
		Author: "Unknown",
	}
	if meta.Title == "" {
		meta.Title = "Unknown"
	}
	if len(v.Authors) > 0 {
		meta.Author = strings.Join(v.Authors, ", ")
	}
	// Thumbnails are served over http by the API; callers embed them in
	// https pages.
	meta.CoverURL = strings.Replace(v.ImageLinks.Thumbnail, "http://", "https://", 1)
	for _, id := range v.IndustryIdentifiers {
		if id.Type == "ISBN_13" || id.Type == "ISBN_10" {
			meta.ISBN = id.Identifier
			break
		}
	}
	return meta
}
