package bookmeta

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
)

const volumeJSON = `{
  "items": [
    {
      "volumeInfo": {
        "title": "Thinking, Fast and Slow",
        "authors": ["Daniel Kahneman"],
        "imageLinks": {"thumbnail": "http://books.google.com/thumb.jpg"},
        "industryIdentifiers": [
          {"type": "OTHER", "identifier": "OCLC:123"},
          {"type": "ISBN_13", "identifier": "9780374275631"}
        ]
      }
    }
  ]
}`

func TestLookupByISBN(t *testing.T) {
	var gotQuery string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotQuery = r.URL.Query().Get("q")
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(volumeJSON))
	}))
	defer server.Close()

	client := NewClient(server.URL)
	meta, err := client.Lookup(context.Background(), LookupParams{ISBN: "9780374275631"})
	if err != nil {
		t.Fatalf("Lookup() error = %v", err)
	}
	if gotQuery != "isbn:9780374275631" {
		t.Errorf("query = %q, want isbn:9780374275631", gotQuery)
	}
	if meta == nil {
		t.Fatal("Lookup() returned nil metadata")
	}
	if meta.Title != "Thinking, Fast and Slow" {
		t.Errorf("Title = %q", meta.Title)
	}
	if meta.Author != "Daniel Kahneman" {
		t.Errorf("Author = %q", meta.Author)
	}
	if meta.ISBN != "9780374275631" {
		t.Errorf("ISBN = %q, want ISBN_13 identifier", meta.ISBN)
	}
	if meta.CoverURL != "https://books.google.com/thumb.jpg" {
		t.Errorf("CoverURL = %q, want https scheme", meta.CoverURL)
	}
}

func TestLookupNoMatch(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{}`))
	}))
	defer server.Close()

	client := NewClient(server.URL)
	meta, err := client.Lookup(context.Background(), LookupParams{Title: "no such book"})
	if err != nil {
		t.Fatalf("Lookup() error = %v", err)
	}
	if meta != nil {
		t.Fatalf("Lookup() = %+v, want nil for no match", meta)
	}
}

func TestLookupNoParams(t *testing.T) {
	client := NewClient("http://unused.invalid")
	meta, err := client.Lookup(context.Background(), LookupParams{})
	if err != nil {
		t.Fatalf("Lookup() error = %v", err)
	}
	if meta != nil {
		t.Fatalf("Lookup() = %+v, want nil when no parameters given", meta)
	}
}

func TestLookupByTitleAuthorQuery(t *testing.T) {
	var gotQuery string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotQuery = r.URL.Query().Get("q")
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"items":[{"volumeInfo":{"title":"Dune"}}]}`))
	}))
	defer server.Close()

	client := NewClient(server.URL)
	meta, err := client.Lookup(context.Background(), LookupParams{Title: "Dune", Author: "Herbert"})
	if err != nil {
		t.Fatalf("Lookup() error = %v", err)
	}
	if gotQuery != "Dune Herbert" {
		t.Errorf("query = %q, want title and author joined", gotQuery)
	}
	if meta.Author != "Unknown" {
		t.Errorf("Author = %q, want Unknown fallback", meta.Author)
	}
}
