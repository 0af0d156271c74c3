package blobstore

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"
)

func newTestStore(t *testing.T) (*Local, *httptest.Server) {
	t.Helper()
	store := NewLocal(t.TempDir(), "http://localhost/blobs", "test-signing-key")
	server := httptest.NewServer(store.Handler())
	t.Cleanup(server.Close)
	return store, server
}

// rebase swaps the configured base URL for the test server's address.
func rebase(t *testing.T, server *httptest.Server, signed string) string {
	t.Helper()
	u, err := url.Parse(signed)
	if err != nil {
		t.Fatalf("parse signed url: %v", err)
	}
	return server.URL + strings.TrimPrefix(u.Path, "/blobs") + "?" + u.RawQuery
}

func TestPutAndServe(t *testing.T) {
	store, server := newTestStore(t)

	signed, err := store.Put(context.Background(), "covers/alice/1.jpg", []byte("jpeg-bytes"), "image/jpeg", time.Hour)
	if err != nil {
		t.Fatalf("Put() error = %v", err)
	}

	resp, err := http.Get(rebase(t, server, signed))
	if err != nil {
		t.Fatalf("GET error = %v", err)
	}
	defer func() {
		_ = resp.Body.Close()
	}()
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status = %d, want 200", resp.StatusCode)
	}
	body, _ := io.ReadAll(resp.Body)
	if string(body) != "jpeg-bytes" {
		t.Errorf("body = %q", body)
	}
}

func TestServeRejectsTamperedSignature(t *testing.T) {
	store, server := newTestStore(t)

	signed, err := store.Put(context.Background(), "audio/alice/1.mp3", []byte("mp3"), "audio/mpeg", time.Hour)
	if err != nil {
		t.Fatalf("Put() error = %v", err)
	}

	tampered := strings.Replace(rebase(t, server, signed), "sig=", "sig=ff", 1)
	resp, err := http.Get(tampered)
	if err != nil {
		t.Fatalf("GET error = %v", err)
	}
	_ = resp.Body.Close()
	if resp.StatusCode != http.StatusForbidden {
		t.Fatalf("status = %d, want 403 for tampered signature", resp.StatusCode)
	}
}

func TestServeRejectsExpiredLink(t *testing.T) {
	store, server := newTestStore(t)

	signed, err := store.Put(context.Background(), "audio/alice/2.mp3", []byte("mp3"), "audio/mpeg", -time.Minute)
	if err != nil {
		t.Fatalf("Put() error = %v", err)
	}

	resp, err := http.Get(rebase(t, server, signed))
	if err != nil {
		t.Fatalf("GET error = %v", err)
	}
	_ = resp.Body.Close()
	if resp.StatusCode != http.StatusForbidden {
		t.Fatalf("status = %d, want 403 for expired link", resp.StatusCode)
	}
}

func TestPutRejectsTraversal(t *testing.T) {
	store, _ := newTestStore(t)

	for _, p := range []string{"../escape", "a/../../b", ""} {
		if _, err := store.Put(context.Background(), p, []byte("x"), "text/plain", time.Hour); err == nil {
			t.Errorf("Put(%q) expected error", p)
		}
	}
	// paths with a redundant segment are normalized, not rejected
	if _, err := store.Put(context.Background(), fmt.Sprintf("a/./%s", "b.txt"), []byte("x"), "text/plain", time.Hour); err != nil {
		t.Errorf("Put(a/./b.txt) error = %v", err)
	}
}
