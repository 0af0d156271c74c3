package blobstore

//go:generate go run go.uber.org/mock/mockgen@latest -destination=mocks/mock_store.go -package=mocks lumen/internal/blobstore Store

import (
	"context"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"mime"
	"net/http"
	"os"
	"path"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"lumen/internal/contextutil"
)

// Store writes blobs and returns time-limited signed URLs for reading them.
type Store interface {
	// Put writes data under the given blob path and returns a signed URL
	// valid for ttl.
	Put(ctx context.Context, blobPath string, data []byte, contentType string, ttl time.Duration) (string, error)
}

// Local is a Store backed by the local filesystem. Read access goes through
// Handler, which verifies an HMAC signature and expiry on every request, so
// returned URLs behave like cloud signed URLs.
type Local struct {
	dir     string
	baseURL string
	key     []byte
}

// NewLocal creates a local blob store rooted at dir.
// baseURL is the public prefix the Handler is mounted under.
func NewLocal(dir, baseURL, signingKey string) *Local {
	return &Local{
		dir:     dir,
		baseURL: strings.TrimRight(baseURL, "/"),
		key:     []byte(signingKey),
	}
}

// Put writes data under the given blob path and returns a signed URL.
func (s *Local) Put(ctx context.Context, blobPath string, data []byte, contentType string, ttl time.Duration) (string, error) {
	clean, err := s.cleanPath(blobPath)
	if err != nil {
		return "", err
	}

	full := filepath.Join(s.dir, filepath.FromSlash(clean))
	if err := os.MkdirAll(filepath.Dir(full), 0755); err != nil {
		return "", fmt.Errorf("failed to create blob directory: %w", err)
	}
	if err := os.WriteFile(full, data, 0644); err != nil {
		return "", fmt.Errorf("failed to write blob: %w", err)
	}

	expires := time.Now().Add(ttl).Unix()
	url := fmt.Sprintf("%s/%s?exp=%d&sig=%s", s.baseURL, clean, expires, s.sign(clean, expires))
	contextutil.LoggerFromContext(ctx).InfoContext(ctx, "blob stored", "path", clean, "bytes", len(data), "content_type", contentType)
	return url, nil
}

// Handler serves stored blobs, rejecting requests whose signature is missing,
// tampered with, or expired.
func (s *Local) Handler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		blobPath := strings.TrimPrefix(r.URL.Path, "/")
		clean, err := s.cleanPath(blobPath)
		if err != nil {
			http.NotFound(w, r)
			return
		}

		expires, err := strconv.ParseInt(r.URL.Query().Get("exp"), 10, 64)
		if err != nil || time.Now().Unix() > expires {
			http.Error(w, "link expired", http.StatusForbidden)
			return
		}
		sig := r.URL.Query().Get("sig")
		if !hmac.Equal([]byte(sig), []byte(s.sign(clean, expires))) {
			http.Error(w, "invalid signature", http.StatusForbidden)
			return
		}

		full := filepath.Join(s.dir, filepath.FromSlash(clean))
		if ct := mime.TypeByExtension(path.Ext(clean)); ct != "" {
			w.Header().Set("Content-Type", ct)
		}
		http.ServeFile(w, r, full)
	})
}

// cleanPath normalizes a blob path and rejects traversal outside the root.
func (s *Local) cleanPath(blobPath string) (string, error) {
	clean := path.Clean("/" + blobPath)
	if clean == "/" || strings.Contains(clean, "..") {
		return "", fmt.Errorf("invalid blob path %q", blobPath)
	}
	return strings.TrimPrefix(clean, "/"), nil
}

func (s *Local) sign(blobPath string, expires int64) string {
	mac := hmac.New(sha256.New, s.key)
	fmt.Fprintf(mac, "%s\n%d", blobPath, expires)
	return hex.EncodeToString(mac.Sum(nil))
}
