package auth

//go:generate go run go.uber.org/mock/mockgen@latest -destination=mocks/mock_verifier.go -package=mocks lumen/internal/auth Verifier

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
)

// ErrInvalidToken is returned when a bearer token cannot be verified.
var ErrInvalidToken = errors.New("invalid or expired token")

// Verifier resolves a bearer token to an owner id.
// Token issuance and identity management live outside this service.
type Verifier interface {
	Verify(ctx context.Context, token string) (string, error)
}

// Static is a development verifier that accepts every token and maps it to a
// fixed owner id. Enabled with AUTH_DISABLED=true only.
type Static struct {
	OwnerID string
}

// Verify returns the configured owner id for any token.
func (s *Static) Verify(ctx context.Context, token string) (string, error) {
	return s.OwnerID, nil
}

// Remote verifies tokens against an external introspection endpoint that
// returns {"ownerId": "..."} for valid tokens.
type Remote struct {
	VerifyURL string
	client    *http.Client
}

// NewRemote creates a verifier backed by the given introspection endpoint.
func NewRemote(verifyURL string) *Remote {
	return &Remote{
		VerifyURL: verifyURL,
		client:    http.DefaultClient,
	}
}

// Verify posts the token to the introspection endpoint and returns the owner id.
func (r *Remote) Verify(ctx context.Context, token string) (string, error) {
	body := strings.NewReader(fmt.Sprintf(`{"token":%q}`, token))
	req, err := http.NewRequestWithContext(ctx, "POST", r.VerifyURL, body)
	if err != nil {
		return "", fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := r.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("failed to send request: %w", err)
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	if resp.StatusCode == http.StatusUnauthorized || resp.StatusCode == http.StatusForbidden {
		return "", ErrInvalidToken
	}
	if resp.StatusCode != http.StatusOK {
		raw, _ := io.ReadAll(resp.Body)
		return "", fmt.Errorf("bad status %d: %s", resp.StatusCode, string(raw))
	}

	var result struct {
		OwnerID string `json:"ownerId"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return "", fmt.Errorf("failed to decode response: %w", err)
	}
	if result.OwnerID == "" {
		return "", ErrInvalidToken
	}
	return result.OwnerID, nil
}
