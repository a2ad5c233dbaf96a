package auth

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"golang.org/x/oauth2"

	"github.com/traveloka/gsuite-go/internal/logging"
)

// TokenCache persists an OAuth2 token at a file path so interactive consent
// is not required on every run. It is not safe for concurrent writers.
type TokenCache struct {
	path string
}

// NewTokenCache returns a cache backed by the file at path.
func NewTokenCache(path string) *TokenCache {
	return &TokenCache{path: path}
}

// Path returns the file path backing the cache.
func (c *TokenCache) Path() string {
	return c.path
}

// Load reads the cached token. A missing or undecodable file is not an
// error: it returns a nil token so the caller falls through to
// re-authorization.
func (c *TokenCache) Load() *oauth2.Token {
	f, err := os.Open(c.path)
	if err != nil {
		return nil
	}
	defer f.Close()

	tok := &oauth2.Token{}
	if err := json.NewDecoder(f).Decode(tok); err != nil {
		slog.Warn("discarding undecodable token cache",
			slog.String("path", c.path), logging.Err(err))
		return nil
	}
	return tok
}

// Save overwrites the cache with tok. The token is written to a temporary
// file in the same directory and renamed over the target, so a crash
// mid-write leaves the previous token intact. The file is created 0600 and
// its parent directory 0700.
func (c *TokenCache) Save(tok *oauth2.Token) error {
	dir := filepath.Dir(c.path)
	if dir != "." {
		if err := os.MkdirAll(dir, 0700); err != nil {
			return fmt.Errorf("failed to create token cache directory: %w", err)
		}
	}

	f, err := os.CreateTemp(dir, filepath.Base(c.path)+".tmp-")
	if err != nil {
		return fmt.Errorf("failed to create token cache: %w", err)
	}
	tmp := f.Name()
	defer os.Remove(tmp)

	if err := json.NewEncoder(f).Encode(tok); err != nil {
		f.Close()
		return fmt.Errorf("failed to write token cache: %w", err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("failed to write token cache: %w", err)
	}

	if err := os.Rename(tmp, c.path); err != nil {
		return fmt.Errorf("failed to replace token cache: %w", err)
	}
	return nil
}
