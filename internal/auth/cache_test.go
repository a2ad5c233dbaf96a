package auth

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"golang.org/x/oauth2"
)

func TestTokenCacheRoundtrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "token.json")
	cache := NewTokenCache(path)

	tok := &oauth2.Token{
		AccessToken:  "access",
		TokenType:    "Bearer",
		RefreshToken: "refresh",
		Expiry:       time.Now().Add(time.Hour).Round(time.Second),
	}

	if err := cache.Save(tok); err != nil {
		t.Fatalf("Save() error: %v", err)
	}

	got := cache.Load()
	if got == nil {
		t.Fatal("Load() returned nil after Save()")
	}
	if got.AccessToken != tok.AccessToken {
		t.Errorf("AccessToken = %q, want %q", got.AccessToken, tok.AccessToken)
	}
	if got.RefreshToken != tok.RefreshToken {
		t.Errorf("RefreshToken = %q, want %q", got.RefreshToken, tok.RefreshToken)
	}
	if !got.Expiry.Equal(tok.Expiry) {
		t.Errorf("Expiry = %v, want %v", got.Expiry, tok.Expiry)
	}
	if !got.Valid() {
		t.Error("expected loaded token to be valid")
	}
}

func TestTokenCacheLoadMissing(t *testing.T) {
	cache := NewTokenCache(filepath.Join(t.TempDir(), "absent.json"))
	if tok := cache.Load(); tok != nil {
		t.Errorf("Load() = %+v, want nil for a missing file", tok)
	}
}

func TestTokenCacheLoadCorrupt(t *testing.T) {
	path := filepath.Join(t.TempDir(), "token.json")
	if err := os.WriteFile(path, []byte("not json"), 0600); err != nil {
		t.Fatal(err)
	}

	cache := NewTokenCache(path)
	if tok := cache.Load(); tok != nil {
		t.Errorf("Load() = %+v, want nil for a corrupt file", tok)
	}
}

func TestTokenCacheSaveCreatesDirectory(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "dir", "token.json")
	cache := NewTokenCache(path)

	if err := cache.Save(&oauth2.Token{AccessToken: "a"}); err != nil {
		t.Fatalf("Save() error: %v", err)
	}

	info, err := os.Stat(path)
	if err != nil {
		t.Fatalf("token file not created: %v", err)
	}
	if perm := info.Mode().Perm(); perm != 0600 {
		t.Errorf("token file mode = %o, want 0600", perm)
	}
}

func TestTokenCacheSaveLeavesNoTempFile(t *testing.T) {
	dir := t.TempDir()
	cache := NewTokenCache(filepath.Join(dir, "token.json"))

	if err := cache.Save(&oauth2.Token{AccessToken: "a"}); err != nil {
		t.Fatal(err)
	}
	if err := cache.Save(&oauth2.Token{AccessToken: "b"}); err != nil {
		t.Fatal(err)
	}

	// The write goes through a temp file renamed over the target; only
	// the token file itself may remain.
	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatal(err)
	}
	if len(entries) != 1 || entries[0].Name() != "token.json" {
		names := make([]string, len(entries))
		for i, e := range entries {
			names[i] = e.Name()
		}
		t.Errorf("cache directory = %v, want only token.json", names)
	}
}

func TestTokenCacheSaveOverwrites(t *testing.T) {
	path := filepath.Join(t.TempDir(), "token.json")
	cache := NewTokenCache(path)

	if err := cache.Save(&oauth2.Token{AccessToken: "first"}); err != nil {
		t.Fatal(err)
	}
	if err := cache.Save(&oauth2.Token{AccessToken: "second"}); err != nil {
		t.Fatal(err)
	}

	got := cache.Load()
	if got == nil || got.AccessToken != "second" {
		t.Errorf("Load() = %+v, want the second token", got)
	}
}
