package auth

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"
	"time"

	"golang.org/x/oauth2"
)

// fakeTokenEndpoint serves the OAuth token endpoint and counts refresh
// grants so tests can assert which branch of the decision ladder ran.
func fakeTokenEndpoint(t *testing.T) (secrets []byte, refreshCalls *int) {
	t.Helper()

	calls := 0
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		// Only the token endpoint is asserted on; anything that lands
		// on the consent URL is ignored.
		if r.URL.Path != "/token" {
			return
		}
		if err := r.ParseForm(); err != nil {
			t.Errorf("token endpoint: %v", err)
		}
		if got := r.PostForm.Get("grant_type"); got != "refresh_token" {
			t.Errorf("grant_type = %q, want refresh_token", got)
		}
		if got := r.PostForm.Get("refresh_token"); got != "refresh-1" {
			t.Errorf("refresh_token = %q, want refresh-1", got)
		}
		calls++

		w.Header().Set("Content-Type", "application/json")
		fmt.Fprint(w, `{"access_token":"new-access","token_type":"Bearer","expires_in":3600}`)
	}))
	t.Cleanup(ts.Close)

	secrets = []byte(fmt.Sprintf(`{"installed":{
		"client_id": "client-id",
		"client_secret": "client-secret",
		"auth_uri": %q,
		"token_uri": %q,
		"redirect_uris": ["http://127.0.0.1"]
	}}`, ts.URL+"/auth", ts.URL+"/token"))

	return secrets, &calls
}

var testScopes = []string{"https://www.googleapis.com/auth/spreadsheets"}

func TestInteractiveReusesValidCachedToken(t *testing.T) {
	secrets, refreshCalls := fakeTokenEndpoint(t)

	tokenFile := filepath.Join(t.TempDir(), "token.json")
	cached := &oauth2.Token{
		AccessToken:  "cached-access",
		TokenType:    "Bearer",
		RefreshToken: "refresh-1",
		Expiry:       time.Now().Add(time.Hour),
	}
	if err := NewTokenCache(tokenFile).Save(cached); err != nil {
		t.Fatal(err)
	}

	ts, err := interactiveTokenSource(t.Context(), secrets, testScopes, 0, tokenFile)
	if err != nil {
		t.Fatalf("interactiveTokenSource() error: %v", err)
	}

	tok, err := ts.Token()
	if err != nil {
		t.Fatalf("Token() error: %v", err)
	}
	if tok.AccessToken != "cached-access" {
		t.Errorf("AccessToken = %q, want the cached token reused", tok.AccessToken)
	}
	if *refreshCalls != 0 {
		t.Errorf("token endpoint hit %d times, want 0 for a valid cached token", *refreshCalls)
	}
}

func TestInteractiveRefreshesExpiredTokenAndPersists(t *testing.T) {
	secrets, refreshCalls := fakeTokenEndpoint(t)

	tokenFile := filepath.Join(t.TempDir(), "token.json")
	expired := &oauth2.Token{
		AccessToken:  "old-access",
		TokenType:    "Bearer",
		RefreshToken: "refresh-1",
		Expiry:       time.Now().Add(-time.Hour),
	}
	if err := NewTokenCache(tokenFile).Save(expired); err != nil {
		t.Fatal(err)
	}

	ts, err := interactiveTokenSource(t.Context(), secrets, testScopes, 0, tokenFile)
	if err != nil {
		t.Fatalf("interactiveTokenSource() error: %v", err)
	}

	tok, err := ts.Token()
	if err != nil {
		t.Fatalf("Token() error: %v", err)
	}
	if tok.AccessToken != "new-access" {
		t.Errorf("AccessToken = %q, want new-access from the refresh", tok.AccessToken)
	}
	if *refreshCalls != 1 {
		t.Errorf("token endpoint hit %d times, want exactly 1 refresh", *refreshCalls)
	}

	// The refreshed token is persisted for the next run, carrying over
	// the refresh token the endpoint did not re-issue.
	persisted := NewTokenCache(tokenFile).Load()
	if persisted == nil {
		t.Fatal("no token persisted after refresh")
	}
	if persisted.AccessToken != "new-access" {
		t.Errorf("persisted AccessToken = %q, want new-access", persisted.AccessToken)
	}
	if persisted.RefreshToken != "refresh-1" {
		t.Errorf("persisted RefreshToken = %q, want refresh-1 carried over", persisted.RefreshToken)
	}
}

func TestInteractiveFallsThroughToConsent(t *testing.T) {
	tests := []struct {
		name string
		seed func(t *testing.T, tokenFile string)
	}{
		{"missing cache", func(t *testing.T, tokenFile string) {}},
		{"corrupt cache", func(t *testing.T, tokenFile string) {
			if err := os.WriteFile(tokenFile, []byte("not json"), 0600); err != nil {
				t.Fatal(err)
			}
		}},
		{"expired without refresh token", func(t *testing.T, tokenFile string) {
			tok := &oauth2.Token{
				AccessToken: "old-access",
				TokenType:   "Bearer",
				Expiry:      time.Now().Add(-time.Hour),
			}
			if err := NewTokenCache(tokenFile).Save(tok); err != nil {
				t.Fatal(err)
			}
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			secrets, refreshCalls := fakeTokenEndpoint(t)

			tokenFile := filepath.Join(t.TempDir(), "token.json")
			tt.seed(t, tokenFile)

			// A cancelled context aborts the consent wait immediately;
			// reaching that wait is what distinguishes the consent
			// branch from a refresh.
			ctx, cancel := context.WithCancel(t.Context())
			cancel()

			if _, err := interactiveTokenSource(ctx, secrets, testScopes, 0, tokenFile); err == nil {
				t.Fatal("interactiveTokenSource() expected a consent-flow error")
			}
			if *refreshCalls != 0 {
				t.Errorf("token endpoint hit %d times, want 0: this cache state must not be refreshable", *refreshCalls)
			}
		})
	}
}
