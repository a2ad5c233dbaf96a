package auth

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"
	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"

	"github.com/traveloka/gsuite-go/internal/browser"
	"github.com/traveloka/gsuite-go/internal/logging"
)

// interactiveTokenSource resolves a token for the three-legged flow. A
// cached token is reused as-is while valid; an expired token carrying a
// refresh token is refreshed and persisted; anything else triggers a full
// browser consent cycle.
func interactiveTokenSource(ctx context.Context, secrets []byte, scopes []string, port int, tokenFile string) (oauth2.TokenSource, error) {
	conf, err := google.ConfigFromJSON(secrets, scopes...)
	if err != nil {
		return nil, fmt.Errorf("failed to parse client secrets: %w", err)
	}

	cache := NewTokenCache(tokenFile)
	tok := cache.Load()

	if tok == nil || !tok.Valid() {
		if tok != nil && tok.RefreshToken != "" {
			slog.Debug("refreshing expired cached token", slog.String("token_file", tokenFile))
			tok, err = conf.TokenSource(ctx, tok).Token()
			if err != nil {
				return nil, fmt.Errorf("failed to refresh cached token: %w", err)
			}
		} else {
			tok, err = runConsentFlow(ctx, conf, port)
			if err != nil {
				return nil, err
			}
		}

		if err := cache.Save(tok); err != nil {
			return nil, err
		}
	}

	return oauth2.ReuseTokenSource(tok, conf.TokenSource(ctx, tok)), nil
}

// runConsentFlow performs the loopback consent cycle: bind the local
// listener, send the user to the consent URL, wait for the authorization
// code and exchange it for a token. Blocks until the user completes
// authorization or ctx is cancelled.
func runConsentFlow(ctx context.Context, conf *oauth2.Config, port int) (*oauth2.Token, error) {
	state := uuid.NewString()

	srv := newLoopbackServer(port, state)
	if err := srv.Start(); err != nil {
		return nil, err
	}
	defer srv.Stop()

	conf.RedirectURL = srv.RedirectURI()

	// Offline access so the authorization server issues a refresh token.
	authURL := conf.AuthCodeURL(state, oauth2.AccessTypeOffline)

	fmt.Printf("Open the following URL in your browser to authorize access:\n\n  %s\n\n", authURL)
	if err := browser.Open(authURL); err != nil {
		slog.Debug("could not open browser, continuing with printed URL", logging.Err(err))
	}

	code, err := srv.WaitForCode(ctx)
	if err != nil {
		return nil, err
	}

	tok, err := conf.Exchange(ctx, code)
	if err != nil {
		return nil, fmt.Errorf("failed to exchange authorization code: %w", err)
	}

	slog.Info("authorization complete", slog.String("token", logging.SanitizeToken(tok.AccessToken)))
	return tok, nil
}
