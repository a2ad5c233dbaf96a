package auth

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"strings"

	"golang.org/x/oauth2"
)

// Mode selects the authorization strategy used to obtain credentials.
type Mode string

const (
	// ModeInteractive performs a browser-based consent flow with a local
	// loopback listener and caches the resulting token on disk.
	ModeInteractive Mode = "interactive"

	// ModeServiceAccount mints credentials from a service account key,
	// impersonating a delegated user via domain-wide delegation.
	ModeServiceAccount Mode = "service_account"
)

// DefaultTokenFile is where the interactive flow caches its token when the
// caller does not specify a path.
const DefaultTokenFile = "token.json"

// Config describes how to obtain Google API credentials.
type Config struct {
	// Mode is the authorization strategy. Required.
	Mode Mode

	// ClientSecrets is either a JSON document or a path to a JSON file.
	// For interactive mode it holds an OAuth client ID; for service
	// account mode it holds a service account key. Required.
	ClientSecrets string

	// Scopes are the OAuth2 scopes requested during authorization.
	// Required.
	Scopes []string

	// Subject is the email address of the user to impersonate through
	// domain-wide delegation. Required for service account mode.
	Subject string

	// CallbackPort is the port the local loopback listener binds during
	// the consent flow. Required for interactive mode.
	CallbackPort int

	// TokenFile is where the interactive flow persists its token between
	// runs. Defaults to DefaultTokenFile.
	TokenFile string
}

// Validate reports whether the config names a known mode and carries the
// parameters that mode requires. It never touches the network.
func (c *Config) Validate() error {
	switch c.Mode {
	case ModeInteractive:
		if c.CallbackPort <= 0 {
			return fmt.Errorf("callback port must be set for %q mode", ModeInteractive)
		}
	case ModeServiceAccount:
		if c.Subject == "" {
			return fmt.Errorf("delegated subject must be set for %q mode", ModeServiceAccount)
		}
	default:
		return fmt.Errorf("unknown auth mode %q: valid modes are %q and %q", c.Mode, ModeInteractive, ModeServiceAccount)
	}

	if c.ClientSecrets == "" {
		return fmt.Errorf("client secrets must be set")
	}
	if len(c.Scopes) == 0 {
		return fmt.Errorf("at least one OAuth scope must be requested")
	}

	return nil
}

func (c *Config) tokenFile() string {
	if c.TokenFile == "" {
		return DefaultTokenFile
	}
	return c.TokenFile
}

// TokenSource resolves the configured mode into an OAuth2 token source.
// Interactive mode may block on browser-based consent; service account mode
// never interacts with the user.
func (c *Config) TokenSource(ctx context.Context) (oauth2.TokenSource, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}

	secrets, err := readClientSecrets(c.ClientSecrets)
	if err != nil {
		return nil, err
	}

	switch c.Mode {
	case ModeServiceAccount:
		return serviceAccountTokenSource(ctx, secrets, c.Scopes, c.Subject)
	default:
		return interactiveTokenSource(ctx, secrets, c.Scopes, c.CallbackPort, c.tokenFile())
	}
}

// Client returns an HTTP client that signs requests with credentials
// resolved per the configured mode.
func (c *Config) Client(ctx context.Context) (*http.Client, error) {
	ts, err := c.TokenSource(ctx)
	if err != nil {
		return nil, err
	}
	return oauth2.NewClient(ctx, ts), nil
}

// readClientSecrets accepts either an inline JSON document or a path to a
// JSON file and returns the raw JSON bytes.
func readClientSecrets(secrets string) ([]byte, error) {
	if trimmed := strings.TrimSpace(secrets); strings.HasPrefix(trimmed, "{") {
		return []byte(trimmed), nil
	}

	b, err := os.ReadFile(secrets)
	if err != nil {
		return nil, fmt.Errorf("failed to read client secrets file: %w", err)
	}
	return b, nil
}
