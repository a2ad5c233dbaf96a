// Package auth obtains OAuth2 credentials for Google APIs through one of
// two mutually exclusive authorization modes.
//
// Interactive mode runs a browser-based consent flow against a local
// loopback listener and caches the resulting token on disk, refreshing it
// on later runs instead of prompting again. Service account mode mints
// two-legged JWT credentials from a service account key and impersonates a
// delegated user, with no interaction and no cache.
//
// The entry point is Config: validate it, then call TokenSource or Client
// and hand the result to a service wrapper.
//
//	cfg := &auth.Config{
//	    Mode:          auth.ModeServiceAccount,
//	    ClientSecrets: "/etc/gsuite/key.json",
//	    Scopes:        directory.Scopes,
//	    Subject:       "admin@example.com",
//	}
//	ts, err := cfg.TokenSource(ctx)
//
// Configuration errors (unknown mode, missing per-mode parameter) are
// reported synchronously before any network activity. Remote failures from
// the OAuth endpoints propagate to the caller unmodified.
package auth
