package logging

import (
	"strings"
	"testing"
)

func TestAnonymizeEmail(t *testing.T) {
	hashed := AnonymizeEmail("alice@example.com")
	if !strings.HasPrefix(hashed, "user:") {
		t.Errorf("AnonymizeEmail() = %q, want a user: prefix", hashed)
	}
	if strings.Contains(hashed, "alice") {
		t.Errorf("AnonymizeEmail() = %q leaks the address", hashed)
	}

	// Same input, same hash, so log entries stay correlatable.
	if AnonymizeEmail("alice@example.com") != hashed {
		t.Error("AnonymizeEmail() is not deterministic")
	}

	// Opaque IDs pass through untouched.
	if got := AnonymizeEmail("group-id-123"); got != "group-id-123" {
		t.Errorf("AnonymizeEmail() = %q, want pass-through for non-emails", got)
	}
}

func TestSanitizeToken(t *testing.T) {
	if got := SanitizeToken(""); got != "<empty>" {
		t.Errorf("SanitizeToken(\"\") = %q", got)
	}

	got := SanitizeToken("ya29.secret-token")
	if strings.Contains(got, "secret") {
		t.Errorf("SanitizeToken() = %q leaks token content", got)
	}
	if got != "[token:17 chars]" {
		t.Errorf("SanitizeToken() = %q, want [token:17 chars]", got)
	}
}

func TestErrNil(t *testing.T) {
	attr := Err(nil)
	if attr.Key != "" {
		t.Errorf("Err(nil) key = %q, want an empty group", attr.Key)
	}
}

func TestSetup(t *testing.T) {
	tests := []struct {
		name    string
		level   string
		format  string
		wantErr bool
	}{
		{"defaults", "", "", false},
		{"debug json", "debug", "json", false},
		{"warn text", "warn", "text", false},
		{"mixed case", "INFO", "TEXT", false},
		{"bad level", "verbose", "text", true},
		{"bad format", "info", "xml", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := Setup(tt.level, tt.format)
			if (err != nil) != tt.wantErr {
				t.Errorf("Setup(%q, %q) error = %v, wantErr %v", tt.level, tt.format, err, tt.wantErr)
			}
		})
	}
}
