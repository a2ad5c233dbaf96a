package logging

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"log/slog"
	"os"
	"strings"
)

// Common log attribute keys for consistent naming across the codebase.
const (
	KeyOperation   = "operation"
	KeyService     = "service"
	KeyGroup       = "group"
	KeyMember      = "member"
	KeySpreadsheet = "spreadsheet"
	KeyError       = "error"
)

// Setup installs the default slog logger. format is "text" or "json";
// level is one of debug, info, warn, error.
func Setup(level, format string) error {
	var lvl slog.Level
	switch strings.ToLower(level) {
	case "debug":
		lvl = slog.LevelDebug
	case "info", "":
		lvl = slog.LevelInfo
	case "warn":
		lvl = slog.LevelWarn
	case "error":
		lvl = slog.LevelError
	default:
		return fmt.Errorf("unknown log level %q", level)
	}

	opts := &slog.HandlerOptions{Level: lvl}

	var handler slog.Handler
	switch strings.ToLower(format) {
	case "json":
		handler = slog.NewJSONHandler(os.Stderr, opts)
	case "text", "":
		handler = slog.NewTextHandler(os.Stderr, opts)
	default:
		return fmt.Errorf("unknown log format %q", format)
	}

	slog.SetDefault(slog.New(handler))
	return nil
}

// WithService returns a logger with the service attribute set.
func WithService(logger *slog.Logger, service string) *slog.Logger {
	return logger.With(slog.String(KeyService, service))
}

// Operation returns a slog attribute for the operation name.
func Operation(op string) slog.Attr {
	return slog.String(KeyOperation, op)
}

// Group returns a slog attribute with the anonymized group key.
func Group(groupKey string) slog.Attr {
	return slog.String(KeyGroup, AnonymizeEmail(groupKey))
}

// Member returns a slog attribute with the anonymized member key.
func Member(memberKey string) slog.Attr {
	return slog.String(KeyMember, AnonymizeEmail(memberKey))
}

// Spreadsheet returns a slog attribute for a spreadsheet ID.
func Spreadsheet(id string) slog.Attr {
	return slog.String(KeySpreadsheet, id)
}

// Err returns a slog attribute for an error. If err is nil, returns an
// empty Group attribute that slog omits from output, so it is safe to pass
// a maybe-nil error.
func Err(err error) slog.Attr {
	if err == nil {
		return slog.Group("")
	}
	return slog.String(KeyError, err.Error())
}

// AnonymizeEmail returns a hashed representation of an email for logging
// purposes. This allows correlation of log entries without exposing PII.
// Non-email identifiers (opaque group or member IDs) pass through as-is.
func AnonymizeEmail(key string) string {
	if !strings.Contains(key, "@") {
		return key
	}
	hash := sha256.Sum256([]byte(key))
	return "user:" + hex.EncodeToString(hash[:8])
}

// SanitizeToken returns a masked version of a token for logging. It returns
// a length indicator without exposing any token content.
func SanitizeToken(token string) string {
	if token == "" {
		return "<empty>"
	}
	return fmt.Sprintf("[token:%d chars]", len(token))
}
