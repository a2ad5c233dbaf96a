// Package logging provides slog setup and shared attribute helpers.
//
// Group and member keys are email addresses; Group and Member hash them
// before logging so entries can be correlated without exposing PII.
package logging
