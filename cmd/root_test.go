package cmd

import (
	"os"
	"path/filepath"
	"testing"
)

func TestResolveConfigDefaults(t *testing.T) {
	configFile = ""

	cfg, err := resolveConfig()
	if err != nil {
		t.Fatalf("resolveConfig() error: %v", err)
	}

	if cfg.Auth.Mode != "interactive" {
		t.Errorf("Auth.Mode = %q, want interactive", cfg.Auth.Mode)
	}
	if cfg.LogLevel != "info" {
		t.Errorf("LogLevel = %q, want info", cfg.LogLevel)
	}
}

func TestResolveConfigFlagOverridesFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "gsuite.yaml")
	content := `
auth:
  mode: service_account
  subject: admin@example.com
log-level: warn
`
	if err := os.WriteFile(path, []byte(content), 0600); err != nil {
		t.Fatal(err)
	}

	configFile = path
	t.Cleanup(func() { configFile = "" })

	pf := rootCmd.PersistentFlags()
	if err := pf.Set("log-level", "debug"); err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() {
		logLevel = "info"
		pf.Lookup("log-level").Changed = false
	})

	cfg, err := resolveConfig()
	if err != nil {
		t.Fatalf("resolveConfig() error: %v", err)
	}

	if cfg.Auth.Mode != "service_account" {
		t.Errorf("Auth.Mode = %q, want the file value", cfg.Auth.Mode)
	}
	if cfg.Auth.Subject != "admin@example.com" {
		t.Errorf("Auth.Subject = %q, want the file value", cfg.Auth.Subject)
	}
	if cfg.LogLevel != "debug" {
		t.Errorf("LogLevel = %q, want the flag override", cfg.LogLevel)
	}
}

func TestResolveConfigMissingFile(t *testing.T) {
	configFile = filepath.Join(t.TempDir(), "absent.yaml")
	t.Cleanup(func() { configFile = "" })

	if _, err := resolveConfig(); err == nil {
		t.Fatal("resolveConfig() expected an error for a missing --config file")
	}
}
