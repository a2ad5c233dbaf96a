// Package config loads the gsuite CLI configuration from a YAML file.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/traveloka/gsuite-go/internal/auth"
)

// Config is the application configuration, loaded from a YAML file.
type Config struct {
	Auth AuthConfig `yaml:"auth"`

	// LogLevel is one of debug, info, warn, error. Defaults to info.
	LogLevel string `yaml:"log-level"`

	// LogFormat is text or json. Defaults to text.
	LogFormat string `yaml:"log-format"`
}

// AuthConfig mirrors auth.Config for the YAML file.
type AuthConfig struct {
	// Mode is "interactive" or "service_account".
	Mode string `yaml:"mode"`

	// ClientSecrets is an inline JSON document or a path to a JSON file.
	ClientSecrets string `yaml:"client-secrets"`

	// Subject is the delegated email address (service_account mode).
	Subject string `yaml:"subject"`

	// CallbackPort is the loopback listener port (interactive mode).
	CallbackPort int `yaml:"callback-port"`

	// TokenFile is where the interactive token is cached.
	TokenFile string `yaml:"token-file"`
}

// Default returns the configuration used when no file is given.
func Default() *Config {
	return &Config{
		Auth: AuthConfig{
			Mode:      string(auth.ModeInteractive),
			TokenFile: auth.DefaultTokenFile,
		},
		LogLevel:  "info",
		LogFormat: "text",
	}
}

// Load reads and parses the YAML file at path, applying defaults for
// omitted fields.
func Load(path string) (*Config, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	cfg := Default()
	if err := yaml.Unmarshal(b, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	return cfg, nil
}

// AuthConfig converts the file representation into an auth.Config. Scopes
// are left empty; each service wrapper fills in its own.
func (c *Config) AuthConfig() *auth.Config {
	return &auth.Config{
		Mode:          auth.Mode(c.Auth.Mode),
		ClientSecrets: c.Auth.ClientSecrets,
		Subject:       c.Auth.Subject,
		CallbackPort:  c.Auth.CallbackPort,
		TokenFile:     c.Auth.TokenFile,
	}
}
