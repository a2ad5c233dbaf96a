package cmd

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/traveloka/gsuite-go/internal/auth"
	"github.com/traveloka/gsuite-go/internal/config"
	"github.com/traveloka/gsuite-go/internal/logging"
)

var (
	configFile    string
	authMode      string
	clientSecrets string
	subject       string
	callbackPort  int
	tokenFile     string
	logLevel      string
	logFormat     string

	// cfg is resolved from the config file and flags before any
	// subcommand runs.
	cfg *config.Config
)

// rootCmd represents the base command for the gsuite application
var rootCmd = &cobra.Command{
	Use:   "gsuite",
	Short: "Manage Google Workspace groups and read Google Sheets",
	Long: `gsuite is a thin command line wrapper around the Google Admin SDK
Directory API, the Groups Settings API and the Sheets API.

Credentials are obtained either through a browser-based consent flow with a
cached token (interactive mode) or from a service account key with
domain-wide delegation (service_account mode). Responses are printed as the
API returned them, as indented JSON.`,
	SilenceUsage: true,
}

// resolveConfig loads the config file when given and overlays any flags the
// user set explicitly. Flag state is read from the root's persistent flag
// set; the pflag.Flag instances are shared with every subcommand, so
// Changed reflects the parsed invocation regardless of which subcommand
// runs.
func resolveConfig() (*config.Config, error) {
	resolved := config.Default()
	if configFile != "" {
		loaded, err := config.Load(configFile)
		if err != nil {
			return nil, err
		}
		resolved = loaded
	}

	pf := rootCmd.PersistentFlags()
	if pf.Changed("auth-mode") {
		resolved.Auth.Mode = authMode
	}
	if pf.Changed("client-secrets") {
		resolved.Auth.ClientSecrets = clientSecrets
	}
	if pf.Changed("subject") {
		resolved.Auth.Subject = subject
	}
	if pf.Changed("callback-port") {
		resolved.Auth.CallbackPort = callbackPort
	}
	if pf.Changed("token-file") {
		resolved.Auth.TokenFile = tokenFile
	}
	if pf.Changed("log-level") {
		resolved.LogLevel = logLevel
	}
	if pf.Changed("log-format") {
		resolved.LogFormat = logFormat
	}

	return resolved, nil
}

// authConfig returns the auth configuration resolved for this invocation.
func authConfig() *auth.Config {
	return cfg.AuthConfig()
}

// printJSON writes v to stdout as indented JSON. API responses pass through
// this unmodified.
func printJSON(v interface{}) error {
	out, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode response: %w", err)
	}
	fmt.Println(string(out))
	return nil
}

// version will be set by main
var version = "dev"

// SetVersion sets the version for the root command
func SetVersion(v string) {
	version = v
	rootCmd.Version = v
}

// Execute is the main entry point for the CLI application
func Execute() {
	rootCmd.SetVersionTemplate(`{{printf "gsuite version %s\n" .Version}}`)

	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}

func init() {
	// Assigned here rather than in the composite literal: resolveConfig
	// reads rootCmd's flag set, and referencing it from the literal forms
	// an initialization cycle.
	rootCmd.PersistentPreRunE = func(cmd *cobra.Command, args []string) error {
		var err error
		cfg, err = resolveConfig()
		if err != nil {
			return err
		}
		return logging.Setup(cfg.LogLevel, cfg.LogFormat)
	}

	pf := rootCmd.PersistentFlags()
	pf.StringVar(&configFile, "config", "", "Path to a YAML config file")
	pf.StringVar(&authMode, "auth-mode", string(auth.ModeInteractive), "Authorization mode: interactive or service_account")
	pf.StringVar(&clientSecrets, "client-secrets", "", "Client secrets: inline JSON or path to a JSON file")
	pf.StringVar(&subject, "subject", "", "Email address to impersonate via domain-wide delegation (service_account mode)")
	pf.IntVar(&callbackPort, "callback-port", 0, "Port for the local OAuth redirect listener (interactive mode)")
	pf.StringVar(&tokenFile, "token-file", auth.DefaultTokenFile, "Path where the interactive token is cached")
	pf.StringVar(&logLevel, "log-level", "info", "Log level: debug, info, warn or error")
	pf.StringVar(&logFormat, "log-format", "text", "Log format: text or json")

	rootCmd.AddCommand(newAuthorizeCmd())
	rootCmd.AddCommand(newGroupsCmd())
	rootCmd.AddCommand(newMembersCmd())
	rootCmd.AddCommand(newSheetsCmd())
	rootCmd.AddCommand(newVersionCmd())
}
