package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/traveloka/gsuite-go/internal/auth"
	"github.com/traveloka/gsuite-go/internal/directory"
	"github.com/traveloka/gsuite-go/internal/sheets"
)

func newAuthorizeCmd() *cobra.Command {
	var scopes []string

	cmd := &cobra.Command{
		Use:   "authorize",
		Short: "Run the interactive consent flow and cache the token",
		Long: `Run the browser-based OAuth2 consent flow eagerly and persist the
resulting token, so later commands reuse it without prompting again.

By default the token covers every scope this tool uses (Directory groups,
group members, groups settings and spreadsheets). If the requested scopes
change, delete the cached token file and authorize again.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			authCfg := authConfig()
			authCfg.Mode = auth.ModeInteractive
			authCfg.Scopes = scopes

			ts, err := authCfg.TokenSource(cmd.Context())
			if err != nil {
				return err
			}
			if _, err := ts.Token(); err != nil {
				return fmt.Errorf("failed to obtain token: %w", err)
			}

			fmt.Printf("Token cached at %s\n", authCfg.TokenFile)
			return nil
		},
	}

	defaultScopes := append(append([]string{}, directory.Scopes...), sheets.Scopes...)
	cmd.Flags().StringSliceVar(&scopes, "scope", defaultScopes, "OAuth scope to request (repeatable)")

	return cmd
}
