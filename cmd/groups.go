package cmd

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	groupssettings "google.golang.org/api/groupssettings/v1"

	"github.com/traveloka/gsuite-go/internal/directory"
)

func newGroupsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "groups",
		Short: "Manage Google Workspace groups",
	}

	cmd.AddCommand(newGroupsCreateCmd())
	cmd.AddCommand(newGroupsGetCmd())
	cmd.AddCommand(newGroupsDeleteCmd())
	cmd.AddCommand(newGroupsSettingsCmd())

	return cmd
}

func newGroupsCreateCmd() *cobra.Command {
	var name, description string

	cmd := &cobra.Command{
		Use:   "create <email>",
		Short: "Create a group",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := directory.NewClient(cmd.Context(), authConfig())
			if err != nil {
				return err
			}

			group, err := client.CreateGroup(cmd.Context(), args[0], name, description)
			if err != nil {
				return err
			}
			return printJSON(group)
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "The group's display name")
	cmd.Flags().StringVar(&description, "description", "", "An extended description of the group's purpose")

	return cmd
}

func newGroupsGetCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "get <group-key>",
		Short: "Get a group by email address, alias or unique ID",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := directory.NewClient(cmd.Context(), authConfig())
			if err != nil {
				return err
			}

			group, err := client.GetGroup(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			return printJSON(group)
		},
	}
}

func newGroupsDeleteCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "delete <group-key>",
		Short: "Delete a group",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := directory.NewClient(cmd.Context(), authConfig())
			if err != nil {
				return err
			}

			if err := client.DeleteGroup(cmd.Context(), args[0]); err != nil {
				return err
			}

			fmt.Printf("Group %s deleted\n", args[0])
			return nil
		},
	}
}

func newGroupsSettingsCmd() *cobra.Command {
	var settingsFile string

	cmd := &cobra.Command{
		Use:   "settings <group-email>",
		Short: "Patch a group's settings",
		Long: `Patch the settings of the group identified by its email address.

Without --settings-file, a conservative default preset is applied: the group
is internal to the domain, archived, and moderated by owners and managers.
With --settings-file, the given JSON document is sent as the patch body.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var settings *groupssettings.Groups
			if settingsFile != "" {
				b, err := os.ReadFile(settingsFile)
				if err != nil {
					return fmt.Errorf("failed to read settings file: %w", err)
				}
				settings = &groupssettings.Groups{}
				if err := json.Unmarshal(b, settings); err != nil {
					return fmt.Errorf("failed to parse settings file: %w", err)
				}
			}

			client, err := directory.NewClient(cmd.Context(), authConfig())
			if err != nil {
				return err
			}

			updated, err := client.UpdateGroupSettings(cmd.Context(), args[0], settings)
			if err != nil {
				return err
			}
			return printJSON(updated)
		},
	}

	cmd.Flags().StringVar(&settingsFile, "settings-file", "", "Path to a JSON document with the settings to patch")

	return cmd
}
