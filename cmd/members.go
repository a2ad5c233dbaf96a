package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/traveloka/gsuite-go/internal/directory"
)

func newMembersCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "members",
		Short: "Manage group memberships",
	}

	cmd.AddCommand(newMembersAddCmd())
	cmd.AddCommand(newMembersGetCmd())
	cmd.AddCommand(newMembersUpdateCmd())
	cmd.AddCommand(newMembersRemoveCmd())
	cmd.AddCommand(newMembersListCmd())

	return cmd
}

func newMembersAddCmd() *cobra.Command {
	var role, memberType, deliverySettings string

	cmd := &cobra.Command{
		Use:   "add <group-key> <member-email>",
		Short: "Add a user or group to a group",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := directory.NewClient(cmd.Context(), authConfig())
			if err != nil {
				return err
			}

			member, err := client.AddMember(cmd.Context(), args[0], directory.MemberInput{
				Email:            args[1],
				Role:             role,
				Type:             memberType,
				DeliverySettings: deliverySettings,
			})
			if err != nil {
				return err
			}
			return printJSON(member)
		},
	}

	cmd.Flags().StringVar(&role, "role", directory.RoleMember, "The member's role: OWNER, MANAGER or MEMBER")
	cmd.Flags().StringVar(&memberType, "type", directory.DefaultMemberType, "The member type: USER, GROUP or CUSTOMER")
	cmd.Flags().StringVar(&deliverySettings, "delivery-settings", directory.DefaultDeliverySettings, "Mail delivery preference: ALL_MAIL, DAILY, DIGEST, DISABLED or NONE")

	return cmd
}

func newMembersGetCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "get <group-key> <member-key>",
		Short: "Get a group membership",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := directory.NewClient(cmd.Context(), authConfig())
			if err != nil {
				return err
			}

			member, err := client.GetMember(cmd.Context(), args[0], args[1])
			if err != nil {
				return err
			}
			return printJSON(member)
		},
	}
}

func newMembersUpdateCmd() *cobra.Command {
	var role, deliverySettings string

	cmd := &cobra.Command{
		Use:   "update <group-key> <member-key>",
		Short: "Update a membership's role or delivery settings",
		Long: `Update a membership's role or delivery settings. Fields not given keep
the member's current values.`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := directory.NewClient(cmd.Context(), authConfig())
			if err != nil {
				return err
			}

			member, err := client.UpdateMember(cmd.Context(), args[0], args[1], role, deliverySettings)
			if err != nil {
				return err
			}
			return printJSON(member)
		},
	}

	cmd.Flags().StringVar(&role, "role", "", "The member's new role: OWNER, MANAGER or MEMBER")
	cmd.Flags().StringVar(&deliverySettings, "delivery-settings", "", "New mail delivery preference")

	return cmd
}

func newMembersRemoveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "remove <group-key> <member-key>",
		Short: "Remove a member from a group",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := directory.NewClient(cmd.Context(), authConfig())
			if err != nil {
				return err
			}

			if err := client.RemoveMember(cmd.Context(), args[0], args[1]); err != nil {
				return err
			}

			fmt.Printf("Member %s removed from %s\n", args[1], args[0])
			return nil
		},
	}
}

func newMembersListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list <group-key>",
		Short: "List one page of a group's members",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := directory.NewClient(cmd.Context(), authConfig())
			if err != nil {
				return err
			}

			members, err := client.ListMembers(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			return printJSON(members)
		},
	}
}
