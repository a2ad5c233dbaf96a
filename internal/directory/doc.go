// Package directory provides a client for managing Google Workspace groups.
//
// This package wraps the Admin SDK Directory API (admin/directory/v1) and
// the Groups Settings API (groupssettings/v1) and provides functionality
// for:
//   - Managing groups (create, get, delete)
//   - Managing group memberships (add, get, update, remove, list)
//   - Patching group settings, with a conservative default preset
//
// Every method is a single REST call. Responses are returned exactly as the
// API delivered them, and API errors propagate unchanged (a *googleapi.Error
// stays reachable through errors.As). List operations return a single page.
//
// # Authentication
//
// A client is constructed from an auth.Config and requests the Directory
// group, group member and groups settings scopes. Both interactive and
// service account modes work; group administration typically runs under a
// service account with domain-wide delegation.
//
// # Example Usage
//
//	client, err := directory.NewClient(ctx, &auth.Config{
//	    Mode:          auth.ModeServiceAccount,
//	    ClientSecrets: "/etc/gsuite/key.json",
//	    Subject:       "admin@example.com",
//	})
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	group, err := client.CreateGroup(ctx, "team@example.com", "Team", "The team")
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	_, err = client.AddMember(ctx, group.Email, directory.MemberInput{
//	    Email: "alice@example.com",
//	    Role:  directory.RoleMember,
//	})
package directory
