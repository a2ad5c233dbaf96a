package directory

import (
	"context"
	"fmt"
	"log/slog"

	admin "google.golang.org/api/admin/directory/v1"
	groupssettings "google.golang.org/api/groupssettings/v1"
	"google.golang.org/api/option"

	"github.com/traveloka/gsuite-go/internal/auth"
	"github.com/traveloka/gsuite-go/internal/logging"
)

// Scopes are the OAuth2 scopes the Directory client requests. Changing
// these invalidates a previously cached interactive token.
var Scopes = []string{
	admin.AdminDirectoryGroupScope,
	admin.AdminDirectoryGroupMemberScope,
	groupssettings.AppsGroupsSettingsScope,
}

// Member roles accepted by AddMember and UpdateMember.
const (
	RoleOwner   = "OWNER"
	RoleManager = "MANAGER"
	RoleMember  = "MEMBER"
)

// Defaults applied by AddMember when the caller leaves the field empty.
const (
	DefaultMemberType       = "USER"
	DefaultDeliverySettings = "ALL_MAIL"
)

// Client wraps the Admin SDK Directory and Groups Settings services for
// group and membership management. Each method maps to a single REST call;
// responses are returned as the API delivered them and errors propagate
// unchanged. No retries or pagination looping.
type Client struct {
	directory *admin.Service
	settings  *groupssettings.Service
	logger    *slog.Logger
}

// NewClient authorizes with cfg (requesting Scopes) and builds the
// underlying Directory and Groups Settings services.
func NewClient(ctx context.Context, cfg *auth.Config, opts ...option.ClientOption) (*Client, error) {
	cfg.Scopes = Scopes

	httpClient, err := cfg.Client(ctx)
	if err != nil {
		return nil, err
	}

	return newClient(ctx, append([]option.ClientOption{option.WithHTTPClient(httpClient)}, opts...)...)
}

func newClient(ctx context.Context, opts ...option.ClientOption) (*Client, error) {
	directorySvc, err := admin.NewService(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to create Directory service: %w", err)
	}

	settingsSvc, err := groupssettings.NewService(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to create Groups Settings service: %w", err)
	}

	return &Client{
		directory: directorySvc,
		settings:  settingsSvc,
		logger:    logging.WithService(slog.Default(), "directory"),
	}, nil
}

// CreateGroup creates a group with the given email address, display name
// and description.
func (c *Client) CreateGroup(ctx context.Context, email, name, description string) (*admin.Group, error) {
	group := &admin.Group{
		Email:       email,
		Name:        name,
		Description: description,
	}

	created, err := c.directory.Groups.Insert(group).Context(ctx).Do()
	if err != nil {
		return nil, fmt.Errorf("failed to create group: %w", err)
	}

	c.logger.Info("group created", logging.Operation("groups.insert"), logging.Group(email))
	return created, nil
}

// GetGroup retrieves a group. groupKey can be the group's email address,
// alias, or unique ID.
func (c *Client) GetGroup(ctx context.Context, groupKey string) (*admin.Group, error) {
	group, err := c.directory.Groups.Get(groupKey).Context(ctx).Do()
	if err != nil {
		return nil, fmt.Errorf("failed to get group: %w", err)
	}
	return group, nil
}

// DeleteGroup deletes a group.
func (c *Client) DeleteGroup(ctx context.Context, groupKey string) error {
	if err := c.directory.Groups.Delete(groupKey).Context(ctx).Do(); err != nil {
		return fmt.Errorf("failed to delete group: %w", err)
	}

	c.logger.Info("group deleted", logging.Operation("groups.delete"), logging.Group(groupKey))
	return nil
}

// UpdateGroupSettings patches the settings of the group identified by its
// email address. A nil settings value applies DefaultGroupSettings.
func (c *Client) UpdateGroupSettings(ctx context.Context, groupEmail string, settings *groupssettings.Groups) (*groupssettings.Groups, error) {
	if settings == nil {
		settings = DefaultGroupSettings()
	}

	updated, err := c.settings.Groups.Patch(groupEmail, settings).Context(ctx).Do()
	if err != nil {
		return nil, fmt.Errorf("failed to update group settings: %w", err)
	}

	c.logger.Info("group settings updated", logging.Operation("groupsSettings.patch"), logging.Group(groupEmail))
	return updated, nil
}

// GetMember retrieves a membership. memberKey can be the member's primary
// email address, alias, or unique ID; a member can be a user or another
// group.
func (c *Client) GetMember(ctx context.Context, groupKey, memberKey string) (*admin.Member, error) {
	member, err := c.directory.Members.Get(groupKey, memberKey).Context(ctx).Do()
	if err != nil {
		return nil, fmt.Errorf("failed to get member: %w", err)
	}
	return member, nil
}

// MemberInput carries the fields for adding a member to a group. Email and
// Role are required; Type defaults to USER and DeliverySettings to
// ALL_MAIL.
type MemberInput struct {
	Email            string
	Role             string
	Type             string
	DeliverySettings string
}

// AddMember adds a user or group to the specified group.
func (c *Client) AddMember(ctx context.Context, groupKey string, input MemberInput) (*admin.Member, error) {
	if input.Type == "" {
		input.Type = DefaultMemberType
	}
	if input.DeliverySettings == "" {
		input.DeliverySettings = DefaultDeliverySettings
	}

	member := &admin.Member{
		Email:            input.Email,
		Role:             input.Role,
		Type:             input.Type,
		DeliverySettings: input.DeliverySettings,
	}

	added, err := c.directory.Members.Insert(groupKey, member).Context(ctx).Do()
	if err != nil {
		return nil, fmt.Errorf("failed to add member: %w", err)
	}

	c.logger.Info("member added", logging.Operation("members.insert"),
		logging.Group(groupKey), logging.Member(input.Email))
	return added, nil
}

// UpdateMember patches a membership's role and delivery settings. Empty
// arguments keep the member's current values, which requires reading the
// existing membership first.
func (c *Client) UpdateMember(ctx context.Context, groupKey, memberKey, role, deliverySettings string) (*admin.Member, error) {
	existing, err := c.GetMember(ctx, groupKey, memberKey)
	if err != nil {
		return nil, err
	}

	if role == "" {
		role = existing.Role
	}
	if deliverySettings == "" {
		deliverySettings = existing.DeliverySettings
	}

	patch := &admin.Member{
		Role:             role,
		DeliverySettings: deliverySettings,
	}

	updated, err := c.directory.Members.Patch(groupKey, memberKey, patch).Context(ctx).Do()
	if err != nil {
		return nil, fmt.Errorf("failed to update member: %w", err)
	}

	c.logger.Info("member updated", logging.Operation("members.patch"),
		logging.Group(groupKey), logging.Member(memberKey))
	return updated, nil
}

// RemoveMember removes a member from a group.
func (c *Client) RemoveMember(ctx context.Context, groupKey, memberKey string) error {
	if err := c.directory.Members.Delete(groupKey, memberKey).Context(ctx).Do(); err != nil {
		return fmt.Errorf("failed to remove member: %w", err)
	}

	c.logger.Info("member removed", logging.Operation("members.delete"),
		logging.Group(groupKey), logging.Member(memberKey))
	return nil
}

// ListMembers retrieves one page of a group's members. The response carries
// NextPageToken when more pages exist; no pagination looping happens here.
func (c *Client) ListMembers(ctx context.Context, groupKey string) (*admin.Members, error) {
	members, err := c.directory.Members.List(groupKey).Context(ctx).Do()
	if err != nil {
		return nil, fmt.Errorf("failed to list members: %w", err)
	}
	return members, nil
}
