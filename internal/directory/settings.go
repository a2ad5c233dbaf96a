package directory

import (
	groupssettings "google.golang.org/api/groupssettings/v1"
)

// DefaultGroupSettings returns the preset applied by UpdateGroupSettings
// when the caller passes nil: a domain-internal, archived, manager-moderated
// group. Boolean settings are strings because that is how the Groups
// Settings API models them.
func DefaultGroupSettings() *groupssettings.Groups {
	return &groupssettings.Groups{
		Kind:                                    "groupsSettings#groups",
		WhoCanJoin:                              "CAN_REQUEST_TO_JOIN",
		WhoCanViewMembership:                    "ALL_IN_DOMAIN_CAN_VIEW",
		WhoCanViewGroup:                         "ALL_MEMBERS_CAN_VIEW",
		WhoCanInvite:                            "ALL_MANAGERS_CAN_INVITE",
		WhoCanAdd:                               "ALL_MANAGERS_CAN_ADD",
		AllowExternalMembers:                    "false",
		WhoCanPostMessage:                       "ANYONE_CAN_POST",
		AllowWebPosting:                         "false",
		MaxMessageBytes:                         26214400,
		IsArchived:                              "true",
		ArchiveOnly:                             "false",
		MessageModerationLevel:                  "MODERATE_NONE",
		SpamModerationLevel:                     "MODERATE",
		ReplyTo:                                 "REPLY_TO_IGNORE",
		CustomReplyTo:                           "",
		IncludeCustomFooter:                     "false",
		CustomFooterText:                        "",
		SendMessageDenyNotification:             "false",
		DefaultMessageDenyNotificationText:      "",
		ShowInGroupDirectory:                    "false",
		AllowGoogleCommunication:                "false",
		MembersCanPostAsTheGroup:                "false",
		MessageDisplayFont:                      "DEFAULT_FONT",
		IncludeInGlobalAddressList:              "true",
		WhoCanLeaveGroup:                        "ALL_MEMBERS_CAN_LEAVE",
		WhoCanContactOwner:                      "ALL_IN_DOMAIN_CAN_CONTACT",
		WhoCanAddReferences:                     "NONE",
		WhoCanAssignTopics:                      "NONE",
		WhoCanUnassignTopic:                     "NONE",
		WhoCanTakeTopics:                        "NONE",
		WhoCanMarkDuplicate:                     "NONE",
		WhoCanMarkNoResponseNeeded:              "NONE",
		WhoCanMarkFavoriteReplyOnAnyTopic:       "NONE",
		WhoCanMarkFavoriteReplyOnOwnTopic:       "NONE",
		WhoCanUnmarkFavoriteReplyOnAnyTopic:     "NONE",
		WhoCanEnterFreeFormTags:                 "NONE",
		WhoCanModifyTagsAndCategories:           "NONE",
		FavoriteRepliesOnTop:                    "false",
		WhoCanApproveMembers:                    "ALL_MANAGERS_CAN_APPROVE",
		WhoCanBanUsers:                          "OWNERS_AND_MANAGERS",
		WhoCanModifyMembers:                     "OWNERS_AND_MANAGERS",
		WhoCanApproveMessages:                   "OWNERS_AND_MANAGERS",
		WhoCanDeleteAnyPost:                     "OWNERS_AND_MANAGERS",
		WhoCanDeleteTopics:                      "OWNERS_AND_MANAGERS",
		WhoCanLockTopics:                        "OWNERS_AND_MANAGERS",
		WhoCanMoveTopicsIn:                      "OWNERS_AND_MANAGERS",
		WhoCanMoveTopicsOut:                     "OWNERS_AND_MANAGERS",
		WhoCanPostAnnouncements:                 "OWNERS_AND_MANAGERS",
		WhoCanHideAbuse:                         "NONE",
		WhoCanMakeTopicsSticky:                  "NONE",
		WhoCanModerateMembers:                   "OWNERS_AND_MANAGERS",
		WhoCanModerateContent:                   "OWNERS_AND_MANAGERS",
		WhoCanAssistContent:                     "NONE",
		CustomRolesEnabledForSettingsToBeMerged: "false",
		EnableCollaborativeInbox:                "false",
		WhoCanDiscoverGroup:                     "ALL_MEMBERS_CAN_DISCOVER",
	}
}
