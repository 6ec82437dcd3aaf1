package roster

import (
	"github.com/stbguild/guildhall/internal/models"
	"github.com/stbguild/guildhall/internal/services/auth"
)

// ListMembersInput contains parameters for listing members
type ListMembersInput struct {
	Actor *auth.Actor
}

// ListMembersOutput contains the result of listing members
type ListMembersOutput struct {
	Members []*models.Profile
}

// GetMemberInput contains parameters for retrieving a member
type GetMemberInput struct {
	Actor    *auth.Actor
	MemberID string
}

// GetMemberOutput contains the result of retrieving a member
type GetMemberOutput struct {
	Member *models.Profile
}

// AddMemberInput contains parameters for registering a member directly,
// without the member going through sign-up
type AddMemberInput struct {
	Actor    *auth.Actor
	FullName string
	GameID   string

	// Role defaults to member when empty
	Role models.Role
}

// AddMemberOutput contains the result of registering a member
type AddMemberOutput struct {
	Member *models.Profile
}

// UpdateMemberInput contains parameters for editing a member
type UpdateMemberInput struct {
	Actor    *auth.Actor
	MemberID string
	FullName string
	GameID   string

	// Stats replaces the member's recorded stats when non-nil
	Stats *models.PlayerStats
}

// UpdateMemberOutput contains the result of editing a member
type UpdateMemberOutput struct {
	Member *models.Profile
}

// UpdateRoleInput contains parameters for changing a member's role
type UpdateRoleInput struct {
	Actor    *auth.Actor
	MemberID string
	Role     models.Role

	// Permissions replaces the member's capability bag; nil clears it
	Permissions *models.Permissions
}

// UpdateRoleOutput contains the result of changing a member's role
type UpdateRoleOutput struct {
	Member *models.Profile
}

// SetBannedInput contains parameters for banning or unbanning a member
type SetBannedInput struct {
	Actor    *auth.Actor
	MemberID string
	Banned   bool
}

// SetBannedOutput contains the result of banning or unbanning a member
type SetBannedOutput struct {
	Member *models.Profile
}

// CreateSquadInput contains parameters for creating a squad
type CreateSquadInput struct {
	Actor     *auth.Actor
	SquadName string
	LeaderID  string
}

// CreateSquadOutput contains the result of creating a squad
type CreateSquadOutput struct {
	Squad *models.Squad
}

// ListSquadsInput contains parameters for listing squads
type ListSquadsInput struct {
	Actor *auth.Actor
}

// ListSquadsOutput contains the result of listing squads
type ListSquadsOutput struct {
	Squads []*models.Squad
}

// AssignToSquadInput contains parameters for moving a member between squads
type AssignToSquadInput struct {
	Actor    *auth.Actor
	MemberID string

	// SquadID is the destination squad; empty removes the member from
	// their current squad
	SquadID string
}

// AssignToSquadOutput contains the result of moving a member
type AssignToSquadOutput struct {
	Member *models.Profile
}

// SetSquadLeaderInput contains parameters for assigning a squad leader
type SetSquadLeaderInput struct {
	Actor   *auth.Actor
	SquadID string

	// LeaderID is the new leader's profile ID; empty clears the leader
	LeaderID string
}

// SetSquadLeaderOutput contains the result of assigning a squad leader
type SetSquadLeaderOutput struct {
	Squad *models.Squad
}
