package roster

import "context"

//go:generate mockgen -package=mocks -destination=mocks/mock_service.go github.com/stbguild/guildhall/internal/services/roster Service

// Service defines the interface for roster operations
type Service interface {
	// ListMembers returns all guild members
	ListMembers(ctx context.Context, input *ListMembersInput) (*ListMembersOutput, error)

	// GetMember returns one member by ID
	GetMember(ctx context.Context, input *GetMemberInput) (*GetMemberOutput, error)

	// AddMember registers a member directly, without sign-up
	AddMember(ctx context.Context, input *AddMemberInput) (*AddMemberOutput, error)

	// UpdateMember edits a member's details
	UpdateMember(ctx context.Context, input *UpdateMemberInput) (*UpdateMemberOutput, error)

	// UpdateRole changes a member's role and capability grants
	UpdateRole(ctx context.Context, input *UpdateRoleInput) (*UpdateRoleOutput, error)

	// SetBanned bans or unbans a member
	SetBanned(ctx context.Context, input *SetBannedInput) (*SetBannedOutput, error)

	// CreateSquad creates a new squad
	CreateSquad(ctx context.Context, input *CreateSquadInput) (*CreateSquadOutput, error)

	// ListSquads returns all squads
	ListSquads(ctx context.Context, input *ListSquadsInput) (*ListSquadsOutput, error)

	// AssignToSquad moves a member into a squad, or out of all squads
	AssignToSquad(ctx context.Context, input *AssignToSquadInput) (*AssignToSquadOutput, error)

	// SetSquadLeader assigns or clears a squad's leader
	SetSquadLeader(ctx context.Context, input *SetSquadLeaderInput) (*SetSquadLeaderOutput, error)
}
