package roster

import (
	"context"
	"errors"
	"log"

	"github.com/stbguild/guildhall/internal/common/clock"
	"github.com/stbguild/guildhall/internal/common/uuid"
	"github.com/stbguild/guildhall/internal/models"
	activityRepo "github.com/stbguild/guildhall/internal/repositories/activity"
	profileRepo "github.com/stbguild/guildhall/internal/repositories/profile"
	squadRepo "github.com/stbguild/guildhall/internal/repositories/squad"
	"github.com/stbguild/guildhall/internal/services/auth"
)

// Config holds configuration for the roster service
type Config struct {
	ProfileRepo  profileRepo.Repository
	SquadRepo    squadRepo.Repository
	ActivityRepo activityRepo.Repository
	Clock        clock.Clock
	UUID         uuid.UUID
}

// service implements the Service interface
type service struct {
	profileRepo  profileRepo.Repository
	squadRepo    squadRepo.Repository
	activityRepo activityRepo.Repository
	clock        clock.Clock
	uuid         uuid.UUID
}

// New creates a new roster service
func New(cfg *Config) (*service, error) {
	if cfg == nil {
		return nil, ErrNilConfig
	}

	if cfg.ProfileRepo == nil {
		return nil, ErrNilProfileRepo
	}

	if cfg.SquadRepo == nil {
		return nil, ErrNilSquadRepo
	}

	if cfg.ActivityRepo == nil {
		return nil, ErrNilActivityRepo
	}

	if cfg.Clock == nil {
		return nil, ErrNilClock
	}

	if cfg.UUID == nil {
		return nil, ErrNilUUIDGenerator
	}

	return &service{
		profileRepo:  cfg.ProfileRepo,
		squadRepo:    cfg.SquadRepo,
		activityRepo: cfg.ActivityRepo,
		clock:        cfg.Clock,
		uuid:         cfg.UUID,
	}, nil
}

// ListMembers returns all guild members. Any signed-in member may look
// at the roster.
func (s *service) ListMembers(ctx context.Context, input *ListMembersInput) (*ListMembersOutput, error) {
	if input == nil || input.Actor == nil {
		return nil, auth.ErrNotAuthenticated
	}

	out, err := s.profileRepo.ListProfiles(ctx, &profileRepo.ListProfilesInput{})
	if err != nil {
		return nil, err
	}

	return &ListMembersOutput{
		Members: out.Profiles,
	}, nil
}

// GetMember returns one member by ID
func (s *service) GetMember(ctx context.Context, input *GetMemberInput) (*GetMemberOutput, error) {
	if input == nil || input.Actor == nil {
		return nil, auth.ErrNotAuthenticated
	}

	member, err := s.getProfile(ctx, input.MemberID)
	if err != nil {
		return nil, err
	}

	return &GetMemberOutput{
		Member: member,
	}, nil
}

// AddMember registers a member directly. Members added this way have
// no credentials; they appear on the roster but cannot sign in until
// they register themselves.
func (s *service) AddMember(ctx context.Context, input *AddMemberInput) (*AddMemberOutput, error) {
	if input == nil {
		return nil, auth.ErrNotAuthenticated
	}

	if err := requireCapability(input.Actor, models.CapabilityManageMembers); err != nil {
		return nil, err
	}

	role := input.Role
	if role == "" {
		role = models.RoleMember
	}
	if !role.Valid() {
		return nil, ErrInvalidRole
	}

	now := s.clock.Now()
	member := &models.Profile{
		ID:          s.uuid.NewUUID(),
		FullName:    input.FullName,
		GameID:      input.GameID,
		Role:        role,
		Permissions: &models.Permissions{},
		Status:      models.ProfileStatusActive,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	err := s.profileRepo.SaveProfile(ctx, &profileRepo.SaveProfileInput{
		Profile: member,
	})
	if err != nil {
		return nil, err
	}

	s.recordActivity(ctx, "member added", input.Actor.UserID, map[string]string{
		"member_id": member.ID,
	})

	return &AddMemberOutput{
		Member: member,
	}, nil
}

// UpdateMember edits a member's details
func (s *service) UpdateMember(ctx context.Context, input *UpdateMemberInput) (*UpdateMemberOutput, error) {
	if input == nil {
		return nil, auth.ErrNotAuthenticated
	}

	if err := requireCapability(input.Actor, models.CapabilityManageMembers); err != nil {
		return nil, err
	}

	member, err := s.getProfile(ctx, input.MemberID)
	if err != nil {
		return nil, err
	}

	if input.FullName != "" {
		member.FullName = input.FullName
	}
	if input.GameID != "" {
		member.GameID = input.GameID
	}
	if input.Stats != nil {
		member.Stats = input.Stats
	}
	member.UpdatedAt = s.clock.Now()

	err = s.profileRepo.SaveProfile(ctx, &profileRepo.SaveProfileInput{
		Profile: member,
	})
	if err != nil {
		return nil, err
	}

	s.recordActivity(ctx, "member updated", input.Actor.UserID, map[string]string{
		"member_id": member.ID,
	})

	return &UpdateMemberOutput{
		Member: member,
	}, nil
}

// UpdateRole changes a member's role and capability grants. Only the
// super admin may do this; the check runs here, not in any client.
func (s *service) UpdateRole(ctx context.Context, input *UpdateRoleInput) (*UpdateRoleOutput, error) {
	if input == nil {
		return nil, auth.ErrNotAuthenticated
	}

	if input.Actor == nil {
		return nil, auth.ErrNotAuthenticated
	}

	if err := input.Actor.RequireRole(models.RoleSuperAdmin); err != nil {
		return nil, err
	}

	if !input.Role.Valid() {
		return nil, ErrInvalidRole
	}

	member, err := s.getProfile(ctx, input.MemberID)
	if err != nil {
		return nil, err
	}

	member.Role = input.Role
	member.Permissions = input.Permissions
	member.UpdatedAt = s.clock.Now()

	err = s.profileRepo.SaveProfile(ctx, &profileRepo.SaveProfileInput{
		Profile: member,
	})
	if err != nil {
		return nil, err
	}

	s.recordActivity(ctx, "role updated", input.Actor.UserID, map[string]string{
		"member_id": member.ID,
		"role":      string(input.Role),
	})

	return &UpdateRoleOutput{
		Member: member,
	}, nil
}

// SetBanned bans or unbans a member. Banning does not revoke sessions
// the member already holds; it blocks the next sign-in.
func (s *service) SetBanned(ctx context.Context, input *SetBannedInput) (*SetBannedOutput, error) {
	if input == nil {
		return nil, auth.ErrNotAuthenticated
	}

	if err := requireCapability(input.Actor, models.CapabilityManageMembers); err != nil {
		return nil, err
	}

	member, err := s.getProfile(ctx, input.MemberID)
	if err != nil {
		return nil, err
	}

	action := "member unbanned"
	member.Status = models.ProfileStatusActive
	if input.Banned {
		action = "member banned"
		member.Status = models.ProfileStatusBanned
	}
	member.UpdatedAt = s.clock.Now()

	err = s.profileRepo.SaveProfile(ctx, &profileRepo.SaveProfileInput{
		Profile: member,
	})
	if err != nil {
		return nil, err
	}

	s.recordActivity(ctx, action, input.Actor.UserID, map[string]string{
		"member_id": member.ID,
	})

	return &SetBannedOutput{
		Member: member,
	}, nil
}

// CreateSquad creates a new squad
func (s *service) CreateSquad(ctx context.Context, input *CreateSquadInput) (*CreateSquadOutput, error) {
	if input == nil {
		return nil, auth.ErrNotAuthenticated
	}

	if err := requireCapability(input.Actor, models.CapabilityBuildSquads); err != nil {
		return nil, err
	}

	if input.SquadName == "" {
		return nil, ErrEmptySquadName
	}

	squad := &models.Squad{
		ID:        s.uuid.NewUUID(),
		SquadName: input.SquadName,
		LeaderID:  input.LeaderID,
		CreatedAt: s.clock.Now(),
	}

	err := s.squadRepo.SaveSquad(ctx, &squadRepo.SaveSquadInput{
		Squad: squad,
	})
	if err != nil {
		return nil, err
	}

	s.recordActivity(ctx, "squad created", input.Actor.UserID, map[string]string{
		"squad_id":   squad.ID,
		"squad_name": squad.SquadName,
	})

	return &CreateSquadOutput{
		Squad: squad,
	}, nil
}

// ListSquads returns all squads
func (s *service) ListSquads(ctx context.Context, input *ListSquadsInput) (*ListSquadsOutput, error) {
	if input == nil || input.Actor == nil {
		return nil, auth.ErrNotAuthenticated
	}

	out, err := s.squadRepo.ListSquads(ctx, &squadRepo.ListSquadsInput{})
	if err != nil {
		return nil, err
	}

	return &ListSquadsOutput{
		Squads: out.Squads,
	}, nil
}

// AssignToSquad moves a member into a squad, keeping the denormalized
// member counts on both squads in step
func (s *service) AssignToSquad(ctx context.Context, input *AssignToSquadInput) (*AssignToSquadOutput, error) {
	if input == nil {
		return nil, auth.ErrNotAuthenticated
	}

	if err := requireCapability(input.Actor, models.CapabilityBuildSquads); err != nil {
		return nil, err
	}

	member, err := s.getProfile(ctx, input.MemberID)
	if err != nil {
		return nil, err
	}

	if member.SquadID == input.SquadID {
		return &AssignToSquadOutput{Member: member}, nil
	}

	// The destination must exist before anything moves
	var destination *models.Squad
	if input.SquadID != "" {
		destination, err = s.squadRepo.GetSquad(ctx, &squadRepo.GetSquadInput{
			SquadID: input.SquadID,
		})
		if err != nil {
			if errors.Is(err, squadRepo.ErrSquadNotFound) {
				return nil, ErrSquadNotFound
			}
			return nil, err
		}
	}

	previousSquadID := member.SquadID

	err = s.profileRepo.UpdateProfileSquad(ctx, &profileRepo.UpdateProfileSquadInput{
		ProfileID: member.ID,
		SquadID:   input.SquadID,
	})
	if err != nil {
		return nil, err
	}
	member.SquadID = input.SquadID

	if previousSquadID != "" {
		if err := s.adjustSquadCount(ctx, previousSquadID, -1); err != nil {
			return nil, err
		}
	}

	if destination != nil {
		destination.MembersCount++
		err = s.squadRepo.SaveSquad(ctx, &squadRepo.SaveSquadInput{
			Squad: destination,
		})
		if err != nil {
			return nil, err
		}
	}

	s.recordActivity(ctx, "member assigned to squad", input.Actor.UserID, map[string]string{
		"member_id": member.ID,
		"squad_id":  input.SquadID,
	})

	return &AssignToSquadOutput{
		Member: member,
	}, nil
}

// SetSquadLeader assigns or clears a squad's leader
func (s *service) SetSquadLeader(ctx context.Context, input *SetSquadLeaderInput) (*SetSquadLeaderOutput, error) {
	if input == nil {
		return nil, auth.ErrNotAuthenticated
	}

	if err := requireCapability(input.Actor, models.CapabilityBuildSquads); err != nil {
		return nil, err
	}

	squad, err := s.squadRepo.GetSquad(ctx, &squadRepo.GetSquadInput{
		SquadID: input.SquadID,
	})
	if err != nil {
		if errors.Is(err, squadRepo.ErrSquadNotFound) {
			return nil, ErrSquadNotFound
		}
		return nil, err
	}

	if input.LeaderID != "" {
		if _, err := s.getProfile(ctx, input.LeaderID); err != nil {
			return nil, err
		}
	}

	squad.LeaderID = input.LeaderID

	err = s.squadRepo.SaveSquad(ctx, &squadRepo.SaveSquadInput{
		Squad: squad,
	})
	if err != nil {
		return nil, err
	}

	s.recordActivity(ctx, "squad leader assigned", input.Actor.UserID, map[string]string{
		"squad_id":  squad.ID,
		"leader_id": input.LeaderID,
	})

	return &SetSquadLeaderOutput{
		Squad: squad,
	}, nil
}

// getProfile fetches a profile, mapping the repo's not-found error
func (s *service) getProfile(ctx context.Context, memberID string) (*models.Profile, error) {
	member, err := s.profileRepo.GetProfile(ctx, &profileRepo.GetProfileInput{
		ProfileID: memberID,
	})
	if err != nil {
		if errors.Is(err, profileRepo.ErrProfileNotFound) {
			return nil, ErrMemberNotFound
		}
		return nil, err
	}
	return member, nil
}

// adjustSquadCount shifts a squad's denormalized member count
func (s *service) adjustSquadCount(ctx context.Context, squadID string, delta int) error {
	squad, err := s.squadRepo.GetSquad(ctx, &squadRepo.GetSquadInput{
		SquadID: squadID,
	})
	if err != nil {
		if errors.Is(err, squadRepo.ErrSquadNotFound) {
			// The old squad is gone; nothing to adjust
			return nil
		}
		return err
	}

	squad.MembersCount += delta
	if squad.MembersCount < 0 {
		squad.MembersCount = 0
	}

	return s.squadRepo.SaveSquad(ctx, &squadRepo.SaveSquadInput{
		Squad: squad,
	})
}

// recordActivity appends an audit entry; failures are logged, never fatal
func (s *service) recordActivity(ctx context.Context, action, actorID string, details map[string]string) {
	err := s.activityRepo.AppendEntry(ctx, &activityRepo.AppendEntryInput{
		Entry: &models.ActivityEntry{
			ID:        s.uuid.NewUUID(),
			Module:    "members",
			Action:    action,
			ActorID:   actorID,
			Details:   details,
			CreatedAt: s.clock.Now(),
		},
	})
	if err != nil {
		log.Printf("Failed to record activity: %v", err)
	}
}

// requireCapability gates a mutation on a capability grant
func requireCapability(actor *auth.Actor, c models.Capability) error {
	if actor == nil {
		return auth.ErrNotAuthenticated
	}
	if !actor.CanAccess(c) {
		return auth.ErrForbidden
	}
	return nil
}
