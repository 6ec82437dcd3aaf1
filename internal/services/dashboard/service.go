package dashboard

import (
	"context"
	"errors"

	"github.com/stbguild/guildhall/internal/models"
	activityRepo "github.com/stbguild/guildhall/internal/repositories/activity"
	boardRepo "github.com/stbguild/guildhall/internal/repositories/board"
	profileRepo "github.com/stbguild/guildhall/internal/repositories/profile"
	squadRepo "github.com/stbguild/guildhall/internal/repositories/squad"
	tournamentRepo "github.com/stbguild/guildhall/internal/repositories/tournament"
	"github.com/stbguild/guildhall/internal/services/auth"
)

const recentNoticeCount = 5

// Config holds configuration for the dashboard service
type Config struct {
	ProfileRepo    profileRepo.Repository
	SquadRepo      squadRepo.Repository
	TournamentRepo tournamentRepo.Repository
	BoardRepo      boardRepo.Repository
	ActivityRepo   activityRepo.Repository
}

// service implements the Service interface
type service struct {
	profileRepo    profileRepo.Repository
	squadRepo      squadRepo.Repository
	tournamentRepo tournamentRepo.Repository
	boardRepo      boardRepo.Repository
	activityRepo   activityRepo.Repository
}

// New creates a new dashboard service
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

	if cfg.TournamentRepo == nil {
		return nil, ErrNilTournamentRepo
	}

	if cfg.BoardRepo == nil {
		return nil, ErrNilBoardRepo
	}

	if cfg.ActivityRepo == nil {
		return nil, ErrNilActivityRepo
	}

	return &service{
		profileRepo:    cfg.ProfileRepo,
		squadRepo:      cfg.SquadRepo,
		tournamentRepo: cfg.TournamentRepo,
		boardRepo:      cfg.BoardRepo,
		activityRepo:   cfg.ActivityRepo,
	}, nil
}

// GetOverview returns the numbers shown on the dashboard home
func (s *service) GetOverview(ctx context.Context, input *GetOverviewInput) (*GetOverviewOutput, error) {
	if input == nil || input.Actor == nil {
		return nil, auth.ErrNotAuthenticated
	}

	profiles, err := s.profileRepo.ListProfiles(ctx, &profileRepo.ListProfilesInput{})
	if err != nil {
		return nil, err
	}

	squads, err := s.squadRepo.ListSquads(ctx, &squadRepo.ListSquadsInput{})
	if err != nil {
		return nil, err
	}

	slots, err := s.tournamentRepo.CountSlots(ctx, &tournamentRepo.CountSlotsInput{})
	if err != nil {
		return nil, err
	}

	config, err := s.boardRepo.GetGuildConfig(ctx)
	if err != nil {
		if !errors.Is(err, boardRepo.ErrConfigNotFound) {
			return nil, err
		}
		config = &models.GuildConfig{}
	}

	notices, err := s.boardRepo.ListNotices(ctx, &boardRepo.ListNoticesInput{
		Limit: recentNoticeCount,
	})
	if err != nil {
		return nil, err
	}

	return &GetOverviewOutput{
		MemberCount:   len(profiles.Profiles),
		SquadCount:    len(squads.Squads),
		SlotsBooked:   slots.Count,
		GuildConfig:   config,
		RecentNotices: notices.Notices,
	}, nil
}

// ListActivity returns recent audited actions. The audit trail is an
// admin surface.
func (s *service) ListActivity(ctx context.Context, input *ListActivityInput) (*ListActivityOutput, error) {
	if input == nil || input.Actor == nil {
		return nil, auth.ErrNotAuthenticated
	}

	if !input.Actor.IsAdmin() {
		return nil, auth.ErrForbidden
	}

	out, err := s.activityRepo.ListEntries(ctx, &activityRepo.ListEntriesInput{
		Limit: input.Limit,
	})
	if err != nil {
		return nil, err
	}

	return &ListActivityOutput{
		Entries: out.Entries,
	}, nil
}
