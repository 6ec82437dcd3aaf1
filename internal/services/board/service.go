package board

import (
	"context"
	"errors"
	"log"

	"github.com/stbguild/guildhall/internal/common/clock"
	"github.com/stbguild/guildhall/internal/common/uuid"
	"github.com/stbguild/guildhall/internal/models"
	activityRepo "github.com/stbguild/guildhall/internal/repositories/activity"
	boardRepo "github.com/stbguild/guildhall/internal/repositories/board"
	"github.com/stbguild/guildhall/internal/services/auth"
)

const defaultSiteName = "Guild Hall"

// Config holds configuration for the board service
type Config struct {
	BoardRepo    boardRepo.Repository
	ActivityRepo activityRepo.Repository
	Clock        clock.Clock
	UUID         uuid.UUID

	// Announcer receives urgent notices; optional
	Announcer Announcer
}

// service implements the Service interface
type service struct {
	boardRepo    boardRepo.Repository
	activityRepo activityRepo.Repository
	clock        clock.Clock
	uuid         uuid.UUID
	announcer    Announcer
}

// New creates a new board service
func New(cfg *Config) (*service, error) {
	if cfg == nil {
		return nil, ErrNilConfig
	}

	if cfg.BoardRepo == nil {
		return nil, ErrNilBoardRepo
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
		boardRepo:    cfg.BoardRepo,
		activityRepo: cfg.ActivityRepo,
		clock:        cfg.Clock,
		uuid:         cfg.UUID,
		announcer:    cfg.Announcer,
	}, nil
}

// PostNotice publishes a notice. Urgent notices also go out through
// the announcer when one is configured; a failed announcement never
// fails the post.
func (s *service) PostNotice(ctx context.Context, input *PostNoticeInput) (*PostNoticeOutput, error) {
	if input == nil || input.Actor == nil {
		return nil, auth.ErrNotAuthenticated
	}

	if !input.Actor.CanAccess(models.CapabilityPostNotices) {
		return nil, auth.ErrForbidden
	}

	if input.Title == "" {
		return nil, ErrEmptyTitle
	}

	switch input.Type {
	case models.NoticeTypeGeneral, models.NoticeTypeImportant, models.NoticeTypeUrgent:
	default:
		return nil, ErrInvalidType
	}

	notice := &models.Notice{
		ID:        s.uuid.NewUUID(),
		Title:     input.Title,
		Content:   input.Content,
		Type:      input.Type,
		AuthorID:  input.Actor.UserID,
		CreatedAt: s.clock.Now(),
	}

	err := s.boardRepo.SaveNotice(ctx, &boardRepo.SaveNoticeInput{
		Notice: notice,
	})
	if err != nil {
		return nil, err
	}

	if notice.Type == models.NoticeTypeUrgent && s.announcer != nil {
		if err := s.announcer.Announce(ctx, notice); err != nil {
			log.Printf("Failed to announce urgent notice %s: %v", notice.ID, err)
		}
	}

	s.recordActivity(ctx, "notice posted", input.Actor.UserID, map[string]string{
		"notice_id": notice.ID,
		"type":      string(notice.Type),
	})

	return &PostNoticeOutput{
		Notice: notice,
	}, nil
}

// ListNotices returns notices, newest first
func (s *service) ListNotices(ctx context.Context, input *ListNoticesInput) (*ListNoticesOutput, error) {
	if input == nil || input.Actor == nil {
		return nil, auth.ErrNotAuthenticated
	}

	out, err := s.boardRepo.ListNotices(ctx, &boardRepo.ListNoticesInput{
		Limit: input.Limit,
	})
	if err != nil {
		return nil, err
	}

	return &ListNoticesOutput{
		Notices: out.Notices,
	}, nil
}

// CreateEvent schedules a guild event
func (s *service) CreateEvent(ctx context.Context, input *CreateEventInput) (*CreateEventOutput, error) {
	if input == nil || input.Actor == nil {
		return nil, auth.ErrNotAuthenticated
	}

	if !input.Actor.IsAdmin() {
		return nil, auth.ErrForbidden
	}

	if input.Title == "" {
		return nil, ErrEmptyTitle
	}

	status := input.Status
	if status == "" {
		status = models.EventStatusUpcoming
	}

	event := &models.Event{
		ID:          s.uuid.NewUUID(),
		Title:       input.Title,
		Description: input.Description,
		EventDate:   input.EventDate,
		Status:      status,
		CreatedAt:   s.clock.Now(),
	}

	err := s.boardRepo.SaveEvent(ctx, &boardRepo.SaveEventInput{
		Event: event,
	})
	if err != nil {
		return nil, err
	}

	s.recordActivity(ctx, "event created", input.Actor.UserID, map[string]string{
		"event_id": event.ID,
		"title":    event.Title,
	})

	return &CreateEventOutput{
		Event: event,
	}, nil
}

// ListEvents returns events, newest first
func (s *service) ListEvents(ctx context.Context, input *ListEventsInput) (*ListEventsOutput, error) {
	if input == nil || input.Actor == nil {
		return nil, auth.ErrNotAuthenticated
	}

	out, err := s.boardRepo.ListEvents(ctx, &boardRepo.ListEventsInput{})
	if err != nil {
		return nil, err
	}

	return &ListEventsOutput{
		Events: out.Events,
	}, nil
}

// DeleteEvent removes a guild event
func (s *service) DeleteEvent(ctx context.Context, input *DeleteEventInput) (*DeleteEventOutput, error) {
	if input == nil || input.Actor == nil {
		return nil, auth.ErrNotAuthenticated
	}

	if !input.Actor.IsAdmin() {
		return nil, auth.ErrForbidden
	}

	err := s.boardRepo.DeleteEvent(ctx, &boardRepo.DeleteEventInput{
		EventID: input.EventID,
	})
	if err != nil {
		return nil, err
	}

	s.recordActivity(ctx, "event deleted", input.Actor.UserID, map[string]string{
		"event_id": input.EventID,
	})

	return &DeleteEventOutput{}, nil
}

// AddRule appends a rule to the guild rulebook
func (s *service) AddRule(ctx context.Context, input *AddRuleInput) (*AddRuleOutput, error) {
	if input == nil || input.Actor == nil {
		return nil, auth.ErrNotAuthenticated
	}

	if !input.Actor.CanAccess(models.CapabilityEditSite) {
		return nil, auth.ErrForbidden
	}

	if input.RuleText == "" {
		return nil, ErrEmptyRuleText
	}

	rule := &models.GuildRule{
		ID:        s.uuid.NewUUID(),
		RuleText:  input.RuleText,
		Category:  input.Category,
		CreatedAt: s.clock.Now(),
	}

	err := s.boardRepo.SaveRule(ctx, &boardRepo.SaveRuleInput{
		Rule: rule,
	})
	if err != nil {
		return nil, err
	}

	s.recordActivity(ctx, "rule added", input.Actor.UserID, map[string]string{
		"rule_id": rule.ID,
	})

	return &AddRuleOutput{
		Rule: rule,
	}, nil
}

// ListRules returns the rulebook in insertion order
func (s *service) ListRules(ctx context.Context, input *ListRulesInput) (*ListRulesOutput, error) {
	if input == nil || input.Actor == nil {
		return nil, auth.ErrNotAuthenticated
	}

	out, err := s.boardRepo.ListRules(ctx, &boardRepo.ListRulesInput{})
	if err != nil {
		return nil, err
	}

	return &ListRulesOutput{
		Rules: out.Rules,
	}, nil
}

// DeleteRule removes a rule from the rulebook
func (s *service) DeleteRule(ctx context.Context, input *DeleteRuleInput) (*DeleteRuleOutput, error) {
	if input == nil || input.Actor == nil {
		return nil, auth.ErrNotAuthenticated
	}

	if !input.Actor.CanAccess(models.CapabilityEditSite) {
		return nil, auth.ErrForbidden
	}

	err := s.boardRepo.DeleteRule(ctx, &boardRepo.DeleteRuleInput{
		RuleID: input.RuleID,
	})
	if err != nil {
		return nil, err
	}

	s.recordActivity(ctx, "rule deleted", input.Actor.UserID, map[string]string{
		"rule_id": input.RuleID,
	})

	return &DeleteRuleOutput{}, nil
}

// GetSiteSettings returns the presentation settings. The login page
// needs these before anyone signs in, so there is no gate; missing
// settings fall back to defaults.
func (s *service) GetSiteSettings(ctx context.Context, input *GetSiteSettingsInput) (*GetSiteSettingsOutput, error) {
	settings, err := s.boardRepo.GetSiteSettings(ctx)
	if err != nil {
		if errors.Is(err, boardRepo.ErrSettingsNotFound) {
			return &GetSiteSettingsOutput{
				Settings: &models.SiteSettings{SiteName: defaultSiteName},
			}, nil
		}
		return nil, err
	}

	return &GetSiteSettingsOutput{
		Settings: settings,
	}, nil
}

// UpdateSiteSettings replaces the presentation settings
func (s *service) UpdateSiteSettings(ctx context.Context, input *UpdateSiteSettingsInput) (*UpdateSiteSettingsOutput, error) {
	if input == nil || input.Actor == nil {
		return nil, auth.ErrNotAuthenticated
	}

	if !input.Actor.CanAccess(models.CapabilityEditSite) {
		return nil, auth.ErrForbidden
	}

	err := s.boardRepo.SaveSiteSettings(ctx, &boardRepo.SaveSiteSettingsInput{
		Settings: input.Settings,
	})
	if err != nil {
		return nil, err
	}

	s.recordActivity(ctx, "site settings updated", input.Actor.UserID, nil)

	return &UpdateSiteSettingsOutput{
		Settings: input.Settings,
	}, nil
}

// GetGuildConfig returns the guild progression numbers
func (s *service) GetGuildConfig(ctx context.Context, input *GetGuildConfigInput) (*GetGuildConfigOutput, error) {
	if input == nil || input.Actor == nil {
		return nil, auth.ErrNotAuthenticated
	}

	config, err := s.boardRepo.GetGuildConfig(ctx)
	if err != nil {
		if errors.Is(err, boardRepo.ErrConfigNotFound) {
			return &GetGuildConfigOutput{Config: &models.GuildConfig{}}, nil
		}
		return nil, err
	}

	return &GetGuildConfigOutput{
		Config: config,
	}, nil
}

// UpdateGuildConfig replaces the guild progression numbers
func (s *service) UpdateGuildConfig(ctx context.Context, input *UpdateGuildConfigInput) (*UpdateGuildConfigOutput, error) {
	if input == nil || input.Actor == nil {
		return nil, auth.ErrNotAuthenticated
	}

	if !input.Actor.CanAccess(models.CapabilityEditSite) {
		return nil, auth.ErrForbidden
	}

	err := s.boardRepo.SaveGuildConfig(ctx, &boardRepo.SaveGuildConfigInput{
		Config: input.Config,
	})
	if err != nil {
		return nil, err
	}

	s.recordActivity(ctx, "guild config updated", input.Actor.UserID, nil)

	return &UpdateGuildConfigOutput{
		Config: input.Config,
	}, nil
}

// recordActivity appends an audit entry; failures are logged, never fatal
func (s *service) recordActivity(ctx context.Context, action, actorID string, details map[string]string) {
	err := s.activityRepo.AppendEntry(ctx, &activityRepo.AppendEntryInput{
		Entry: &models.ActivityEntry{
			ID:        s.uuid.NewUUID(),
			Module:    "board",
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
