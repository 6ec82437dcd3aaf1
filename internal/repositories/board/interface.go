package board

import (
	"context"

	"github.com/stbguild/guildhall/internal/models"
)

//go:generate mockgen -package=mocks -destination=mocks/mock_repository.go github.com/stbguild/guildhall/internal/repositories/board Repository

// Repository defines the interface for notice board and guild settings persistence
type Repository interface {
	// SaveNotice persists a notice
	SaveNotice(ctx context.Context, input *SaveNoticeInput) error

	// ListNotices retrieves notices, newest first
	ListNotices(ctx context.Context, input *ListNoticesInput) (*ListNoticesOutput, error)

	// SaveEvent persists a guild event
	SaveEvent(ctx context.Context, input *SaveEventInput) error

	// ListEvents retrieves events, newest first
	ListEvents(ctx context.Context, input *ListEventsInput) (*ListEventsOutput, error)

	// DeleteEvent removes a guild event
	DeleteEvent(ctx context.Context, input *DeleteEventInput) error

	// SaveRule persists a guild rule
	SaveRule(ctx context.Context, input *SaveRuleInput) error

	// ListRules retrieves rules in the order they were added
	ListRules(ctx context.Context, input *ListRulesInput) (*ListRulesOutput, error)

	// DeleteRule removes a guild rule
	DeleteRule(ctx context.Context, input *DeleteRuleInput) error

	// GetSiteSettings retrieves the site settings singleton
	GetSiteSettings(ctx context.Context) (*models.SiteSettings, error)

	// SaveSiteSettings persists the site settings singleton
	SaveSiteSettings(ctx context.Context, input *SaveSiteSettingsInput) error

	// GetGuildConfig retrieves the guild config singleton
	GetGuildConfig(ctx context.Context) (*models.GuildConfig, error)

	// SaveGuildConfig persists the guild config singleton
	SaveGuildConfig(ctx context.Context, input *SaveGuildConfigInput) error
}
