package board

import (
	"context"

	"github.com/stbguild/guildhall/internal/models"
)

//go:generate mockgen -package=mocks -destination=mocks/mock_service.go github.com/stbguild/guildhall/internal/services/board Service,Announcer

// Announcer pushes urgent notices to an external channel
type Announcer interface {
	// Announce publishes a notice outside the dashboard
	Announce(ctx context.Context, notice *models.Notice) error
}

// Service defines the interface for notice board and guild settings operations
type Service interface {
	// PostNotice publishes a notice; urgent notices are also announced
	PostNotice(ctx context.Context, input *PostNoticeInput) (*PostNoticeOutput, error)

	// ListNotices returns notices, newest first
	ListNotices(ctx context.Context, input *ListNoticesInput) (*ListNoticesOutput, error)

	// CreateEvent schedules a guild event
	CreateEvent(ctx context.Context, input *CreateEventInput) (*CreateEventOutput, error)

	// ListEvents returns events, newest first
	ListEvents(ctx context.Context, input *ListEventsInput) (*ListEventsOutput, error)

	// DeleteEvent removes a guild event
	DeleteEvent(ctx context.Context, input *DeleteEventInput) (*DeleteEventOutput, error)

	// AddRule appends a rule to the guild rulebook
	AddRule(ctx context.Context, input *AddRuleInput) (*AddRuleOutput, error)

	// ListRules returns the rulebook in insertion order
	ListRules(ctx context.Context, input *ListRulesInput) (*ListRulesOutput, error)

	// DeleteRule removes a rule from the rulebook
	DeleteRule(ctx context.Context, input *DeleteRuleInput) (*DeleteRuleOutput, error)

	// GetSiteSettings returns the presentation settings; open to anyone
	GetSiteSettings(ctx context.Context, input *GetSiteSettingsInput) (*GetSiteSettingsOutput, error)

	// UpdateSiteSettings replaces the presentation settings
	UpdateSiteSettings(ctx context.Context, input *UpdateSiteSettingsInput) (*UpdateSiteSettingsOutput, error)

	// GetGuildConfig returns the guild progression numbers
	GetGuildConfig(ctx context.Context, input *GetGuildConfigInput) (*GetGuildConfigOutput, error)

	// UpdateGuildConfig replaces the guild progression numbers
	UpdateGuildConfig(ctx context.Context, input *UpdateGuildConfigInput) (*UpdateGuildConfigOutput, error)
}
