package board

import (
	"time"

	"github.com/stbguild/guildhall/internal/models"
	"github.com/stbguild/guildhall/internal/services/auth"
)

// PostNoticeInput contains parameters for publishing a notice
type PostNoticeInput struct {
	Actor   *auth.Actor
	Title   string
	Content string
	Type    models.NoticeType
}

// PostNoticeOutput contains the result of publishing a notice
type PostNoticeOutput struct {
	Notice *models.Notice
}

// ListNoticesInput contains parameters for listing notices
type ListNoticesInput struct {
	Actor *auth.Actor

	// Limit caps the number of notices returned; zero means all
	Limit int
}

// ListNoticesOutput contains the result of listing notices
type ListNoticesOutput struct {
	Notices []*models.Notice
}

// CreateEventInput contains parameters for scheduling an event
type CreateEventInput struct {
	Actor       *auth.Actor
	Title       string
	Description string
	EventDate   *time.Time
	Status      models.EventStatus
}

// CreateEventOutput contains the result of scheduling an event
type CreateEventOutput struct {
	Event *models.Event
}

// ListEventsInput contains parameters for listing events
type ListEventsInput struct {
	Actor *auth.Actor
}

// ListEventsOutput contains the result of listing events
type ListEventsOutput struct {
	Events []*models.Event
}

// DeleteEventInput contains parameters for removing an event
type DeleteEventInput struct {
	Actor   *auth.Actor
	EventID string
}

// DeleteEventOutput contains the result of removing an event
type DeleteEventOutput struct{}

// AddRuleInput contains parameters for appending a rule
type AddRuleInput struct {
	Actor    *auth.Actor
	RuleText string
	Category string
}

// AddRuleOutput contains the result of appending a rule
type AddRuleOutput struct {
	Rule *models.GuildRule
}

// ListRulesInput contains parameters for listing rules
type ListRulesInput struct {
	Actor *auth.Actor
}

// ListRulesOutput contains the result of listing rules
type ListRulesOutput struct {
	Rules []*models.GuildRule
}

// DeleteRuleInput contains parameters for removing a rule
type DeleteRuleInput struct {
	Actor  *auth.Actor
	RuleID string
}

// DeleteRuleOutput contains the result of removing a rule
type DeleteRuleOutput struct{}

// GetSiteSettingsInput contains parameters for reading site settings
type GetSiteSettingsInput struct{}

// GetSiteSettingsOutput contains the site settings
type GetSiteSettingsOutput struct {
	Settings *models.SiteSettings
}

// UpdateSiteSettingsInput contains parameters for replacing site settings
type UpdateSiteSettingsInput struct {
	Actor    *auth.Actor
	Settings *models.SiteSettings
}

// UpdateSiteSettingsOutput contains the result of replacing site settings
type UpdateSiteSettingsOutput struct {
	Settings *models.SiteSettings
}

// GetGuildConfigInput contains parameters for reading the guild config
type GetGuildConfigInput struct {
	Actor *auth.Actor
}

// GetGuildConfigOutput contains the guild config
type GetGuildConfigOutput struct {
	Config *models.GuildConfig
}

// UpdateGuildConfigInput contains parameters for replacing the guild config
type UpdateGuildConfigInput struct {
	Actor  *auth.Actor
	Config *models.GuildConfig
}

// UpdateGuildConfigOutput contains the result of replacing the guild config
type UpdateGuildConfigOutput struct {
	Config *models.GuildConfig
}
