package board

import "github.com/stbguild/guildhall/internal/models"

// SaveNoticeInput contains parameters for saving a notice
type SaveNoticeInput struct {
	Notice *models.Notice
}

// ListNoticesInput contains parameters for listing notices
type ListNoticesInput struct {
	// Limit caps the number of notices returned; zero means all
	Limit int
}

// ListNoticesOutput contains the result of listing notices
type ListNoticesOutput struct {
	Notices []*models.Notice
}

// SaveEventInput contains parameters for saving an event
type SaveEventInput struct {
	Event *models.Event
}

// ListEventsInput contains parameters for listing events
type ListEventsInput struct{}

// ListEventsOutput contains the result of listing events
type ListEventsOutput struct {
	Events []*models.Event
}

// DeleteEventInput contains parameters for deleting an event
type DeleteEventInput struct {
	EventID string
}

// SaveRuleInput contains parameters for saving a rule
type SaveRuleInput struct {
	Rule *models.GuildRule
}

// ListRulesInput contains parameters for listing rules
type ListRulesInput struct{}

// ListRulesOutput contains the result of listing rules
type ListRulesOutput struct {
	Rules []*models.GuildRule
}

// DeleteRuleInput contains parameters for deleting a rule
type DeleteRuleInput struct {
	RuleID string
}

// SaveSiteSettingsInput contains parameters for saving site settings
type SaveSiteSettingsInput struct {
	Settings *models.SiteSettings
}

// SaveGuildConfigInput contains parameters for saving guild config
type SaveGuildConfigInput struct {
	Config *models.GuildConfig
}
