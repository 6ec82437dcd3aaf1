package dashboard

import (
	"github.com/stbguild/guildhall/internal/models"
	"github.com/stbguild/guildhall/internal/services/auth"
)

// GetOverviewInput contains parameters for reading the overview
type GetOverviewInput struct {
	Actor *auth.Actor
}

// GetOverviewOutput contains the dashboard home numbers
type GetOverviewOutput struct {
	// MemberCount is the number of registered members
	MemberCount int

	// SquadCount is the number of squads
	SquadCount int

	// SlotsBooked is the number of booked tournament slots
	SlotsBooked int

	// GuildConfig is the guild progression snapshot
	GuildConfig *models.GuildConfig

	// RecentNotices holds the latest notices
	RecentNotices []*models.Notice
}

// ListActivityInput contains parameters for listing audited actions
type ListActivityInput struct {
	Actor *auth.Actor

	// Limit caps the number of entries returned; zero means all
	Limit int
}

// ListActivityOutput contains the result of listing audited actions
type ListActivityOutput struct {
	Entries []*models.ActivityEntry
}
