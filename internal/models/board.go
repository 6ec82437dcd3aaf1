package models

import (
	"time"
)

// NoticeType represents the urgency class of a notice
type NoticeType string

const (
	// NoticeTypeGeneral is a routine announcement
	NoticeTypeGeneral NoticeType = "general"

	// NoticeTypeImportant is a highlighted announcement
	NoticeTypeImportant NoticeType = "important"

	// NoticeTypeUrgent is an announcement that is also pushed to the
	// Discord bridge when one is configured
	NoticeTypeUrgent NoticeType = "urgent"
)

// Notice is an announcement on the guild notice board
type Notice struct {
	// ID is the unique identifier for the notice
	ID string `json:"id"`

	// Title is the notice headline
	Title string `json:"title"`

	// Content is the notice body
	Content string `json:"content"`

	// Type is the urgency class
	Type NoticeType `json:"type"`

	// AuthorID is the profile ID of the posting member
	AuthorID string `json:"author_id"`

	// CreatedAt is when the notice was posted
	CreatedAt time.Time `json:"created_at"`
}

// EventStatus represents the lifecycle state of a guild event
type EventStatus string

const (
	// EventStatusUpcoming indicates an event that has not started
	EventStatusUpcoming EventStatus = "upcoming"

	// EventStatusOngoing indicates an event in progress
	EventStatusOngoing EventStatus = "ongoing"

	// EventStatusCompleted indicates a finished event
	EventStatusCompleted EventStatus = "completed"
)

// Event is a scheduled guild event
type Event struct {
	// ID is the unique identifier for the event
	ID string `json:"id"`

	// Title is the event name
	Title string `json:"title"`

	// Description explains the event
	Description string `json:"description"`

	// EventDate is when the event takes place
	EventDate *time.Time `json:"event_date,omitempty"`

	// Status is the lifecycle state
	Status EventStatus `json:"status"`

	// CreatedAt is when the event was created
	CreatedAt time.Time `json:"created_at"`
}

// GuildRule is a single entry in the guild rulebook
type GuildRule struct {
	// ID is the unique identifier for the rule
	ID string `json:"id"`

	// RuleText is the rule itself
	RuleText string `json:"rule_text"`

	// Category groups related rules
	Category string `json:"category"`

	// CreatedAt is when the rule was added
	CreatedAt time.Time `json:"created_at"`
}

// SiteSettings holds the dashboard's presentation settings
type SiteSettings struct {
	// SiteName is the displayed guild name
	SiteName string `json:"site_name"`

	// LogoURL points at the guild logo image
	LogoURL string `json:"logo_url,omitempty"`

	// BannerURL points at the dashboard banner image
	BannerURL string `json:"banner_url,omitempty"`

	// ThemeColor is the accent color in hex
	ThemeColor string `json:"theme_color,omitempty"`
}

// GuildConfig holds the guild's in-game progression numbers
type GuildConfig struct {
	// Level is the guild's current level
	Level int `json:"level"`

	// Exp is the accumulated experience at the current level
	Exp int `json:"exp"`

	// NextLevelExp is the experience needed for the next level
	NextLevelExp int `json:"next_level_exp"`

	// Balance is the guild's in-game currency balance
	Balance float64 `json:"balance"`
}
