package models

import (
	"time"
)

// ProfileStatus represents a member's standing in the guild
type ProfileStatus string

const (
	// ProfileStatusActive indicates a member in good standing
	ProfileStatusActive ProfileStatus = "active"

	// ProfileStatusBanned indicates a banned member. Banning is a data
	// flag; it does not revoke sessions that were already issued.
	ProfileStatusBanned ProfileStatus = "banned"
)

// PlayerStats holds a member's in-game performance numbers
type PlayerStats struct {
	// KD is the kill/death ratio
	KD float64 `json:"kd"`

	// WinRate is the win percentage
	WinRate float64 `json:"win_rate"`

	// HSRate is the headshot percentage
	HSRate float64 `json:"hs_rate"`

	// Grade is the S-D performance grade from the last analysis
	Grade string `json:"grade"`
}

// Profile represents a registered guild member
type Profile struct {
	// ID is the stable identifier, equal to the auth subject for
	// registered users
	ID string `json:"id"`

	// FullName is the member's display name
	FullName string `json:"full_name"`

	// GameID is the member's in-game identifier
	GameID string `json:"game_id"`

	// Role is the member's authority level
	Role Role `json:"role"`

	// Permissions is the optional capability bag; nil grants nothing
	Permissions *Permissions `json:"permissions,omitempty"`

	// SquadID is the squad the member belongs to, if any
	SquadID string `json:"squad_id,omitempty"`

	// Stats holds the member's in-game performance numbers, if recorded
	Stats *PlayerStats `json:"stats,omitempty"`

	// Status is the member's standing
	Status ProfileStatus `json:"status"`

	// CreatedAt is when the profile was created
	CreatedAt time.Time `json:"created_at"`

	// UpdatedAt is when the profile was last updated
	UpdatedAt time.Time `json:"updated_at"`
}
