package models

import (
	"time"
)

// Squad represents a group of members playing together
type Squad struct {
	// ID is the unique identifier for the squad
	ID string `json:"id"`

	// SquadName is the display name of the squad
	SquadName string `json:"squad_name"`

	// LeaderID is the profile ID of the squad leader, if assigned
	LeaderID string `json:"leader_id,omitempty"`

	// MembersCount is the denormalized member count, maintained by the
	// roster service on assignment
	MembersCount int `json:"members_count"`

	// CreatedAt is when the squad was created
	CreatedAt time.Time `json:"created_at"`
}
