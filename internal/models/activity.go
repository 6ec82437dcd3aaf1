package models

import (
	"time"
)

// ActivityEntry records a single audited action on the dashboard
type ActivityEntry struct {
	// ID is the unique identifier for the entry
	ID string `json:"id"`

	// Module names the dashboard area the action belongs to
	Module string `json:"module"`

	// Action is a short description of what happened
	Action string `json:"action"`

	// ActorID is the profile ID of the member who acted, if known
	ActorID string `json:"actor_id,omitempty"`

	// Details carries action-specific context
	Details map[string]string `json:"details,omitempty"`

	// CreatedAt is when the action happened
	CreatedAt time.Time `json:"created_at"`
}
