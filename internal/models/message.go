package models

import (
	"time"
)

// Message is a single chat message in the communication hub
type Message struct {
	// ID is the unique identifier for the message
	ID string `json:"id"`

	// SenderID is the profile ID of the sender
	SenderID string `json:"sender_id"`

	// SenderName is the sender's display name at send time
	SenderName string `json:"sender_name"`

	// SenderRole is the sender's role at send time
	SenderRole Role `json:"sender_role"`

	// Content is the message body
	Content string `json:"content"`

	// SquadID scopes the message to a squad channel; empty means the
	// global channel
	SquadID string `json:"squad_id,omitempty"`

	// CreatedAt is when the message was sent
	CreatedAt time.Time `json:"created_at"`
}
