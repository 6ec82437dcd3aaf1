package chat

import (
	"github.com/stbguild/guildhall/internal/models"
	"github.com/stbguild/guildhall/internal/services/auth"
)

// SendMessageInput contains parameters for posting a message
type SendMessageInput struct {
	Actor *auth.Actor

	// SquadID targets a squad channel; empty targets the global channel
	SquadID string

	Content string
}

// SendMessageOutput contains the result of posting a message
type SendMessageOutput struct {
	Message *models.Message
}

// GetHistoryInput contains parameters for reading a channel
type GetHistoryInput struct {
	Actor *auth.Actor

	// SquadID selects the squad channel; empty selects the global channel
	SquadID string

	// Limit caps the number of messages returned; zero means all
	Limit int
}

// GetHistoryOutput contains a channel's messages in send order
type GetHistoryOutput struct {
	Messages []*models.Message
}
