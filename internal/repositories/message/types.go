package message

import "github.com/stbguild/guildhall/internal/models"

// SaveMessageInput contains parameters for saving a chat message
type SaveMessageInput struct {
	Message *models.Message
}

// ListMessagesInput contains parameters for listing a channel's messages
type ListMessagesInput struct {
	// SquadID selects the squad channel; empty selects the global channel
	SquadID string

	// Limit caps the number of messages returned; zero means all
	Limit int
}

// ListMessagesOutput contains the result of listing messages
type ListMessagesOutput struct {
	Messages []*models.Message
}
