package message

import (
	"context"
)

//go:generate mockgen -package=mocks -destination=mocks/mock_repository.go github.com/stbguild/guildhall/internal/repositories/message Repository

// Repository defines the interface for chat message persistence
type Repository interface {
	// SaveMessage persists a chat message
	SaveMessage(ctx context.Context, input *SaveMessageInput) error

	// ListMessages retrieves a channel's messages in send order
	ListMessages(ctx context.Context, input *ListMessagesInput) (*ListMessagesOutput, error)
}
