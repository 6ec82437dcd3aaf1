package chat

import "context"

//go:generate mockgen -package=mocks -destination=mocks/mock_service.go github.com/stbguild/guildhall/internal/services/chat Service

// Service defines the interface for chat operations
type Service interface {
	// SendMessage posts a message to the global or a squad channel
	SendMessage(ctx context.Context, input *SendMessageInput) (*SendMessageOutput, error)

	// GetHistory returns a channel's messages in send order
	GetHistory(ctx context.Context, input *GetHistoryInput) (*GetHistoryOutput, error)
}
