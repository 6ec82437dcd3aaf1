package chat

import (
	"context"

	"github.com/stbguild/guildhall/internal/common/clock"
	"github.com/stbguild/guildhall/internal/common/uuid"
	"github.com/stbguild/guildhall/internal/models"
	messageRepo "github.com/stbguild/guildhall/internal/repositories/message"
	"github.com/stbguild/guildhall/internal/services/auth"
)

// Config holds configuration for the chat service
type Config struct {
	MessageRepo messageRepo.Repository
	Clock       clock.Clock
	UUID        uuid.UUID
}

// service implements the Service interface
type service struct {
	messageRepo messageRepo.Repository
	clock       clock.Clock
	uuid        uuid.UUID
}

// New creates a new chat service
func New(cfg *Config) (*service, error) {
	if cfg == nil {
		return nil, ErrNilConfig
	}

	if cfg.MessageRepo == nil {
		return nil, ErrNilMessageRepo
	}

	if cfg.Clock == nil {
		return nil, ErrNilClock
	}

	if cfg.UUID == nil {
		return nil, ErrNilUUIDGenerator
	}

	return &service{
		messageRepo: cfg.MessageRepo,
		clock:       cfg.Clock,
		uuid:        cfg.UUID,
	}, nil
}

// SendMessage posts a message. The sender's name and role are frozen
// onto the message so history reads need no profile lookups.
func (s *service) SendMessage(ctx context.Context, input *SendMessageInput) (*SendMessageOutput, error) {
	if input == nil || input.Actor == nil {
		return nil, auth.ErrNotAuthenticated
	}

	if input.Content == "" {
		return nil, ErrEmptyMessage
	}

	if err := s.checkChannelAccess(input.Actor, input.SquadID); err != nil {
		return nil, err
	}

	senderName := ""
	if input.Actor.Profile != nil {
		senderName = input.Actor.Profile.FullName
	}

	message := &models.Message{
		ID:         s.uuid.NewUUID(),
		SenderID:   input.Actor.UserID,
		SenderName: senderName,
		SenderRole: input.Actor.Role,
		Content:    input.Content,
		SquadID:    input.SquadID,
		CreatedAt:  s.clock.Now(),
	}

	err := s.messageRepo.SaveMessage(ctx, &messageRepo.SaveMessageInput{
		Message: message,
	})
	if err != nil {
		return nil, err
	}

	return &SendMessageOutput{
		Message: message,
	}, nil
}

// GetHistory returns a channel's messages in send order
func (s *service) GetHistory(ctx context.Context, input *GetHistoryInput) (*GetHistoryOutput, error) {
	if input == nil || input.Actor == nil {
		return nil, auth.ErrNotAuthenticated
	}

	if err := s.checkChannelAccess(input.Actor, input.SquadID); err != nil {
		return nil, err
	}

	out, err := s.messageRepo.ListMessages(ctx, &messageRepo.ListMessagesInput{
		SquadID: input.SquadID,
		Limit:   input.Limit,
	})
	if err != nil {
		return nil, err
	}

	return &GetHistoryOutput{
		Messages: out.Messages,
	}, nil
}

// checkChannelAccess gates squad channels to their members. Admins may
// read and post in any channel; the global channel is open to every
// signed-in member.
func (s *service) checkChannelAccess(actor *auth.Actor, squadID string) error {
	if squadID == "" {
		return nil
	}

	if actor.IsAdmin() {
		return nil
	}

	if actor.Profile == nil || actor.Profile.SquadID != squadID {
		return ErrNotSquadMember
	}

	return nil
}
