package account

import (
	"context"

	"github.com/stbguild/guildhall/internal/models"
)

//go:generate mockgen -package=mocks -destination=mocks/mock_repository.go github.com/stbguild/guildhall/internal/repositories/account Repository

// Repository defines the interface for credential and session persistence
type Repository interface {
	// SaveCredentials persists a member's sign-in credentials
	SaveCredentials(ctx context.Context, input *SaveCredentialsInput) error

	// GetCredentials retrieves credentials by email
	GetCredentials(ctx context.Context, input *GetCredentialsInput) (*Credentials, error)

	// SaveSession persists an issued session with its expiry
	SaveSession(ctx context.Context, input *SaveSessionInput) error

	// GetSession retrieves a session by token
	GetSession(ctx context.Context, input *GetSessionInput) (*models.Session, error)

	// DeleteSession removes a session
	DeleteSession(ctx context.Context, input *DeleteSessionInput) error
}
