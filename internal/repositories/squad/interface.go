package squad

import (
	"context"

	"github.com/stbguild/guildhall/internal/models"
)

//go:generate mockgen -package=mocks -destination=mocks/mock_repository.go github.com/stbguild/guildhall/internal/repositories/squad Repository

// Repository defines the interface for squad data persistence
type Repository interface {
	// SaveSquad persists a squad
	SaveSquad(ctx context.Context, input *SaveSquadInput) error

	// GetSquad retrieves a squad by ID
	GetSquad(ctx context.Context, input *GetSquadInput) (*models.Squad, error)

	// ListSquads retrieves all squads
	ListSquads(ctx context.Context, input *ListSquadsInput) (*ListSquadsOutput, error)
}
