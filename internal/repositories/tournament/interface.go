package tournament

import (
	"context"

	"github.com/stbguild/guildhall/internal/models"
)

//go:generate mockgen -package=mocks -destination=mocks/mock_repository.go github.com/stbguild/guildhall/internal/repositories/tournament Repository

// Repository defines the interface for tournament data persistence
type Repository interface {
	// SaveSlot persists a tournament slot booking
	SaveSlot(ctx context.Context, input *SaveSlotInput) error

	// GetSlot retrieves a slot by ID
	GetSlot(ctx context.Context, input *GetSlotInput) (*models.TournamentSlot, error)

	// ListSlots retrieves all slots ordered by slot number
	ListSlots(ctx context.Context, input *ListSlotsInput) (*ListSlotsOutput, error)

	// CountSlots returns the number of booked slots
	CountSlots(ctx context.Context, input *CountSlotsInput) (*CountSlotsOutput, error)

	// SaveMatchResult persists a match result
	SaveMatchResult(ctx context.Context, input *SaveMatchResultInput) error

	// ListMatchResults retrieves match results, newest first
	ListMatchResults(ctx context.Context, input *ListMatchResultsInput) (*ListMatchResultsOutput, error)
}
