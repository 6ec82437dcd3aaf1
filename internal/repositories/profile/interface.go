package profile

import (
	"context"

	"github.com/stbguild/guildhall/internal/models"
)

//go:generate mockgen -package=mocks -destination=mocks/mock_repository.go github.com/stbguild/guildhall/internal/repositories/profile Repository

// Repository defines the interface for profile data persistence
type Repository interface {
	// SaveProfile persists a profile
	SaveProfile(ctx context.Context, input *SaveProfileInput) error

	// GetProfile retrieves a profile by ID
	GetProfile(ctx context.Context, input *GetProfileInput) (*models.Profile, error)

	// ListProfiles retrieves all profiles
	ListProfiles(ctx context.Context, input *ListProfilesInput) (*ListProfilesOutput, error)

	// GetProfileRole retrieves only the role and capability bag for a profile
	GetProfileRole(ctx context.Context, input *GetProfileRoleInput) (*GetProfileRoleOutput, error)

	// GetProfilesInSquad retrieves all profiles belonging to a squad
	GetProfilesInSquad(ctx context.Context, input *GetProfilesInSquadInput) (*GetProfilesInSquadOutput, error)

	// UpdateProfileSquad moves a profile between squads
	UpdateProfileSquad(ctx context.Context, input *UpdateProfileSquadInput) error
}
