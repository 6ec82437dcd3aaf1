package profile

import "github.com/stbguild/guildhall/internal/models"

// SaveProfileInput contains parameters for saving a profile
type SaveProfileInput struct {
	Profile *models.Profile
}

// GetProfileInput contains parameters for retrieving a profile
type GetProfileInput struct {
	ProfileID string
}

// ListProfilesInput contains parameters for listing all profiles
type ListProfilesInput struct{}

// ListProfilesOutput contains the result of listing all profiles
type ListProfilesOutput struct {
	Profiles []*models.Profile
}

// GetProfileRoleInput contains parameters for a role lookup
type GetProfileRoleInput struct {
	ProfileID string
}

// GetProfileRoleOutput contains the result of a role lookup
type GetProfileRoleOutput struct {
	Role        models.Role
	Permissions *models.Permissions
}

// GetProfilesInSquadInput contains parameters for retrieving squad members
type GetProfilesInSquadInput struct {
	SquadID string
}

// GetProfilesInSquadOutput contains the result of retrieving squad members
type GetProfilesInSquadOutput struct {
	Profiles []*models.Profile
}

// UpdateProfileSquadInput contains parameters for moving a profile between squads
type UpdateProfileSquadInput struct {
	ProfileID string
	SquadID   string
}
