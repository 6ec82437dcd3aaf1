package squad

import "github.com/stbguild/guildhall/internal/models"

// SaveSquadInput contains parameters for saving a squad
type SaveSquadInput struct {
	Squad *models.Squad
}

// GetSquadInput contains parameters for retrieving a squad
type GetSquadInput struct {
	SquadID string
}

// ListSquadsInput contains parameters for listing all squads
type ListSquadsInput struct{}

// ListSquadsOutput contains the result of listing all squads
type ListSquadsOutput struct {
	Squads []*models.Squad
}
