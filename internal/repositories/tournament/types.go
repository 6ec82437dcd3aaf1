package tournament

import "github.com/stbguild/guildhall/internal/models"

// SaveSlotInput contains parameters for saving a slot booking
type SaveSlotInput struct {
	Slot *models.TournamentSlot
}

// GetSlotInput contains parameters for retrieving a slot
type GetSlotInput struct {
	SlotID string
}

// ListSlotsInput contains parameters for listing slots
type ListSlotsInput struct{}

// ListSlotsOutput contains the result of listing slots
type ListSlotsOutput struct {
	Slots []*models.TournamentSlot
}

// CountSlotsInput contains parameters for counting slots
type CountSlotsInput struct{}

// CountSlotsOutput contains the result of counting slots
type CountSlotsOutput struct {
	Count int
}

// SaveMatchResultInput contains parameters for saving a match result
type SaveMatchResultInput struct {
	Match *models.MatchResult
}

// ListMatchResultsInput contains parameters for listing match results
type ListMatchResultsInput struct{}

// ListMatchResultsOutput contains the result of listing match results
type ListMatchResultsOutput struct {
	Matches []*models.MatchResult
}
