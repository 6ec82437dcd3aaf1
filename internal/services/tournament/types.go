package tournament

import (
	"time"

	"github.com/stbguild/guildhall/internal/models"
	"github.com/stbguild/guildhall/internal/services/auth"
)

// ListSlotsInput contains parameters for listing slots
type ListSlotsInput struct {
	Actor *auth.Actor
}

// ListSlotsOutput contains the result of listing slots
type ListSlotsOutput struct {
	Slots []*models.TournamentSlot

	// Booked is the number of taken slots
	Booked int

	// Capacity is the total number of slots, when a cap is configured
	Capacity int
}

// BookSlotInput contains parameters for booking a slot
type BookSlotInput struct {
	Actor          *auth.Actor
	TournamentName string

	// BookedByName overrides the display name on the booking; used for
	// external players booked on their behalf
	BookedByName string

	// IsExternalPlayer marks a booking for a non-guild player
	IsExternalPlayer bool
}

// BookSlotOutput contains the result of booking a slot
type BookSlotOutput struct {
	Slot *models.TournamentSlot
}

// SetPaymentStatusInput contains parameters for verifying a payment
type SetPaymentStatusInput struct {
	Actor  *auth.Actor
	SlotID string
	Status models.PaymentStatus
}

// SetPaymentStatusOutput contains the result of verifying a payment
type SetPaymentStatusOutput struct {
	Slot *models.TournamentSlot
}

// RecordMatchResultInput contains parameters for recording a match
type RecordMatchResultInput struct {
	Actor          *auth.Actor
	TournamentName string
	MatchType      string
	TeamA          string
	TeamB          string
	ScoreA         int
	ScoreB         int
	Winner         string
	MVP            string
	MatchDate      time.Time
}

// RecordMatchResultOutput contains the result of recording a match
type RecordMatchResultOutput struct {
	Match *models.MatchResult
}

// ListMatchResultsInput contains parameters for listing matches
type ListMatchResultsInput struct {
	Actor *auth.Actor
}

// ListMatchResultsOutput contains the result of listing matches
type ListMatchResultsOutput struct {
	Matches []*models.MatchResult
}
