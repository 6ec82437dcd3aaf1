package tournament

import (
	"context"
	"errors"
	"fmt"
	"log"

	"github.com/stbguild/guildhall/internal/common/clock"
	"github.com/stbguild/guildhall/internal/common/uuid"
	"github.com/stbguild/guildhall/internal/models"
	activityRepo "github.com/stbguild/guildhall/internal/repositories/activity"
	tournamentRepo "github.com/stbguild/guildhall/internal/repositories/tournament"
	"github.com/stbguild/guildhall/internal/services/auth"
)

// Config holds configuration for the tournament service
type Config struct {
	TournamentRepo tournamentRepo.Repository
	ActivityRepo   activityRepo.Repository
	Clock          clock.Clock
	UUID           uuid.UUID

	// SlotCapacity caps the number of bookable slots; zero means no cap
	SlotCapacity int
}

// service implements the Service interface
type service struct {
	config         *Config
	tournamentRepo tournamentRepo.Repository
	activityRepo   activityRepo.Repository
	clock          clock.Clock
	uuid           uuid.UUID
}

// New creates a new tournament service
func New(cfg *Config) (*service, error) {
	if cfg == nil {
		return nil, ErrNilConfig
	}

	if cfg.TournamentRepo == nil {
		return nil, ErrNilTournamentRepo
	}

	if cfg.ActivityRepo == nil {
		return nil, ErrNilActivityRepo
	}

	if cfg.Clock == nil {
		return nil, ErrNilClock
	}

	if cfg.UUID == nil {
		return nil, ErrNilUUIDGenerator
	}

	return &service{
		config:         cfg,
		tournamentRepo: cfg.TournamentRepo,
		activityRepo:   cfg.ActivityRepo,
		clock:          cfg.Clock,
		uuid:           cfg.UUID,
	}, nil
}

// ListSlots returns all booked slots in slot order
func (s *service) ListSlots(ctx context.Context, input *ListSlotsInput) (*ListSlotsOutput, error) {
	if input == nil || input.Actor == nil {
		return nil, auth.ErrNotAuthenticated
	}

	out, err := s.tournamentRepo.ListSlots(ctx, &tournamentRepo.ListSlotsInput{})
	if err != nil {
		return nil, err
	}

	return &ListSlotsOutput{
		Slots:    out.Slots,
		Booked:   len(out.Slots),
		Capacity: s.config.SlotCapacity,
	}, nil
}

// BookSlot books the next free slot. Bookings start with a pending
// payment until someone with the slot capability verifies them.
func (s *service) BookSlot(ctx context.Context, input *BookSlotInput) (*BookSlotOutput, error) {
	if input == nil || input.Actor == nil {
		return nil, auth.ErrNotAuthenticated
	}

	if input.TournamentName == "" {
		return nil, ErrEmptyTournamentName
	}

	countOut, err := s.tournamentRepo.CountSlots(ctx, &tournamentRepo.CountSlotsInput{})
	if err != nil {
		return nil, err
	}

	if s.config.SlotCapacity > 0 && countOut.Count >= s.config.SlotCapacity {
		return nil, ErrNoSlotsAvailable
	}

	bookedByName := input.BookedByName
	if bookedByName == "" && input.Actor.Profile != nil {
		bookedByName = input.Actor.Profile.FullName
	}

	slot := &models.TournamentSlot{
		ID:               s.uuid.NewUUID(),
		TournamentName:   input.TournamentName,
		SlotNumber:       countOut.Count + 1,
		BookedBy:         input.Actor.UserID,
		BookedByName:     bookedByName,
		PaymentStatus:    models.PaymentStatusPending,
		IsExternalPlayer: input.IsExternalPlayer,
		CreatedAt:        s.clock.Now(),
	}

	err = s.tournamentRepo.SaveSlot(ctx, &tournamentRepo.SaveSlotInput{
		Slot: slot,
	})
	if err != nil {
		return nil, err
	}

	s.recordActivity(ctx, "slot booked", input.Actor.UserID, map[string]string{
		"slot_id":     slot.ID,
		"slot_number": fmt.Sprintf("%d", slot.SlotNumber),
		"tournament":  slot.TournamentName,
	})

	return &BookSlotOutput{
		Slot: slot,
	}, nil
}

// SetPaymentStatus verifies or rejects a slot booking payment
func (s *service) SetPaymentStatus(ctx context.Context, input *SetPaymentStatusInput) (*SetPaymentStatusOutput, error) {
	if input == nil || input.Actor == nil {
		return nil, auth.ErrNotAuthenticated
	}

	if !input.Actor.CanAccess(models.CapabilityManageSlots) {
		return nil, auth.ErrForbidden
	}

	switch input.Status {
	case models.PaymentStatusPending, models.PaymentStatusVerified, models.PaymentStatusRejected:
	default:
		return nil, ErrInvalidPaymentStatus
	}

	slot, err := s.tournamentRepo.GetSlot(ctx, &tournamentRepo.GetSlotInput{
		SlotID: input.SlotID,
	})
	if err != nil {
		if errors.Is(err, tournamentRepo.ErrSlotNotFound) {
			return nil, ErrSlotNotFound
		}
		return nil, err
	}

	slot.PaymentStatus = input.Status

	err = s.tournamentRepo.SaveSlot(ctx, &tournamentRepo.SaveSlotInput{
		Slot: slot,
	})
	if err != nil {
		return nil, err
	}

	s.recordActivity(ctx, "payment status updated", input.Actor.UserID, map[string]string{
		"slot_id": slot.ID,
		"status":  string(input.Status),
	})

	return &SetPaymentStatusOutput{
		Slot: slot,
	}, nil
}

// RecordMatchResult records the outcome of a played match
func (s *service) RecordMatchResult(ctx context.Context, input *RecordMatchResultInput) (*RecordMatchResultOutput, error) {
	if input == nil || input.Actor == nil {
		return nil, auth.ErrNotAuthenticated
	}

	if !input.Actor.IsAdmin() {
		return nil, auth.ErrForbidden
	}

	if input.TournamentName == "" {
		return nil, ErrEmptyTournamentName
	}

	matchDate := input.MatchDate
	if matchDate.IsZero() {
		matchDate = s.clock.Now()
	}

	match := &models.MatchResult{
		ID:             s.uuid.NewUUID(),
		TournamentName: input.TournamentName,
		MatchType:      input.MatchType,
		TeamA:          input.TeamA,
		TeamB:          input.TeamB,
		ScoreA:         input.ScoreA,
		ScoreB:         input.ScoreB,
		Winner:         input.Winner,
		MVP:            input.MVP,
		MatchDate:      matchDate,
	}

	err := s.tournamentRepo.SaveMatchResult(ctx, &tournamentRepo.SaveMatchResultInput{
		Match: match,
	})
	if err != nil {
		return nil, err
	}

	s.recordActivity(ctx, "match recorded", input.Actor.UserID, map[string]string{
		"match_id":   match.ID,
		"tournament": match.TournamentName,
		"winner":     match.Winner,
	})

	return &RecordMatchResultOutput{
		Match: match,
	}, nil
}

// ListMatchResults returns recorded matches, newest first
func (s *service) ListMatchResults(ctx context.Context, input *ListMatchResultsInput) (*ListMatchResultsOutput, error) {
	if input == nil || input.Actor == nil {
		return nil, auth.ErrNotAuthenticated
	}

	out, err := s.tournamentRepo.ListMatchResults(ctx, &tournamentRepo.ListMatchResultsInput{})
	if err != nil {
		return nil, err
	}

	return &ListMatchResultsOutput{
		Matches: out.Matches,
	}, nil
}

// recordActivity appends an audit entry; failures are logged, never fatal
func (s *service) recordActivity(ctx context.Context, action, actorID string, details map[string]string) {
	err := s.activityRepo.AppendEntry(ctx, &activityRepo.AppendEntryInput{
		Entry: &models.ActivityEntry{
			ID:        s.uuid.NewUUID(),
			Module:    "slots",
			Action:    action,
			ActorID:   actorID,
			Details:   details,
			CreatedAt: s.clock.Now(),
		},
	})
	if err != nil {
		log.Printf("Failed to record activity: %v", err)
	}
}
