package tournament

import "context"

//go:generate mockgen -package=mocks -destination=mocks/mock_service.go github.com/stbguild/guildhall/internal/services/tournament Service

// Service defines the interface for tournament operations
type Service interface {
	// ListSlots returns all booked slots in slot order
	ListSlots(ctx context.Context, input *ListSlotsInput) (*ListSlotsOutput, error)

	// BookSlot books the next free slot
	BookSlot(ctx context.Context, input *BookSlotInput) (*BookSlotOutput, error)

	// SetPaymentStatus verifies or rejects a slot booking payment
	SetPaymentStatus(ctx context.Context, input *SetPaymentStatusInput) (*SetPaymentStatusOutput, error)

	// RecordMatchResult records the outcome of a played match
	RecordMatchResult(ctx context.Context, input *RecordMatchResultInput) (*RecordMatchResultOutput, error)

	// ListMatchResults returns recorded matches, newest first
	ListMatchResults(ctx context.Context, input *ListMatchResultsInput) (*ListMatchResultsOutput, error)
}
