package grading

import "context"

//go:generate mockgen -package=mocks -destination=mocks/mock_service.go github.com/stbguild/guildhall/internal/services/grading Service

// Service defines the interface for stat grading operations
type Service interface {
	// GradeMember grades a member's stats and stores the result
	GradeMember(ctx context.Context, input *GradeMemberInput) (*GradeMemberOutput, error)
}
