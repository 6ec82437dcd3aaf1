package dashboard

import "context"

//go:generate mockgen -package=mocks -destination=mocks/mock_service.go github.com/stbguild/guildhall/internal/services/dashboard Service

// Service defines the interface for dashboard overview operations
type Service interface {
	// GetOverview returns the numbers shown on the dashboard home
	GetOverview(ctx context.Context, input *GetOverviewInput) (*GetOverviewOutput, error)

	// ListActivity returns recent audited actions, newest first
	ListActivity(ctx context.Context, input *ListActivityInput) (*ListActivityOutput, error)
}
