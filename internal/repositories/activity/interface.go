package activity

import (
	"context"
)

//go:generate mockgen -package=mocks -destination=mocks/mock_repository.go github.com/stbguild/guildhall/internal/repositories/activity Repository

// Repository defines the interface for activity log persistence
type Repository interface {
	// AppendEntry persists an activity entry
	AppendEntry(ctx context.Context, input *AppendEntryInput) error

	// ListEntries retrieves recent activity entries, newest first
	ListEntries(ctx context.Context, input *ListEntriesInput) (*ListEntriesOutput, error)
}
