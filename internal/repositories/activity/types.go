package activity

import "github.com/stbguild/guildhall/internal/models"

// AppendEntryInput contains parameters for appending an activity entry
type AppendEntryInput struct {
	Entry *models.ActivityEntry
}

// ListEntriesInput contains parameters for listing activity entries
type ListEntriesInput struct {
	// Limit caps the number of entries returned; zero means all
	Limit int
}

// ListEntriesOutput contains the result of listing activity entries
type ListEntriesOutput struct {
	Entries []*models.ActivityEntry
}
