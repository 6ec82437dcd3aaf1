package finance

import (
	"context"
)

//go:generate mockgen -package=mocks -destination=mocks/mock_repository.go github.com/stbguild/guildhall/internal/repositories/finance Repository

// Repository defines the interface for finance ledger persistence
type Repository interface {
	// SaveTransaction persists a ledger entry
	SaveTransaction(ctx context.Context, input *SaveTransactionInput) error

	// ListTransactions retrieves ledger entries, newest first
	ListTransactions(ctx context.Context, input *ListTransactionsInput) (*ListTransactionsOutput, error)
}
