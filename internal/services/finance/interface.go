package finance

import "context"

//go:generate mockgen -package=mocks -destination=mocks/mock_service.go github.com/stbguild/guildhall/internal/services/finance Service

// Service defines the interface for finance ledger operations
type Service interface {
	// RecordTransaction adds a ledger entry
	RecordTransaction(ctx context.Context, input *RecordTransactionInput) (*RecordTransactionOutput, error)

	// GetLedger returns the ledger with running totals, newest first
	GetLedger(ctx context.Context, input *GetLedgerInput) (*GetLedgerOutput, error)
}
