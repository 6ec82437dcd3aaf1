package finance

import "github.com/stbguild/guildhall/internal/models"

// SaveTransactionInput contains parameters for saving a ledger entry
type SaveTransactionInput struct {
	Transaction *models.Transaction
}

// ListTransactionsInput contains parameters for listing ledger entries
type ListTransactionsInput struct{}

// ListTransactionsOutput contains the result of listing ledger entries
type ListTransactionsOutput struct {
	Transactions []*models.Transaction
}
