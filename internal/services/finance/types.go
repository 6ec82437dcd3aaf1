package finance

import (
	"github.com/stbguild/guildhall/internal/models"
	"github.com/stbguild/guildhall/internal/services/auth"
)

// RecordTransactionInput contains parameters for adding a ledger entry
type RecordTransactionInput struct {
	Actor       *auth.Actor
	Amount      float64
	Description string
	Type        models.TransactionType
}

// RecordTransactionOutput contains the result of adding a ledger entry
type RecordTransactionOutput struct {
	Transaction *models.Transaction
}

// GetLedgerInput contains parameters for reading the ledger
type GetLedgerInput struct {
	Actor *auth.Actor
}

// GetLedgerOutput contains the ledger and its totals
type GetLedgerOutput struct {
	Transactions []*models.Transaction

	// TotalIncome is the sum of all income entries
	TotalIncome float64

	// TotalExpense is the sum of all expense entries
	TotalExpense float64

	// Balance is income minus expense
	Balance float64
}
