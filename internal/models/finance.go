package models

import (
	"time"
)

// TransactionType represents the direction of a finance entry
type TransactionType string

const (
	// TransactionTypeIncome indicates money received by the guild
	TransactionTypeIncome TransactionType = "income"

	// TransactionTypeExpense indicates money spent by the guild
	TransactionTypeExpense TransactionType = "expense"
)

// Transaction records a single finance ledger entry
type Transaction struct {
	// ID is the unique identifier for the entry
	ID string `json:"id"`

	// Amount is the transaction amount
	Amount float64 `json:"amount"`

	// Description explains what the entry is for
	Description string `json:"description"`

	// Type is the direction of the entry
	Type TransactionType `json:"type"`

	// RecordedBy is the profile ID of the member who recorded the entry
	RecordedBy string `json:"recorded_by"`

	// CreatedAt is when the entry was recorded
	CreatedAt time.Time `json:"created_at"`
}
