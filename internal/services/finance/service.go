package finance

import (
	"context"
	"fmt"
	"log"

	"github.com/stbguild/guildhall/internal/common/clock"
	"github.com/stbguild/guildhall/internal/common/uuid"
	"github.com/stbguild/guildhall/internal/models"
	activityRepo "github.com/stbguild/guildhall/internal/repositories/activity"
	financeRepo "github.com/stbguild/guildhall/internal/repositories/finance"
	"github.com/stbguild/guildhall/internal/services/auth"
)

// Config holds configuration for the finance service
type Config struct {
	FinanceRepo  financeRepo.Repository
	ActivityRepo activityRepo.Repository
	Clock        clock.Clock
	UUID         uuid.UUID
}

// service implements the Service interface
type service struct {
	financeRepo  financeRepo.Repository
	activityRepo activityRepo.Repository
	clock        clock.Clock
	uuid         uuid.UUID
}

// New creates a new finance service
func New(cfg *Config) (*service, error) {
	if cfg == nil {
		return nil, ErrNilConfig
	}

	if cfg.FinanceRepo == nil {
		return nil, ErrNilFinanceRepo
	}

	if cfg.ActivityRepo == nil {
		return nil, ErrNilActivityRepo
	}

	if cfg.Clock == nil {
		return nil, ErrNilClock
	}

	if cfg.UUID == nil {
		return nil, ErrNilUUIDGenerator
	}

	return &service{
		financeRepo:  cfg.FinanceRepo,
		activityRepo: cfg.ActivityRepo,
		clock:        cfg.Clock,
		uuid:         cfg.UUID,
	}, nil
}

// RecordTransaction adds a ledger entry. The whole ledger sits behind
// the accounts capability, writes included.
func (s *service) RecordTransaction(ctx context.Context, input *RecordTransactionInput) (*RecordTransactionOutput, error) {
	if input == nil || input.Actor == nil {
		return nil, auth.ErrNotAuthenticated
	}

	if !input.Actor.CanAccess(models.CapabilityViewAccounts) {
		return nil, auth.ErrForbidden
	}

	if input.Amount <= 0 {
		return nil, ErrInvalidAmount
	}

	if input.Type != models.TransactionTypeIncome && input.Type != models.TransactionTypeExpense {
		return nil, ErrInvalidType
	}

	transaction := &models.Transaction{
		ID:          s.uuid.NewUUID(),
		Amount:      input.Amount,
		Description: input.Description,
		Type:        input.Type,
		RecordedBy:  input.Actor.UserID,
		CreatedAt:   s.clock.Now(),
	}

	err := s.financeRepo.SaveTransaction(ctx, &financeRepo.SaveTransactionInput{
		Transaction: transaction,
	})
	if err != nil {
		return nil, err
	}

	s.recordActivity(ctx, "transaction recorded", input.Actor.UserID, map[string]string{
		"transaction_id": transaction.ID,
		"type":           string(transaction.Type),
		"amount":         fmt.Sprintf("%.2f", transaction.Amount),
	})

	return &RecordTransactionOutput{
		Transaction: transaction,
	}, nil
}

// GetLedger returns the ledger with running totals, newest first
func (s *service) GetLedger(ctx context.Context, input *GetLedgerInput) (*GetLedgerOutput, error) {
	if input == nil || input.Actor == nil {
		return nil, auth.ErrNotAuthenticated
	}

	if !input.Actor.CanAccess(models.CapabilityViewAccounts) {
		return nil, auth.ErrForbidden
	}

	out, err := s.financeRepo.ListTransactions(ctx, &financeRepo.ListTransactionsInput{})
	if err != nil {
		return nil, err
	}

	result := &GetLedgerOutput{
		Transactions: out.Transactions,
	}

	for _, t := range out.Transactions {
		switch t.Type {
		case models.TransactionTypeIncome:
			result.TotalIncome += t.Amount
		case models.TransactionTypeExpense:
			result.TotalExpense += t.Amount
		}
	}
	result.Balance = result.TotalIncome - result.TotalExpense

	return result, nil
}

// recordActivity appends an audit entry; failures are logged, never fatal
func (s *service) recordActivity(ctx context.Context, action, actorID string, details map[string]string) {
	err := s.activityRepo.AppendEntry(ctx, &activityRepo.AppendEntryInput{
		Entry: &models.ActivityEntry{
			ID:        s.uuid.NewUUID(),
			Module:    "finance",
			Action:    action,
			ActorID:   actorID,
			Details:   details,
			CreatedAt: s.clock.Now(),
		},
	})
	if err != nil {
		log.Printf("Failed to record activity: %v", err)
	}
}
