package finance

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"

	clockMocks "github.com/stbguild/guildhall/internal/common/clock/mocks"
	uuidMocks "github.com/stbguild/guildhall/internal/common/uuid/mocks"
	"github.com/stbguild/guildhall/internal/models"
	activityMocks "github.com/stbguild/guildhall/internal/repositories/activity/mocks"
	financeRepo "github.com/stbguild/guildhall/internal/repositories/finance"
	financeMocks "github.com/stbguild/guildhall/internal/repositories/finance/mocks"
	"github.com/stbguild/guildhall/internal/services/auth"
)

type FinanceServiceTestSuite struct {
	suite.Suite
	mockCtrl         *gomock.Controller
	mockFinanceRepo  *financeMocks.MockRepository
	mockActivityRepo *activityMocks.MockRepository
	mockClock        *clockMocks.MockClock
	mockUUID         *uuidMocks.MockUUID
	financeService   Service
	ctx              context.Context

	testTime   time.Time
	treasurer  *auth.Actor
	plainActor *auth.Actor
}

func (s *FinanceServiceTestSuite) SetupTest() {
	s.mockCtrl = gomock.NewController(s.T())
	s.mockFinanceRepo = financeMocks.NewMockRepository(s.mockCtrl)
	s.mockActivityRepo = activityMocks.NewMockRepository(s.mockCtrl)
	s.mockClock = clockMocks.NewMockClock(s.mockCtrl)
	s.mockUUID = uuidMocks.NewMockUUID(s.mockCtrl)
	s.ctx = context.Background()

	s.testTime = time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)
	s.mockClock.EXPECT().Now().Return(s.testTime).AnyTimes()
	s.mockUUID.EXPECT().NewUUID().Return("generated-id").AnyTimes()
	s.mockActivityRepo.EXPECT().AppendEntry(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()

	s.treasurer = &auth.Actor{
		UserID:      "treasurer-1",
		Role:        models.RoleSubAdmin,
		Permissions: &models.Permissions{CanViewAccounts: true},
	}
	s.plainActor = &auth.Actor{UserID: "member-1", Role: models.RoleMember}

	svc, err := New(&Config{
		FinanceRepo:  s.mockFinanceRepo,
		ActivityRepo: s.mockActivityRepo,
		Clock:        s.mockClock,
		UUID:         s.mockUUID,
	})
	s.Require().NoError(err)
	s.financeService = svc
}

func (s *FinanceServiceTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestFinanceServiceTestSuite(t *testing.T) {
	suite.Run(t, new(FinanceServiceTestSuite))
}

func (s *FinanceServiceTestSuite) TestRecordTransaction() {
	s.mockFinanceRepo.EXPECT().
		SaveTransaction(s.ctx, gomock.Any()).
		DoAndReturn(func(_ context.Context, input *financeRepo.SaveTransactionInput) error {
			s.Equal(500.0, input.Transaction.Amount)
			s.Equal(models.TransactionTypeIncome, input.Transaction.Type)
			s.Equal("treasurer-1", input.Transaction.RecordedBy)
			return nil
		})

	out, err := s.financeService.RecordTransaction(s.ctx, &RecordTransactionInput{
		Actor:       s.treasurer,
		Amount:      500,
		Description: "tournament winnings",
		Type:        models.TransactionTypeIncome,
	})
	s.Require().NoError(err)
	s.Equal("generated-id", out.Transaction.ID)
}

func (s *FinanceServiceTestSuite) TestRecordTransactionRequiresCapability() {
	_, err := s.financeService.RecordTransaction(s.ctx, &RecordTransactionInput{
		Actor:  s.plainActor,
		Amount: 100,
		Type:   models.TransactionTypeExpense,
	})
	s.Equal(auth.ErrForbidden, err)
}

func (s *FinanceServiceTestSuite) TestRecordTransactionRejectsBadInput() {
	_, err := s.financeService.RecordTransaction(s.ctx, &RecordTransactionInput{
		Actor:  s.treasurer,
		Amount: -5,
		Type:   models.TransactionTypeIncome,
	})
	s.Equal(ErrInvalidAmount, err)

	_, err = s.financeService.RecordTransaction(s.ctx, &RecordTransactionInput{
		Actor:  s.treasurer,
		Amount: 5,
		Type:   "transfer",
	})
	s.Equal(ErrInvalidType, err)
}

func (s *FinanceServiceTestSuite) TestGetLedgerTotals() {
	s.mockFinanceRepo.EXPECT().
		ListTransactions(s.ctx, gomock.Any()).
		Return(&financeRepo.ListTransactionsOutput{
			Transactions: []*models.Transaction{
				{ID: "t-1", Amount: 500, Type: models.TransactionTypeIncome},
				{ID: "t-2", Amount: 120, Type: models.TransactionTypeExpense},
				{ID: "t-3", Amount: 80, Type: models.TransactionTypeExpense},
			},
		}, nil)

	out, err := s.financeService.GetLedger(s.ctx, &GetLedgerInput{Actor: s.treasurer})
	s.Require().NoError(err)
	s.Equal(500.0, out.TotalIncome)
	s.Equal(200.0, out.TotalExpense)
	s.Equal(300.0, out.Balance)
}

func (s *FinanceServiceTestSuite) TestGetLedgerRequiresCapability() {
	_, err := s.financeService.GetLedger(s.ctx, &GetLedgerInput{Actor: s.plainActor})
	s.Equal(auth.ErrForbidden, err)
}
