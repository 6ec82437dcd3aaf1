package finance

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/suite"
	"github.com/stbguild/guildhall/internal/models"
)

type RedisRepositoryTestSuite struct {
	suite.Suite
	mr      *miniredis.Miniredis
	client  *redis.Client
	repo    Repository
	testNow time.Time
}

func (s *RedisRepositoryTestSuite) SetupTest() {
	mr, err := miniredis.Run()
	s.Require().NoError(err)
	s.mr = mr

	s.client = redis.NewClient(&redis.Options{
		Addr: s.mr.Addr(),
	})

	repo, err := NewRedis(&Config{
		RedisClient: s.client,
	})
	s.Require().NoError(err)
	s.repo = repo

	s.testNow = time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)
}

func (s *RedisRepositoryTestSuite) TearDownTest() {
	s.client.Close()
	s.mr.Close()
}

func TestRedisRepositoryTestSuite(t *testing.T) {
	suite.Run(t, new(RedisRepositoryTestSuite))
}

func (s *RedisRepositoryTestSuite) TestSaveAndListTransactions() {
	transactions := []*models.Transaction{
		{ID: "tx-1", Amount: 500, Description: "Tournament entry fees", Type: models.TransactionTypeIncome, RecordedBy: "admin-1", CreatedAt: s.testNow.Add(-2 * time.Hour)},
		{ID: "tx-2", Amount: 120, Description: "Server costs", Type: models.TransactionTypeExpense, RecordedBy: "admin-1", CreatedAt: s.testNow},
		{ID: "tx-3", Amount: 200, Description: "Donation", Type: models.TransactionTypeIncome, RecordedBy: "admin-2", CreatedAt: s.testNow.Add(-1 * time.Hour)},
	}

	for _, tx := range transactions {
		err := s.repo.SaveTransaction(context.Background(), &SaveTransactionInput{
			Transaction: tx,
		})
		s.Require().NoError(err)
	}

	out, err := s.repo.ListTransactions(context.Background(), &ListTransactionsInput{})
	s.Require().NoError(err)
	s.Require().Len(out.Transactions, 3)

	// Newest first
	s.Equal("tx-2", out.Transactions[0].ID)
	s.Equal("tx-3", out.Transactions[1].ID)
	s.Equal("tx-1", out.Transactions[2].ID)
	s.Equal(models.TransactionTypeExpense, out.Transactions[0].Type)
}

func (s *RedisRepositoryTestSuite) TestListEmptyLedger() {
	out, err := s.repo.ListTransactions(context.Background(), &ListTransactionsInput{})
	s.Require().NoError(err)
	s.Require().Empty(out.Transactions)
}
