package repositories

import (
	"testing"
	"time"

	"jadebank/internal/database"
	"jadebank/internal/models"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
)

// TransactionRepositorySuite defines the test suite for TransactionRepository
type TransactionRepositorySuite struct {
	suite.Suite
	db          *database.DB
	repo        TransactionRepositoryInterface
	fromAccount *models.Account
	toAccount   *models.Account
}

// SetupTest runs before each test in the suite
func (s *TransactionRepositorySuite) SetupTest() {
	s.db = database.SetupTestDB(s.T())
	s.repo = NewTransactionRepository(s.db.DB)
	s.fromAccount = database.CreateTestAccount(s.T(), s.db, models.AccountTypeSavings, "50000")
	s.toAccount = database.CreateTestAccount(s.T(), s.db, models.AccountTypeCurrent, "20000")
}

// TearDownTest runs after each test in the suite
func (s *TransactionRepositorySuite) TearDownTest() {
	database.CleanupTestDB(s.T(), s.db)
}

// TestTransactionRepositorySuite runs the test suite
func TestTransactionRepositorySuite(t *testing.T) {
	suite.Run(t, new(TransactionRepositorySuite))
}

func (s *TransactionRepositorySuite) newTransfer(amount string, status string) *models.Transaction {
	tx := &models.Transaction{
		TransactionType: models.TransactionTypeTransfer,
		Status:          status,
		FromAccountID:   &s.fromAccount.ID,
		ToAccountID:     &s.toAccount.ID,
		Amount:          decimal.RequireFromString(amount),
		Currency:        models.CurrencyINR,
		InitiatedBy:     s.fromAccount.UserID,
	}
	if status == models.TransactionStatusFailed {
		tx.FailureReason = "insufficient funds"
	}
	return tx
}

func (s *TransactionRepositorySuite) TestCreate() {
	tx := s.newTransfer("1500.50", models.TransactionStatusCompleted)

	err := s.repo.Create(tx)
	s.NoError(err)
	s.NotEqual(uuid.Nil, tx.ID)
	s.NotEmpty(tx.ReferenceNumber)
	s.NotNil(tx.CompletedAt)
}

func (s *TransactionRepositorySuite) TestCreate_FailedWithReason() {
	tx := s.newTransfer("999999", models.TransactionStatusFailed)

	err := s.repo.Create(tx)
	s.NoError(err)

	stored, err := s.repo.GetByID(tx.ID)
	s.NoError(err)
	s.Equal(models.TransactionStatusFailed, stored.Status)
	s.Equal("insufficient funds", stored.FailureReason)
}

func (s *TransactionRepositorySuite) TestGetByID_NotFound() {
	_, err := s.repo.GetByID(uuid.New())
	s.ErrorIs(err, ErrTransactionNotFound)
}

func (s *TransactionRepositorySuite) TestGetByReference() {
	tx := s.newTransfer("1000", models.TransactionStatusCompleted)
	s.NoError(s.repo.Create(tx))

	found, err := s.repo.GetByReference(tx.ReferenceNumber)
	s.NoError(err)
	s.Equal(tx.ID, found.ID)

	_, err = s.repo.GetByReference("TXN-00000000-00000000000000")
	s.ErrorIs(err, ErrTransactionNotFound)
}

func (s *TransactionRepositorySuite) TestGetByAccountID() {
	for i := 0; i < 3; i++ {
		s.NoError(s.repo.Create(s.newTransfer("100", models.TransactionStatusCompleted)))
	}

	// Incoming transfers count for the destination account too
	transactions, total, err := s.repo.GetByAccountID(s.toAccount.ID, 0, 10)
	s.NoError(err)
	s.Equal(int64(3), total)
	s.Len(transactions, 3)

	// Pagination
	page, total, err := s.repo.GetByAccountID(s.fromAccount.ID, 0, 2)
	s.NoError(err)
	s.Equal(int64(3), total)
	s.Len(page, 2)

	// Unrelated account sees nothing
	_, total, err = s.repo.GetByAccountID(uuid.New(), 0, 10)
	s.NoError(err)
	s.Zero(total)
}

func (s *TransactionRepositorySuite) TestGetByDateRange() {
	old := s.newTransfer("100", models.TransactionStatusCompleted)
	old.CreatedAt = time.Now().Add(-48 * time.Hour)
	s.NoError(s.repo.Create(old))

	recent := s.newTransfer("200", models.TransactionStatusCompleted)
	s.NoError(s.repo.Create(recent))

	transactions, err := s.repo.GetByDateRange(
		s.fromAccount.ID,
		time.Now().Add(-24*time.Hour),
		time.Now().Add(time.Hour),
	)
	s.NoError(err)
	s.Len(transactions, 1)
	s.Equal(recent.ID, transactions[0].ID)
}
