package services_test

import (
	"io"
	"log/slog"
	"testing"
	"time"

	"jadebank/internal/config"
	"jadebank/internal/dto"
	apperrors "jadebank/internal/errors"
	"jadebank/internal/models"
	"jadebank/internal/repositories"
	"jadebank/internal/repositories/repository_mocks"
	"jadebank/internal/services"
	"jadebank/internal/services/service_mocks"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
)

func testEngineConfig() *config.EngineConfig {
	loc, _ := time.LoadLocation("Asia/Kolkata")
	return &config.EngineConfig{
		BankTimezone: "Asia/Kolkata",
		Location:     loc,
		Currency:     models.CurrencyINR,
		Policies: map[string]config.AccountPolicy{
			models.AccountTypeSavings: {
				MinimumBalance:     decimal.RequireFromString("1000.00"),
				DailyTransferLimit: decimal.RequireFromString("100000.00"),
			},
			models.AccountTypeCurrent: {
				MinimumBalance:     decimal.RequireFromString("5000.00"),
				DailyTransferLimit: decimal.RequireFromString("500000.00"),
			},
			models.AccountTypeFixedDeposit: {
				MinimumBalance:     decimal.Zero,
				DailyTransferLimit: decimal.Zero,
			},
		},
	}
}

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

type LedgerServiceTestSuite struct {
	suite.Suite
	ctrl        *gomock.Controller
	accountRepo *repository_mocks.MockAccountRepositoryInterface
	metrics     *service_mocks.MockMetricsRecorderInterface
	ledger      services.AccountLedgerInterface

	testUserID    uuid.UUID
	testAccountID uuid.UUID
}

func TestLedgerServiceSuite(t *testing.T) {
	suite.Run(t, new(LedgerServiceTestSuite))
}

func (s *LedgerServiceTestSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.accountRepo = repository_mocks.NewMockAccountRepositoryInterface(s.ctrl)
	s.metrics = service_mocks.NewMockMetricsRecorderInterface(s.ctrl)
	s.metrics.EXPECT().IncrementCounter(gomock.Any(), gomock.Any()).AnyTimes()

	s.ledger = services.NewLedgerService(s.accountRepo, testEngineConfig(), s.metrics, testLogger())

	s.testUserID = uuid.New()
	s.testAccountID = uuid.New()
}

func (s *LedgerServiceTestSuite) TearDownTest() {
	s.ctrl.Finish()
}

func (s *LedgerServiceTestSuite) activeAccount(accountType, balance string) *models.Account {
	return &models.Account{
		ID:                 s.testAccountID,
		UserID:             s.testUserID,
		AccountNumber:      models.GetAccountPrefix(accountType) + "12345678",
		AccountType:        accountType,
		Balance:            decimal.RequireFromString(balance),
		MinimumBalance:     decimal.RequireFromString("1000"),
		DailyTransferLimit: decimal.RequireFromString("100000"),
		Currency:           models.CurrencyINR,
		Status:             models.AccountStatusActive,
		Version:            3,
	}
}

func (s *LedgerServiceTestSuite) TestOpenAccount() {
	req := &dto.OpenAccountRequest{
		UserID:         s.testUserID,
		AccountType:    models.AccountTypeSavings,
		InitialDeposit: decimal.RequireFromString("5000.00"),
	}

	s.accountRepo.EXPECT().GenerateUniqueAccountNumber(models.AccountTypeSavings).Return("2012345678", nil)
	s.accountRepo.EXPECT().Create(gomock.Any()).DoAndReturn(func(account *models.Account) error {
		account.ID = uuid.New()
		account.Version = 1
		return nil
	})

	account, err := s.ledger.OpenAccount(req)

	s.NoError(err)
	s.Equal("2012345678", account.AccountNumber)
	s.Equal("5000.00", account.Balance.StringFixed(2))
	s.Equal("1000.00", account.MinimumBalance.StringFixed(2))
	s.Equal("100000.00", account.DailyTransferLimit.StringFixed(2))
	s.Equal(models.CurrencyINR, account.Currency)
	s.Equal(models.AccountStatusActive, account.Status)
}

func (s *LedgerServiceTestSuite) TestOpenAccount_BelowMinimumBalance() {
	req := &dto.OpenAccountRequest{
		UserID:         s.testUserID,
		AccountType:    models.AccountTypeSavings,
		InitialDeposit: decimal.RequireFromString("500.00"),
	}

	_, err := s.ledger.OpenAccount(req)

	s.Error(err)
	s.True(apperrors.IsKind(err, apperrors.KindValidationFailed))
}

func (s *LedgerServiceTestSuite) TestOpenAccount_InvalidType() {
	req := &dto.OpenAccountRequest{
		UserID:         s.testUserID,
		AccountType:    "checking",
		InitialDeposit: decimal.RequireFromString("5000.00"),
	}

	_, err := s.ledger.OpenAccount(req)

	s.Error(err)
	s.True(apperrors.IsKind(err, apperrors.KindValidationFailed))
}

func (s *LedgerServiceTestSuite) TestGetAccount_NotFound() {
	s.accountRepo.EXPECT().GetByID(s.testAccountID).Return(nil, repositories.ErrAccountNotFound)

	_, err := s.ledger.GetAccount(s.testAccountID)

	s.True(apperrors.IsKind(err, apperrors.KindAccountNotFound))
}

func (s *LedgerServiceTestSuite) TestDebit() {
	account := s.activeAccount(models.AccountTypeSavings, "5000")

	s.accountRepo.EXPECT().GetByID(s.testAccountID).Return(account, nil)
	s.accountRepo.EXPECT().UpdateWithVersion(account, 3).Return(nil)

	updated, err := s.ledger.Debit(s.testAccountID, models.INR(decimal.NewFromInt(1000)))

	s.NoError(err)
	s.Equal("4000.00", updated.Balance.StringFixed(2))
	s.Equal(4, updated.Version)
}

func (s *LedgerServiceTestSuite) TestDebit_InsufficientFunds() {
	account := s.activeAccount(models.AccountTypeSavings, "5000")

	s.accountRepo.EXPECT().GetByID(s.testAccountID).Return(account, nil)

	_, err := s.ledger.Debit(s.testAccountID, models.INR(decimal.RequireFromString("4000.01")))

	s.True(apperrors.IsKind(err, apperrors.KindInsufficientFunds))
}

func (s *LedgerServiceTestSuite) TestDebit_FixedDeposit() {
	account := s.activeAccount(models.AccountTypeFixedDeposit, "50000")

	s.accountRepo.EXPECT().GetByID(s.testAccountID).Return(account, nil)

	_, err := s.ledger.Debit(s.testAccountID, models.INR(decimal.NewFromInt(100)))

	s.True(apperrors.IsKind(err, apperrors.KindUnsupportedOperation))
}

func (s *LedgerServiceTestSuite) TestDebit_LockedAccount() {
	account := s.activeAccount(models.AccountTypeSavings, "5000")
	account.Status = models.AccountStatusLocked

	s.accountRepo.EXPECT().GetByID(s.testAccountID).Return(account, nil)

	_, err := s.ledger.Debit(s.testAccountID, models.INR(decimal.NewFromInt(100)))

	s.True(apperrors.IsKind(err, apperrors.KindAccountNotActive))
}

func (s *LedgerServiceTestSuite) TestDebit_CurrencyMismatch() {
	account := s.activeAccount(models.AccountTypeSavings, "5000")

	s.accountRepo.EXPECT().GetByID(s.testAccountID).Return(account, nil)

	_, err := s.ledger.Debit(s.testAccountID, models.NewMoney(decimal.NewFromInt(100), "USD"))

	s.True(apperrors.IsKind(err, apperrors.KindValidationFailed))
}

func (s *LedgerServiceTestSuite) TestDebit_VersionConflict() {
	account := s.activeAccount(models.AccountTypeSavings, "5000")

	s.accountRepo.EXPECT().GetByID(s.testAccountID).Return(account, nil)
	s.accountRepo.EXPECT().UpdateWithVersion(account, 3).Return(repositories.ErrVersionConflict)

	_, err := s.ledger.Debit(s.testAccountID, models.INR(decimal.NewFromInt(1000)))

	s.True(apperrors.IsKind(err, apperrors.KindConcurrentModification))
}

func (s *LedgerServiceTestSuite) TestCredit() {
	account := s.activeAccount(models.AccountTypeSavings, "5000")

	s.accountRepo.EXPECT().GetByID(s.testAccountID).Return(account, nil)
	s.accountRepo.EXPECT().UpdateWithVersion(account, 3).Return(nil)

	updated, err := s.ledger.Credit(s.testAccountID, models.INR(decimal.RequireFromString("2500.50")))

	s.NoError(err)
	s.Equal("7500.50", updated.Balance.StringFixed(2))
	s.Equal(4, updated.Version)
}

func (s *LedgerServiceTestSuite) TestCredit_LockedAccount() {
	account := s.activeAccount(models.AccountTypeSavings, "5000")
	account.Status = models.AccountStatusLocked

	s.accountRepo.EXPECT().GetByID(s.testAccountID).Return(account, nil)

	_, err := s.ledger.Credit(s.testAccountID, models.INR(decimal.NewFromInt(100)))

	s.True(apperrors.IsKind(err, apperrors.KindAccountNotActive))
}

func (s *LedgerServiceTestSuite) TestFreezeAndUnfreeze() {
	account := s.activeAccount(models.AccountTypeSavings, "5000")

	s.accountRepo.EXPECT().GetByID(s.testAccountID).Return(account, nil)
	s.accountRepo.EXPECT().UpdateWithVersion(account, 3).Return(nil)

	frozen, err := s.ledger.FreezeAccount(s.testAccountID)
	s.NoError(err)
	s.Equal(models.AccountStatusLocked, frozen.Status)

	s.accountRepo.EXPECT().GetByID(s.testAccountID).Return(frozen, nil)
	s.accountRepo.EXPECT().UpdateWithVersion(frozen, 4).Return(nil)

	unfrozen, err := s.ledger.UnfreezeAccount(s.testAccountID)
	s.NoError(err)
	s.Equal(models.AccountStatusActive, unfrozen.Status)
}

func (s *LedgerServiceTestSuite) TestCloseAccount_NonZeroBalance() {
	account := s.activeAccount(models.AccountTypeSavings, "5000")

	s.accountRepo.EXPECT().GetByID(s.testAccountID).Return(account, nil)

	_, err := s.ledger.CloseAccount(s.testAccountID)

	s.Error(err)
	s.True(apperrors.IsKind(err, apperrors.KindValidationFailed))
}

func (s *LedgerServiceTestSuite) TestCloseAccount() {
	account := s.activeAccount(models.AccountTypeSavings, "0")

	s.accountRepo.EXPECT().GetByID(s.testAccountID).Return(account, nil)
	s.accountRepo.EXPECT().UpdateWithVersion(account, 3).Return(nil)

	closed, err := s.ledger.CloseAccount(s.testAccountID)

	s.NoError(err)
	s.Equal(models.AccountStatusClosed, closed.Status)
	s.NotNil(closed.ClosedAt)
}
