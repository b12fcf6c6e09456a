package services_test

import (
	"context"
	"testing"

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

type TransactionEngineTestSuite struct {
	suite.Suite
	ctx     context.Context
	ctrl    *gomock.Controller
	ledger  *service_mocks.MockAccountLedgerInterface
	limits  *service_mocks.MockDailyLimitTrackerInterface
	txRepo  *repository_mocks.MockTransactionRepositoryInterface
	audit   *service_mocks.MockAuditRecorderInterface
	metrics *service_mocks.MockMetricsRecorderInterface
	engine  services.TransactionEngineInterface

	fromAccountID uuid.UUID
	toAccountID   uuid.UUID
	initiatedBy   uuid.UUID
}

func TestTransactionEngineSuite(t *testing.T) {
	suite.Run(t, new(TransactionEngineTestSuite))
}

func (s *TransactionEngineTestSuite) SetupTest() {
	s.ctx = context.Background()
	s.ctrl = gomock.NewController(s.T())
	s.ledger = service_mocks.NewMockAccountLedgerInterface(s.ctrl)
	s.limits = service_mocks.NewMockDailyLimitTrackerInterface(s.ctrl)
	s.txRepo = repository_mocks.NewMockTransactionRepositoryInterface(s.ctrl)
	s.audit = service_mocks.NewMockAuditRecorderInterface(s.ctrl)
	s.metrics = service_mocks.NewMockMetricsRecorderInterface(s.ctrl)

	s.metrics.EXPECT().IncrementCounter(gomock.Any(), gomock.Any()).AnyTimes()
	s.metrics.EXPECT().RecordProcessingTime(gomock.Any(), gomock.Any()).AnyTimes()
	s.metrics.EXPECT().RecordGauge(gomock.Any(), gomock.Any(), gomock.Any()).AnyTimes()

	s.engine = services.NewTransactionEngine(
		s.ledger, s.limits, s.txRepo, s.audit, nil, testEngineConfig(), s.metrics, testLogger())

	s.fromAccountID = uuid.New()
	s.toAccountID = uuid.New()
	s.initiatedBy = uuid.New()
}

func (s *TransactionEngineTestSuite) TearDownTest() {
	s.ctrl.Finish()
}

func (s *TransactionEngineTestSuite) account(id uuid.UUID, balance string) *models.Account {
	return &models.Account{
		ID:                 id,
		UserID:             s.initiatedBy,
		AccountNumber:      "2012345678",
		AccountType:        models.AccountTypeSavings,
		Balance:            decimal.RequireFromString(balance),
		MinimumBalance:     decimal.RequireFromString("1000"),
		DailyTransferLimit: decimal.RequireFromString("100000"),
		Currency:           models.CurrencyINR,
		Status:             models.AccountStatusActive,
		Version:            1,
	}
}

func (s *TransactionEngineTestSuite) transferRequest(amount string) *dto.TransferRequest {
	return &dto.TransferRequest{
		FromAccountID: s.fromAccountID,
		ToAccountID:   s.toAccountID,
		Amount:        decimal.RequireFromString(amount),
		Description:   "rent",
		InitiatedBy:   s.initiatedBy,
	}
}

func (s *TransactionEngineTestSuite) expectAudit() *models.AuditEvent {
	captured := &models.AuditEvent{}
	s.audit.EXPECT().Record(gomock.Any()).Do(func(event *models.AuditEvent) {
		*captured = *event
	}).Times(1)
	return captured
}

func (s *TransactionEngineTestSuite) TestTransfer() {
	req := s.transferRequest("500.00")
	source := s.account(s.fromAccountID, "5000")
	destination := s.account(s.toAccountID, "1000")
	money := models.NewMoney(req.Amount, models.CurrencyINR)

	s.ledger.EXPECT().GetAccount(s.fromAccountID).Return(source, nil)
	s.ledger.EXPECT().GetAccount(s.toAccountID).Return(destination, nil)
	s.ledger.EXPECT().Debit(s.fromAccountID, money).Return(s.account(s.fromAccountID, "4500"), nil)
	s.limits.EXPECT().CheckAndReserve(s.fromAccountID, req.Amount, source.DailyTransferLimit, gomock.Any()).
		Return(&models.DailyTransferRecord{}, nil)
	s.ledger.EXPECT().Credit(s.toAccountID, money).Return(s.account(s.toAccountID, "1500"), nil)
	s.txRepo.EXPECT().Create(gomock.Any()).Return(nil)
	event := s.expectAudit()

	tx, err := s.engine.Transfer(s.ctx, req)

	s.NoError(err)
	s.Equal(models.TransactionStatusCompleted, tx.Status)
	s.Equal(models.TransactionTypeTransfer, tx.TransactionType)
	s.Equal("5000", tx.FromBalanceBefore.String())
	s.Equal("4500", tx.FromBalanceAfter.String())
	s.Equal("1000", tx.ToBalanceBefore.String())
	s.Equal("1500", tx.ToBalanceAfter.String())
	s.NotNil(tx.CompletedAt)
	s.NotNil(tx.FraudScore)
	s.Equal(models.AuditOutcomeSuccess, event.Outcome)
	s.Equal(models.AuditCategoryTransaction, event.Category)
}

func (s *TransactionEngineTestSuite) TestTransfer_DailyLimitExceeded() {
	req := s.transferRequest("40000.01")
	source := s.account(s.fromAccountID, "100000")
	destination := s.account(s.toAccountID, "1000")
	money := models.NewMoney(req.Amount, models.CurrencyINR)

	s.ledger.EXPECT().GetAccount(s.fromAccountID).Return(source, nil)
	s.ledger.EXPECT().GetAccount(s.toAccountID).Return(destination, nil)
	s.ledger.EXPECT().Debit(s.fromAccountID, money).Return(s.account(s.fromAccountID, "59999.99"), nil)
	s.limits.EXPECT().CheckAndReserve(s.fromAccountID, req.Amount, source.DailyTransferLimit, gomock.Any()).
		Return(nil, apperrors.E(apperrors.KindDailyLimitExceeded))
	// Rollback: the debited amount goes back to the source
	s.ledger.EXPECT().Credit(s.fromAccountID, money).Return(s.account(s.fromAccountID, "100000"), nil)
	s.txRepo.EXPECT().Create(gomock.Any()).DoAndReturn(func(tx *models.Transaction) error {
		s.Equal(models.TransactionStatusFailed, tx.Status)
		s.NotEmpty(tx.FailureReason)
		return nil
	})
	event := s.expectAudit()

	tx, err := s.engine.Transfer(s.ctx, req)

	s.Error(err)
	s.True(apperrors.IsKind(err, apperrors.KindDailyLimitExceeded))
	s.Equal(models.TransactionStatusFailed, tx.Status)
	s.Equal(models.AuditOutcomeDenied, event.Outcome)
	s.Equal(models.AuditSeverityWarning, event.Severity)
}

func (s *TransactionEngineTestSuite) TestTransfer_DestinationCreditFails() {
	req := s.transferRequest("500.00")
	source := s.account(s.fromAccountID, "5000")
	destination := s.account(s.toAccountID, "1000")
	money := models.NewMoney(req.Amount, models.CurrencyINR)

	s.ledger.EXPECT().GetAccount(s.fromAccountID).Return(source, nil)
	s.ledger.EXPECT().GetAccount(s.toAccountID).Return(destination, nil)
	s.ledger.EXPECT().Debit(s.fromAccountID, money).Return(s.account(s.fromAccountID, "4500"), nil)
	s.limits.EXPECT().CheckAndReserve(s.fromAccountID, req.Amount, source.DailyTransferLimit, gomock.Any()).
		Return(&models.DailyTransferRecord{}, nil)
	s.ledger.EXPECT().Credit(s.toAccountID, money).
		Return(nil, apperrors.E(apperrors.KindAccountNotActive))
	// Rollback: refund the source and release the reserved headroom
	s.ledger.EXPECT().Credit(s.fromAccountID, money).Return(s.account(s.fromAccountID, "5000"), nil)
	s.limits.EXPECT().Release(s.fromAccountID, req.Amount, gomock.Any()).Return(nil)
	s.txRepo.EXPECT().Create(gomock.Any()).Return(nil)
	s.expectAudit()

	tx, err := s.engine.Transfer(s.ctx, req)

	s.True(apperrors.IsKind(err, apperrors.KindAccountNotActive))
	s.Equal(models.TransactionStatusFailed, tx.Status)
}

func (s *TransactionEngineTestSuite) TestTransfer_InactiveDestination() {
	req := s.transferRequest("500.00")
	source := s.account(s.fromAccountID, "5000")
	destination := s.account(s.toAccountID, "1000")
	destination.Status = models.AccountStatusLocked

	s.ledger.EXPECT().GetAccount(s.fromAccountID).Return(source, nil)
	s.ledger.EXPECT().GetAccount(s.toAccountID).Return(destination, nil)
	s.txRepo.EXPECT().Create(gomock.Any()).Return(nil)
	s.expectAudit()

	tx, err := s.engine.Transfer(s.ctx, req)

	s.True(apperrors.IsKind(err, apperrors.KindAccountNotActive))
	s.Equal(models.TransactionStatusFailed, tx.Status)
	s.Contains(tx.FailureReason, "destination account is not active")
}

func (s *TransactionEngineTestSuite) TestTransfer_SameAccount() {
	req := s.transferRequest("500.00")
	req.ToAccountID = req.FromAccountID

	s.txRepo.EXPECT().Create(gomock.Any()).Return(nil)
	s.expectAudit()

	tx, err := s.engine.Transfer(s.ctx, req)

	s.True(apperrors.IsKind(err, apperrors.KindValidationFailed))
	s.Equal(models.TransactionStatusFailed, tx.Status)
	s.Contains(tx.FailureReason, "cannot transfer to the same account")
}

// Distinct account IDs must clear request validation; only an identical
// from/to pair is rejected.
func (s *TransactionEngineTestSuite) TestTransfer_DistinctAccountsPassValidation() {
	req := s.transferRequest("500.00")

	s.ledger.EXPECT().GetAccount(s.fromAccountID).
		Return(nil, apperrors.E(apperrors.KindAccountNotFound))
	s.txRepo.EXPECT().Create(gomock.Any()).Return(nil)
	s.expectAudit()

	tx, err := s.engine.Transfer(s.ctx, req)

	s.True(apperrors.IsKind(err, apperrors.KindAccountNotFound))
	s.NotContains(tx.FailureReason, "to_account_id")
}

func (s *TransactionEngineTestSuite) TestTransfer_RecordsAccountCurrency() {
	req := s.transferRequest("500.00")
	source := s.account(s.fromAccountID, "5000")
	destination := s.account(s.toAccountID, "1000")
	source.Currency = "USD"
	destination.Currency = "USD"
	money := models.NewMoney(req.Amount, "USD")

	s.ledger.EXPECT().GetAccount(s.fromAccountID).Return(source, nil)
	s.ledger.EXPECT().GetAccount(s.toAccountID).Return(destination, nil)
	s.ledger.EXPECT().Debit(s.fromAccountID, money).Return(source, nil)
	s.limits.EXPECT().CheckAndReserve(s.fromAccountID, req.Amount, source.DailyTransferLimit, gomock.Any()).
		Return(&models.DailyTransferRecord{}, nil)
	s.ledger.EXPECT().Credit(s.toAccountID, money).Return(destination, nil)
	s.txRepo.EXPECT().Create(gomock.Any()).Return(nil)
	s.expectAudit()

	tx, err := s.engine.Transfer(s.ctx, req)

	s.NoError(err)
	// The persisted currency follows the account, same as the moved amount
	s.Equal("USD", tx.Currency)
}

func (s *TransactionEngineTestSuite) TestTransfer_InsufficientFunds() {
	req := s.transferRequest("4500.00")
	source := s.account(s.fromAccountID, "5000")
	destination := s.account(s.toAccountID, "1000")
	money := models.NewMoney(req.Amount, models.CurrencyINR)

	s.ledger.EXPECT().GetAccount(s.fromAccountID).Return(source, nil)
	s.ledger.EXPECT().GetAccount(s.toAccountID).Return(destination, nil)
	s.ledger.EXPECT().Debit(s.fromAccountID, money).
		Return(nil, apperrors.E(apperrors.KindInsufficientFunds))
	s.txRepo.EXPECT().Create(gomock.Any()).Return(nil)
	s.expectAudit()

	tx, err := s.engine.Transfer(s.ctx, req)

	s.True(apperrors.IsKind(err, apperrors.KindInsufficientFunds))
	s.Equal(models.TransactionStatusFailed, tx.Status)
}

func (s *TransactionEngineTestSuite) TestDeposit() {
	req := &dto.DepositRequest{
		ToAccountID: s.toAccountID,
		Amount:      decimal.RequireFromString("2500.00"),
		Description: "salary",
		InitiatedBy: s.initiatedBy,
	}
	account := s.account(s.toAccountID, "1000")
	money := models.NewMoney(req.Amount, models.CurrencyINR)

	s.ledger.EXPECT().GetAccount(s.toAccountID).Return(account, nil)
	s.ledger.EXPECT().Credit(s.toAccountID, money).Return(s.account(s.toAccountID, "3500"), nil)
	s.txRepo.EXPECT().Create(gomock.Any()).Return(nil)
	event := s.expectAudit()

	tx, err := s.engine.Deposit(s.ctx, req)

	s.NoError(err)
	s.Equal(models.TransactionTypeDeposit, tx.TransactionType)
	s.Equal(models.TransactionStatusCompleted, tx.Status)
	s.Nil(tx.FromAccountID)
	s.Equal("3500", tx.ToBalanceAfter.String())
	s.Equal(models.AuditOutcomeSuccess, event.Outcome)
}

func (s *TransactionEngineTestSuite) TestDeposit_NonPositiveAmount() {
	req := &dto.DepositRequest{
		ToAccountID: s.toAccountID,
		Amount:      decimal.Zero,
		InitiatedBy: s.initiatedBy,
	}

	s.txRepo.EXPECT().Create(gomock.Any()).Return(nil)
	s.expectAudit()

	tx, err := s.engine.Deposit(s.ctx, req)

	s.True(apperrors.IsKind(err, apperrors.KindValidationFailed))
	s.Equal(models.TransactionStatusFailed, tx.Status)
}

func (s *TransactionEngineTestSuite) TestWithdraw() {
	req := &dto.WithdrawRequest{
		FromAccountID: s.fromAccountID,
		Amount:        decimal.RequireFromString("1500.00"),
		Description:   "atm",
		InitiatedBy:   s.initiatedBy,
	}
	account := s.account(s.fromAccountID, "5000")
	money := models.NewMoney(req.Amount, models.CurrencyINR)

	s.ledger.EXPECT().GetAccount(s.fromAccountID).Return(account, nil)
	s.ledger.EXPECT().Debit(s.fromAccountID, money).Return(s.account(s.fromAccountID, "3500"), nil)
	s.txRepo.EXPECT().Create(gomock.Any()).Return(nil)
	s.expectAudit()

	tx, err := s.engine.Withdraw(s.ctx, req)

	s.NoError(err)
	s.Equal(models.TransactionTypeWithdrawal, tx.TransactionType)
	s.Equal(models.TransactionStatusCompleted, tx.Status)
	s.Equal("3500", tx.FromBalanceAfter.String())
}

func (s *TransactionEngineTestSuite) TestWithdraw_InsufficientFunds() {
	req := &dto.WithdrawRequest{
		FromAccountID: s.fromAccountID,
		Amount:        decimal.RequireFromString("4500.00"),
		InitiatedBy:   s.initiatedBy,
	}
	account := s.account(s.fromAccountID, "5000")

	s.ledger.EXPECT().GetAccount(s.fromAccountID).Return(account, nil)
	s.ledger.EXPECT().Debit(s.fromAccountID, gomock.Any()).
		Return(nil, apperrors.E(apperrors.KindInsufficientFunds))
	s.txRepo.EXPECT().Create(gomock.Any()).Return(nil)
	s.expectAudit()

	tx, err := s.engine.Withdraw(s.ctx, req)

	s.True(apperrors.IsKind(err, apperrors.KindInsufficientFunds))
	s.Equal(models.TransactionStatusFailed, tx.Status)
}

func (s *TransactionEngineTestSuite) TestGetTransaction_NotFound() {
	id := uuid.New()
	s.txRepo.EXPECT().GetByID(id).Return(nil, repositories.ErrTransactionNotFound)

	_, err := s.engine.GetTransaction(id)

	s.True(apperrors.IsKind(err, apperrors.KindTransactionNotFound))
}

func (s *TransactionEngineTestSuite) TestGetAccountTransactions() {
	s.txRepo.EXPECT().GetByAccountID(s.fromAccountID, 0, 20).
		Return([]models.Transaction{{ID: uuid.New()}}, int64(1), nil)

	txs, total, err := s.engine.GetAccountTransactions(s.fromAccountID, 0, 20)

	s.NoError(err)
	s.Len(txs, 1)
	s.Equal(int64(1), total)
}
