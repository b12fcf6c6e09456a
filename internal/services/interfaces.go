package services

import (
	"context"
	"time"

	"jadebank/internal/dto"
	"jadebank/internal/models"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// AccountLedgerInterface defines balance-changing operations on accounts.
// All mutations go through optimistic version checks; callers decide whether
// to retry on conflict.
type AccountLedgerInterface interface {
	OpenAccount(req *dto.OpenAccountRequest) (*models.Account, error)
	GetAccount(accountID uuid.UUID) (*models.Account, error)
	GetAccountByNumber(accountNumber string) (*models.Account, error)
	GetUserAccounts(userID uuid.UUID) ([]models.Account, error)
	Debit(accountID uuid.UUID, amount models.Money) (*models.Account, error)
	Credit(accountID uuid.UUID, amount models.Money) (*models.Account, error)
	FreezeAccount(accountID uuid.UUID) (*models.Account, error)
	UnfreezeAccount(accountID uuid.UUID) (*models.Account, error)
	CloseAccount(accountID uuid.UUID) (*models.Account, error)
}

// DailyLimitTrackerInterface tracks per-account outgoing transfer volume per
// calendar day in the bank's timezone.
type DailyLimitTrackerInterface interface {
	CheckAndReserve(accountID uuid.UUID, amount, limit decimal.Decimal, at time.Time) (*models.DailyTransferRecord, error)
	Release(accountID uuid.UUID, amount decimal.Decimal, at time.Time) error
	UsageFor(accountID uuid.UUID, at time.Time) (decimal.Decimal, error)
	History(accountID uuid.UUID, from, to time.Time) ([]models.DailyTransferRecord, error)
}

// TransactionEngineInterface executes money movements and records one
// transaction row per attempt, rejections included.
type TransactionEngineInterface interface {
	Transfer(ctx context.Context, req *dto.TransferRequest) (*models.Transaction, error)
	Deposit(ctx context.Context, req *dto.DepositRequest) (*models.Transaction, error)
	Withdraw(ctx context.Context, req *dto.WithdrawRequest) (*models.Transaction, error)
	GetTransaction(id uuid.UUID) (*models.Transaction, error)
	GetTransactionByReference(reference string) (*models.Transaction, error)
	GetAccountTransactions(accountID uuid.UUID, offset, limit int) ([]models.Transaction, int64, error)
}

// EMIBreakdown is the result of an EMI calculation.
type EMIBreakdown struct {
	EMIAmount     decimal.Decimal `json:"emi_amount"`
	TotalInterest decimal.Decimal `json:"total_interest"`
	TotalPayable  decimal.Decimal `json:"total_payable"`
}

// EMIEngineInterface covers the loan lifecycle: application, review,
// disbursal, schedule generation and ordered payment application.
type EMIEngineInterface interface {
	CalculateEMI(principal, annualRate decimal.Decimal, tenureMonths int) (*EMIBreakdown, error)
	GenerateSchedule(principal, annualRate decimal.Decimal, tenureMonths int, firstDueDate time.Time) ([]models.LoanEMIPayment, error)
	ApplyForLoan(req *dto.LoanApplicationRequest) (*models.Loan, error)
	ApproveLoan(loanID, approvedBy uuid.UUID) (*models.Loan, error)
	RejectLoan(loanID uuid.UUID, reason string) (*models.Loan, error)
	DisburseLoan(ctx context.Context, loanID uuid.UUID) (*models.Loan, error)
	PayEMI(ctx context.Context, req *dto.EMIPaymentRequest) (*models.Transaction, error)
	GetLoan(loanID uuid.UUID) (*models.Loan, error)
	GetUserLoans(userID uuid.UUID) ([]models.Loan, error)
	GetSchedule(loanID uuid.UUID) ([]models.LoanEMIPayment, error)
	WaiveInstallment(loanID uuid.UUID, installmentNumber int, waivedBy uuid.UUID) (*models.LoanEMIPayment, error)
	MarkOverdueInstallments(asOf time.Time) (int, error)
}

// AuditRecorderInterface accepts audit events without blocking the caller.
// Events are flushed to the store by a background worker.
type AuditRecorderInterface interface {
	Record(event *models.AuditEvent)
	Start(ctx context.Context)
	Stop()
	DroppedCount() int64
}

// FraudScorerInterface is an extension point for transaction risk scoring.
// The engine records the score on the transaction and never acts on it.
type FraudScorerInterface interface {
	Score(transaction *models.Transaction) (score decimal.Decimal, flagged bool, reason string)
}

type MetricsRecorderInterface interface {
	IncrementCounter(name string, tags map[string]string)
	RecordProcessingTime(name string, duration time.Duration)
	RecordGauge(name string, value float64, tags map[string]string)
}

type CircuitBreakerInterface interface {
	IsOpen() bool
	RecordSuccess()
	RecordFailure()
	GetState() CircuitBreakerState
	Reset()
	GetFailureCount() int
}

// SampleDataGeneratorInterface generates realistic account and transaction
// data for demos and load tests.
type SampleDataGeneratorInterface interface {
	GenerateAccount(userID uuid.UUID, accountType string) *models.Account
	GenerateDeposits(accountID uuid.UUID, count int, startDate, endDate time.Time) []*models.Transaction
	GenerateLoanApplication(userID, accountID uuid.UUID) *dto.LoanApplicationRequest
}
