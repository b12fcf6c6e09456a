package repositories

import (
	"time"

	"jadebank/internal/models"

	"github.com/google/uuid"
)

// AccountRepositoryInterface defines the contract for account repository operations
type AccountRepositoryInterface interface {
	Create(account *models.Account) error
	GetByID(id uuid.UUID) (*models.Account, error)
	GetByAccountNumber(accountNumber string) (*models.Account, error)
	GetByUserID(userID uuid.UUID) ([]models.Account, error)
	GetByStatus(status string, offset, limit int) ([]models.Account, error)
	UpdateWithVersion(account *models.Account, expectedVersion int) error
	GenerateUniqueAccountNumber(accountType string) (string, error)
}

// TransactionRepositoryInterface defines the contract for transaction repository operations
type TransactionRepositoryInterface interface {
	Create(transaction *models.Transaction) error
	GetByID(id uuid.UUID) (*models.Transaction, error)
	GetByReference(reference string) (*models.Transaction, error)
	GetByAccountID(accountID uuid.UUID, offset, limit int) ([]models.Transaction, int64, error)
	GetByDateRange(accountID uuid.UUID, startDate, endDate time.Time) ([]models.Transaction, error)
}

// DailyTransferRepositoryInterface defines the contract for daily transfer tracking operations
type DailyTransferRepositoryInterface interface {
	GetOrCreateForDay(accountID uuid.UUID, day string) (*models.DailyTransferRecord, error)
	UpdateWithVersion(record *models.DailyTransferRecord, expectedVersion int) error
	GetHistory(accountID uuid.UUID, fromDay, toDay string) ([]models.DailyTransferRecord, error)
}

// LoanRepositoryInterface defines the contract for loan repository operations
type LoanRepositoryInterface interface {
	Create(loan *models.Loan) error
	GetByID(id uuid.UUID) (*models.Loan, error)
	GetByUserID(userID uuid.UUID) ([]models.Loan, error)
	UpdateWithVersion(loan *models.Loan, expectedVersion int) error
	CreateSchedule(schedule []models.LoanEMIPayment) error
	GetSchedule(loanID uuid.UUID) ([]models.LoanEMIPayment, error)
	GetInstallment(loanID uuid.UUID, installmentNumber int) (*models.LoanEMIPayment, error)
	GetFirstPayable(loanID uuid.UUID) (*models.LoanEMIPayment, error)
	UpdateInstallment(installment *models.LoanEMIPayment) error
	GetDueBefore(asOf time.Time, limit int) ([]models.LoanEMIPayment, error)
}

// AuditEventRepositoryInterface defines the contract for audit event repository operations
type AuditEventRepositoryInterface interface {
	Create(event *models.AuditEvent) error
	CreateBatch(events []models.AuditEvent) error
	GetBySubject(subject string, offset, limit int) ([]models.AuditEvent, int64, error)
	GetByActor(actorID uuid.UUID, offset, limit int) ([]models.AuditEvent, int64, error)
	GetByTimeRange(startTime, endTime time.Time, offset, limit int) ([]models.AuditEvent, int64, error)
}
