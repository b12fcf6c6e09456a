package repositories

import (
	"errors"
	"fmt"
	"time"

	"jadebank/internal/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

var (
	ErrLoanNotFound        = errors.New("loan not found")
	ErrInstallmentNotFound = errors.New("installment not found")
)

// loanRepository implements LoanRepositoryInterface
type loanRepository struct {
	db *gorm.DB
}

// NewLoanRepository creates a new loan repository
func NewLoanRepository(db *gorm.DB) LoanRepositoryInterface {
	return &loanRepository{
		db: db,
	}
}

// Create creates a new loan application
func (r *loanRepository) Create(loan *models.Loan) error {
	if err := r.db.Create(loan).Error; err != nil {
		return fmt.Errorf("failed to create loan: %w", err)
	}
	return nil
}

// GetByID retrieves a loan by ID
func (r *loanRepository) GetByID(id uuid.UUID) (*models.Loan, error) {
	var loan models.Loan
	if err := r.db.Where("id = ?", id).First(&loan).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrLoanNotFound
		}
		return nil, fmt.Errorf("failed to get loan: %w", err)
	}
	return &loan, nil
}

// GetByUserID retrieves all loans for a user
func (r *loanRepository) GetByUserID(userID uuid.UUID) ([]models.Loan, error) {
	var loans []models.Loan
	if err := r.db.Where("user_id = ?", userID).Order("created_at DESC").Find(&loans).Error; err != nil {
		return nil, fmt.Errorf("failed to get loans for user: %w", err)
	}
	return loans, nil
}

// UpdateWithVersion persists loan state only if the stored version still
// matches expectedVersion.
func (r *loanRepository) UpdateWithVersion(loan *models.Loan, expectedVersion int) error {
	result := r.db.Model(&models.Loan{}).
		Where("id = ? AND version = ?", loan.ID, expectedVersion).
		Updates(map[string]interface{}{
			"status":                loan.Status,
			"outstanding_principal": loan.OutstandingPrincipal,
			"approved_by":           loan.ApprovedBy,
			"approved_at":           loan.ApprovedAt,
			"rejection_reason":      loan.RejectionReason,
			"disbursed_at":          loan.DisbursedAt,
			"closed_at":             loan.ClosedAt,
			"version":               loan.Version,
			"updated_at":            time.Now(),
		})

	if result.Error != nil {
		return fmt.Errorf("failed to update loan: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		var count int64
		if err := r.db.Model(&models.Loan{}).
			Where("id = ?", loan.ID).Count(&count).Error; err != nil {
			return fmt.Errorf("failed to check loan existence: %w", err)
		}
		if count == 0 {
			return ErrLoanNotFound
		}
		return ErrVersionConflict
	}
	return nil
}

// CreateSchedule persists a generated EMI schedule in one batch
func (r *loanRepository) CreateSchedule(schedule []models.LoanEMIPayment) error {
	if len(schedule) == 0 {
		return nil
	}
	if err := r.db.Create(&schedule).Error; err != nil {
		return fmt.Errorf("failed to create EMI schedule: %w", err)
	}
	return nil
}

// GetSchedule retrieves the full schedule for a loan in installment order
func (r *loanRepository) GetSchedule(loanID uuid.UUID) ([]models.LoanEMIPayment, error) {
	var schedule []models.LoanEMIPayment
	if err := r.db.Where("loan_id = ?", loanID).
		Order("installment_number ASC").Find(&schedule).Error; err != nil {
		return nil, fmt.Errorf("failed to get EMI schedule: %w", err)
	}
	return schedule, nil
}

// GetInstallment retrieves one installment by number
func (r *loanRepository) GetInstallment(loanID uuid.UUID, installmentNumber int) (*models.LoanEMIPayment, error) {
	var installment models.LoanEMIPayment
	if err := r.db.Where("loan_id = ? AND installment_number = ?", loanID, installmentNumber).
		First(&installment).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrInstallmentNotFound
		}
		return nil, fmt.Errorf("failed to get installment: %w", err)
	}
	return &installment, nil
}

// GetFirstPayable retrieves the lowest-numbered installment that is still
// due or overdue. Payments must settle installments strictly in this order.
func (r *loanRepository) GetFirstPayable(loanID uuid.UUID) (*models.LoanEMIPayment, error) {
	var installment models.LoanEMIPayment
	if err := r.db.Where("loan_id = ? AND status IN ?",
		loanID, []string{models.InstallmentStatusDue, models.InstallmentStatusOverdue}).
		Order("installment_number ASC").First(&installment).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrInstallmentNotFound
		}
		return nil, fmt.Errorf("failed to get next payable installment: %w", err)
	}
	return &installment, nil
}

// UpdateInstallment persists installment state
func (r *loanRepository) UpdateInstallment(installment *models.LoanEMIPayment) error {
	result := r.db.Model(&models.LoanEMIPayment{}).
		Where("id = ?", installment.ID).
		Updates(map[string]interface{}{
			"status":         installment.Status,
			"paid_amount":    installment.PaidAmount,
			"paid_at":        installment.PaidAt,
			"transaction_id": installment.TransactionID,
			"updated_at":     time.Now(),
		})

	if result.Error != nil {
		return fmt.Errorf("failed to update installment: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrInstallmentNotFound
	}
	return nil
}

// GetDueBefore retrieves due installments whose due date has passed
func (r *loanRepository) GetDueBefore(asOf time.Time, limit int) ([]models.LoanEMIPayment, error) {
	var installments []models.LoanEMIPayment
	if err := r.db.Where("status = ? AND due_date < ?", models.InstallmentStatusDue, asOf).
		Order("due_date ASC").Limit(limit).Find(&installments).Error; err != nil {
		return nil, fmt.Errorf("failed to get overdue installments: %w", err)
	}
	return installments, nil
}
