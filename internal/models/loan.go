package models

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

const (
	LoanTypePersonal  = "personal"
	LoanTypeHome      = "home"
	LoanTypeAuto      = "auto"
	LoanTypeEducation = "education"

	LoanStatusPendingReview = "pending_review"
	LoanStatusApproved      = "approved"
	LoanStatusRejected      = "rejected"
	LoanStatusActive        = "active"
	LoanStatusClosed        = "closed"
	LoanStatusDefaulted     = "defaulted"
)

var (
	ErrInvalidLoanType    = errors.New("invalid loan type")
	ErrInvalidLoanStatus  = errors.New("invalid loan status")
	ErrLoanNotActive      = errors.New("loan is not active")
	ErrInvalidTransition  = errors.New("invalid loan status transition")
	ErrInvalidInstallment = errors.New("installment number out of range")
)

// Loan tracks one loan from application through closure. The schedule is
// generated once at activation and mutated only by the payment-application
// routine, one installment at a time.
type Loan struct {
	ID           uuid.UUID       `gorm:"type:uuid;primary_key" json:"id"`
	UserID       uuid.UUID       `gorm:"type:uuid;not null;index" json:"user_id"`
	AccountID    uuid.UUID       `gorm:"type:uuid;not null;index" json:"account_id"`
	LoanType     string          `gorm:"type:varchar(20);not null" json:"loan_type"`
	Principal    decimal.Decimal `gorm:"type:decimal(15,2);not null" json:"principal"`
	AnnualRate   decimal.Decimal `gorm:"type:decimal(5,2);not null" json:"annual_rate"`
	TenureMonths int             `gorm:"not null" json:"tenure_months"`

	EMIAmount     decimal.Decimal `gorm:"type:decimal(15,2);not null" json:"emi_amount"`
	TotalInterest decimal.Decimal `gorm:"type:decimal(15,2);not null" json:"total_interest"`
	TotalPayable  decimal.Decimal `gorm:"type:decimal(15,2);not null" json:"total_payable"`

	OutstandingPrincipal decimal.Decimal `gorm:"type:decimal(15,2);not null" json:"outstanding_principal"`

	Status          string     `gorm:"type:varchar(20);not null;default:'pending_review';index" json:"status"`
	ApprovedBy      *uuid.UUID `gorm:"type:uuid" json:"approved_by,omitempty"`
	ApprovedAt      *time.Time `json:"approved_at,omitempty"`
	RejectionReason string     `gorm:"type:text" json:"rejection_reason,omitempty"`
	DisbursedAt     *time.Time `json:"disbursed_at,omitempty"`
	ClosedAt        *time.Time `json:"closed_at,omitempty"`

	Version   int       `gorm:"not null;default:1" json:"version"`
	CreatedAt time.Time `gorm:"not null;index" json:"created_at"`
	UpdatedAt time.Time `gorm:"not null" json:"updated_at"`

	// Associations
	Schedule []LoanEMIPayment `gorm:"foreignKey:LoanID" json:"schedule,omitempty"`
}

// BeforeCreate hook for Loan
func (l *Loan) BeforeCreate(tx *gorm.DB) error {
	if l.ID == uuid.Nil {
		l.ID = uuid.New()
	}

	if l.Status == "" {
		l.Status = LoanStatusPendingReview
	}

	if l.Version == 0 {
		l.Version = 1
	}

	now := time.Now()
	if l.CreatedAt.IsZero() {
		l.CreatedAt = now
	}
	if l.UpdatedAt.IsZero() {
		l.UpdatedAt = now
	}

	return l.Validate()
}

// BeforeUpdate hook for Loan
func (l *Loan) BeforeUpdate(tx *gorm.DB) error {
	l.UpdatedAt = time.Now()
	return nil
}

// Validate validates the loan fields
func (l *Loan) Validate() error {
	if l.UserID == uuid.Nil {
		return errors.New("user ID is required")
	}

	if l.AccountID == uuid.Nil {
		return errors.New("account ID is required")
	}

	if !IsValidLoanType(l.LoanType) {
		return ErrInvalidLoanType
	}

	if !IsValidLoanStatus(l.Status) {
		return ErrInvalidLoanStatus
	}

	if l.Principal.LessThanOrEqual(decimal.Zero) {
		return errors.New("principal must be positive")
	}

	if l.AnnualRate.LessThan(decimal.Zero) {
		return errors.New("annual rate cannot be negative")
	}

	if l.TenureMonths < 1 {
		return errors.New("tenure must be at least one month")
	}

	return nil
}

// IsActive returns true if the loan is active
func (l *Loan) IsActive() bool {
	return l.Status == LoanStatusActive
}

// Approve moves a pending application to approved.
func (l *Loan) Approve(approvedBy uuid.UUID) error {
	if l.Status != LoanStatusPendingReview {
		return ErrInvalidTransition
	}

	l.Status = LoanStatusApproved
	l.ApprovedBy = &approvedBy
	now := time.Now()
	l.ApprovedAt = &now
	return nil
}

// Reject declines a pending application with a reason.
func (l *Loan) Reject(reason string) error {
	if l.Status != LoanStatusPendingReview {
		return ErrInvalidTransition
	}

	l.Status = LoanStatusRejected
	l.RejectionReason = reason
	return nil
}

// Activate marks the loan disbursed. Only approved loans activate.
func (l *Loan) Activate() error {
	if l.Status != LoanStatusApproved {
		return ErrInvalidTransition
	}

	l.Status = LoanStatusActive
	now := time.Now()
	l.DisbursedAt = &now
	return nil
}

// CloseLoan marks a fully repaid loan closed.
func (l *Loan) CloseLoan() error {
	if l.Status != LoanStatusActive {
		return ErrInvalidTransition
	}

	l.Status = LoanStatusClosed
	now := time.Now()
	l.ClosedAt = &now
	return nil
}

// TableName returns the table name for Loan
func (l *Loan) TableName() string {
	return "loans"
}

// IsValidLoanType checks if the loan type is valid
func IsValidLoanType(loanType string) bool {
	switch loanType {
	case LoanTypePersonal, LoanTypeHome, LoanTypeAuto, LoanTypeEducation:
		return true
	default:
		return false
	}
}

// IsValidLoanStatus checks if the loan status is valid
func IsValidLoanStatus(status string) bool {
	switch status {
	case LoanStatusPendingReview, LoanStatusApproved, LoanStatusRejected,
		LoanStatusActive, LoanStatusClosed, LoanStatusDefaulted:
		return true
	default:
		return false
	}
}

const (
	InstallmentStatusDue     = "due"
	InstallmentStatusPaid    = "paid"
	InstallmentStatusOverdue = "overdue"
	InstallmentStatusWaived  = "waived"
)

// LoanEMIPayment is one installment of a loan schedule. Installments settle
// strictly in order; an installment cannot be paid while an earlier one is
// still due.
type LoanEMIPayment struct {
	ID                uuid.UUID       `gorm:"type:uuid;primary_key" json:"id"`
	LoanID            uuid.UUID       `gorm:"type:uuid;not null;uniqueIndex:idx_loan_installment" json:"loan_id"`
	InstallmentNumber int             `gorm:"not null;uniqueIndex:idx_loan_installment" json:"installment_number"`
	DueAmount         decimal.Decimal `gorm:"type:decimal(15,2);not null" json:"due_amount"`
	PrincipalComp     decimal.Decimal `gorm:"type:decimal(15,2);not null" json:"principal_component"`
	InterestComp      decimal.Decimal `gorm:"type:decimal(15,2);not null" json:"interest_component"`
	DueDate           time.Time       `gorm:"not null;index" json:"due_date"`

	PaidAmount    *decimal.Decimal `gorm:"type:decimal(15,2)" json:"paid_amount,omitempty"`
	PaidAt        *time.Time       `json:"paid_at,omitempty"`
	TransactionID *uuid.UUID       `gorm:"type:uuid" json:"transaction_id,omitempty"`

	Status    string    `gorm:"type:varchar(20);not null;default:'due';index" json:"status"`
	CreatedAt time.Time `gorm:"not null" json:"created_at"`
	UpdatedAt time.Time `gorm:"not null" json:"updated_at"`
}

// BeforeCreate hook for LoanEMIPayment
func (p *LoanEMIPayment) BeforeCreate(tx *gorm.DB) error {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}

	if p.Status == "" {
		p.Status = InstallmentStatusDue
	}

	now := time.Now()
	if p.CreatedAt.IsZero() {
		p.CreatedAt = now
	}
	if p.UpdatedAt.IsZero() {
		p.UpdatedAt = now
	}

	return nil
}

// IsSettled reports whether the installment no longer blocks later payments.
func (p *LoanEMIPayment) IsSettled() bool {
	return p.Status == InstallmentStatusPaid || p.Status == InstallmentStatusWaived
}

// IsPayable reports whether the installment can still be paid.
func (p *LoanEMIPayment) IsPayable() bool {
	return p.Status == InstallmentStatusDue || p.Status == InstallmentStatusOverdue
}

// MarkPaid settles the installment with the payment details.
func (p *LoanEMIPayment) MarkPaid(amount decimal.Decimal, transactionID uuid.UUID) {
	p.Status = InstallmentStatusPaid
	p.PaidAmount = &amount
	p.TransactionID = &transactionID
	now := time.Now()
	p.PaidAt = &now
}

// MarkOverdue flips a due installment past its due date to overdue.
func (p *LoanEMIPayment) MarkOverdue(asOf time.Time) bool {
	if p.Status == InstallmentStatusDue && asOf.After(p.DueDate) {
		p.Status = InstallmentStatusOverdue
		return true
	}
	return false
}

// TableName returns the table name for LoanEMIPayment
func (p *LoanEMIPayment) TableName() string {
	return "loan_emi_payments"
}
