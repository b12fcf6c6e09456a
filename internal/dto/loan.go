package dto

import (
	"jadebank/internal/models"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Loan Request DTOs

// LoanApplicationRequest represents the request payload for a loan application
type LoanApplicationRequest struct {
	UserID       uuid.UUID       `json:"user_id" validate:"required"`
	AccountID    uuid.UUID       `json:"account_id" validate:"required"`
	LoanType     string          `json:"loan_type" validate:"required,oneof=personal home auto education"`
	Principal    decimal.Decimal `json:"principal" validate:"required"`
	TenureMonths int             `json:"tenure_months" validate:"required,min=1"`
}

// EMIPaymentRequest represents the request payload for paying one EMI
// installment. InstallmentNumber is optional; when set it must name the next
// unsettled installment, since installments settle strictly in order.
type EMIPaymentRequest struct {
	LoanID            uuid.UUID       `json:"loan_id" validate:"required"`
	Amount            decimal.Decimal `json:"amount" validate:"required"`
	InstallmentNumber int             `json:"installment_number" validate:"omitempty,min=1"`
	InitiatedBy       uuid.UUID       `json:"initiated_by" validate:"required"`
}

// Loan Response DTOs

// LoanScheduleResponse represents a loan with its full EMI schedule
type LoanScheduleResponse struct {
	Loan     *models.Loan            `json:"loan"`
	Schedule []models.LoanEMIPayment `json:"schedule"`
}
