package dto

import (
	"jadebank/internal/models"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Transaction Request DTOs

// TransferRequest represents the request payload for an account-to-account transfer
type TransferRequest struct {
	FromAccountID uuid.UUID       `json:"from_account_id" validate:"required"`
	ToAccountID   uuid.UUID       `json:"to_account_id" validate:"required"`
	Amount        decimal.Decimal `json:"amount" validate:"required"`
	Description   string          `json:"description" validate:"max=255"`
	InitiatedBy   uuid.UUID       `json:"initiated_by" validate:"required"`
}

// DepositRequest represents the request payload for a cash deposit
type DepositRequest struct {
	ToAccountID uuid.UUID       `json:"to_account_id" validate:"required"`
	Amount      decimal.Decimal `json:"amount" validate:"required"`
	Description string          `json:"description" validate:"max=255"`
	InitiatedBy uuid.UUID       `json:"initiated_by" validate:"required"`
}

// WithdrawRequest represents the request payload for a cash withdrawal
type WithdrawRequest struct {
	FromAccountID uuid.UUID       `json:"from_account_id" validate:"required"`
	Amount        decimal.Decimal `json:"amount" validate:"required"`
	Description   string          `json:"description" validate:"max=255"`
	InitiatedBy   uuid.UUID       `json:"initiated_by" validate:"required"`
}

// Transaction Response DTOs

// TransactionListResponse represents a paginated list of transactions
type TransactionListResponse struct {
	Transactions []models.Transaction `json:"transactions"`
	Total        int64                `json:"total"`
	Offset       int                  `json:"offset"`
	Limit        int                  `json:"limit"`
}
