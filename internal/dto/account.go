package dto

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Account Request DTOs

// OpenAccountRequest represents the request payload for opening a new account
type OpenAccountRequest struct {
	UserID         uuid.UUID       `json:"user_id" validate:"required"`
	AccountType    string          `json:"account_type" validate:"required,oneof=savings current fixed_deposit"`
	InitialDeposit decimal.Decimal `json:"initial_deposit" validate:"required"`
	Currency       string          `json:"currency" validate:"omitempty,len=3"`
}

// Account Response DTOs

// DailyUsageResponse reports an account's transfer volume for one day
type DailyUsageResponse struct {
	AccountID        uuid.UUID       `json:"account_id"`
	Day              string          `json:"day"`
	TotalTransferred decimal.Decimal `json:"total_transferred"`
	TransferCount    int             `json:"transfer_count"`
	Limit            decimal.Decimal `json:"limit"`
	Remaining        decimal.Decimal `json:"remaining"`
}
