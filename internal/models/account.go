package models

import (
	"errors"
	"fmt"
	"math/rand"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

const (
	AccountTypeSavings      = "savings"
	AccountTypeCurrent      = "current"
	AccountTypeFixedDeposit = "fixed_deposit"

	AccountStatusActive = "active"
	AccountStatusLocked = "locked"
	AccountStatusClosed = "closed"

	// Account number prefixes by type
	CurrentPrefix      = "10"
	SavingsPrefix      = "20"
	FixedDepositPrefix = "30"
)

var (
	ErrInvalidAccountType    = errors.New("invalid account type")
	ErrInvalidAccountStatus  = errors.New("invalid account status")
	ErrInvalidBalance        = errors.New("balance cannot be negative")
	ErrAccountNotActive      = errors.New("account is not active")
	ErrInsufficientFunds     = errors.New("insufficient funds")
	ErrUnsupportedOperation  = errors.New("operation not supported for this account type")
	ErrNonZeroClosingBalance = errors.New("account balance must be zero to close")
)

// Account is one customer ledger. The Version column is the optimistic
// concurrency gate: every balance write carries the version it read, and the
// store rejects the write if the stored version has advanced since.
type Account struct {
	ID                 uuid.UUID       `gorm:"type:uuid;primary_key" json:"id"`
	AccountNumber      string          `gorm:"type:varchar(10);uniqueIndex;not null" json:"account_number"`
	UserID             uuid.UUID       `gorm:"type:uuid;not null;index" json:"user_id"`
	AccountType        string          `gorm:"type:varchar(20);not null" json:"account_type"`
	Balance            decimal.Decimal `gorm:"type:decimal(15,2);not null;default:0" json:"balance"`
	MinimumBalance     decimal.Decimal `gorm:"type:decimal(15,2);not null;default:0" json:"minimum_balance"`
	DailyTransferLimit decimal.Decimal `gorm:"type:decimal(15,2);not null;default:0" json:"daily_transfer_limit"`
	Currency           string          `gorm:"type:varchar(3);not null;default:'INR'" json:"currency"`
	Status             string          `gorm:"type:varchar(20);not null;default:'active'" json:"status"`
	InterestRate       decimal.Decimal `gorm:"type:decimal(5,2);default:0" json:"interest_rate,omitempty"`
	MaturityDate       *time.Time      `json:"maturity_date,omitempty"`
	Version            int             `gorm:"not null;default:1" json:"version"`
	CreatedAt          time.Time       `gorm:"not null" json:"created_at"`
	UpdatedAt          time.Time       `gorm:"not null" json:"updated_at"`
	ClosedAt           *time.Time      `gorm:"index" json:"closed_at,omitempty"`
}

// BeforeCreate hook for Account
func (a *Account) BeforeCreate(tx *gorm.DB) error {
	if a.ID == uuid.Nil {
		a.ID = uuid.New()
	}

	if a.Status == "" {
		a.Status = AccountStatusActive
	}

	if a.Currency == "" {
		a.Currency = CurrencyINR
	}

	if a.Version == 0 {
		a.Version = 1
	}

	// Set timestamps if not already set (for tests)
	now := time.Now()
	if a.CreatedAt.IsZero() {
		a.CreatedAt = now
	}
	if a.UpdatedAt.IsZero() {
		a.UpdatedAt = now
	}

	return a.Validate()
}

// BeforeUpdate hook for Account
func (a *Account) BeforeUpdate(tx *gorm.DB) error {
	a.UpdatedAt = time.Now()
	return a.Validate()
}

// Validate validates the account fields
func (a *Account) Validate() error {
	if a.UserID == uuid.Nil {
		return errors.New("user ID is required")
	}

	if a.AccountNumber == "" {
		return errors.New("account number is required")
	}

	if len(a.AccountNumber) != 10 {
		return errors.New("account number must be 10 digits")
	}

	if !IsValidAccountType(a.AccountType) {
		return ErrInvalidAccountType
	}

	if !IsValidAccountStatus(a.Status) {
		return ErrInvalidAccountStatus
	}

	if a.Balance.LessThan(decimal.Zero) {
		return ErrInvalidBalance
	}

	if a.MinimumBalance.LessThan(decimal.Zero) {
		return errors.New("minimum balance cannot be negative")
	}

	// Business rule: Account number prefix must match account type
	expectedPrefix := GetAccountPrefix(a.AccountType)
	if a.AccountNumber[:2] != expectedPrefix {
		return fmt.Errorf("account number prefix does not match account type")
	}

	return nil
}

// IsActive returns true if the account is active
func (a *Account) IsActive() bool {
	return a.Status == AccountStatusActive
}

// IsFixedDeposit returns true for fixed deposit accounts
func (a *Account) IsFixedDeposit() bool {
	return a.AccountType == AccountTypeFixedDeposit
}

// BalanceMoney returns the balance as a tagged Money value.
func (a *Account) BalanceMoney() Money {
	return NewMoney(a.Balance, a.Currency)
}

// AvailableBalance is the balance the holder may draw on: balance minus the
// policy minimum. Fixed deposits have no drawable balance outside closure.
func (a *Account) AvailableBalance() decimal.Decimal {
	if a.IsFixedDeposit() {
		return decimal.Zero
	}
	return a.Balance.Sub(a.MinimumBalance)
}

// CanDebit checks the debit invariants without mutating the account.
func (a *Account) CanDebit(amount decimal.Decimal) error {
	if !a.IsActive() {
		return ErrAccountNotActive
	}
	if a.IsFixedDeposit() {
		return ErrUnsupportedOperation
	}
	if amount.LessThanOrEqual(decimal.Zero) {
		return errors.New("debit amount must be positive")
	}
	if a.Balance.Sub(amount).LessThan(a.MinimumBalance) {
		return ErrInsufficientFunds
	}
	return nil
}

// Debit decrements the balance and bumps the version. The caller persists
// the write under the version it originally read.
func (a *Account) Debit(amount decimal.Decimal) error {
	if err := a.CanDebit(amount); err != nil {
		return err
	}

	a.Balance = a.Balance.Sub(amount)
	a.Version++
	return nil
}

// Credit increments the balance and bumps the version. Credit has no upper
// bound and never fails for an active account.
func (a *Account) Credit(amount decimal.Decimal) error {
	if !a.IsActive() {
		return ErrAccountNotActive
	}

	if amount.LessThanOrEqual(decimal.Zero) {
		return errors.New("credit amount must be positive")
	}

	a.Balance = a.Balance.Add(amount)
	a.Version++
	return nil
}

// Lock freezes the account
func (a *Account) Lock() error {
	if a.Status == AccountStatusClosed {
		return errors.New("cannot lock a closed account")
	}

	a.Status = AccountStatusLocked
	a.Version++
	return nil
}

// Unlock reactivates a locked account
func (a *Account) Unlock() error {
	if a.Status == AccountStatusClosed {
		return errors.New("cannot unlock a closed account")
	}

	a.Status = AccountStatusActive
	a.Version++
	return nil
}

// Close closes the account. The balance must have been paid out first.
func (a *Account) Close() error {
	if a.Status == AccountStatusClosed {
		return errors.New("account is already closed")
	}

	if !a.Balance.IsZero() {
		return ErrNonZeroClosingBalance
	}

	a.Status = AccountStatusClosed
	a.Version++
	now := time.Now()
	a.ClosedAt = &now
	return nil
}

// TableName returns the table name for Account
func (a *Account) TableName() string {
	return "accounts"
}

// Helper functions

// IsValidAccountType checks if the account type is valid
func IsValidAccountType(accountType string) bool {
	switch accountType {
	case AccountTypeSavings, AccountTypeCurrent, AccountTypeFixedDeposit:
		return true
	default:
		return false
	}
}

// IsValidAccountStatus checks if the account status is valid
func IsValidAccountStatus(status string) bool {
	switch status {
	case AccountStatusActive, AccountStatusLocked, AccountStatusClosed:
		return true
	default:
		return false
	}
}

// GetAccountPrefix returns the prefix for an account type
func GetAccountPrefix(accountType string) string {
	switch accountType {
	case AccountTypeCurrent:
		return CurrentPrefix
	case AccountTypeSavings:
		return SavingsPrefix
	case AccountTypeFixedDeposit:
		return FixedDepositPrefix
	default:
		return ""
	}
}

// GenerateAccountNumber generates a 10-digit account number
func GenerateAccountNumber(accountType string) string {
	prefix := GetAccountPrefix(accountType)
	if prefix == "" {
		return ""
	}

	middle := fmt.Sprintf("%02d", rand.Intn(100))

	// In production, this would be from a database sequence
	suffix := fmt.Sprintf("%06d", rand.Intn(1000000))

	return prefix + middle + suffix
}

// ValidateAccountNumber validates an account number format
func ValidateAccountNumber(accountNumber string) bool {
	if len(accountNumber) != 10 {
		return false
	}

	for _, char := range accountNumber {
		if char < '0' || char > '9' {
			return false
		}
	}

	prefix := accountNumber[:2]
	if prefix != CurrentPrefix && prefix != SavingsPrefix && prefix != FixedDepositPrefix {
		return false
	}

	return true
}
