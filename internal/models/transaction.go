package models

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

const (
	TransactionTypeTransfer     = "transfer"
	TransactionTypeDeposit      = "deposit"
	TransactionTypeWithdrawal   = "withdrawal"
	TransactionTypeEMIPayment   = "emi_payment"
	TransactionTypeDisbursement = "loan_disbursement"

	TransactionStatusPending   = "pending"
	TransactionStatusCompleted = "completed"
	TransactionStatusFailed    = "failed"
	TransactionStatusReversed  = "reversed"
)

var (
	ErrInvalidTransactionType   = errors.New("invalid transaction type")
	ErrInvalidTransactionStatus = errors.New("invalid transaction status")
	ErrInvalidAmount            = errors.New("transaction amount must be positive")
	ErrTerminalTransaction      = errors.New("transaction is already in a terminal status")
	ErrOptimisticLockConflict   = errors.New("optimistic lock conflict: version mismatch")
)

// Transaction is the permanent record of one attempted money movement.
// Rejected operations are recorded too, with status failed and the specific
// failure reason. Once the status is terminal the row is never edited again;
// corrections happen through new compensating transactions.
type Transaction struct {
	ID              uuid.UUID  `gorm:"type:uuid;primary_key" json:"id"`
	TransactionType string     `gorm:"type:varchar(20);not null" json:"transaction_type"`
	Status          string     `gorm:"type:varchar(20);not null;default:'pending';index" json:"status"`
	FromAccountID   *uuid.UUID `gorm:"type:uuid;index" json:"from_account_id,omitempty"`
	ToAccountID     *uuid.UUID `gorm:"type:uuid;index" json:"to_account_id,omitempty"`

	Amount   decimal.Decimal `gorm:"type:decimal(15,2);not null" json:"amount"`
	Currency string          `gorm:"type:varchar(3);not null;default:'INR'" json:"currency"`

	Description     string    `gorm:"type:text" json:"description"`
	ReferenceNumber string    `gorm:"type:varchar(50);uniqueIndex;not null" json:"reference_number"`
	InitiatedBy     uuid.UUID `gorm:"type:uuid" json:"initiated_by"`
	FailureReason   string    `gorm:"type:text" json:"failure_reason,omitempty"`

	// Fraud scoring extension point. The engine records whatever the
	// configured scorer reports; it never acts on the score itself.
	IsFlagged     bool             `gorm:"default:false;index" json:"is_flagged"`
	FraudScore    *decimal.Decimal `gorm:"type:decimal(5,2)" json:"fraud_score,omitempty"`
	FlaggedReason string           `gorm:"type:text" json:"flagged_reason,omitempty"`

	// Balances on both legs, captured for the audit trail
	FromBalanceBefore *decimal.Decimal `gorm:"type:decimal(15,2)" json:"from_balance_before,omitempty"`
	FromBalanceAfter  *decimal.Decimal `gorm:"type:decimal(15,2)" json:"from_balance_after,omitempty"`
	ToBalanceBefore   *decimal.Decimal `gorm:"type:decimal(15,2)" json:"to_balance_before,omitempty"`
	ToBalanceAfter    *decimal.Decimal `gorm:"type:decimal(15,2)" json:"to_balance_after,omitempty"`

	CreatedAt   time.Time  `gorm:"not null;index" json:"created_at"`
	CompletedAt *time.Time `json:"completed_at,omitempty"`
}

// BeforeCreate hook for Transaction
func (t *Transaction) BeforeCreate(tx *gorm.DB) error {
	if t.ID == uuid.Nil {
		t.ID = uuid.New()
	}

	now := time.Now()

	if t.Status == "" {
		t.Status = TransactionStatusPending
	}

	if t.Currency == "" {
		t.Currency = CurrencyINR
	}

	if t.Status == TransactionStatusCompleted && t.CompletedAt == nil {
		t.CompletedAt = &now
	}

	if t.ReferenceNumber == "" {
		t.ReferenceNumber = GenerateReferenceNumber(t.TransactionType)
	}

	if t.CreatedAt.IsZero() {
		t.CreatedAt = now
	}

	return t.Validate()
}

// Validate validates the transaction fields
func (t *Transaction) Validate() error {
	if !IsValidTransactionType(t.TransactionType) {
		return ErrInvalidTransactionType
	}

	if !IsValidTransactionStatus(t.Status) {
		return ErrInvalidTransactionStatus
	}

	if t.Amount.LessThanOrEqual(decimal.Zero) {
		return ErrInvalidAmount
	}

	if t.FromAccountID == nil && t.ToAccountID == nil {
		return errors.New("transaction must reference at least one account")
	}

	if t.Status == TransactionStatusFailed && t.FailureReason == "" {
		return errors.New("failed transaction requires a failure reason")
	}

	return nil
}

// IsTerminal reports whether the transaction reached a terminal status.
func (t *Transaction) IsTerminal() bool {
	switch t.Status {
	case TransactionStatusCompleted, TransactionStatusFailed, TransactionStatusReversed:
		return true
	default:
		return false
	}
}

// IsCompleted returns true if the transaction is completed
func (t *Transaction) IsCompleted() bool {
	return t.Status == TransactionStatusCompleted
}

// IsPending returns true if the transaction is pending
func (t *Transaction) IsPending() bool {
	return t.Status == TransactionStatusPending
}

// Complete marks the transaction as completed
func (t *Transaction) Complete() error {
	if t.IsTerminal() {
		return ErrTerminalTransaction
	}
	t.Status = TransactionStatusCompleted
	now := time.Now()
	t.CompletedAt = &now
	return nil
}

// Fail marks the transaction as failed with the rejection reason
func (t *Transaction) Fail(reason string) error {
	if t.IsTerminal() {
		return ErrTerminalTransaction
	}
	t.Status = TransactionStatusFailed
	t.FailureReason = reason
	now := time.Now()
	t.CompletedAt = &now
	return nil
}

// Reverse marks a completed transaction as reversed. Only completed
// transactions can be reversed, and only by a new compensating operation.
func (t *Transaction) Reverse() error {
	if t.Status != TransactionStatusCompleted {
		return ErrInvalidTransactionStatus
	}
	t.Status = TransactionStatusReversed
	return nil
}

// CanTransitionTo checks if a transaction can transition to a new status
func (t *Transaction) CanTransitionTo(newStatus string) bool {
	validTransitions := map[string][]string{
		TransactionStatusPending:   {TransactionStatusCompleted, TransactionStatusFailed},
		TransactionStatusCompleted: {TransactionStatusReversed},
		TransactionStatusFailed:    {}, // Terminal state
		TransactionStatusReversed:  {}, // Terminal state
	}

	allowedStatuses, exists := validTransitions[t.Status]
	if !exists {
		return false
	}

	for _, status := range allowedStatuses {
		if status == newStatus {
			return true
		}
	}
	return false
}

// TableName returns the table name for Transaction
func (t *Transaction) TableName() string {
	return "transactions"
}

// Helper functions

// IsValidTransactionType checks if the transaction type is valid
func IsValidTransactionType(transactionType string) bool {
	switch transactionType {
	case TransactionTypeTransfer, TransactionTypeDeposit, TransactionTypeWithdrawal,
		TransactionTypeEMIPayment, TransactionTypeDisbursement:
		return true
	default:
		return false
	}
}

// IsValidTransactionStatus checks if the transaction status is valid
func IsValidTransactionStatus(status string) bool {
	switch status {
	case TransactionStatusPending, TransactionStatusCompleted, TransactionStatusFailed, TransactionStatusReversed:
		return true
	default:
		return false
	}
}

// referencePrefixes maps transaction types to reference number prefixes
var referencePrefixes = map[string]string{
	TransactionTypeTransfer:     "TXN",
	TransactionTypeDeposit:      "DEP",
	TransactionTypeWithdrawal:   "WDR",
	TransactionTypeEMIPayment:   "EMI",
	TransactionTypeDisbursement: "DSB",
}

// GenerateReferenceNumber generates a unique reference number for the
// transaction type.
func GenerateReferenceNumber(transactionType string) string {
	prefix, ok := referencePrefixes[transactionType]
	if !ok {
		prefix = "TXN"
	}
	return prefix + "-" + uuid.New().String()[:8] + "-" + time.Now().Format("20060102150405")
}
