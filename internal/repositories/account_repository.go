package repositories

import (
	"errors"
	"fmt"
	"sync"
	"time"

	"jadebank/internal/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

var (
	ErrAccountNotFound     = errors.New("account not found")
	ErrAccountNumberExists = errors.New("account number already exists")
	ErrVersionConflict     = errors.New("version conflict: record was modified concurrently")
)

// accountRepository implements AccountRepositoryInterface
type accountRepository struct {
	db *gorm.DB
	mu sync.Mutex // For account number generation
}

// NewAccountRepository creates a new account repository
func NewAccountRepository(db *gorm.DB) AccountRepositoryInterface {
	return &accountRepository{
		db: db,
	}
}

// Create creates a new account
func (r *accountRepository) Create(account *models.Account) error {
	if err := r.db.Create(account).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return ErrAccountNumberExists
		}
		return fmt.Errorf("failed to create account: %w", err)
	}
	return nil
}

// GetByID retrieves an account by ID
func (r *accountRepository) GetByID(id uuid.UUID) (*models.Account, error) {
	var account models.Account
	if err := r.db.Where("id = ?", id).First(&account).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrAccountNotFound
		}
		return nil, fmt.Errorf("failed to get account: %w", err)
	}
	return &account, nil
}

// GetByAccountNumber retrieves an account by account number
func (r *accountRepository) GetByAccountNumber(accountNumber string) (*models.Account, error) {
	var account models.Account
	if err := r.db.Where("account_number = ?", accountNumber).First(&account).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrAccountNotFound
		}
		return nil, fmt.Errorf("failed to get account by number: %w", err)
	}
	return &account, nil
}

// GetByUserID retrieves all accounts for a user
func (r *accountRepository) GetByUserID(userID uuid.UUID) ([]models.Account, error) {
	var accounts []models.Account
	if err := r.db.Where("user_id = ?", userID).Order("created_at DESC").Find(&accounts).Error; err != nil {
		return nil, fmt.Errorf("failed to get accounts for user: %w", err)
	}
	return accounts, nil
}

// GetByStatus retrieves accounts by status with pagination
func (r *accountRepository) GetByStatus(status string, offset, limit int) ([]models.Account, error) {
	var accounts []models.Account
	if err := r.db.Where("status = ?", status).
		Offset(offset).Limit(limit).
		Order("created_at DESC").Find(&accounts).Error; err != nil {
		return nil, fmt.Errorf("failed to get accounts by status: %w", err)
	}
	return accounts, nil
}

// UpdateWithVersion persists the account only if the stored version still
// matches expectedVersion. Zero rows affected means another writer got there
// first and the caller must re-read and retry.
func (r *accountRepository) UpdateWithVersion(account *models.Account, expectedVersion int) error {
	// The populated account is the hook target; a zero-value model would
	// fail its own BeforeUpdate validation.
	result := r.db.Model(account).
		Where("id = ? AND version = ?", account.ID, expectedVersion).
		Updates(map[string]interface{}{
			"balance":    account.Balance,
			"status":     account.Status,
			"closed_at":  account.ClosedAt,
			"version":    account.Version,
			"updated_at": time.Now(),
		})

	if result.Error != nil {
		return fmt.Errorf("failed to update account: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		// Distinguish a missing row from a stale version
		var count int64
		if err := r.db.Model(&models.Account{}).
			Where("id = ?", account.ID).Count(&count).Error; err != nil {
			return fmt.Errorf("failed to check account existence: %w", err)
		}
		if count == 0 {
			return ErrAccountNotFound
		}
		return ErrVersionConflict
	}
	return nil
}

// GenerateUniqueAccountNumber generates a unique account number
func (r *accountRepository) GenerateUniqueAccountNumber(accountType string) (string, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	maxAttempts := 10
	for i := 0; i < maxAttempts; i++ {
		accountNumber := models.GenerateAccountNumber(accountType)
		if accountNumber == "" {
			return "", fmt.Errorf("invalid account type for number generation")
		}

		var count int64
		if err := r.db.Model(&models.Account{}).
			Where("account_number = ?", accountNumber).
			Count(&count).Error; err != nil {
			return "", fmt.Errorf("failed to check account number uniqueness: %w", err)
		}

		if count == 0 {
			return accountNumber, nil
		}
	}

	return "", fmt.Errorf("failed to generate unique account number after %d attempts", maxAttempts)
}
