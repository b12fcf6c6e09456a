package repositories

import (
	"errors"
	"fmt"
	"time"

	"jadebank/internal/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// dailyTransferRepository implements DailyTransferRepositoryInterface
type dailyTransferRepository struct {
	db *gorm.DB
}

// NewDailyTransferRepository creates a new daily transfer repository
func NewDailyTransferRepository(db *gorm.DB) DailyTransferRepositoryInterface {
	return &dailyTransferRepository{
		db: db,
	}
}

// GetOrCreateForDay returns the tracking row for the account and day,
// creating a fresh zeroed row on first use. A unique index on
// (account_id, day) makes concurrent first-use creation safe: the loser
// of the race re-reads the winner's row.
func (r *dailyTransferRepository) GetOrCreateForDay(accountID uuid.UUID, day string) (*models.DailyTransferRecord, error) {
	var record models.DailyTransferRecord
	err := r.db.Where("account_id = ? AND day = ?", accountID, day).First(&record).Error
	if err == nil {
		return &record, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("failed to get daily transfer record: %w", err)
	}

	record = models.DailyTransferRecord{
		AccountID: accountID,
		Day:       day,
	}
	if err := r.db.Create(&record).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			var existing models.DailyTransferRecord
			if err := r.db.Where("account_id = ? AND day = ?", accountID, day).
				First(&existing).Error; err != nil {
				return nil, fmt.Errorf("failed to re-read daily transfer record: %w", err)
			}
			return &existing, nil
		}
		return nil, fmt.Errorf("failed to create daily transfer record: %w", err)
	}
	return &record, nil
}

// UpdateWithVersion persists the record only if the stored version still
// matches expectedVersion.
func (r *dailyTransferRepository) UpdateWithVersion(record *models.DailyTransferRecord, expectedVersion int) error {
	result := r.db.Model(&models.DailyTransferRecord{}).
		Where("id = ? AND version = ?", record.ID, expectedVersion).
		Updates(map[string]interface{}{
			"total_transferred": record.TotalTransferred,
			"transfer_count":    record.TransferCount,
			"version":           record.Version,
			"updated_at":        time.Now(),
		})

	if result.Error != nil {
		return fmt.Errorf("failed to update daily transfer record: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrVersionConflict
	}
	return nil
}

// GetHistory retrieves retained daily records for an account between two day
// keys inclusive.
func (r *dailyTransferRepository) GetHistory(accountID uuid.UUID, fromDay, toDay string) ([]models.DailyTransferRecord, error) {
	var records []models.DailyTransferRecord
	if err := r.db.Where("account_id = ? AND day BETWEEN ? AND ?", accountID, fromDay, toDay).
		Order("day ASC").Find(&records).Error; err != nil {
		return nil, fmt.Errorf("failed to get daily transfer history: %w", err)
	}
	return records, nil
}
