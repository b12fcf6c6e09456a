package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// DayFormat is the canonical key format for a calendar day in the bank's
// timezone.
const DayFormat = "2006-01-02"

// DailyTransferRecord accumulates an account's outgoing transfer volume for
// one calendar day in the bank's timezone. A new day means a new row, never a
// reset of the old one; old rows are retained for history.
type DailyTransferRecord struct {
	ID               uuid.UUID       `gorm:"type:uuid;primary_key" json:"id"`
	AccountID        uuid.UUID       `gorm:"type:uuid;not null;uniqueIndex:idx_daily_account_day" json:"account_id"`
	Day              string          `gorm:"type:varchar(10);not null;uniqueIndex:idx_daily_account_day;index" json:"day"`
	TotalTransferred decimal.Decimal `gorm:"type:decimal(15,2);not null;default:0" json:"total_transferred"`
	TransferCount    int             `gorm:"not null;default:0" json:"transfer_count"`
	Version          int             `gorm:"not null;default:1" json:"version"`
	CreatedAt        time.Time       `gorm:"not null" json:"created_at"`
	UpdatedAt        time.Time       `gorm:"not null" json:"updated_at"`
}

// BeforeCreate hook for DailyTransferRecord
func (r *DailyTransferRecord) BeforeCreate(tx *gorm.DB) error {
	if r.ID == uuid.Nil {
		r.ID = uuid.New()
	}

	if r.Version == 0 {
		r.Version = 1
	}

	now := time.Now()
	if r.CreatedAt.IsZero() {
		r.CreatedAt = now
	}
	if r.UpdatedAt.IsZero() {
		r.UpdatedAt = now
	}

	return nil
}

// Reserve adds amount to the day's running total and bumps the version. The
// caller persists under the version it read.
func (r *DailyTransferRecord) Reserve(amount decimal.Decimal) {
	r.TotalTransferred = r.TotalTransferred.Add(amount)
	r.TransferCount++
	r.Version++
}

// Release reverses a reservation after a rolled-back operation. The total
// never goes below zero.
func (r *DailyTransferRecord) Release(amount decimal.Decimal) {
	r.TotalTransferred = r.TotalTransferred.Sub(amount)
	if r.TotalTransferred.LessThan(decimal.Zero) {
		r.TotalTransferred = decimal.Zero
	}
	if r.TransferCount > 0 {
		r.TransferCount--
	}
	r.Version++
}

// WouldExceed reports whether reserving amount would push the running total
// past the limit.
func (r *DailyTransferRecord) WouldExceed(amount, limit decimal.Decimal) bool {
	return r.TotalTransferred.Add(amount).GreaterThan(limit)
}

// DayOf returns the calendar-day key for t in the bank's timezone. A transfer
// spanning midnight is attributed to the day on which it is recorded.
func DayOf(t time.Time, loc *time.Location) string {
	return t.In(loc).Format(DayFormat)
}

// TableName returns the table name for DailyTransferRecord
func (r *DailyTransferRecord) TableName() string {
	return "daily_transfer_records"
}
