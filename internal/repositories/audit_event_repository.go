package repositories

import (
	"fmt"
	"time"

	"jadebank/internal/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// auditEventRepository implements AuditEventRepositoryInterface
type auditEventRepository struct {
	db *gorm.DB
}

// NewAuditEventRepository creates a new audit event repository
func NewAuditEventRepository(db *gorm.DB) AuditEventRepositoryInterface {
	return &auditEventRepository{
		db: db,
	}
}

// Create appends a single audit event
func (r *auditEventRepository) Create(event *models.AuditEvent) error {
	if err := r.db.Create(event).Error; err != nil {
		return fmt.Errorf("failed to create audit event: %w", err)
	}
	return nil
}

// CreateBatch appends a batch of audit events in one insert
func (r *auditEventRepository) CreateBatch(events []models.AuditEvent) error {
	if len(events) == 0 {
		return nil
	}
	if err := r.db.Create(&events).Error; err != nil {
		return fmt.Errorf("failed to create audit events: %w", err)
	}
	return nil
}

// GetBySubject retrieves audit events for a subject, newest first
func (r *auditEventRepository) GetBySubject(subject string, offset, limit int) ([]models.AuditEvent, int64, error) {
	var events []models.AuditEvent
	var total int64

	query := r.db.Model(&models.AuditEvent{}).Where("subject = ?", subject)

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count audit events: %w", err)
	}

	if err := query.Offset(offset).Limit(limit).
		Order("created_at DESC").Find(&events).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to get audit events by subject: %w", err)
	}

	return events, total, nil
}

// GetByActor retrieves audit events initiated by an actor, newest first
func (r *auditEventRepository) GetByActor(actorID uuid.UUID, offset, limit int) ([]models.AuditEvent, int64, error) {
	var events []models.AuditEvent
	var total int64

	query := r.db.Model(&models.AuditEvent{}).Where("actor_id = ?", actorID)

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count audit events: %w", err)
	}

	if err := query.Offset(offset).Limit(limit).
		Order("created_at DESC").Find(&events).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to get audit events by actor: %w", err)
	}

	return events, total, nil
}

// GetByTimeRange retrieves audit events in a time window, oldest first
func (r *auditEventRepository) GetByTimeRange(startTime, endTime time.Time, offset, limit int) ([]models.AuditEvent, int64, error) {
	var events []models.AuditEvent
	var total int64

	query := r.db.Model(&models.AuditEvent{}).
		Where("created_at BETWEEN ? AND ?", startTime, endTime)

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count audit events: %w", err)
	}

	if err := query.Offset(offset).Limit(limit).
		Order("created_at ASC").Find(&events).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to get audit events by time range: %w", err)
	}

	return events, total, nil
}
