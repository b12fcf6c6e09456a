package models

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const (
	AuditCategoryAuthentication    = "authentication"
	AuditCategoryAccountManagement = "account_management"
	AuditCategoryTransaction       = "transaction"
	AuditCategoryLoan              = "loan"
	AuditCategorySecurityEvent     = "security_event"

	AuditOutcomeSuccess = "success"
	AuditOutcomeDenied  = "denied"
	AuditOutcomeError   = "error"

	AuditSeverityInfo     = "info"
	AuditSeverityWarning  = "warning"
	AuditSeverityError    = "error"
	AuditSeverityCritical = "critical"
)

// AuditEvent is one entry in the append-only audit trail. Every attempted
// operation produces exactly one event, rejections included; events are never
// updated or deleted. Ordering by timestamp is the only cross-event guarantee.
type AuditEvent struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key" json:"id"`
	Category  string    `gorm:"type:varchar(30);not null;index" json:"category"`
	ActorID   uuid.UUID `gorm:"type:uuid;index" json:"actor_id"`
	Subject   string    `gorm:"type:varchar(255);index" json:"subject"`
	Action    string    `gorm:"type:varchar(100);not null;index" json:"action"`
	Outcome   string    `gorm:"type:varchar(20);not null" json:"outcome"`
	Severity  string    `gorm:"type:varchar(20);not null;default:'info'" json:"severity"`
	Detail    JSONBMap  `gorm:"type:text" json:"detail,omitempty"`
	CreatedAt time.Time `gorm:"not null;index" json:"created_at"`
}

// BeforeCreate hook for AuditEvent
func (e *AuditEvent) BeforeCreate(tx *gorm.DB) error {
	if e.ID == uuid.Nil {
		e.ID = uuid.New()
	}

	if e.Severity == "" {
		e.Severity = AuditSeverityInfo
	}

	if e.CreatedAt.IsZero() {
		e.CreatedAt = time.Now()
	}
	return nil
}

// SetDetail adds one key to the event detail map.
func (e *AuditEvent) SetDetail(key string, value interface{}) {
	if e.Detail == nil {
		e.Detail = make(JSONBMap)
	}
	e.Detail[key] = value
}

func (e *AuditEvent) String() string {
	return fmt.Sprintf("AuditEvent[Category: %s, Action: %s, Subject: %s, Outcome: %s, Time: %s]",
		e.Category, e.Action, e.Subject, e.Outcome, e.CreatedAt.Format(time.RFC3339))
}

// TableName returns the table name for AuditEvent
func (e *AuditEvent) TableName() string {
	return "audit_events"
}

// IsValidAuditOutcome checks if the outcome is valid
func IsValidAuditOutcome(outcome string) bool {
	switch outcome {
	case AuditOutcomeSuccess, AuditOutcomeDenied, AuditOutcomeError:
		return true
	default:
		return false
	}
}

// JSONBMap represents a JSONB map field for PostgreSQL
type JSONBMap map[string]interface{}

// Value implements driver.Valuer interface
func (m JSONBMap) Value() (driver.Value, error) {
	if len(m) == 0 {
		return nil, nil
	}
	bytes, err := json.Marshal(m)
	if err != nil {
		return nil, err
	}
	// Return string for SQLite compatibility
	return string(bytes), nil
}

func (m *JSONBMap) Scan(value interface{}) error {
	if value == nil {
		*m = nil
		return nil
	}

	var bytes []byte
	switch v := value.(type) {
	case []byte:
		bytes = v
	case string:
		bytes = []byte(v)
	default:
		return fmt.Errorf("cannot scan %T into JSONBMap", value)
	}

	if len(bytes) == 0 {
		*m = nil
		return nil
	}

	return json.Unmarshal(bytes, m)
}

func (m JSONBMap) MarshalJSON() ([]byte, error) {
	if m == nil {
		return []byte("null"), nil
	}
	return json.Marshal(map[string]interface{}(m))
}

func (m *JSONBMap) UnmarshalJSON(data []byte) error {
	if string(data) == "null" {
		return nil
	}
	var tmp map[string]interface{}
	if err := json.Unmarshal(data, &tmp); err != nil {
		return err
	}
	*m = JSONBMap(tmp)
	return nil
}
