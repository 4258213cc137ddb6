package model

import (
	"time"

	"github.com/google/uuid"
)

// AuditLogModel is the GORM-specific struct for the 'audit_logs' table.
// Rows are insert-only.
type AuditLogModel struct {
	ID          uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	UserID      uuid.UUID `gorm:"type:uuid;not null;index"`
	TargetID    uuid.UUID `gorm:"type:uuid;not null;index"`
	ActionType  string    `gorm:"type:varchar(64);not null;index"`
	Timestamp   time.Time `gorm:"not null"`
	Description string    `gorm:"type:text;not null"`
}

// TableName explicitly sets the table name for GORM.
func (AuditLogModel) TableName() string {
	return "audit_logs"
}
