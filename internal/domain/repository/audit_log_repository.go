package repository

import (
	"context"

	"wayfarer/internal/domain/entity"
)

// AuditLogRepository defines the interface for the append-only audit trail.
// Entries are written once and never updated or deleted.
type AuditLogRepository interface {
	// Create appends a new audit entry.
	Create(ctx context.Context, log *entity.AuditLog) error
}
