package postgres

import (
	"context"

	"wayfarer/internal/domain/entity"
	domainerrors "wayfarer/internal/domain/errors"
	"wayfarer/internal/domain/repository"
	"wayfarer/internal/infra/persistence/model"

	"gorm.io/gorm"
)

// auditLogRepository implements the repository.AuditLogRepository interface.
// The table is insert-only.
type auditLogRepository struct {
	db *gorm.DB
}

// NewAuditLogRepository is the constructor for auditLogRepository.
func NewAuditLogRepository(db *gorm.DB) repository.AuditLogRepository {
	return &auditLogRepository{
		db: db,
	}
}

// Create appends a new audit entry.
func (repo *auditLogRepository) Create(ctx context.Context, log *entity.AuditLog) error {
	logM := &model.AuditLogModel{
		ID:          log.ID,
		UserID:      log.UserID,
		TargetID:    log.TargetID,
		ActionType:  log.ActionType,
		Timestamp:   log.Timestamp,
		Description: log.Description,
	}

	if err := repo.db.WithContext(ctx).Create(logM).Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to create audit log entry")
	}

	log.ID = logM.ID

	return nil
}
