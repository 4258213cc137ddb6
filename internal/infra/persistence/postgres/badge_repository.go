package postgres

import (
	"context"
	"time"

	"wayfarer/internal/domain/entity"
	domainerrors "wayfarer/internal/domain/errors"
	"wayfarer/internal/domain/repository"
	"wayfarer/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// badgeRepository implements the repository.BadgeRepository interface.
type badgeRepository struct {
	db *gorm.DB
}

// NewBadgeRepository is the constructor for badgeRepository.
func NewBadgeRepository(db *gorm.DB) repository.BadgeRepository {
	return &badgeRepository{
		db: db,
	}
}

// Create persists a new badge. The unique index on (user_id, date) turns
// concurrent awards for the same day into ErrDuplicateBadge.
func (repo *badgeRepository) Create(ctx context.Context, badge *entity.DailyGoalBadge) error {
	badgeM := &model.DailyGoalBadgeModel{
		ID:              badge.ID,
		UserID:          badge.UserID,
		Date:            badge.Date,
		TotalDistanceKm: badge.TotalDistanceKm,
	}

	if err := repo.db.WithContext(ctx).Create(badgeM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return repository.ErrDuplicateBadge
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create badge")
	}

	badge.ID = badgeM.ID

	return nil
}

// ExistsForUserOnDate reports whether the user already holds a badge for
// the given UTC calendar day.
func (repo *badgeRepository) ExistsForUserOnDate(ctx context.Context, userID uuid.UUID, date time.Time) (bool, error) {
	var count int64

	if err := repo.db.WithContext(ctx).
		Model(&model.DailyGoalBadgeModel{}).
		Where("user_id = ? AND date = ?", userID, date.UTC().Truncate(24*time.Hour)).
		Count(&count).Error; err != nil {
		return false, errors.Wrap(err, "failed to count badges for user and date")
	}

	return count > 0, nil
}
