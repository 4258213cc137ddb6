package repository

import (
	"context"
	"time"

	"wayfarer/internal/domain/entity"
	"wayfarer/internal/errors"

	"github.com/google/uuid"
)

// ErrDuplicateBadge is returned when a badge already exists for the same
// user and calendar day. The unique index on (user_id, date) makes badge
// creation an atomic insert-if-absent.
var ErrDuplicateBadge = errors.New("badge already exists")

// BadgeRepository defines the interface for daily goal badge persistence.
type BadgeRepository interface {
	// Create persists a new badge.
	Create(ctx context.Context, badge *entity.DailyGoalBadge) error

	// ExistsForUserOnDate reports whether the user already holds a badge for
	// the given UTC calendar day.
	ExistsForUserOnDate(ctx context.Context, userID uuid.UUID, date time.Time) (bool, error)
}
