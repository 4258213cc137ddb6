package model

import (
	"time"

	"github.com/google/uuid"
)

// DailyGoalBadgeModel is the GORM-specific struct for the
// 'daily_goal_badges' table. The composite unique index keeps at most one
// badge per user and calendar day.
type DailyGoalBadgeModel struct {
	ID              uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	UserID          uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:uniq_badges_user_date;index"`
	Date            time.Time `gorm:"type:date;not null;uniqueIndex:uniq_badges_user_date"`
	TotalDistanceKm float64   `gorm:"type:decimal(10,3);not null"`
	CreatedAt       time.Time
}

// TableName explicitly sets the table name for GORM.
func (DailyGoalBadgeModel) TableName() string {
	return "daily_goal_badges"
}
