package entity

import (
	"time"

	"github.com/google/uuid"
)

// DailyGoalBadge records that a user crossed the daily distance goal on a
// given UTC calendar day. At most one badge exists per (UserID, Date).
type DailyGoalBadge struct {
	ID              uuid.UUID `json:"id"`                // The Global Unique Identifier (GUID) for the badge.
	UserID          uuid.UUID `json:"user_id"`           // The awarded user.
	Date            time.Time `json:"date"`              // UTC calendar day, truncated to midnight.
	TotalDistanceKm float64   `json:"total_distance_km"` // Cumulative distance at the moment the goal was crossed.
}
