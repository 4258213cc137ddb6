package usecase

import "context"

// DailyGoalUsecase defines one evaluation cycle of the daily goal. The
// scheduler delivery invokes it on a fixed interval.
type DailyGoalUsecase interface {
	// EvaluateToday scans today's journeys per user, awards the badge to
	// users whose cumulative distance crossed the goal, and publishes a
	// DailyGoalAchieved event for each award. Users already holding today's
	// badge are skipped.
	EvaluateToday(ctx context.Context) error
}
