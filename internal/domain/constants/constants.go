// Package constants holds shared domain constants.
package constants

// Pub/Sub provider selection.
const (
	PubSubProviderLocal  = "local"
	PubSubProviderGoogle = "google"
)

// Audit log action tags.
const (
	ActionRevokePublicLink = "RevokePublicLink"
	ActionShareJourney     = "ShareJourney"
)

// EventDailyGoalAchieved is the domain event emitted when a user crosses the
// daily distance goal.
const EventDailyGoalAchieved = "DailyGoalAchieved"

// DefaultDailyGoalKm is the cumulative same-day distance a user has to
// travel to earn the daily goal badge.
const DefaultDailyGoalKm = 20.0
