// Package entity contains the core business objects of the project.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// Journey represents a single recorded trip belonging to a user.
type Journey struct {
	ID                  uuid.UUID `json:"id"`                     // The Global Unique Identifier (GUID) for the journey.
	UserID              uuid.UUID `json:"user_id"`                // The ID of the user who recorded the journey.
	StartingLocation    string    `json:"starting_location"`      // Free-text departure location.
	ArrivalLocation     string    `json:"arrival_location"`       // Free-text arrival location.
	StartTime           time.Time `json:"start_time"`             // When the journey started.
	ArrivalTime         time.Time `json:"arrival_time"`           // When the journey ended.
	TransportationType  string    `json:"transportation_type"`    // Free-text transport category, e.g. "Bike".
	RouteDistanceKm     float64   `json:"route_distance_km"`      // Travelled distance in kilometers, non-negative.
	IsDailyGoalAchieved bool      `json:"is_daily_goal_achieved"` // Set exactly once by the daily goal evaluator.
}
