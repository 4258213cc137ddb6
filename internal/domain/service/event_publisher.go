// Package service defines domain service contracts implemented by the
// infrastructure layer.
package service

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// DailyGoalAchievedEvent is the payload of the "DailyGoalAchieved" domain
// event published when a user crosses the daily distance goal.
type DailyGoalAchievedEvent struct {
	RequestID string    `json:"request_id,omitempty"` // For distributed tracing
	UserID    uuid.UUID `json:"user_id"`
	Date      time.Time `json:"date"` // UTC calendar day of the achievement
}

// EventPublisher defines the interface for publishing domain events to a
// message bus. Delivery guarantees are the bus's responsibility; publishing
// is fire-and-forget from the caller's perspective.
type EventPublisher interface {
	// Publish emits a named event with the given payload.
	Publish(ctx context.Context, eventName string, payload any) error

	// Close releases any resources held by the publisher.
	Close() error
}
