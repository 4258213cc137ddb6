package entity

import (
	"time"

	"github.com/google/uuid"
)

// AuditLog is an append-only record of a sensitive action. Entries are never
// mutated or deleted by the application.
type AuditLog struct {
	ID          uuid.UUID `json:"id"`          // The Global Unique Identifier (GUID) for the entry.
	UserID      uuid.UUID `json:"user_id"`     // The acting user.
	TargetID    uuid.UUID `json:"target_id"`   // The entity acted upon (a link or share id).
	ActionType  string    `json:"action_type"` // Action tag, e.g. "RevokePublicLink", "ShareJourney".
	Timestamp   time.Time `json:"timestamp"`   // When the action happened.
	Description string    `json:"description"` // Human-readable description of the action.
}
