package entity

import (
	"time"

	"github.com/google/uuid"
)

// JourneyShare grants journey visibility to one specific user. For a given
// (JourneyID, ReceivingUserID) pair at most one active share may exist.
type JourneyShare struct {
	ID              uuid.UUID `json:"id"`                // The Global Unique Identifier (GUID) for the share.
	JourneyID       uuid.UUID `json:"journey_id"`        // The journey being shared.
	SharedByUserID  uuid.UUID `json:"shared_by_user_id"` // The user who granted the share.
	ReceivingUserID uuid.UUID `json:"receiving_user_id"` // The user receiving visibility.
	SharedAt        time.Time `json:"shared_at"`         // Timestamp of when the share was created.
	IsRevoked       bool      `json:"is_revoked"`        // True once the share has been withdrawn.
}
