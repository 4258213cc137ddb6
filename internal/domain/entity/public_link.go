package entity

import (
	"time"

	"github.com/google/uuid"
)

// JourneyPublicLink is a single-use opaque token granting unauthenticated
// read access to one journey. A link is spent either by its first successful
// resolution or by an explicit owner revocation; both leave IsRevoked true
// and the state is terminal.
type JourneyPublicLink struct {
	ID        uuid.UUID  `json:"id"`         // The Global Unique Identifier (GUID) for the link.
	JourneyID uuid.UUID  `json:"journey_id"` // The journey this link exposes.
	Token     string     `json:"token"`      // Opaque unique token, generated at creation.
	CreatedAt time.Time  `json:"created_at"` // Timestamp of when the link was created.
	IsRevoked bool       `json:"is_revoked"` // True once consumed or revoked by the owner.
	RevokedAt *time.Time `json:"revoked_at"` // Stamped on owner revocation only.
}

// PublicURL returns the path under which the link can be resolved.
func (l *JourneyPublicLink) PublicURL() string {
	return "/api/journeys/public/" + l.Token
}
