package model

import (
	"time"

	"github.com/google/uuid"
)

// JourneyPublicLinkModel is the GORM-specific struct for the
// 'journey_public_links' table. The single-active-link-per-journey rule is
// enforced by a partial unique index on journey_id WHERE is_revoked = false,
// created in the schema migration.
type JourneyPublicLinkModel struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	JourneyID uuid.UUID `gorm:"type:uuid;not null;index"`
	Token     string    `gorm:"type:varchar(64);not null;uniqueIndex"`
	IsRevoked bool      `gorm:"not null;default:false"`
	CreatedAt time.Time
	RevokedAt *time.Time
}

// TableName explicitly sets the table name for GORM.
func (JourneyPublicLinkModel) TableName() string {
	return "journey_public_links"
}
