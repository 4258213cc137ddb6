package model

import (
	"time"

	"github.com/google/uuid"
)

// JourneyShareModel is the GORM-specific struct for the 'journey_shares'
// table. The one-active-share-per-receiver rule is enforced by a partial
// unique index on (journey_id, receiving_user_id) WHERE is_revoked = false,
// created in the schema migration.
type JourneyShareModel struct {
	ID              uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	JourneyID       uuid.UUID `gorm:"type:uuid;not null;index"`
	SharedByUserID  uuid.UUID `gorm:"type:uuid;not null;index"`
	ReceivingUserID uuid.UUID `gorm:"type:uuid;not null;index"`
	IsRevoked       bool      `gorm:"not null;default:false"`
	SharedAt        time.Time
}

// TableName explicitly sets the table name for GORM.
func (JourneyShareModel) TableName() string {
	return "journey_shares"
}
