// Package model contains the GORM-specific structs mapping the domain
// entities to database tables.
package model

import (
	"time"

	"github.com/google/uuid"
)

// JourneyModel is the GORM-specific struct for the 'journeys' table.
// The composite unique index keeps one journey per user and start time.
type JourneyModel struct {
	ID                  uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	UserID              uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:uniq_journeys_user_start_time;index"`
	StartingLocation    string    `gorm:"type:varchar(255);not null"`
	ArrivalLocation     string    `gorm:"type:varchar(255);not null"`
	StartTime           time.Time `gorm:"not null;uniqueIndex:uniq_journeys_user_start_time"`
	ArrivalTime         time.Time `gorm:"not null"`
	TransportationType  string    `gorm:"type:varchar(64);not null"`
	RouteDistanceKm     float64   `gorm:"type:decimal(10,3);not null;default:0"`
	IsDailyGoalAchieved bool      `gorm:"not null;default:false"`
	CreatedAt           time.Time
	UpdatedAt           time.Time
}

// TableName explicitly sets the table name for GORM.
func (JourneyModel) TableName() string {
	return "journeys"
}
