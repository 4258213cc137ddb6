// Package usecase defines the application's use case interfaces and the
// input/output types they exchange with the delivery layer.
package usecase

import (
	"context"
	"time"

	"wayfarer/internal/domain/entity"

	"github.com/google/uuid"
)

// JourneyInput carries the caller-supplied fields of a new journey.
type JourneyInput struct {
	StartingLocation   string
	ArrivalLocation    string
	StartTime          time.Time
	ArrivalTime        time.Time
	TransportationType string
	RouteDistanceKm    float64
}

// JourneyFilter is the predicate set, sort selection and page request
// for a journey listing. Absent predicates match everything; filtering is
// conjunctive.
type JourneyFilter struct {
	UserID         *uuid.UUID // Only journeys of this user.
	TransportTypes []string   // Only journeys using one of these transport types.
	StartFrom      *time.Time // Only journeys starting at or after this time.
	ArrivalTo      *time.Time // Only journeys arriving at or before this time.

	OrderBy   string // Sort field name; unknown names fall back to StartTime ascending.
	Direction string // "desc" (case-insensitive) for descending, anything else ascending.

	Page     int // 1-based page number.
	PageSize int // Items per page.
}

// JourneyPage is one page of a filtered journey listing. TotalCount counts
// the whole filtered set, not the page.
type JourneyPage struct {
	Items      []*entity.Journey `json:"items"`
	TotalCount int               `json:"total_count"`
}

// MonthlyDistanceQuery filters and pages the per-month distance aggregates.
type MonthlyDistanceQuery struct {
	UserID *uuid.UUID
	Year   *int
	Month  *int

	OrderBy string // "userid" orders ascending by user; anything else descending by total distance.

	Page     int
	PageSize int
}

// MonthlyDistance is the total distance one user travelled in one calendar
// month.
type MonthlyDistance struct {
	UserID          uuid.UUID `json:"user_id"`
	Year            int       `json:"year"`
	Month           int       `json:"month"`
	TotalDistanceKm float64   `json:"total_distance_km"`
}

// JourneyUsecase defines the interface for journey management use cases.
type JourneyUsecase interface {
	// AddJourney records a new journey for the user. Fails with a conflict
	// when the user already has a journey with the same start time.
	AddJourney(ctx context.Context, userID uuid.UUID, input *JourneyInput) (uuid.UUID, error)

	// GetJourneyByID retrieves a single journey.
	GetJourneyByID(ctx context.Context, journeyID uuid.UUID) (*entity.Journey, error)

	// GetJourneysForUser retrieves all journeys of a user.
	GetJourneysForUser(ctx context.Context, userID uuid.UUID) ([]*entity.Journey, error)

	// DeleteJourney removes a journey together with its public links and
	// shares.
	DeleteJourney(ctx context.Context, journeyID uuid.UUID) error

	// FilterJourneys returns a filtered, ordered and paginated journey
	// listing. Pure read, no side effects.
	FilterJourneys(ctx context.Context, filter *JourneyFilter) (*JourneyPage, error)

	// MonthlyDistances returns ordered, paginated per-(user, year, month)
	// distance totals.
	MonthlyDistances(ctx context.Context, query *MonthlyDistanceQuery) ([]*MonthlyDistance, error)
}
