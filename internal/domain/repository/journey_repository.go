// Package repository defines the interfaces for the persistence layer.
// These interfaces act as a contract between the domain/application layers and the infrastructure layer.
package repository

import (
	"context"
	"time"

	"wayfarer/internal/domain/entity"
	"wayfarer/internal/errors"

	"github.com/google/uuid"
)

// Domain-specific errors for journey persistence.
var (
	// ErrJourneyNotFound is returned when a journey is not found.
	ErrJourneyNotFound = errors.New("journey not found")
	// ErrDuplicateJourney is returned when a journey already exists for the
	// same user and start time.
	ErrDuplicateJourney = errors.New("journey already exists")
)

// JourneyRepository defines the interface for journey-related database operations.
type JourneyRepository interface {
	// Create persists a new journey.
	Create(ctx context.Context, journey *entity.Journey) error

	// FindByID retrieves a journey by its unique ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Journey, error)

	// FindByUserAndStartTime retrieves the journey a user recorded with the
	// exact given start time, if any.
	FindByUserAndStartTime(ctx context.Context, userID uuid.UUID, startTime time.Time) (*entity.Journey, error)

	// FindByUser retrieves all journeys recorded by a user.
	FindByUser(ctx context.Context, userID uuid.UUID) ([]*entity.Journey, error)

	// FindAll retrieves every journey. The filter engine evaluates its
	// predicates over this full set.
	FindAll(ctx context.Context) ([]*entity.Journey, error)

	// FindForDate retrieves all journeys whose start time falls on the given
	// UTC calendar day.
	FindForDate(ctx context.Context, date time.Time) ([]*entity.Journey, error)

	// Update modifies an existing journey.
	Update(ctx context.Context, journey *entity.Journey) error

	// Delete removes a journey by its ID.
	Delete(ctx context.Context, id uuid.UUID) error
}
