package repository

import (
	"context"

	"wayfarer/internal/domain/entity"
	"wayfarer/internal/errors"

	"github.com/google/uuid"
)

// Domain-specific errors for share persistence.
var (
	// ErrShareNotFound is returned when no share matches the lookup.
	ErrShareNotFound = errors.New("share not found")
	// ErrDuplicateShare is returned when an active share already exists for
	// the same journey and receiving user.
	ErrDuplicateShare = errors.New("share already exists")
)

// ShareRepository defines the interface for journey share persistence.
type ShareRepository interface {
	// Create persists a new share.
	Create(ctx context.Context, share *entity.JourneyShare) error

	// FindActiveByJourneyAndReceiver retrieves the non-revoked share for the
	// given journey and receiving user, if one exists.
	FindActiveByJourneyAndReceiver(ctx context.Context, journeyID, receivingUserID uuid.UUID) (*entity.JourneyShare, error)

	// FindByJourney retrieves all shares of a journey.
	FindByJourney(ctx context.Context, journeyID uuid.UUID) ([]*entity.JourneyShare, error)

	// DeleteByJourney removes all shares belonging to a journey.
	DeleteByJourney(ctx context.Context, journeyID uuid.UUID) error
}
