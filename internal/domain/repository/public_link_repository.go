package repository

import (
	"context"
	"time"

	"wayfarer/internal/domain/entity"
	"wayfarer/internal/errors"

	"github.com/google/uuid"
)

// Domain-specific errors for public link persistence.
var (
	// ErrPublicLinkNotFound is returned when no link matches the lookup.
	ErrPublicLinkNotFound = errors.New("public link not found")
	// ErrDuplicatePublicLink is returned when a second active link would be
	// created for the same journey.
	ErrDuplicatePublicLink = errors.New("public link already exists")
	// ErrPublicLinkRevoked is returned by Revoke when the link was already
	// revoked, including by a concurrent request.
	ErrPublicLinkRevoked = errors.New("public link already revoked")
)

// PublicLinkRepository defines the interface for journey public link persistence.
type PublicLinkRepository interface {
	// Create persists a new public link.
	Create(ctx context.Context, link *entity.JourneyPublicLink) error

	// FindByID retrieves a link by its unique ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.JourneyPublicLink, error)

	// FindByToken retrieves a link by its opaque token, revoked or not.
	FindByToken(ctx context.Context, token string) (*entity.JourneyPublicLink, error)

	// FindActiveByJourney retrieves the non-revoked link for a journey, if
	// one exists. At most one active link exists per journey.
	FindActiveByJourney(ctx context.Context, journeyID uuid.UUID) (*entity.JourneyPublicLink, error)

	// FindLatestByJourney retrieves the most recently created link for a
	// journey, revoked or not.
	FindLatestByJourney(ctx context.Context, journeyID uuid.UUID) (*entity.JourneyPublicLink, error)

	// Revoke flips the link's revoked flag as a single conditional write.
	// Only a not-yet-revoked row is updated; exactly one of two concurrent
	// calls wins and the loser gets ErrPublicLinkRevoked. A nil revokedAt
	// leaves the revocation timestamp unset.
	Revoke(ctx context.Context, id uuid.UUID, revokedAt *time.Time) error

	// DeleteByJourney removes all links belonging to a journey.
	DeleteByJourney(ctx context.Context, journeyID uuid.UUID) error
}
