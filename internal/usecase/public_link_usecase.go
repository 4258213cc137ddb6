package usecase

import (
	"context"

	"wayfarer/internal/domain/entity"

	"github.com/google/uuid"
)

// PublicLinkUsecase defines the lifecycle of single-use public journey links.
type PublicLinkUsecase interface {
	// CreatePublicLink returns the journey's active link, creating one when
	// none exists. Creation is idempotent: a journey never holds two active
	// links.
	CreatePublicLink(ctx context.Context, journeyID uuid.UUID) (*entity.JourneyPublicLink, error)

	// ConsumePublicLink resolves a token to its journey and spends the link.
	// A link can be successfully resolved at most once; later attempts fail
	// with ErrPublicLinkRevoked.
	ConsumePublicLink(ctx context.Context, token string) (*entity.Journey, error)

	// RevokePublicLink withdraws the journey's active link on behalf of the
	// acting user and records an audit entry. Ownership checks are the
	// caller's responsibility.
	RevokePublicLink(ctx context.Context, journeyID, actingUserID uuid.UUID) error

	// PublicLinkQR renders the journey's active link URL as a PNG QR code,
	// creating the link first when none exists.
	PublicLinkQR(ctx context.Context, journeyID uuid.UUID) ([]byte, error)
}
