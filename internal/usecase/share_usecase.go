package usecase

import (
	"context"

	"github.com/google/uuid"
)

// ShareResult reports the outcome of a multi-recipient share. Recipients
// that were already actively shared with are skipped and appear in neither
// list.
type ShareResult struct {
	CreatedShareIDs   []uuid.UUID `json:"created_share_ids"`
	SharedWithUserIDs []uuid.UUID `json:"shared_with_user_ids"`
}

// ShareUsecase defines multi-user journey sharing.
type ShareUsecase interface {
	// ShareJourney shares a journey with every listed recipient, skipping
	// recipients that already hold an active share. Each new share writes an
	// audit entry. The operation is not atomic across recipients: a failure
	// partway through leaves prior recipients shared.
	ShareJourney(ctx context.Context, journeyID, actingUserID uuid.UUID, receivingUserIDs []uuid.UUID) (*ShareResult, error)
}
