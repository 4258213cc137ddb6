package impl

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"wayfarer/internal/domain/constants"
	"wayfarer/internal/domain/entity"
	domainerrors "wayfarer/internal/domain/errors"
	"wayfarer/internal/domain/repository"
	"wayfarer/internal/errors"
	"wayfarer/internal/usecase"

	"github.com/google/uuid"
)

type shareService struct {
	journeyRepo  repository.JourneyRepository
	shareRepo    repository.ShareRepository
	auditLogRepo repository.AuditLogRepository
	logger       *slog.Logger
}

// NewShareService creates a new share service instance.
func NewShareService(
	journeyRepo repository.JourneyRepository,
	shareRepo repository.ShareRepository,
	auditLogRepo repository.AuditLogRepository,
	logger *slog.Logger,
) usecase.ShareUsecase {
	return &shareService{
		journeyRepo:  journeyRepo,
		shareRepo:    shareRepo,
		auditLogRepo: auditLogRepo,
		logger:       logger,
	}
}

// ShareJourney shares a journey with every listed recipient. Recipients that
// already hold an active share are skipped silently, with no share record
// and no audit entry. Recipients are processed independently in input order;
// there is no rollback across recipients, so a failure partway through
// leaves earlier recipients shared. A retry is safe because those recipients
// are then skipped.
func (s *shareService) ShareJourney(ctx context.Context, journeyID, actingUserID uuid.UUID, receivingUserIDs []uuid.UUID) (*usecase.ShareResult, error) {
	if _, err := s.journeyRepo.FindByID(ctx, journeyID); err != nil {
		if errors.Is(err, repository.ErrJourneyNotFound) {
			return nil, domainerrors.ErrJourneyNotFound
		}

		return nil, errors.Wrap(err, "failed to find journey")
	}

	result := &usecase.ShareResult{
		CreatedShareIDs:   []uuid.UUID{},
		SharedWithUserIDs: []uuid.UUID{},
	}

	for _, receiverID := range receivingUserIDs {
		existing, err := s.shareRepo.FindActiveByJourneyAndReceiver(ctx, journeyID, receiverID)
		if err != nil && !errors.Is(err, repository.ErrShareNotFound) {
			return nil, errors.Wrap(err, "failed to find existing share")
		}
		if existing != nil {
			continue
		}

		now := time.Now().UTC()
		share := &entity.JourneyShare{
			ID:              uuid.New(),
			JourneyID:       journeyID,
			SharedByUserID:  actingUserID,
			ReceivingUserID: receiverID,
			SharedAt:        now,
			IsRevoked:       false,
		}

		if err := s.shareRepo.Create(ctx, share); err != nil {
			// Lost a sharing race: treat like an already existing share.
			if errors.Is(err, repository.ErrDuplicateShare) {
				continue
			}

			return nil, errors.Wrap(err, "failed to create share")
		}

		audit := &entity.AuditLog{
			ID:          uuid.New(),
			UserID:      actingUserID,
			TargetID:    share.ID,
			ActionType:  constants.ActionShareJourney,
			Timestamp:   now,
			Description: fmt.Sprintf("User %s shared journey %s with user %s.", actingUserID, journeyID, receiverID),
		}
		if err := s.auditLogRepo.Create(ctx, audit); err != nil {
			return nil, errors.Wrap(err, "failed to write audit log")
		}

		result.CreatedShareIDs = append(result.CreatedShareIDs, share.ID)
		result.SharedWithUserIDs = append(result.SharedWithUserIDs, receiverID)
	}

	s.logger.Info("journey shared",
		slog.String("journey_id", journeyID.String()),
		slog.Int("new_shares", len(result.CreatedShareIDs)),
		slog.Int("requested", len(receivingUserIDs)),
	)

	return result, nil
}
