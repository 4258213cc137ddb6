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
	"wayfarer/internal/domain/service"
	"wayfarer/internal/errors"
	"wayfarer/internal/usecase"

	"github.com/google/uuid"
)

type publicLinkService struct {
	journeyRepo  repository.JourneyRepository
	linkRepo     repository.PublicLinkRepository
	auditLogRepo repository.AuditLogRepository
	qrcodeSvc    service.QRCodeService
	logger       *slog.Logger
}

// NewPublicLinkService creates a new public link service instance.
func NewPublicLinkService(
	journeyRepo repository.JourneyRepository,
	linkRepo repository.PublicLinkRepository,
	auditLogRepo repository.AuditLogRepository,
	qrcodeSvc service.QRCodeService,
	logger *slog.Logger,
) usecase.PublicLinkUsecase {
	return &publicLinkService{
		journeyRepo:  journeyRepo,
		linkRepo:     linkRepo,
		auditLogRepo: auditLogRepo,
		qrcodeSvc:    qrcodeSvc,
		logger:       logger,
	}
}

// CreatePublicLink returns the journey's active link, creating one when none
// exists. A second create without a revocation in between returns the same
// token and writes no second record.
func (s *publicLinkService) CreatePublicLink(ctx context.Context, journeyID uuid.UUID) (*entity.JourneyPublicLink, error) {
	if _, err := s.journeyRepo.FindByID(ctx, journeyID); err != nil {
		if errors.Is(err, repository.ErrJourneyNotFound) {
			return nil, domainerrors.ErrJourneyNotFound
		}

		return nil, errors.Wrap(err, "failed to find journey")
	}

	existing, err := s.linkRepo.FindActiveByJourney(ctx, journeyID)
	if err != nil && !errors.Is(err, repository.ErrPublicLinkNotFound) {
		return nil, errors.Wrap(err, "failed to find active public link")
	}
	if existing != nil {
		return existing, nil
	}

	link := &entity.JourneyPublicLink{
		ID:        uuid.New(),
		JourneyID: journeyID,
		Token:     uuid.NewString(),
		CreatedAt: time.Now().UTC(),
		IsRevoked: false,
	}

	if err := s.linkRepo.Create(ctx, link); err != nil {
		// Lost a creation race: the winner's link is the journey's link.
		if errors.Is(err, repository.ErrDuplicatePublicLink) {
			return s.linkRepo.FindActiveByJourney(ctx, journeyID)
		}

		return nil, errors.Wrap(err, "failed to create public link")
	}

	s.logger.Info("public link created",
		slog.String("journey_id", journeyID.String()),
		slog.String("link_id", link.ID.String()),
	)

	return link, nil
}

// ConsumePublicLink resolves a token to its journey and spends the link.
func (s *publicLinkService) ConsumePublicLink(ctx context.Context, token string) (*entity.Journey, error) {
	link, err := s.linkRepo.FindByToken(ctx, token)
	if err != nil {
		if errors.Is(err, repository.ErrPublicLinkNotFound) {
			return nil, domainerrors.ErrPublicLinkNotFound
		}

		return nil, errors.Wrap(err, "failed to find public link by token")
	}

	journey, err := s.journeyRepo.FindByID(ctx, link.JourneyID)
	if err != nil {
		if errors.Is(err, repository.ErrJourneyNotFound) {
			return nil, domainerrors.ErrJourneyNotFound
		}

		return nil, errors.Wrap(err, "failed to find journey")
	}

	if link.IsRevoked {
		return nil, domainerrors.ErrPublicLinkRevoked
	}

	// Single-use: the conditional write spends the link, and only one of
	// two concurrent resolutions wins it.
	if err := s.linkRepo.Revoke(ctx, link.ID, nil); err != nil {
		if errors.Is(err, repository.ErrPublicLinkRevoked) {
			return nil, domainerrors.ErrPublicLinkRevoked
		}
		if errors.Is(err, repository.ErrPublicLinkNotFound) {
			return nil, domainerrors.ErrPublicLinkNotFound
		}

		return nil, errors.Wrap(err, "failed to spend public link")
	}

	return journey, nil
}

// RevokePublicLink withdraws the journey's link on behalf of the acting user
// and records an audit entry. Already revoked links fail with Gone, missing
// ones with NotFound.
func (s *publicLinkService) RevokePublicLink(ctx context.Context, journeyID, actingUserID uuid.UUID) error {
	if _, err := s.journeyRepo.FindByID(ctx, journeyID); err != nil {
		if errors.Is(err, repository.ErrJourneyNotFound) {
			return domainerrors.ErrJourneyNotFound
		}

		return errors.Wrap(err, "failed to find journey")
	}

	// The latest link distinguishes a journey that never had a link
	// (NotFound) from one whose link was already spent or withdrawn (Gone).
	link, err := s.linkRepo.FindLatestByJourney(ctx, journeyID)
	if err != nil {
		if errors.Is(err, repository.ErrPublicLinkNotFound) {
			return domainerrors.ErrPublicLinkNotFound
		}

		return errors.Wrap(err, "failed to find public link")
	}
	if link.IsRevoked {
		return domainerrors.ErrPublicLinkRevoked
	}

	now := time.Now().UTC()
	if err := s.linkRepo.Revoke(ctx, link.ID, &now); err != nil {
		// A concurrent consume or revoke got there first.
		if errors.Is(err, repository.ErrPublicLinkRevoked) {
			return domainerrors.ErrPublicLinkRevoked
		}
		if errors.Is(err, repository.ErrPublicLinkNotFound) {
			return domainerrors.ErrPublicLinkNotFound
		}

		return errors.Wrap(err, "failed to revoke public link")
	}

	audit := &entity.AuditLog{
		ID:          uuid.New(),
		UserID:      actingUserID,
		TargetID:    link.ID,
		ActionType:  constants.ActionRevokePublicLink,
		Timestamp:   now,
		Description: fmt.Sprintf("User %s revoked the public link for journey %s.", actingUserID, journeyID),
	}
	if err := s.auditLogRepo.Create(ctx, audit); err != nil {
		return errors.Wrap(err, "failed to write audit log")
	}

	return nil
}

// PublicLinkQR renders the journey's active link URL as a PNG QR code.
func (s *publicLinkService) PublicLinkQR(ctx context.Context, journeyID uuid.UUID) ([]byte, error) {
	link, err := s.CreatePublicLink(ctx, journeyID)
	if err != nil {
		return nil, err
	}

	png, err := s.qrcodeSvc.GenerateURLQR(link.PublicURL())
	if err != nil {
		return nil, errors.Wrap(err, "failed to render public link QR code")
	}

	return png, nil
}
