// Package impl contains the concrete use case services of the application.
package impl

import (
	"context"
	"log/slog"

	"wayfarer/internal/domain/entity"
	domainerrors "wayfarer/internal/domain/errors"
	"wayfarer/internal/domain/repository"
	"wayfarer/internal/errors"
	"wayfarer/internal/usecase"

	"github.com/google/uuid"
)

type journeyService struct {
	journeyRepo repository.JourneyRepository
	userRepo    repository.UserRepository
	txManager   repository.TransactionManager
	logger      *slog.Logger
}

// NewJourneyService creates a new journey service instance.
func NewJourneyService(
	journeyRepo repository.JourneyRepository,
	userRepo repository.UserRepository,
	txManager repository.TransactionManager,
	logger *slog.Logger,
) usecase.JourneyUsecase {
	return &journeyService{
		journeyRepo: journeyRepo,
		userRepo:    userRepo,
		txManager:   txManager,
		logger:      logger,
	}
}

// AddJourney records a new journey for the user.
func (s *journeyService) AddJourney(ctx context.Context, userID uuid.UUID, input *usecase.JourneyInput) (uuid.UUID, error) {
	if _, err := s.userRepo.FindByID(ctx, userID); err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return uuid.Nil, domainerrors.ErrUserNotFound
		}

		return uuid.Nil, errors.Wrap(err, "failed to find user")
	}

	existing, err := s.journeyRepo.FindByUserAndStartTime(ctx, userID, input.StartTime)
	if err != nil && !errors.Is(err, repository.ErrJourneyNotFound) {
		return uuid.Nil, errors.Wrap(err, "failed to find journey by user and start time")
	}
	if existing != nil {
		return uuid.Nil, domainerrors.ErrJourneyAlreadyExists
	}

	journey := &entity.Journey{
		ID:                 uuid.New(),
		UserID:             userID,
		StartingLocation:   input.StartingLocation,
		ArrivalLocation:    input.ArrivalLocation,
		StartTime:          input.StartTime,
		ArrivalTime:        input.ArrivalTime,
		TransportationType: input.TransportationType,
		RouteDistanceKm:    input.RouteDistanceKm,
		// The goal flag is owned by the evaluator; new journeys always
		// start unachieved.
		IsDailyGoalAchieved: false,
	}

	if err := s.journeyRepo.Create(ctx, journey); err != nil {
		if errors.Is(err, repository.ErrDuplicateJourney) {
			return uuid.Nil, domainerrors.ErrJourneyAlreadyExists
		}

		return uuid.Nil, errors.Wrap(err, "failed to create journey")
	}

	return journey.ID, nil
}

// GetJourneyByID retrieves a single journey.
func (s *journeyService) GetJourneyByID(ctx context.Context, journeyID uuid.UUID) (*entity.Journey, error) {
	journey, err := s.journeyRepo.FindByID(ctx, journeyID)
	if err != nil {
		if errors.Is(err, repository.ErrJourneyNotFound) {
			return nil, domainerrors.ErrJourneyNotFound
		}

		return nil, errors.Wrap(err, "failed to find journey")
	}

	return journey, nil
}

// GetJourneysForUser retrieves all journeys of a user.
func (s *journeyService) GetJourneysForUser(ctx context.Context, userID uuid.UUID) ([]*entity.Journey, error) {
	if _, err := s.userRepo.FindByID(ctx, userID); err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, domainerrors.ErrUserNotFound
		}

		return nil, errors.Wrap(err, "failed to find user")
	}

	journeys, err := s.journeyRepo.FindByUser(ctx, userID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to find journeys by user")
	}

	return journeys, nil
}

// DeleteJourney removes a journey together with its public links and shares
// in a single transaction.
func (s *journeyService) DeleteJourney(ctx context.Context, journeyID uuid.UUID) error {
	journey, err := s.journeyRepo.FindByID(ctx, journeyID)
	if err != nil {
		if errors.Is(err, repository.ErrJourneyNotFound) {
			return domainerrors.ErrJourneyNotFound
		}

		return errors.Wrap(err, "failed to find journey")
	}

	err = s.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		if err := repoFactory.NewPublicLinkRepository().DeleteByJourney(ctx, journey.ID); err != nil {
			return errors.Wrap(err, "failed to delete journey public links")
		}
		if err := repoFactory.NewShareRepository().DeleteByJourney(ctx, journey.ID); err != nil {
			return errors.Wrap(err, "failed to delete journey shares")
		}

		return errors.Wrap(repoFactory.NewJourneyRepository().Delete(ctx, journey.ID), "failed to delete journey")
	})
	if err != nil {
		return err
	}

	s.logger.Info("journey deleted",
		slog.String("journey_id", journey.ID.String()),
		slog.String("user_id", journey.UserID.String()),
	)

	return nil
}

// FilterJourneys returns a filtered, ordered and paginated journey listing.
// The total count is taken over the filtered set before the page is cut.
func (s *journeyService) FilterJourneys(ctx context.Context, filter *usecase.JourneyFilter) (*usecase.JourneyPage, error) {
	journeys, err := s.journeyRepo.FindAll(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list journeys")
	}

	matched := filterJourneys(journeys, filter)
	totalCount := len(matched)

	sortJourneys(matched, filter.OrderBy, filter.Direction)

	page, pageSize := normalizePage(filter.Page, filter.PageSize)

	return &usecase.JourneyPage{
		Items:      paginate(matched, page, pageSize),
		TotalCount: totalCount,
	}, nil
}

// MonthlyDistances returns ordered, paginated per-month distance totals.
func (s *journeyService) MonthlyDistances(ctx context.Context, query *usecase.MonthlyDistanceQuery) ([]*usecase.MonthlyDistance, error) {
	journeys, err := s.journeyRepo.FindAll(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list journeys")
	}

	groups := aggregateMonthlyDistances(journeys, query)

	page, pageSize := normalizePage(query.Page, query.PageSize)

	return paginate(groups, page, pageSize), nil
}
