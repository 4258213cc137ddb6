package impl

import (
	"context"
	"log/slog"
	"sort"
	"time"

	"wayfarer/internal/domain/constants"
	"wayfarer/internal/domain/entity"
	"wayfarer/internal/domain/repository"
	"wayfarer/internal/domain/service"
	"wayfarer/internal/errors"
	"wayfarer/internal/usecase"

	"github.com/google/uuid"
)

type dailyGoalService struct {
	journeyRepo repository.JourneyRepository
	badgeRepo   repository.BadgeRepository
	publisher   service.EventPublisher
	thresholdKm float64
	logger      *slog.Logger

	// now is swappable in tests; the service evaluates "today" in UTC.
	now func() time.Time
}

// NewDailyGoalService creates a new daily goal evaluator instance.
func NewDailyGoalService(
	journeyRepo repository.JourneyRepository,
	badgeRepo repository.BadgeRepository,
	publisher service.EventPublisher,
	thresholdKm float64,
	logger *slog.Logger,
) usecase.DailyGoalUsecase {
	if thresholdKm <= 0 {
		thresholdKm = constants.DefaultDailyGoalKm
	}

	return &dailyGoalService{
		journeyRepo: journeyRepo,
		badgeRepo:   badgeRepo,
		publisher:   publisher,
		thresholdKm: thresholdKm,
		logger:      logger,
		now:         time.Now,
	}
}

// EvaluateToday runs one evaluation cycle over today's journeys.
func (s *dailyGoalService) EvaluateToday(ctx context.Context) error {
	today := s.now().UTC().Truncate(24 * time.Hour)

	journeys, err := s.journeyRepo.FindForDate(ctx, today)
	if err != nil {
		return errors.Wrap(err, "failed to list today's journeys")
	}

	byUser := make(map[uuid.UUID][]*entity.Journey)
	userOrder := make([]uuid.UUID, 0)
	for _, journey := range journeys {
		if _, ok := byUser[journey.UserID]; !ok {
			userOrder = append(userOrder, journey.UserID)
		}
		byUser[journey.UserID] = append(byUser[journey.UserID], journey)
	}

	var errs []error
	for _, userID := range userOrder {
		if err := s.evaluateUser(ctx, userID, today, byUser[userID]); err != nil {
			// One user's failure must not starve the others this cycle.
			s.logger.Error("daily goal evaluation failed for user",
				slog.String("user_id", userID.String()),
				slog.Any("error", err),
			)
			errs = append(errs, err)
		}
	}

	return errors.Join(errs...)
}

// evaluateUser accumulates one user's today-distance in arrival order and
// awards the badge on the first journey that pushes the total past the
// threshold.
func (s *dailyGoalService) evaluateUser(ctx context.Context, userID uuid.UUID, today time.Time, journeys []*entity.Journey) error {
	awarded, err := s.badgeRepo.ExistsForUserOnDate(ctx, userID, today)
	if err != nil {
		return errors.Wrap(err, "failed to check existing badge")
	}
	if awarded {
		s.logger.Debug("user already holds today's badge", slog.String("user_id", userID.String()))

		return nil
	}

	sort.SliceStable(journeys, func(i, j int) bool {
		return journeys[i].ArrivalTime.Before(journeys[j].ArrivalTime)
	})

	var runningTotal float64
	var triggering *entity.Journey
	for _, journey := range journeys {
		runningTotal += journey.RouteDistanceKm
		if runningTotal >= s.thresholdKm {
			triggering = journey

			break
		}
	}

	if triggering == nil {
		// Not there yet; a later cycle may award once more journeys for
		// today are recorded.
		s.logger.Debug("daily goal not reached",
			slog.String("user_id", userID.String()),
			slog.Float64("total_km", runningTotal),
		)

		return nil
	}

	triggering.IsDailyGoalAchieved = true
	if err := s.journeyRepo.Update(ctx, triggering); err != nil {
		return errors.Wrap(err, "failed to flag triggering journey")
	}

	badge := &entity.DailyGoalBadge{
		ID:              uuid.New(),
		UserID:          userID,
		Date:            today,
		TotalDistanceKm: runningTotal,
	}
	if err := s.badgeRepo.Create(ctx, badge); err != nil {
		// Lost the once-per-day race; the winner's badge stands.
		if errors.Is(err, repository.ErrDuplicateBadge) {
			return nil
		}

		return errors.Wrap(err, "failed to create badge")
	}

	event := &service.DailyGoalAchievedEvent{UserID: userID, Date: today}
	if err := s.publisher.Publish(ctx, constants.EventDailyGoalAchieved, event); err != nil {
		return errors.Wrap(err, "failed to publish daily goal event")
	}

	s.logger.Info("daily goal badge awarded",
		slog.String("user_id", userID.String()),
		slog.String("journey_id", triggering.ID.String()),
		slog.Float64("total_km", runningTotal),
	)

	return nil
}
