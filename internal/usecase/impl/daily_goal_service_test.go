package impl

import (
	"context"
	"testing"
	"time"

	"wayfarer/internal/domain/constants"
	"wayfarer/internal/domain/entity"
	"wayfarer/internal/domain/repository"
	mockRepo "wayfarer/internal/mocks/repository"
	mockSvc "wayfarer/internal/mocks/service"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newDailyGoalFixture(t *testing.T, thresholdKm float64, now time.Time) (*mockRepo.MockJourneyRepository, *mockRepo.MockBadgeRepository, *mockSvc.MockEventPublisher, *dailyGoalService) {
	mockJourneyRepo := mockRepo.NewMockJourneyRepository(t)
	mockBadgeRepo := mockRepo.NewMockBadgeRepository(t)
	mockPublisher := mockSvc.NewMockEventPublisher(t)
	service := NewDailyGoalService(mockJourneyRepo, mockBadgeRepo, mockPublisher, thresholdKm, testLogger()).(*dailyGoalService)
	service.now = func() time.Time { return now }

	return mockJourneyRepo, mockBadgeRepo, mockPublisher, service
}

func dayJourney(userID uuid.UUID, arrival time.Time, distanceKm float64) *entity.Journey {
	return &entity.Journey{
		ID:              uuid.New(),
		UserID:          userID,
		StartTime:       arrival.Add(-30 * time.Minute),
		ArrivalTime:     arrival,
		RouteDistanceKm: distanceKm,
	}
}

func TestDailyGoalService_EvaluateToday_AwardsBadgeOnThreshold(t *testing.T) {
	now := time.Date(2025, time.June, 3, 14, 30, 0, 0, time.UTC)
	today := now.Truncate(24 * time.Hour)
	mockJourneyRepo, mockBadgeRepo, mockPublisher, service := newDailyGoalFixture(t, 20.0, now)

	ctx := context.Background()
	userID := uuid.New()
	first := dayJourney(userID, today.Add(9*time.Hour), 12.0)
	second := dayJourney(userID, today.Add(11*time.Hour), 9.0)

	// Returned out of arrival order; evaluation re-sorts before accumulating.
	mockJourneyRepo.EXPECT().FindForDate(ctx, today).Return([]*entity.Journey{second, first}, nil)
	mockBadgeRepo.EXPECT().ExistsForUserOnDate(ctx, userID, today).Return(false, nil)
	mockJourneyRepo.EXPECT().Update(ctx, mock.MatchedBy(func(j *entity.Journey) bool {
		return j.ID == second.ID && j.IsDailyGoalAchieved
	})).Return(nil)
	mockBadgeRepo.EXPECT().Create(ctx, mock.MatchedBy(func(b *entity.DailyGoalBadge) bool {
		return b.UserID == userID && b.Date.Equal(today) && b.TotalDistanceKm == 21.0
	})).Return(nil)
	mockPublisher.EXPECT().Publish(ctx, constants.EventDailyGoalAchieved, mock.Anything).Return(nil)

	err := service.EvaluateToday(ctx)

	require.NoError(t, err)
	assert.True(t, second.IsDailyGoalAchieved)
	assert.False(t, first.IsDailyGoalAchieved)
}

func TestDailyGoalService_EvaluateToday_SingleJourneyOverThreshold(t *testing.T) {
	now := time.Date(2025, time.June, 3, 8, 0, 0, 0, time.UTC)
	today := now.Truncate(24 * time.Hour)
	mockJourneyRepo, mockBadgeRepo, mockPublisher, service := newDailyGoalFixture(t, 20.0, now)

	ctx := context.Background()
	userID := uuid.New()
	journey := dayJourney(userID, today.Add(7*time.Hour), 25.0)

	mockJourneyRepo.EXPECT().FindForDate(ctx, today).Return([]*entity.Journey{journey}, nil)
	mockBadgeRepo.EXPECT().ExistsForUserOnDate(ctx, userID, today).Return(false, nil)
	mockJourneyRepo.EXPECT().Update(ctx, mock.AnythingOfType("*entity.Journey")).Return(nil)
	mockBadgeRepo.EXPECT().Create(ctx, mock.MatchedBy(func(b *entity.DailyGoalBadge) bool {
		return b.TotalDistanceKm == 25.0
	})).Return(nil)
	mockPublisher.EXPECT().Publish(ctx, constants.EventDailyGoalAchieved, mock.Anything).Return(nil)

	require.NoError(t, service.EvaluateToday(ctx))
	assert.True(t, journey.IsDailyGoalAchieved)
}

func TestDailyGoalService_EvaluateToday_BelowThresholdAwardsNothing(t *testing.T) {
	now := time.Date(2025, time.June, 3, 8, 0, 0, 0, time.UTC)
	today := now.Truncate(24 * time.Hour)
	mockJourneyRepo, mockBadgeRepo, mockPublisher, service := newDailyGoalFixture(t, 20.0, now)

	ctx := context.Background()
	userID := uuid.New()
	journeys := []*entity.Journey{
		dayJourney(userID, today.Add(7*time.Hour), 5.0),
		dayJourney(userID, today.Add(9*time.Hour), 5.0),
	}

	mockJourneyRepo.EXPECT().FindForDate(ctx, today).Return(journeys, nil)
	mockBadgeRepo.EXPECT().ExistsForUserOnDate(ctx, userID, today).Return(false, nil)

	require.NoError(t, service.EvaluateToday(ctx))
	mockJourneyRepo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
	mockBadgeRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	mockPublisher.AssertNotCalled(t, "Publish", mock.Anything, mock.Anything, mock.Anything)
}

func TestDailyGoalService_EvaluateToday_SkipsAlreadyBadgedUser(t *testing.T) {
	now := time.Date(2025, time.June, 3, 8, 0, 0, 0, time.UTC)
	today := now.Truncate(24 * time.Hour)
	mockJourneyRepo, mockBadgeRepo, _, service := newDailyGoalFixture(t, 20.0, now)

	ctx := context.Background()
	userID := uuid.New()
	journey := dayJourney(userID, today.Add(7*time.Hour), 40.0)

	mockJourneyRepo.EXPECT().FindForDate(ctx, today).Return([]*entity.Journey{journey}, nil)
	mockBadgeRepo.EXPECT().ExistsForUserOnDate(ctx, userID, today).Return(true, nil)

	require.NoError(t, service.EvaluateToday(ctx))
	assert.False(t, journey.IsDailyGoalAchieved)
	mockJourneyRepo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
}

func TestDailyGoalService_EvaluateToday_LostBadgeRaceIsNotAnError(t *testing.T) {
	now := time.Date(2025, time.June, 3, 8, 0, 0, 0, time.UTC)
	today := now.Truncate(24 * time.Hour)
	mockJourneyRepo, mockBadgeRepo, mockPublisher, service := newDailyGoalFixture(t, 20.0, now)

	ctx := context.Background()
	userID := uuid.New()
	journey := dayJourney(userID, today.Add(7*time.Hour), 30.0)

	mockJourneyRepo.EXPECT().FindForDate(ctx, today).Return([]*entity.Journey{journey}, nil)
	mockBadgeRepo.EXPECT().ExistsForUserOnDate(ctx, userID, today).Return(false, nil)
	mockJourneyRepo.EXPECT().Update(ctx, mock.AnythingOfType("*entity.Journey")).Return(nil)
	mockBadgeRepo.EXPECT().Create(ctx, mock.AnythingOfType("*entity.DailyGoalBadge")).
		Return(repository.ErrDuplicateBadge)

	require.NoError(t, service.EvaluateToday(ctx))
	mockPublisher.AssertNotCalled(t, "Publish", mock.Anything, mock.Anything, mock.Anything)
}

func TestDailyGoalService_EvaluateToday_OneUserFailureDoesNotStopOthers(t *testing.T) {
	now := time.Date(2025, time.June, 3, 8, 0, 0, 0, time.UTC)
	today := now.Truncate(24 * time.Hour)
	mockJourneyRepo, mockBadgeRepo, mockPublisher, service := newDailyGoalFixture(t, 20.0, now)

	ctx := context.Background()
	failingUser := uuid.New()
	healthyUser := uuid.New()
	failing := dayJourney(failingUser, today.Add(6*time.Hour), 30.0)
	healthy := dayJourney(healthyUser, today.Add(7*time.Hour), 30.0)

	mockJourneyRepo.EXPECT().FindForDate(ctx, today).Return([]*entity.Journey{failing, healthy}, nil)
	mockBadgeRepo.EXPECT().ExistsForUserOnDate(ctx, failingUser, today).
		Return(false, errors.New("connection reset"))
	mockBadgeRepo.EXPECT().ExistsForUserOnDate(ctx, healthyUser, today).Return(false, nil)
	mockJourneyRepo.EXPECT().Update(ctx, mock.MatchedBy(func(j *entity.Journey) bool {
		return j.ID == healthy.ID
	})).Return(nil)
	mockBadgeRepo.EXPECT().Create(ctx, mock.MatchedBy(func(b *entity.DailyGoalBadge) bool {
		return b.UserID == healthyUser
	})).Return(nil)
	mockPublisher.EXPECT().Publish(ctx, constants.EventDailyGoalAchieved, mock.Anything).Return(nil)

	err := service.EvaluateToday(ctx)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "connection reset")
	assert.True(t, healthy.IsDailyGoalAchieved)
}
