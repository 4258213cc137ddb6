package impl

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"wayfarer/internal/domain/entity"
	domainerrors "wayfarer/internal/domain/errors"
	"wayfarer/internal/domain/repository"
	mockRepo "wayfarer/internal/mocks/repository"
	"wayfarer/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// fakeTxManager runs the callback against the test's mocks without a real
// database transaction.
type fakeTxManager struct {
	journeyRepo repository.JourneyRepository
	linkRepo    repository.PublicLinkRepository
	shareRepo   repository.ShareRepository
}

func (f *fakeTxManager) Execute(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
	return fn(f)
}

func (f *fakeTxManager) NewJourneyRepository() repository.JourneyRepository {
	return f.journeyRepo
}

func (f *fakeTxManager) NewPublicLinkRepository() repository.PublicLinkRepository {
	return f.linkRepo
}

func (f *fakeTxManager) NewShareRepository() repository.ShareRepository {
	return f.shareRepo
}

func TestJourneyService_AddJourney_Success(t *testing.T) {
	mockJourneyRepo := mockRepo.NewMockJourneyRepository(t)
	mockUserRepo := mockRepo.NewMockUserRepository(t)
	service := NewJourneyService(mockJourneyRepo, mockUserRepo, nil, testLogger())

	ctx := context.Background()
	userID := uuid.New()
	start := time.Date(2025, 6, 1, 8, 0, 0, 0, time.UTC)

	mockUserRepo.EXPECT().
		FindByID(ctx, userID).
		Return(&entity.User{ID: userID}, nil)

	mockJourneyRepo.EXPECT().
		FindByUserAndStartTime(ctx, userID, start).
		Return(nil, repository.ErrJourneyNotFound)

	mockJourneyRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.Journey")).
		Return(nil)

	journeyID, err := service.AddJourney(ctx, userID, &usecase.JourneyInput{
		StartingLocation:   "Home",
		ArrivalLocation:    "Office",
		StartTime:          start,
		ArrivalTime:        start.Add(time.Hour),
		TransportationType: "Bike",
		RouteDistanceKm:    7.5,
	})
	require.NoError(t, err)
	assert.NotEqual(t, uuid.Nil, journeyID)
}

func TestJourneyService_AddJourney_DuplicateStartTime(t *testing.T) {
	mockJourneyRepo := mockRepo.NewMockJourneyRepository(t)
	mockUserRepo := mockRepo.NewMockUserRepository(t)
	service := NewJourneyService(mockJourneyRepo, mockUserRepo, nil, testLogger())

	ctx := context.Background()
	userID := uuid.New()
	start := time.Date(2025, 6, 1, 8, 0, 0, 0, time.UTC)

	mockUserRepo.EXPECT().
		FindByID(ctx, userID).
		Return(&entity.User{ID: userID}, nil)

	mockJourneyRepo.EXPECT().
		FindByUserAndStartTime(ctx, userID, start).
		Return(&entity.Journey{ID: uuid.New(), UserID: userID, StartTime: start}, nil)

	_, err := service.AddJourney(ctx, userID, &usecase.JourneyInput{StartTime: start})
	assert.ErrorIs(t, err, domainerrors.ErrJourneyAlreadyExists)
}

func TestJourneyService_AddJourney_UnknownUser(t *testing.T) {
	mockJourneyRepo := mockRepo.NewMockJourneyRepository(t)
	mockUserRepo := mockRepo.NewMockUserRepository(t)
	service := NewJourneyService(mockJourneyRepo, mockUserRepo, nil, testLogger())

	ctx := context.Background()
	userID := uuid.New()

	mockUserRepo.EXPECT().
		FindByID(ctx, userID).
		Return(nil, repository.ErrUserNotFound)

	_, err := service.AddJourney(ctx, userID, &usecase.JourneyInput{})
	assert.ErrorIs(t, err, domainerrors.ErrUserNotFound)
}

func TestJourneyService_DeleteJourney_CascadesLinksAndShares(t *testing.T) {
	mockJourneyRepo := mockRepo.NewMockJourneyRepository(t)
	mockUserRepo := mockRepo.NewMockUserRepository(t)
	mockLinkRepo := mockRepo.NewMockPublicLinkRepository(t)
	mockShareRepo := mockRepo.NewMockShareRepository(t)

	txManager := &fakeTxManager{
		journeyRepo: mockJourneyRepo,
		linkRepo:    mockLinkRepo,
		shareRepo:   mockShareRepo,
	}
	service := NewJourneyService(mockJourneyRepo, mockUserRepo, txManager, testLogger())

	ctx := context.Background()
	journeyID := uuid.New()

	mockJourneyRepo.EXPECT().
		FindByID(ctx, journeyID).
		Return(&entity.Journey{ID: journeyID, UserID: uuid.New()}, nil)

	mockLinkRepo.EXPECT().
		DeleteByJourney(ctx, journeyID).
		Return(nil)

	mockShareRepo.EXPECT().
		DeleteByJourney(ctx, journeyID).
		Return(nil)

	mockJourneyRepo.EXPECT().
		Delete(ctx, journeyID).
		Return(nil)

	require.NoError(t, service.DeleteJourney(ctx, journeyID))
}

func TestJourneyService_DeleteJourney_NotFound(t *testing.T) {
	mockJourneyRepo := mockRepo.NewMockJourneyRepository(t)
	mockUserRepo := mockRepo.NewMockUserRepository(t)
	service := NewJourneyService(mockJourneyRepo, mockUserRepo, nil, testLogger())

	ctx := context.Background()
	journeyID := uuid.New()

	mockJourneyRepo.EXPECT().
		FindByID(ctx, journeyID).
		Return(nil, repository.ErrJourneyNotFound)

	err := service.DeleteJourney(ctx, journeyID)
	assert.ErrorIs(t, err, domainerrors.ErrJourneyNotFound)
}

func TestJourneyService_FilterJourneys_TotalCountBeforePagination(t *testing.T) {
	mockJourneyRepo := mockRepo.NewMockJourneyRepository(t)
	mockUserRepo := mockRepo.NewMockUserRepository(t)
	service := NewJourneyService(mockJourneyRepo, mockUserRepo, nil, testLogger())

	ctx := context.Background()
	base := time.Date(2025, 6, 1, 8, 0, 0, 0, time.UTC)

	journeys := make([]*entity.Journey, 0, 5)
	for i := range 5 {
		journeys = append(journeys, mkJourney(uuid.New(), "Bike", base.Add(time.Duration(i)*time.Hour), base.Add(time.Duration(i+1)*time.Hour), float64(i)))
	}

	mockJourneyRepo.EXPECT().
		FindAll(ctx).
		Return(journeys, nil)

	page, err := service.FilterJourneys(ctx, &usecase.JourneyFilter{Page: 2, PageSize: 2})
	require.NoError(t, err)

	// TotalCount covers the whole filtered set, not the page.
	assert.Equal(t, 5, page.TotalCount)
	require.Len(t, page.Items, 2)
	assert.Equal(t, journeys[2].ID, page.Items[0].ID)
	assert.Equal(t, journeys[3].ID, page.Items[1].ID)
}

func TestJourneyService_FilterJourneys_PastTheEndPage(t *testing.T) {
	mockJourneyRepo := mockRepo.NewMockJourneyRepository(t)
	mockUserRepo := mockRepo.NewMockUserRepository(t)
	service := NewJourneyService(mockJourneyRepo, mockUserRepo, nil, testLogger())

	ctx := context.Background()
	base := time.Date(2025, 6, 1, 8, 0, 0, 0, time.UTC)
	journeys := []*entity.Journey{mkJourney(uuid.New(), "Bike", base, base.Add(time.Hour), 3)}

	mockJourneyRepo.EXPECT().
		FindAll(ctx).
		Return(journeys, nil)

	page, err := service.FilterJourneys(ctx, &usecase.JourneyFilter{Page: 9, PageSize: 10})
	require.NoError(t, err)
	assert.Equal(t, 1, page.TotalCount)
	assert.Empty(t, page.Items)
}

func TestJourneyService_MonthlyDistances_Paginated(t *testing.T) {
	mockJourneyRepo := mockRepo.NewMockJourneyRepository(t)
	mockUserRepo := mockRepo.NewMockUserRepository(t)
	service := NewJourneyService(mockJourneyRepo, mockUserRepo, nil, testLogger())

	ctx := context.Background()
	june := time.Date(2025, 6, 10, 8, 0, 0, 0, time.UTC)

	journeys := []*entity.Journey{
		mkJourney(uuid.New(), "Bike", june, june.Add(time.Hour), 10),
		mkJourney(uuid.New(), "Bike", june, june.Add(time.Hour), 30),
		mkJourney(uuid.New(), "Bike", june, june.Add(time.Hour), 20),
	}

	mockJourneyRepo.EXPECT().
		FindAll(ctx).
		Return(journeys, nil)

	distances, err := service.MonthlyDistances(ctx, &usecase.MonthlyDistanceQuery{Page: 2, PageSize: 2})
	require.NoError(t, err)

	// Full ordering is 30, 20, 10; page 2 of size 2 holds the tail.
	require.Len(t, distances, 1)
	assert.InDelta(t, 10.0, distances[0].TotalDistanceKm, 1e-9)
}
