package impl

import (
	"context"
	"testing"

	"wayfarer/internal/domain/constants"
	"wayfarer/internal/domain/entity"
	domainerrors "wayfarer/internal/domain/errors"
	"wayfarer/internal/domain/repository"
	mockRepo "wayfarer/internal/mocks/repository"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestShareService_ShareJourney_JourneyNotFound(t *testing.T) {
	mockJourneyRepo := mockRepo.NewMockJourneyRepository(t)
	mockShareRepo := mockRepo.NewMockShareRepository(t)
	mockAuditRepo := mockRepo.NewMockAuditLogRepository(t)
	service := NewShareService(mockJourneyRepo, mockShareRepo, mockAuditRepo, testLogger())

	ctx := context.Background()
	journeyID := uuid.New()

	mockJourneyRepo.EXPECT().FindByID(ctx, journeyID).Return(nil, repository.ErrJourneyNotFound)

	result, err := service.ShareJourney(ctx, journeyID, uuid.New(), []uuid.UUID{uuid.New()})

	require.ErrorIs(t, err, domainerrors.ErrJourneyNotFound)
	assert.Nil(t, result)
}

func TestShareService_ShareJourney_CreatesSharesAndAuditEntries(t *testing.T) {
	mockJourneyRepo := mockRepo.NewMockJourneyRepository(t)
	mockShareRepo := mockRepo.NewMockShareRepository(t)
	mockAuditRepo := mockRepo.NewMockAuditLogRepository(t)
	service := NewShareService(mockJourneyRepo, mockShareRepo, mockAuditRepo, testLogger())

	ctx := context.Background()
	journeyID := uuid.New()
	actingUserID := uuid.New()
	receiverA := uuid.New()
	receiverB := uuid.New()

	mockJourneyRepo.EXPECT().FindByID(ctx, journeyID).
		Return(&entity.Journey{ID: journeyID, UserID: actingUserID}, nil)
	mockShareRepo.EXPECT().FindActiveByJourneyAndReceiver(ctx, journeyID, receiverA).
		Return(nil, repository.ErrShareNotFound)
	mockShareRepo.EXPECT().FindActiveByJourneyAndReceiver(ctx, journeyID, receiverB).
		Return(nil, repository.ErrShareNotFound)
	mockShareRepo.EXPECT().Create(ctx, mock.AnythingOfType("*entity.JourneyShare")).Return(nil).Twice()
	mockAuditRepo.EXPECT().Create(ctx, mock.MatchedBy(func(log *entity.AuditLog) bool {
		return log.UserID == actingUserID && log.ActionType == constants.ActionShareJourney
	})).Return(nil).Twice()

	result, err := service.ShareJourney(ctx, journeyID, actingUserID, []uuid.UUID{receiverA, receiverB})

	require.NoError(t, err)
	assert.Len(t, result.CreatedShareIDs, 2)
	assert.Equal(t, []uuid.UUID{receiverA, receiverB}, result.SharedWithUserIDs)
}

func TestShareService_ShareJourney_SkipsAlreadySharedRecipient(t *testing.T) {
	mockJourneyRepo := mockRepo.NewMockJourneyRepository(t)
	mockShareRepo := mockRepo.NewMockShareRepository(t)
	mockAuditRepo := mockRepo.NewMockAuditLogRepository(t)
	service := NewShareService(mockJourneyRepo, mockShareRepo, mockAuditRepo, testLogger())

	ctx := context.Background()
	journeyID := uuid.New()
	actingUserID := uuid.New()
	alreadyShared := uuid.New()
	fresh := uuid.New()

	mockJourneyRepo.EXPECT().FindByID(ctx, journeyID).
		Return(&entity.Journey{ID: journeyID, UserID: actingUserID}, nil)
	mockShareRepo.EXPECT().FindActiveByJourneyAndReceiver(ctx, journeyID, alreadyShared).
		Return(&entity.JourneyShare{ID: uuid.New(), JourneyID: journeyID, ReceivingUserID: alreadyShared}, nil)
	mockShareRepo.EXPECT().FindActiveByJourneyAndReceiver(ctx, journeyID, fresh).
		Return(nil, repository.ErrShareNotFound)
	mockShareRepo.EXPECT().Create(ctx, mock.AnythingOfType("*entity.JourneyShare")).Return(nil).Once()
	mockAuditRepo.EXPECT().Create(ctx, mock.AnythingOfType("*entity.AuditLog")).Return(nil).Once()

	result, err := service.ShareJourney(ctx, journeyID, actingUserID, []uuid.UUID{alreadyShared, fresh})

	require.NoError(t, err)
	assert.Len(t, result.CreatedShareIDs, 1)
	assert.Equal(t, []uuid.UUID{fresh}, result.SharedWithUserIDs)
}

func TestShareService_ShareJourney_LostInsertRaceIsSkipped(t *testing.T) {
	mockJourneyRepo := mockRepo.NewMockJourneyRepository(t)
	mockShareRepo := mockRepo.NewMockShareRepository(t)
	mockAuditRepo := mockRepo.NewMockAuditLogRepository(t)
	service := NewShareService(mockJourneyRepo, mockShareRepo, mockAuditRepo, testLogger())

	ctx := context.Background()
	journeyID := uuid.New()
	actingUserID := uuid.New()
	receiver := uuid.New()

	mockJourneyRepo.EXPECT().FindByID(ctx, journeyID).
		Return(&entity.Journey{ID: journeyID, UserID: actingUserID}, nil)
	mockShareRepo.EXPECT().FindActiveByJourneyAndReceiver(ctx, journeyID, receiver).
		Return(nil, repository.ErrShareNotFound)
	mockShareRepo.EXPECT().Create(ctx, mock.AnythingOfType("*entity.JourneyShare")).
		Return(repository.ErrDuplicateShare)

	result, err := service.ShareJourney(ctx, journeyID, actingUserID, []uuid.UUID{receiver})

	require.NoError(t, err)
	assert.Empty(t, result.CreatedShareIDs)
	assert.Empty(t, result.SharedWithUserIDs)
	mockAuditRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}
