package repository

import (
	"context"

	"wayfarer/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
)

// MockShareRepository is a mock implementation of repository.ShareRepository.
type MockShareRepository struct {
	mock.Mock
}

// NewMockShareRepository creates a new mock wired to the test's lifecycle.
func NewMockShareRepository(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockShareRepository {
	m := &MockShareRepository{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}

// MockShareRepositoryExpecter provides the fluent expectation API.
type MockShareRepositoryExpecter struct {
	mock *mock.Mock
}

// EXPECT returns the expecter for this mock.
func (m *MockShareRepository) EXPECT() *MockShareRepositoryExpecter {
	return &MockShareRepositoryExpecter{mock: &m.Mock}
}

func (m *MockShareRepository) Create(ctx context.Context, share *entity.JourneyShare) error {
	return m.Called(ctx, share).Error(0)
}

func (e *MockShareRepositoryExpecter) Create(ctx, share any) *mock.Call {
	return e.mock.On("Create", ctx, share)
}

func (m *MockShareRepository) FindActiveByJourneyAndReceiver(ctx context.Context, journeyID, receivingUserID uuid.UUID) (*entity.JourneyShare, error) {
	args := m.Called(ctx, journeyID, receivingUserID)

	var share *entity.JourneyShare
	if args.Get(0) != nil {
		share = args.Get(0).(*entity.JourneyShare)
	}

	return share, args.Error(1)
}

func (e *MockShareRepositoryExpecter) FindActiveByJourneyAndReceiver(ctx, journeyID, receivingUserID any) *mock.Call {
	return e.mock.On("FindActiveByJourneyAndReceiver", ctx, journeyID, receivingUserID)
}

func (m *MockShareRepository) FindByJourney(ctx context.Context, journeyID uuid.UUID) ([]*entity.JourneyShare, error) {
	args := m.Called(ctx, journeyID)

	var shares []*entity.JourneyShare
	if args.Get(0) != nil {
		shares = args.Get(0).([]*entity.JourneyShare)
	}

	return shares, args.Error(1)
}

func (e *MockShareRepositoryExpecter) FindByJourney(ctx, journeyID any) *mock.Call {
	return e.mock.On("FindByJourney", ctx, journeyID)
}

func (m *MockShareRepository) DeleteByJourney(ctx context.Context, journeyID uuid.UUID) error {
	return m.Called(ctx, journeyID).Error(0)
}

func (e *MockShareRepositoryExpecter) DeleteByJourney(ctx, journeyID any) *mock.Call {
	return e.mock.On("DeleteByJourney", ctx, journeyID)
}
