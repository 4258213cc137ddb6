// Package repository contains hand-maintained testify mocks for the domain
// repository interfaces, kept in the mockery expecter style.
package repository

import (
	"context"
	"time"

	"wayfarer/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
)

// MockJourneyRepository is a mock implementation of repository.JourneyRepository.
type MockJourneyRepository struct {
	mock.Mock
}

// NewMockJourneyRepository creates a new mock wired to the test's lifecycle.
func NewMockJourneyRepository(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockJourneyRepository {
	m := &MockJourneyRepository{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}

// MockJourneyRepositoryExpecter provides the fluent expectation API.
type MockJourneyRepositoryExpecter struct {
	mock *mock.Mock
}

// EXPECT returns the expecter for this mock.
func (m *MockJourneyRepository) EXPECT() *MockJourneyRepositoryExpecter {
	return &MockJourneyRepositoryExpecter{mock: &m.Mock}
}

func (m *MockJourneyRepository) Create(ctx context.Context, journey *entity.Journey) error {
	return m.Called(ctx, journey).Error(0)
}

func (e *MockJourneyRepositoryExpecter) Create(ctx, journey any) *mock.Call {
	return e.mock.On("Create", ctx, journey)
}

func (m *MockJourneyRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Journey, error) {
	args := m.Called(ctx, id)

	var journey *entity.Journey
	if args.Get(0) != nil {
		journey = args.Get(0).(*entity.Journey)
	}

	return journey, args.Error(1)
}

func (e *MockJourneyRepositoryExpecter) FindByID(ctx, id any) *mock.Call {
	return e.mock.On("FindByID", ctx, id)
}

func (m *MockJourneyRepository) FindByUserAndStartTime(ctx context.Context, userID uuid.UUID, startTime time.Time) (*entity.Journey, error) {
	args := m.Called(ctx, userID, startTime)

	var journey *entity.Journey
	if args.Get(0) != nil {
		journey = args.Get(0).(*entity.Journey)
	}

	return journey, args.Error(1)
}

func (e *MockJourneyRepositoryExpecter) FindByUserAndStartTime(ctx, userID, startTime any) *mock.Call {
	return e.mock.On("FindByUserAndStartTime", ctx, userID, startTime)
}

func (m *MockJourneyRepository) FindByUser(ctx context.Context, userID uuid.UUID) ([]*entity.Journey, error) {
	args := m.Called(ctx, userID)

	var journeys []*entity.Journey
	if args.Get(0) != nil {
		journeys = args.Get(0).([]*entity.Journey)
	}

	return journeys, args.Error(1)
}

func (e *MockJourneyRepositoryExpecter) FindByUser(ctx, userID any) *mock.Call {
	return e.mock.On("FindByUser", ctx, userID)
}

func (m *MockJourneyRepository) FindAll(ctx context.Context) ([]*entity.Journey, error) {
	args := m.Called(ctx)

	var journeys []*entity.Journey
	if args.Get(0) != nil {
		journeys = args.Get(0).([]*entity.Journey)
	}

	return journeys, args.Error(1)
}

func (e *MockJourneyRepositoryExpecter) FindAll(ctx any) *mock.Call {
	return e.mock.On("FindAll", ctx)
}

func (m *MockJourneyRepository) FindForDate(ctx context.Context, date time.Time) ([]*entity.Journey, error) {
	args := m.Called(ctx, date)

	var journeys []*entity.Journey
	if args.Get(0) != nil {
		journeys = args.Get(0).([]*entity.Journey)
	}

	return journeys, args.Error(1)
}

func (e *MockJourneyRepositoryExpecter) FindForDate(ctx, date any) *mock.Call {
	return e.mock.On("FindForDate", ctx, date)
}

func (m *MockJourneyRepository) Update(ctx context.Context, journey *entity.Journey) error {
	return m.Called(ctx, journey).Error(0)
}

func (e *MockJourneyRepositoryExpecter) Update(ctx, journey any) *mock.Call {
	return e.mock.On("Update", ctx, journey)
}

func (m *MockJourneyRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return m.Called(ctx, id).Error(0)
}

func (e *MockJourneyRepositoryExpecter) Delete(ctx, id any) *mock.Call {
	return e.mock.On("Delete", ctx, id)
}
