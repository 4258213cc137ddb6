package repository

import (
	"context"
	"time"

	"wayfarer/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
)

// MockBadgeRepository is a mock implementation of repository.BadgeRepository.
type MockBadgeRepository struct {
	mock.Mock
}

// NewMockBadgeRepository creates a new mock wired to the test's lifecycle.
func NewMockBadgeRepository(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockBadgeRepository {
	m := &MockBadgeRepository{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}

// MockBadgeRepositoryExpecter provides the fluent expectation API.
type MockBadgeRepositoryExpecter struct {
	mock *mock.Mock
}

// EXPECT returns the expecter for this mock.
func (m *MockBadgeRepository) EXPECT() *MockBadgeRepositoryExpecter {
	return &MockBadgeRepositoryExpecter{mock: &m.Mock}
}

func (m *MockBadgeRepository) Create(ctx context.Context, badge *entity.DailyGoalBadge) error {
	return m.Called(ctx, badge).Error(0)
}

func (e *MockBadgeRepositoryExpecter) Create(ctx, badge any) *mock.Call {
	return e.mock.On("Create", ctx, badge)
}

func (m *MockBadgeRepository) ExistsForUserOnDate(ctx context.Context, userID uuid.UUID, date time.Time) (bool, error) {
	args := m.Called(ctx, userID, date)

	return args.Bool(0), args.Error(1)
}

func (e *MockBadgeRepositoryExpecter) ExistsForUserOnDate(ctx, userID, date any) *mock.Call {
	return e.mock.On("ExistsForUserOnDate", ctx, userID, date)
}
