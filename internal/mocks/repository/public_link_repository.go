package repository

import (
	"context"
	"time"

	"wayfarer/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
)

// MockPublicLinkRepository is a mock implementation of repository.PublicLinkRepository.
type MockPublicLinkRepository struct {
	mock.Mock
}

// NewMockPublicLinkRepository creates a new mock wired to the test's lifecycle.
func NewMockPublicLinkRepository(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockPublicLinkRepository {
	m := &MockPublicLinkRepository{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}

// MockPublicLinkRepositoryExpecter provides the fluent expectation API.
type MockPublicLinkRepositoryExpecter struct {
	mock *mock.Mock
}

// EXPECT returns the expecter for this mock.
func (m *MockPublicLinkRepository) EXPECT() *MockPublicLinkRepositoryExpecter {
	return &MockPublicLinkRepositoryExpecter{mock: &m.Mock}
}

func (m *MockPublicLinkRepository) Create(ctx context.Context, link *entity.JourneyPublicLink) error {
	return m.Called(ctx, link).Error(0)
}

func (e *MockPublicLinkRepositoryExpecter) Create(ctx, link any) *mock.Call {
	return e.mock.On("Create", ctx, link)
}

func (m *MockPublicLinkRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.JourneyPublicLink, error) {
	args := m.Called(ctx, id)

	var link *entity.JourneyPublicLink
	if args.Get(0) != nil {
		link = args.Get(0).(*entity.JourneyPublicLink)
	}

	return link, args.Error(1)
}

func (e *MockPublicLinkRepositoryExpecter) FindByID(ctx, id any) *mock.Call {
	return e.mock.On("FindByID", ctx, id)
}

func (m *MockPublicLinkRepository) FindByToken(ctx context.Context, token string) (*entity.JourneyPublicLink, error) {
	args := m.Called(ctx, token)

	var link *entity.JourneyPublicLink
	if args.Get(0) != nil {
		link = args.Get(0).(*entity.JourneyPublicLink)
	}

	return link, args.Error(1)
}

func (e *MockPublicLinkRepositoryExpecter) FindByToken(ctx, token any) *mock.Call {
	return e.mock.On("FindByToken", ctx, token)
}

func (m *MockPublicLinkRepository) FindActiveByJourney(ctx context.Context, journeyID uuid.UUID) (*entity.JourneyPublicLink, error) {
	args := m.Called(ctx, journeyID)

	var link *entity.JourneyPublicLink
	if args.Get(0) != nil {
		link = args.Get(0).(*entity.JourneyPublicLink)
	}

	return link, args.Error(1)
}

func (e *MockPublicLinkRepositoryExpecter) FindActiveByJourney(ctx, journeyID any) *mock.Call {
	return e.mock.On("FindActiveByJourney", ctx, journeyID)
}

func (m *MockPublicLinkRepository) FindLatestByJourney(ctx context.Context, journeyID uuid.UUID) (*entity.JourneyPublicLink, error) {
	args := m.Called(ctx, journeyID)

	var link *entity.JourneyPublicLink
	if args.Get(0) != nil {
		link = args.Get(0).(*entity.JourneyPublicLink)
	}

	return link, args.Error(1)
}

func (e *MockPublicLinkRepositoryExpecter) FindLatestByJourney(ctx, journeyID any) *mock.Call {
	return e.mock.On("FindLatestByJourney", ctx, journeyID)
}

func (m *MockPublicLinkRepository) Revoke(ctx context.Context, id uuid.UUID, revokedAt *time.Time) error {
	return m.Called(ctx, id, revokedAt).Error(0)
}

func (e *MockPublicLinkRepositoryExpecter) Revoke(ctx, id, revokedAt any) *mock.Call {
	return e.mock.On("Revoke", ctx, id, revokedAt)
}

func (m *MockPublicLinkRepository) DeleteByJourney(ctx context.Context, journeyID uuid.UUID) error {
	return m.Called(ctx, journeyID).Error(0)
}

func (e *MockPublicLinkRepositoryExpecter) DeleteByJourney(ctx, journeyID any) *mock.Call {
	return e.mock.On("DeleteByJourney", ctx, journeyID)
}
