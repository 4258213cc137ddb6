package repository

import (
	"context"

	"wayfarer/internal/domain/entity"

	"github.com/stretchr/testify/mock"
)

// MockAuditLogRepository is a mock implementation of repository.AuditLogRepository.
type MockAuditLogRepository struct {
	mock.Mock
}

// NewMockAuditLogRepository creates a new mock wired to the test's lifecycle.
func NewMockAuditLogRepository(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockAuditLogRepository {
	m := &MockAuditLogRepository{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}

// MockAuditLogRepositoryExpecter provides the fluent expectation API.
type MockAuditLogRepositoryExpecter struct {
	mock *mock.Mock
}

// EXPECT returns the expecter for this mock.
func (m *MockAuditLogRepository) EXPECT() *MockAuditLogRepositoryExpecter {
	return &MockAuditLogRepositoryExpecter{mock: &m.Mock}
}

func (m *MockAuditLogRepository) Create(ctx context.Context, log *entity.AuditLog) error {
	return m.Called(ctx, log).Error(0)
}

func (e *MockAuditLogRepositoryExpecter) Create(ctx, log any) *mock.Call {
	return e.mock.On("Create", ctx, log)
}
