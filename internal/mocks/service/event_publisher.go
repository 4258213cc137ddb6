// Package service contains hand-maintained testify mocks for the domain
// service interfaces, kept in the mockery expecter style.
package service

import (
	"context"

	"github.com/stretchr/testify/mock"
)

// MockEventPublisher is a mock implementation of service.EventPublisher.
type MockEventPublisher struct {
	mock.Mock
}

// NewMockEventPublisher creates a new mock wired to the test's lifecycle.
func NewMockEventPublisher(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockEventPublisher {
	m := &MockEventPublisher{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}

// MockEventPublisherExpecter provides the fluent expectation API.
type MockEventPublisherExpecter struct {
	mock *mock.Mock
}

// EXPECT returns the expecter for this mock.
func (m *MockEventPublisher) EXPECT() *MockEventPublisherExpecter {
	return &MockEventPublisherExpecter{mock: &m.Mock}
}

func (m *MockEventPublisher) Publish(ctx context.Context, eventName string, payload any) error {
	return m.Called(ctx, eventName, payload).Error(0)
}

func (e *MockEventPublisherExpecter) Publish(ctx, eventName, payload any) *mock.Call {
	return e.mock.On("Publish", ctx, eventName, payload)
}

func (m *MockEventPublisher) Close() error {
	return m.Called().Error(0)
}

func (e *MockEventPublisherExpecter) Close() *mock.Call {
	return e.mock.On("Close")
}
