package service

import (
	"github.com/stretchr/testify/mock"
)

// MockPasswordHasher is a mock implementation of service.PasswordHasher.
type MockPasswordHasher struct {
	mock.Mock
}

// NewMockPasswordHasher creates a new mock wired to the test's lifecycle.
func NewMockPasswordHasher(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockPasswordHasher {
	m := &MockPasswordHasher{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}

// MockPasswordHasherExpecter provides the fluent expectation API.
type MockPasswordHasherExpecter struct {
	mock *mock.Mock
}

// EXPECT returns the expecter for this mock.
func (m *MockPasswordHasher) EXPECT() *MockPasswordHasherExpecter {
	return &MockPasswordHasherExpecter{mock: &m.Mock}
}

func (m *MockPasswordHasher) Hash(password string) (string, error) {
	args := m.Called(password)

	return args.String(0), args.Error(1)
}

func (e *MockPasswordHasherExpecter) Hash(password any) *mock.Call {
	return e.mock.On("Hash", password)
}

func (m *MockPasswordHasher) Check(password, hash string) bool {
	return m.Called(password, hash).Bool(0)
}

func (e *MockPasswordHasherExpecter) Check(password, hash any) *mock.Call {
	return e.mock.On("Check", password, hash)
}
