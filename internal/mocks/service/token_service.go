package service

import (
	domainservice "wayfarer/internal/domain/service"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
)

// MockTokenService is a mock implementation of service.TokenService.
type MockTokenService struct {
	mock.Mock
}

// NewMockTokenService creates a new mock wired to the test's lifecycle.
func NewMockTokenService(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockTokenService {
	m := &MockTokenService{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}

// MockTokenServiceExpecter provides the fluent expectation API.
type MockTokenServiceExpecter struct {
	mock *mock.Mock
}

// EXPECT returns the expecter for this mock.
func (m *MockTokenService) EXPECT() *MockTokenServiceExpecter {
	return &MockTokenServiceExpecter{mock: &m.Mock}
}

func (m *MockTokenService) GenerateTokens(userID uuid.UUID) (string, string, error) {
	args := m.Called(userID)

	return args.String(0), args.String(1), args.Error(2)
}

func (e *MockTokenServiceExpecter) GenerateTokens(userID any) *mock.Call {
	return e.mock.On("GenerateTokens", userID)
}

func (m *MockTokenService) ValidateAccessToken(tokenString string) (*domainservice.Claims, error) {
	args := m.Called(tokenString)

	var claims *domainservice.Claims
	if args.Get(0) != nil {
		claims = args.Get(0).(*domainservice.Claims)
	}

	return claims, args.Error(1)
}

func (e *MockTokenServiceExpecter) ValidateAccessToken(tokenString any) *mock.Call {
	return e.mock.On("ValidateAccessToken", tokenString)
}
