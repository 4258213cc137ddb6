package service

import (
	"github.com/stretchr/testify/mock"
)

// MockQRCodeService is a mock implementation of service.QRCodeService.
type MockQRCodeService struct {
	mock.Mock
}

// NewMockQRCodeService creates a new mock wired to the test's lifecycle.
func NewMockQRCodeService(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockQRCodeService {
	m := &MockQRCodeService{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}

// MockQRCodeServiceExpecter provides the fluent expectation API.
type MockQRCodeServiceExpecter struct {
	mock *mock.Mock
}

// EXPECT returns the expecter for this mock.
func (m *MockQRCodeService) EXPECT() *MockQRCodeServiceExpecter {
	return &MockQRCodeServiceExpecter{mock: &m.Mock}
}

func (m *MockQRCodeService) GenerateURLQR(url string) ([]byte, error) {
	args := m.Called(url)

	var png []byte
	if args.Get(0) != nil {
		png = args.Get(0).([]byte)
	}

	return png, args.Error(1)
}

func (e *MockQRCodeServiceExpecter) GenerateURLQR(url any) *mock.Call {
	return e.mock.On("GenerateURLQR", url)
}
