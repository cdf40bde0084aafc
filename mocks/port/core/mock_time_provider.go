package core

import (
	"context"
	"time"

	"github.com/stretchr/testify/mock"

	coreport "boomstream/internal/domain/port/core"
)

// MockTimeProvider is a mock implementation of the TimeProvider port
type MockTimeProvider struct {
	mock.Mock
}

// NewMockTimeProvider creates a new MockTimeProvider whose expectations are
// asserted when the test finishes
func NewMockTimeProvider(t mockConstructorTestingT) *MockTimeProvider {
	m := &MockTimeProvider{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

func (m *MockTimeProvider) Now() time.Time {
	args := m.Called()
	return args.Get(0).(time.Time)
}

func (m *MockTimeProvider) Since(t time.Time) coreport.Duration {
	args := m.Called(t)
	return args.Get(0).(coreport.Duration)
}

func (m *MockTimeProvider) Until(t time.Time) coreport.Duration {
	args := m.Called(t)
	return args.Get(0).(coreport.Duration)
}

func (m *MockTimeProvider) Sleep(d coreport.Duration) {
	m.Called(d)
}

func (m *MockTimeProvider) WithTimeout(ctx context.Context, timeout coreport.Duration) (context.Context, context.CancelFunc) {
	args := m.Called(ctx, timeout)
	return args.Get(0).(context.Context), args.Get(1).(context.CancelFunc)
}

func (m *MockTimeProvider) ParseDuration(s string) (coreport.Duration, error) {
	args := m.Called(s)
	return args.Get(0).(coreport.Duration), args.Error(1)
}
