package ratelimit

import (
	"context"

	"github.com/stretchr/testify/mock"

	"boomstream/internal/domain/port/ratelimit"
)

// MockAdmitter is a mock implementation of the Admitter port
type MockAdmitter struct {
	mock.Mock
}

type mockConstructorTestingT interface {
	mock.TestingT
	Cleanup(func())
}

// NewMockAdmitter creates a new MockAdmitter whose expectations are
// asserted when the test finishes
func NewMockAdmitter(t mockConstructorTestingT) *MockAdmitter {
	m := &MockAdmitter{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

func (m *MockAdmitter) TryAdmit(ctx context.Context, userID uint64, slot ratelimit.Slot) error {
	args := m.Called(ctx, userID, slot)
	return args.Error(0)
}

func (m *MockAdmitter) Release(ctx context.Context, userID uint64, slot ratelimit.Slot) error {
	args := m.Called(ctx, userID, slot)
	return args.Error(0)
}
