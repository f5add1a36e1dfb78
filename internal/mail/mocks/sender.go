// Package mocks provides testify mocks for the mail interfaces.
package mocks

import (
	"context"
	"testing"

	"github.com/stretchr/testify/mock"
)

// MockSender is a mock implementation of mail.Sender
type MockSender struct {
	mock.Mock
}

// NewMockSender creates a mock wired to the test lifecycle
func NewMockSender(t *testing.T) *MockSender {
	m := &MockSender{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

func (m *MockSender) SendPasswordResetCode(ctx context.Context, to, code string) error {
	args := m.Called(ctx, to, code)
	return args.Error(0)
}
