package mocks

import (
	"context"

	"ndjimba/internal/core/domain"
)

// MockSupportChannel implements port.SupportChannelPort for testing
type MockSupportChannel struct {
	OpenFunc func(ctx context.Context, phone string, link domain.SupportLink) error
}

// NewMockSupportChannel creates a new MockSupportChannel with default behaviors
func NewMockSupportChannel() *MockSupportChannel {
	return &MockSupportChannel{}
}

func (m *MockSupportChannel) Open(ctx context.Context, phone string, link domain.SupportLink) error {
	if m.OpenFunc != nil {
		return m.OpenFunc(ctx, phone, link)
	}
	return nil
}
