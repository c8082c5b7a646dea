package mocks

import (
	"context"

	"ndjimba/internal/core/domain"
)

// MockEventPublisher implements port.EventPublisherPort for testing
type MockEventPublisher struct {
	PublishAccountRegisteredFunc       func(ctx context.Context, event domain.AccountRegisteredEvent) error
	PublishListingReportedFunc         func(ctx context.Context, event domain.ListingReportedEvent) error
	PublishSupportContactRequestedFunc func(ctx context.Context, event domain.SupportContactRequestedEvent) error
}

// NewMockEventPublisher creates a new MockEventPublisher with default behaviors
func NewMockEventPublisher() *MockEventPublisher {
	return &MockEventPublisher{}
}

func (m *MockEventPublisher) PublishAccountRegistered(ctx context.Context, event domain.AccountRegisteredEvent) error {
	if m.PublishAccountRegisteredFunc != nil {
		return m.PublishAccountRegisteredFunc(ctx, event)
	}
	return nil
}

func (m *MockEventPublisher) PublishListingReported(ctx context.Context, event domain.ListingReportedEvent) error {
	if m.PublishListingReportedFunc != nil {
		return m.PublishListingReportedFunc(ctx, event)
	}
	return nil
}

func (m *MockEventPublisher) PublishSupportContactRequested(ctx context.Context, event domain.SupportContactRequestedEvent) error {
	if m.PublishSupportContactRequestedFunc != nil {
		return m.PublishSupportContactRequestedFunc(ctx, event)
	}
	return nil
}
