package port

import (
	"context"
	"ndjimba/internal/core/domain"
)

// EventPublisherPort publishes domain events to the message bus.
type EventPublisherPort interface {
	PublishAccountRegistered(ctx context.Context, event domain.AccountRegisteredEvent) error
	PublishListingReported(ctx context.Context, event domain.ListingReportedEvent) error
	PublishSupportContactRequested(ctx context.Context, event domain.SupportContactRequestedEvent) error
}
