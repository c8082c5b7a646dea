// Package support hands account recovery requests to the support team.
package support

import (
	"context"
	"time"

	"github.com/google/uuid"

	"ndjimba/internal/contextkeys"
	"ndjimba/internal/core/domain"
	"ndjimba/internal/core/port"
)

// Channel records the recovery link for the client and notifies support over
// the event bus.
type Channel struct {
	events port.EventPublisherPort
	now    func() time.Time
}

func NewChannel(events port.EventPublisherPort) *Channel {
	return &Channel{events: events, now: func() time.Time { return time.Now().UTC() }}
}

func (c *Channel) Open(ctx context.Context, phone string, link domain.SupportLink) error {
	logger := contextkeys.LoggerFromContext(ctx).WithFields(port.Fields{"component": "SupportChannel"})

	event := domain.SupportContactRequestedEvent{
		EventID:     uuid.New().String(),
		PhoneNumber: phone,
		Link:        link.Web,
		RequestedAt: c.now(),
	}
	if err := c.events.PublishSupportContactRequested(ctx, event); err != nil {
		return err
	}
	logger.Info("Support contact requested", port.Fields{"event_id": event.EventID})
	return nil
}
