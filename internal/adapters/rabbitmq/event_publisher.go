package rabbitmq

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	amqp "github.com/rabbitmq/amqp091-go"

	"ndjimba/internal/constants"
	"ndjimba/internal/contextkeys"
	"ndjimba/internal/contracts"
	"ndjimba/internal/core/domain"
	"ndjimba/internal/core/port"
)

const publishTimeout = 10 * time.Second

// Producer is the publishing side of rabbitmq_producer.Publisher.
type Producer interface {
	Publish(ctx context.Context, routingKey string, msg amqp.Publishing) error
}

// EventPublisherAdapter encodes domain events, checks them against their
// schema and publishes them on the events exchange.
type EventPublisherAdapter struct {
	producer Producer
}

func NewEventPublisherAdapter(producer Producer) (*EventPublisherAdapter, error) {
	if producer == nil {
		return nil, fmt.Errorf("rabbitmq adapter: producer cannot be nil")
	}
	return &EventPublisherAdapter{producer: producer}, nil
}

func (a *EventPublisherAdapter) PublishAccountRegistered(ctx context.Context, event domain.AccountRegisteredEvent) error {
	return a.publish(ctx, contracts.AccountRegisteredEvent, constants.RoutingKeyAccountRegistered, event.EventID, event)
}

func (a *EventPublisherAdapter) PublishListingReported(ctx context.Context, event domain.ListingReportedEvent) error {
	return a.publish(ctx, contracts.ListingReportedEvent, constants.RoutingKeyListingReported, event.EventID, event)
}

func (a *EventPublisherAdapter) PublishSupportContactRequested(ctx context.Context, event domain.SupportContactRequestedEvent) error {
	return a.publish(ctx, contracts.SupportContactRequestedEvent, constants.RoutingKeySupportContactRequested, event.EventID, event)
}

func (a *EventPublisherAdapter) publish(ctx context.Context, eventType, routingKey, eventID string, event interface{}) error {
	adapterLogger := contextkeys.LoggerFromContext(ctx).WithFields(port.Fields{
		"component":   "EventPublisherAdapter",
		"routing_key": routingKey,
		"event_type":  eventType,
		"event_id":    eventID,
	})

	body, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("rabbitmq adapter: failed to encode %s: %w", eventType, err)
	}
	if err := contracts.ValidateEvent(eventType, contracts.EventVersion, body); err != nil {
		adapterLogger.Error("Event does not match its schema", err, nil)
		return fmt.Errorf("rabbitmq adapter: %w", err)
	}

	msg := amqp.Publishing{
		ContentType:  "application/json",
		Body:         body,
		DeliveryMode: amqp.Persistent,
		Timestamp:    time.Now(),
		MessageId:    eventID,
		Type:         eventType,
		Headers: amqp.Table{
			"event_type":    eventType,
			"event_version": contracts.EventVersion,
		},
	}
	if traceID := contextkeys.TraceIDFromContext(ctx); traceID != "" {
		msg.Headers["x-trace-id"] = traceID
	}

	publishCtx, cancel := context.WithTimeout(ctx, publishTimeout)
	defer cancel()

	if err := a.producer.Publish(publishCtx, routingKey, msg); err != nil {
		adapterLogger.Error("Failed to publish event", err, nil)
		return fmt.Errorf("rabbitmq adapter: failed to publish %s: %w", eventType, err)
	}

	adapterLogger.Debug("Event published", nil)
	return nil
}
