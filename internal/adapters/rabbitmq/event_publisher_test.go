package rabbitmq

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	amqp "github.com/rabbitmq/amqp091-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ndjimba/internal/constants"
	"ndjimba/internal/contextkeys"
	"ndjimba/internal/core/domain"
)

type fakeProducer struct {
	keys []string
	msgs []amqp.Publishing
	err  error
}

func (f *fakeProducer) Publish(ctx context.Context, routingKey string, msg amqp.Publishing) error {
	if f.err != nil {
		return f.err
	}
	f.keys = append(f.keys, routingKey)
	f.msgs = append(f.msgs, msg)
	return nil
}

func TestEventPublisherAdapter_ListingReported(t *testing.T) {
	producer := &fakeProducer{}
	adapter, err := NewEventPublisherAdapter(producer)
	require.NoError(t, err)

	ctx := contextkeys.ContextWithTraceID(context.Background(), "trace-1")
	event := domain.ListingReportedEvent{
		EventID:    "6f1c2c52-3a55-4a1b-9f53-1f6b1f0e9d11",
		PropertyID: "3",
		Reason:     string(domain.ReportPhotosMismatch),
		ReportedAt: time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC),
	}
	require.NoError(t, adapter.PublishListingReported(ctx, event))

	require.Equal(t, []string{constants.RoutingKeyListingReported}, producer.keys)
	msg := producer.msgs[0]
	assert.Equal(t, "application/json", msg.ContentType)
	assert.Equal(t, "trace-1", msg.Headers["x-trace-id"])
	assert.Equal(t, event.EventID, msg.MessageId)

	var decoded domain.ListingReportedEvent
	require.NoError(t, json.Unmarshal(msg.Body, &decoded))
	assert.Equal(t, event, decoded)
}

func TestEventPublisherAdapter_RejectsInvalidEvent(t *testing.T) {
	producer := &fakeProducer{}
	adapter, err := NewEventPublisherAdapter(producer)
	require.NoError(t, err)

	err = adapter.PublishListingReported(context.Background(), domain.ListingReportedEvent{
		EventID:    "not-a-uuid",
		PropertyID: "3",
		Reason:     "spam",
		ReportedAt: time.Now(),
	})
	assert.Error(t, err)
	assert.Empty(t, producer.keys)
}

func TestEventPublisherAdapter_ProducerError(t *testing.T) {
	boom := errors.New("channel closed")
	adapter, err := NewEventPublisherAdapter(&fakeProducer{err: boom})
	require.NoError(t, err)

	err = adapter.PublishAccountRegistered(context.Background(), domain.AccountRegisteredEvent{
		EventID:      "6f1c2c52-3a55-4a1b-9f53-1f6b1f0e9d11",
		AccountID:    "acc-1",
		PhoneNumber:  "74123456",
		RegisteredAt: time.Now().UTC(),
	})
	assert.ErrorIs(t, err, boom)
}

func TestNewEventPublisherAdapter_NilProducer(t *testing.T) {
	_, err := NewEventPublisherAdapter(nil)
	assert.Error(t, err)
}
