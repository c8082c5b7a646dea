package support

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ndjimba/internal/adapters/memory"
	"ndjimba/internal/core/domain"
	"ndjimba/internal/mocks"
)

func TestChannel_Open(t *testing.T) {
	events := memory.NewEventLog()
	link := domain.BuildSupportLink(domain.DefaultSupportWhatsApp, "74123456")

	require.NoError(t, NewChannel(events).Open(context.Background(), "74123456", link))

	got := events.SupportContactsRequested()
	require.Len(t, got, 1)
	assert.Equal(t, "74123456", got[0].PhoneNumber)
	assert.Equal(t, link.Web, got[0].Link)
	assert.NotEmpty(t, got[0].EventID)
}

func TestChannel_OpenPublishError(t *testing.T) {
	pub := mocks.NewMockEventPublisher()
	pub.PublishSupportContactRequestedFunc = func(ctx context.Context, event domain.SupportContactRequestedEvent) error {
		return errors.New("broker down")
	}
	err := NewChannel(pub).Open(context.Background(), "74123456", domain.SupportLink{})
	assert.Error(t, err)
}
