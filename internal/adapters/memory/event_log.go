package memory

import (
	"context"
	"sync"

	"ndjimba/internal/core/domain"
)

// EventLog is the event publisher used when no broker is configured. It
// keeps every event it receives.
type EventLog struct {
	mu              sync.Mutex
	registered      []domain.AccountRegisteredEvent
	reported        []domain.ListingReportedEvent
	supportRequests []domain.SupportContactRequestedEvent
}

func NewEventLog() *EventLog {
	return &EventLog{}
}

func (l *EventLog) PublishAccountRegistered(_ context.Context, event domain.AccountRegisteredEvent) error {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.registered = append(l.registered, event)
	return nil
}

func (l *EventLog) PublishListingReported(_ context.Context, event domain.ListingReportedEvent) error {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.reported = append(l.reported, event)
	return nil
}

func (l *EventLog) PublishSupportContactRequested(_ context.Context, event domain.SupportContactRequestedEvent) error {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.supportRequests = append(l.supportRequests, event)
	return nil
}

func (l *EventLog) AccountsRegistered() []domain.AccountRegisteredEvent {
	l.mu.Lock()
	defer l.mu.Unlock()
	return append([]domain.AccountRegisteredEvent(nil), l.registered...)
}

func (l *EventLog) ListingsReported() []domain.ListingReportedEvent {
	l.mu.Lock()
	defer l.mu.Unlock()
	return append([]domain.ListingReportedEvent(nil), l.reported...)
}

func (l *EventLog) SupportContactsRequested() []domain.SupportContactRequestedEvent {
	l.mu.Lock()
	defer l.mu.Unlock()
	return append([]domain.SupportContactRequestedEvent(nil), l.supportRequests...)
}
