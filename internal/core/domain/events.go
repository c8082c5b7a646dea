package domain

import "time"

// AccountRegisteredEvent is published once a new account and its profile exist.
type AccountRegisteredEvent struct {
	EventID      string    `json:"event_id"`
	AccountID    string    `json:"account_id"`
	PhoneNumber  string    `json:"phone_number"`
	RegisteredAt time.Time `json:"registered_at"`
}

// ListingReportedEvent is published when a user flags a listing.
type ListingReportedEvent struct {
	EventID    string    `json:"event_id"`
	PropertyID string    `json:"property_id"`
	Reason     string    `json:"reason"`
	ReportedAt time.Time `json:"reported_at"`
}

// SupportContactRequestedEvent records a recovery request for an existing number.
type SupportContactRequestedEvent struct {
	EventID     string    `json:"event_id"`
	PhoneNumber string    `json:"phone_number"`
	Link        string    `json:"link"`
	RequestedAt time.Time `json:"requested_at"`
}
