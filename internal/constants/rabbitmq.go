package constants

// Exchange of the domain events.
const (
	EventsExchange     = "ndjimba.events"
	EventsExchangeType = "topic"
)

// Routing keys
const (
	RoutingKeyAccountRegistered       = "account.registered"
	RoutingKeyListingReported         = "listing.reported"
	RoutingKeySupportContactRequested = "support.contact.requested"
)
