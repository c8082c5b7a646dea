package contracts

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGenerateKeyFromPath(t *testing.T) {
	assert.Equal(t, "ListingReportedEvent/1.0.0", generateKeyFromPath("schemas/events/listing-reported/v1.json"))
	assert.Equal(t, "SupportContactRequestedEvent/1.0.0", generateKeyFromPath("schemas/events/support-contact-requested/v1.json"))
	assert.Equal(t, "", generateKeyFromPath("schemas/catalog/v1.json"))
}

func TestAllEventSchemasCompiled(t *testing.T) {
	for _, name := range []string{AccountRegisteredEvent, ListingReportedEvent, SupportContactRequestedEvent} {
		_, ok := compiledEvents[name+"/"+EventVersion]
		assert.True(t, ok, name)
	}
	assert.NotNil(t, catalogSchema)
}

func TestValidateEvent(t *testing.T) {
	valid := `{"event_id":"0b0f3b1e-7a5c-4a57-9b56-3f4ad1f0f1a1","property_id":"3","reason":"Autre raison","reported_at":"2024-05-20T08:40:00Z"}`
	assert.NoError(t, ValidateEvent(ListingReportedEvent, EventVersion, []byte(valid)))

	badReason := `{"event_id":"0b0f3b1e-7a5c-4a57-9b56-3f4ad1f0f1a1","property_id":"3","reason":"spam","reported_at":"2024-05-20T08:40:00Z"}`
	assert.Error(t, ValidateEvent(ListingReportedEvent, EventVersion, []byte(badReason)))

	assert.Error(t, ValidateEvent(ListingReportedEvent, EventVersion, []byte("{")))
	assert.Error(t, ValidateEvent("UnknownEvent", EventVersion, []byte(valid)))
}

func TestValidateCatalog(t *testing.T) {
	valid := `{"version":1,"properties":[{
		"id":"1","title":"Studio","description":"","type":"studio","price":100000,
		"neighborhood":"Glass","city":"Libreville","surface":20,"rooms":1,"bathrooms":1,
		"images":["https://images.example/1.jpg"],"owner_name":"A","owner_phone":"+24174123456",
		"created_at":"2024-05-12T10:30:00Z","updated_at":"2024-05-12T10:30:00Z"}]}`
	assert.NoError(t, ValidateCatalog([]byte(valid)))

	noImages := `{"version":1,"properties":[{
		"id":"1","title":"Studio","description":"","type":"studio","price":100000,
		"neighborhood":"Glass","city":"Libreville","surface":20,"rooms":1,"bathrooms":1,
		"images":[],"owner_name":"A","owner_phone":"+24174123456",
		"created_at":"2024-05-12T10:30:00Z","updated_at":"2024-05-12T10:30:00Z"}]}`
	assert.Error(t, ValidateCatalog([]byte(noImages)))

	assert.Error(t, ValidateCatalog([]byte(`{"version":2,"properties":[]}`)))
}
