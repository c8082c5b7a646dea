package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildContactLinks(t *testing.T) {
	p := validProperty()
	p.Title = "Villa & jardin"
	p.OwnerWhatsApp = "+241 74 12 34 56"

	links := BuildContactLinks(&p)
	assert.Equal(t, "tel:+24174123456", links.Call)
	assert.Contains(t, links.SMS, "sms:+24174123456?body=Bonjour%2C%20je%20suis")
	assert.Contains(t, links.WhatsApp, "https://wa.me/24174123456?text=")
	assert.Contains(t, links.WhatsApp, "Villa%20%26%20jardin")
	assert.NotContains(t, links.WhatsApp, "+")

	p.OwnerWhatsApp = ""
	assert.Empty(t, BuildContactLinks(&p).WhatsApp)
}

func TestBuildSupportLink(t *testing.T) {
	link := BuildSupportLink(DefaultSupportWhatsApp, "74123456")
	assert.Equal(t, "https://wa.me/33658898531?text=Bonjour%2C%20je%20souhaite%20r%C3%A9cup%C3%A9rer%20l%27acc%C3%A8s%20%C3%A0%20mon%20compte%20Ndjimba%20%2874123456%29.", link.Web)
	assert.Contains(t, link.App, "whatsapp://send?phone=33658898531&text=Bonjour%2C")
}

func TestParseReportReason(t *testing.T) {
	r, err := ParseReportReason("Autre raison")
	require.NoError(t, err)
	assert.Equal(t, ReportOther, r)
	assert.Equal(t, `Merci pour votre signalement. Nous allons examiner cette annonce pour la raison suivante : "Autre raison".`, ReportConfirmation(r))

	_, err = ParseReportReason("spam")
	assert.ErrorIs(t, err, ErrUnknownReportReason)
}

func TestIsAccessCode(t *testing.T) {
	assert.True(t, IsAccessCode("100000"))
	assert.True(t, IsAccessCode("999999"))
	assert.False(t, IsAccessCode("099999"))
	assert.False(t, IsAccessCode("12345"))
	assert.False(t, IsAccessCode("12345a"))
}
