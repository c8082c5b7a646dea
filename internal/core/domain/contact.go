package domain

import (
	"fmt"
	"net/url"
	"strings"
)

// DefaultSupportWhatsApp is the support line used for account recovery.
const DefaultSupportWhatsApp = "33658898531"

// ContactLinks are the deep links offered on a listing.
type ContactLinks struct {
	Call     string
	SMS      string
	WhatsApp string // empty when the owner has no WhatsApp handle
}

// SupportLink is the recovery link in its two platform forms.
type SupportLink struct {
	Web string
	App string
}

// InterestMessage is the prefilled message sent to an owner.
func InterestMessage(title string) string {
	return fmt.Sprintf("Bonjour, je suis intéressé(e) par votre annonce \"%s\" sur Ndjimba.", title)
}

// RecoveryMessage is the prefilled message sent to support.
func RecoveryMessage(phone string) string {
	return fmt.Sprintf("Bonjour, je souhaite récupérer l'accès à mon compte Ndjimba (%s).", phone)
}

// BuildContactLinks builds the call, SMS and WhatsApp links of a listing.
func BuildContactLinks(p *Property) ContactLinks {
	msg := InterestMessage(p.Title)
	links := ContactLinks{
		Call: "tel:" + p.OwnerPhone,
		SMS:  "sms:" + p.OwnerPhone + "?body=" + encodeComponent(msg),
	}
	if p.HasWhatsApp() {
		links.WhatsApp = "https://wa.me/" + OnlyDigits(p.OwnerWhatsApp) + "?text=" + encodeComponent(msg)
	}
	return links
}

// BuildSupportLink builds the recovery link for phone towards supportNumber.
func BuildSupportLink(supportNumber, phone string) SupportLink {
	text := encodeComponent(RecoveryMessage(phone))
	return SupportLink{
		Web: "https://wa.me/" + supportNumber + "?text=" + text,
		App: "whatsapp://send?phone=" + supportNumber + "&text=" + text,
	}
}

// encodeComponent escapes s for a query value with spaces as %20.
func encodeComponent(s string) string {
	return strings.ReplaceAll(url.QueryEscape(s), "+", "%20")
}

// ReportReason is why a user flags a listing.
type ReportReason string

const (
	ReportFraud          ReportReason = "Annonce frauduleuse"
	ReportIncorrectInfo  ReportReason = "Informations incorrectes"
	ReportPhotosMismatch ReportReason = "Photos ne correspondent pas"
	ReportOther          ReportReason = "Autre raison"
)

// ReportReasons lists the reasons in display order.
var ReportReasons = []ReportReason{ReportFraud, ReportIncorrectInfo, ReportPhotosMismatch, ReportOther}

// ParseReportReason accepts one of ReportReasons.
func ParseReportReason(s string) (ReportReason, error) {
	for _, r := range ReportReasons {
		if string(r) == s {
			return r, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownReportReason, s)
}

// ReportConfirmation acknowledges a report.
func ReportConfirmation(reason ReportReason) string {
	return fmt.Sprintf("Merci pour votre signalement. Nous allons examiner cette annonce pour la raison suivante : \"%s\".", reason)
}
