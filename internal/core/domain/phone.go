package domain

import "strings"

// PhoneDigits is the length of a local mobile number once non-digits are stripped.
const PhoneDigits = 8

// MobilePrefixes are the carrier ranges accepted for signup.
var MobilePrefixes = []string{"74", "65", "66", "77"}

// InvalidPhoneMessage is shown inline when a number fails validation.
const InvalidPhoneMessage = "Veuillez entrer un numéro de téléphone valide commençant par 74, 65, 66 ou 77"

// PhoneValidation is the outcome of ValidatePhone.
type PhoneValidation struct {
	IsValid    bool
	Normalized string
}

// ValidatePhone strips every non-digit of raw and checks length and prefix.
// Normalized always carries the stripped digits, valid or not.
func ValidatePhone(raw string) PhoneValidation {
	digits := keepRunes(raw, func(r rune) bool { return r >= '0' && r <= '9' })
	res := PhoneValidation{Normalized: digits}
	if len(digits) != PhoneDigits {
		return res
	}
	for _, prefix := range MobilePrefixes {
		if strings.HasPrefix(digits, prefix) {
			res.IsValid = true
			break
		}
	}
	return res
}

// SanitizePhoneInput keeps digits and '+' only, the way the phone field
// accepts keystrokes.
func SanitizePhoneInput(raw string) string {
	return keepRunes(raw, func(r rune) bool { return (r >= '0' && r <= '9') || r == '+' })
}

// OnlyDigits strips everything but ASCII digits.
func OnlyDigits(raw string) string {
	return keepRunes(raw, func(r rune) bool { return r >= '0' && r <= '9' })
}

func keepRunes(s string, keep func(rune) bool) string {
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		if keep(r) {
			b.WriteRune(r)
		}
	}
	return b.String()
}
