package domain

import (
	"time"
)

// User-facing messages of the signup flow.
const (
	ExistingAccountMessage = "Ce numéro est déjà utilisé. Pour récupérer votre compte, veuillez nous contacter sur WhatsApp."
	GenericErrorMessage    = "Une erreur est survenue. Veuillez réessayer."
	NotFoundMessage        = "Logement introuvable"
)

// AccessCodeMin and AccessCodeMax bound the generated 6-digit codes.
const (
	AccessCodeMin = 100000
	AccessCodeMax = 999999
)

// Profile is the public record linked to an account.
type Profile struct {
	ID          string
	PhoneNumber string
	WhatsApp    string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// Account is the credential holder created by the backend.
type Account struct {
	ID        string
	Phone     string
	CreatedAt time.Time
}

// Claims are carried in session tokens.
type Claims struct {
	AccountID string
	Phone     string
}

// IsAccessCode reports whether code is a well-formed 6-digit access code.
func IsAccessCode(code string) bool {
	if len(code) != 6 || code[0] == '0' {
		return false
	}
	return OnlyDigits(code) == code
}
