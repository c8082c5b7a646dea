package domain

// SignupStatus is the position of a signup submission in its lifecycle.
type SignupStatus string

const (
	SignupIdle            SignupStatus = "idle"
	SignupSubmitting      SignupStatus = "submitting"
	SignupExistingAccount SignupStatus = "existing_account"
	SignupAccountCreated  SignupStatus = "account_created"
	SignupFailed          SignupStatus = "failed"
)

// IsTerminal reports whether the submission has resolved.
func (s SignupStatus) IsTerminal() bool {
	switch s {
	case SignupExistingAccount, SignupAccountCreated, SignupFailed:
		return true
	}
	return false
}

// SignupState is a snapshot of the signup form.
type SignupState struct {
	Status       SignupStatus
	PhoneInput   string
	Validation   PhoneValidation
	Loading      bool
	ErrorMessage *string
	AccessCode   *string
	SupportLink  *SupportLink
}
